package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/port"
)

// Operation names reported to the Recorder and the request log.
const (
	OpFullAnalysis      = "full_analysis"
	OpComputeMetrics    = "metrics"
	OpAssessRisk        = "risk"
	OpScoreCredit       = "credit_score"
	OpForecast          = "forecast"
	OpCompareBenchmarks = "benchmark"
)

// Outcome labels.
const (
	OutcomeOK                  = "ok"
	OutcomeInvalid             = "invalid"
	OutcomeInsufficientHistory = "insufficient_history"
	OutcomeError               = "error"
)

// Observer bundles the cross-cutting collaborators every use case reports to.
// Zero-valued fields are replaced with no-op defaults.
type Observer struct {
	Logger   *slog.Logger
	Recorder port.Recorder
	Now      func() time.Time
}

func (o Observer) withDefaults() Observer {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// finish records the outcome of one operation started at start.
func (o Observer) finish(ctx context.Context, op string, start time.Time, err error) {
	outcome := outcomeOf(err)
	o.Recorder.Record(ctx, op, outcome, o.Now().Sub(start).Seconds())
	if err != nil && outcome == OutcomeError {
		o.Logger.ErrorContext(ctx, "analysis operation failed", "operation", op, "error", err)
	}
}

func outcomeOf(err error) string {
	var verr *model.ValidationError
	var insufficient *model.InsufficientHistoryError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &verr):
		return OutcomeInvalid
	case errors.As(err, &insufficient):
		return OutcomeInsufficientHistory
	default:
		return OutcomeError
	}
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, string, float64) {}
