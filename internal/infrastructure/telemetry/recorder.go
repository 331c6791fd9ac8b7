package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/Kishanjee7/finhealth"

// Recorder implements port.Recorder on an OpenTelemetry meter.
type Recorder struct {
	analyses metric.Int64Counter
	duration metric.Float64Histogram
}

// NewRecorder registers the analysis instruments on the provider.
func NewRecorder(provider metric.MeterProvider) (*Recorder, error) {
	meter := provider.Meter(meterName)

	analyses, err := meter.Int64Counter("finhealth_analyses",
		metric.WithDescription("Analysis operations by outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create analyses counter: %w", err)
	}

	duration, err := meter.Float64Histogram("finhealth_analysis_duration",
		metric.WithDescription("Analysis operation latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create duration histogram: %w", err)
	}

	return &Recorder{analyses: analyses, duration: duration}, nil
}

// Record adds one observation for the operation and outcome.
func (r *Recorder) Record(ctx context.Context, operation, outcome string, seconds float64) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	r.analyses.Add(ctx, 1, attrs)
	r.duration.Record(ctx, seconds, attrs)
}
