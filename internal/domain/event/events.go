package event

import (
	"time"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// Event type names.
const (
	TypeAnalysisCompleted = "finhealth.analysis.completed"

	aggregateAnalysis = "Analysis"
)

// ---------------------------------------------------------------------------
// Analysis Events
// ---------------------------------------------------------------------------

// AnalysisCompleted is raised after a full analysis succeeds. It carries the
// headline outcome only.
type AnalysisCompleted struct {
	events.BaseEvent
	Industry      string   `json:"industry"`
	Currency      string   `json:"currency"`
	HealthScore   float64  `json:"health_score"`
	HealthBand    string   `json:"health_band"`
	CreditScore   int      `json:"credit_score"`
	CreditRating  string   `json:"credit_rating"`
	RiskLevel     string   `json:"risk_level"`
	FindingCount  int      `json:"finding_count"`
	PartialStages []string `json:"partial_stages,omitempty"`
	WarningCount  int      `json:"warning_count"`
}

// NewAnalysisCompleted summarizes a result under the given analysis ID.
func NewAnalysisCompleted(analysisID string, result model.AnalysisResult, at time.Time) AnalysisCompleted {
	e := AnalysisCompleted{
		BaseEvent:    events.NewBaseEvent(TypeAnalysisCompleted, analysisID, aggregateAnalysis, at),
		Industry:     result.Industry,
		Currency:     result.Currency,
		HealthScore:  result.HealthScore.OverallScore,
		HealthBand:   result.HealthScore.Rating.String(),
		CreditScore:  result.CreditScore.Score,
		CreditRating: result.CreditScore.Rating.String(),
		RiskLevel:    result.Risk.OverallLevel.String(),
		FindingCount: len(result.Risk.Findings),
		WarningCount: len(result.Warnings),
	}
	for _, p := range result.Partial {
		e.PartialStages = append(e.PartialStages, p.Stage)
	}
	return e
}
