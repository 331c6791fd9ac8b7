package model

import "github.com/Kishanjee7/finhealth/internal/domain/valueobject"

// HealthScore is the composite 0-100 score. Components holds one entry per
// category; a nil entry means the category had no rated metrics.
type HealthScore struct {
	OverallScore float64
	Rating       valueobject.HealthBand
	Components   map[valueobject.Category]*float64
}

// Component returns a category sub-score.
func (h HealthScore) Component(c valueobject.Category) (float64, bool) {
	v := h.Components[c]
	if v == nil {
		return 0, false
	}
	return *v, true
}

// CreditSignals are qualitative inputs not captured by the health score.
type CreditSignals struct {
	PaymentHistory   valueobject.PaymentHistory
	YearsInOperation *int
}

// CreditFactor is one line of the credit score breakdown.
type CreditFactor struct {
	Name   string
	Score  float64
	Weight float64
	Impact string
}

// CreditScore is the 300-900 score with its letter grade and breakdown.
type CreditScore struct {
	Score           int
	Rating          valueobject.CreditRating
	BaseScore       float64
	Adjustment      int
	Factors         []CreditFactor
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}
