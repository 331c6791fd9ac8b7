package service

import (
	"math"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// Credit score bounds.
const (
	MinCreditScore = 300
	MaxCreditScore = 900
)

// CreditPolicy holds the adjustment constants applied on top of the linear
// health-score mapping.
type CreditPolicy struct {
	MaxAdjustment  int
	CleanHistory   int
	LateHistory    int
	DefaultHistory int
	// YearsBonus is ordered by descending MinYears.
	YearsBonus []valueobject.Band[int]
	// NewBusinessPenalty applies below the lowest YearsBonus band.
	NewBusinessPenalty int
}

// DefaultCreditPolicy returns the standard adjustment constants.
func DefaultCreditPolicy() CreditPolicy {
	return CreditPolicy{
		MaxAdjustment:  30,
		CleanHistory:   15,
		LateHistory:    -15,
		DefaultHistory: -30,
		YearsBonus: []valueobject.Band[int]{
			{Min: 10, Label: 15},
			{Min: 5, Label: 10},
			{Min: 3, Label: 5},
			{Min: 1, Label: 0},
		},
		NewBusinessPenalty: -10,
	}
}

// stabilityBands scores years in operation on 0-100.
var stabilityBands = []valueobject.Band[float64]{
	{Min: 10, Label: 100},
	{Min: 5, Label: 80},
	{Min: 3, Label: 60},
	{Min: 1, Label: 40},
}

// ---------------------------------------------------------------------------
// CreditScorer – maps the composite health score onto 300-900
// ---------------------------------------------------------------------------

// CreditScorer converts a health score plus qualitative signals into a credit
// score and letter grade. For fixed signals the score is monotonic
// non-decreasing in the health score.
type CreditScorer struct {
	policy CreditPolicy
}

// NewCreditScorer creates a scorer with the given policy.
func NewCreditScorer(policy CreditPolicy) *CreditScorer {
	return &CreditScorer{policy: policy}
}

// Score computes the credit score. The metrics feed the breakdown only; the
// score itself depends on the health score and signals.
func (s *CreditScorer) Score(health model.HealthScore, metrics model.MetricSet, signals model.CreditSignals) model.CreditScore {
	overall := math.Max(0, math.Min(100, health.OverallScore))
	base := MinCreditScore + overall/100*(MaxCreditScore-MinCreditScore)

	adjustment := s.Adjustment(signals)
	score := int(math.Round(base)) + adjustment
	score = max(MinCreditScore, min(MaxCreditScore, score))

	factors := s.factors(health, metrics, signals)
	result := model.CreditScore{
		Score:      score,
		Rating:     valueobject.CreditRatingFromScore(score),
		BaseScore:  base,
		Adjustment: adjustment,
		Factors:    factors,
	}

	for _, f := range factors {
		switch {
		case f.Score >= 75:
			result.Strengths = append(result.Strengths, f.Name)
		case f.Score < 50:
			result.Weaknesses = append(result.Weaknesses, f.Name)
		}
	}
	result.Recommendations = creditRecommendations(health, signals, result.Rating)
	return result
}

// Adjustment returns the clamped qualitative adjustment for the signals.
func (s *CreditScorer) Adjustment(signals model.CreditSignals) int {
	adj := 0

	switch signals.PaymentHistory {
	case valueobject.PaymentHistoryClean:
		adj += s.policy.CleanHistory
	case valueobject.PaymentHistoryLate:
		adj += s.policy.LateHistory
	case valueobject.PaymentHistoryDefault:
		adj += s.policy.DefaultHistory
	}

	if signals.YearsInOperation != nil {
		adj += valueobject.Classify(s.policy.YearsBonus, float64(*signals.YearsInOperation), s.policy.NewBusinessPenalty)
	}

	limit := s.policy.MaxAdjustment
	return max(-limit, min(limit, adj))
}

func (s *CreditScorer) factors(health model.HealthScore, metrics model.MetricSet, signals model.CreditSignals) []model.CreditFactor {
	var factors []model.CreditFactor

	// Factors 1-4: health components, weighted as in the composite score
	weights := DefaultHealthWeights()
	for _, c := range valueobject.Categories() {
		v, ok := health.Component(c)
		if !ok {
			continue
		}
		factors = append(factors, model.CreditFactor{
			Name:   c.String(),
			Score:  v,
			Weight: weights[c],
			Impact: impactLabel(v),
		})
	}

	// Factor 5: payment history
	if !signals.PaymentHistory.IsZero() {
		v := paymentHistoryScore(signals.PaymentHistory)
		factors = append(factors, model.CreditFactor{Name: "payment_history", Score: v, Impact: impactLabel(v)})
	}
	// Factor 6: business stability
	if signals.YearsInOperation != nil {
		v := valueobject.Classify(stabilityBands, float64(*signals.YearsInOperation), 20)
		factors = append(factors, model.CreditFactor{Name: "business_stability", Score: v, Impact: impactLabel(v)})
	}
	// Factor 7: debt utilization
	if de, ok := metrics.Value(MetricDebtToEquity); ok {
		v := debtUtilizationScore(de)
		factors = append(factors, model.CreditFactor{Name: "debt_utilization", Score: v, Impact: impactLabel(v)})
	}
	// Factor 8: revenue trend
	if g, ok := metrics.Value(MetricRevenueGrowth); ok {
		v := revenueTrendScore(g)
		factors = append(factors, model.CreditFactor{Name: "revenue_trend", Score: v, Impact: impactLabel(v)})
	}
	return factors
}

func debtUtilizationScore(debtToEquity float64) float64 {
	switch {
	case debtToEquity < 0.5:
		return 100
	case debtToEquity < 1.0:
		return 80
	case debtToEquity < 2.0:
		return 60
	case debtToEquity < 3.0:
		return 40
	default:
		return 20
	}
}

func revenueTrendScore(growth float64) float64 {
	switch {
	case growth > 0.20:
		return 100
	case growth > 0.10:
		return 80
	case growth > 0:
		return 60
	case growth > -0.10:
		return 40
	default:
		return 20
	}
}

func paymentHistoryScore(p valueobject.PaymentHistory) float64 {
	switch p {
	case valueobject.PaymentHistoryClean:
		return 100
	case valueobject.PaymentHistoryLate:
		return 50
	default:
		return 10
	}
}

func impactLabel(score float64) string {
	switch {
	case score >= 75:
		return "positive"
	case score >= 50:
		return "neutral"
	default:
		return "negative"
	}
}

func creditRecommendations(health model.HealthScore, signals model.CreditSignals, rating valueobject.CreditRating) []string {
	var recs []string
	if v, ok := health.Component(valueobject.CategorySolvency); ok && v < 60 {
		recs = append(recs, "Reduce debt levels to improve creditworthiness")
	}
	if v, ok := health.Component(valueobject.CategoryLiquidity); ok && v < 60 {
		recs = append(recs, "Improve liquidity position")
	}
	if v, ok := health.Component(valueobject.CategoryProfitability); ok && v < 60 {
		recs = append(recs, "Focus on improving profitability margins")
	}
	if signals.PaymentHistory == valueobject.PaymentHistoryLate || signals.PaymentHistory == valueobject.PaymentHistoryDefault {
		recs = append(recs, "Clear overdue obligations and keep repayments on schedule")
	}
	if rating == valueobject.CreditRatingD {
		recs = append(recs, "Seek professional financial advisory")
	}
	return recs
}
