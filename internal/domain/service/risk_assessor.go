package service

import (
	"fmt"
	"sort"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// maxRecommendations caps the recommendation list of a risk profile.
const maxRecommendations = 5

// RiskThresholds holds the tunable cut-offs used by the risk rules.
type RiskThresholds struct {
	CriticalCurrentRatio  float64
	ExcessiveDebtToEquity float64
	MinInterestCoverage   float64
	AgingTrigger          float64
	AgingMedium           float64
	AgingHigh             float64
	ConcentrationMedium   float64
	ConcentrationHigh     float64
}

// DefaultRiskThresholds returns the standard rule cut-offs.
func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{
		CriticalCurrentRatio:  0.5,
		ExcessiveDebtToEquity: 3.0,
		MinInterestCoverage:   1.5,
		AgingTrigger:          0.10,
		AgingMedium:           0.20,
		AgingHigh:             0.50,
		ConcentrationMedium:   0.50,
		ConcentrationHigh:     0.75,
	}
}

// riskInput is what every rule may read.
type riskInput struct {
	stmt        model.Statement
	benchmarked []model.BenchmarkedMetric
	signals     model.RiskSignals
}

func (in riskInput) metric(name string) (model.BenchmarkedMetric, float64, bool) {
	bm, ok := model.FindBenchmarked(in.benchmarked, name)
	if !ok {
		return bm, 0, false
	}
	v, defined := bm.Float()
	return bm, v, defined
}

// riskRule evaluates one independent condition.
type riskRule func(in riskInput, th RiskThresholds) (model.RiskFinding, bool)

// ---------------------------------------------------------------------------
// RiskAssessor – rule-based risk findings
// ---------------------------------------------------------------------------

// RiskAssessor evaluates a fixed set of independent rules against benchmarked
// metrics, raw statement figures and optional signals.
type RiskAssessor struct {
	thresholds RiskThresholds
	rules      []riskRule
}

// NewRiskAssessor creates an assessor with the given thresholds.
func NewRiskAssessor(thresholds RiskThresholds) *RiskAssessor {
	return &RiskAssessor{
		thresholds: thresholds,
		rules: []riskRule{
			ruleQuickLiquidity,
			ruleCriticalLiquidity,
			ruleLeverage,
			ruleInterestCoverage,
			ruleOperatingLosses,
			ruleNegativeOperatingCashFlow,
			ruleNegativeFreeCashFlow,
			ruleReceivablesAging,
			ruleCustomerConcentration,
		},
	}
}

// Assess runs every rule, deduplicates by (name, category) keeping the most
// severe finding, and orders the result by descending severity.
func (a *RiskAssessor) Assess(stmt model.Statement, benchmarked []model.BenchmarkedMetric, signals model.RiskSignals) model.RiskProfile {
	in := riskInput{stmt: stmt, benchmarked: benchmarked, signals: signals}

	type key struct{ name, category string }
	seen := make(map[key]int)
	var findings []model.RiskFinding

	for _, rule := range a.rules {
		f, ok := rule(in, a.thresholds)
		if !ok {
			continue
		}
		k := key{f.Name, f.Category.String()}
		if i, dup := seen[k]; dup {
			if f.Severity.Rank() > findings[i].Severity.Rank() {
				findings[i] = f
			}
			continue
		}
		seen[k] = len(findings)
		findings = append(findings, f)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		ri, rj := findings[i].Severity.Rank(), findings[j].Severity.Rank()
		if ri != rj {
			return ri > rj
		}
		return findings[i].ID < findings[j].ID
	})

	return model.RiskProfile{
		Findings:        findings,
		OverallLevel:    overallRiskLevel(findings),
		Recommendations: riskRecommendations(findings),
	}
}

func overallRiskLevel(findings []model.RiskFinding) valueobject.Severity {
	if len(findings) == 0 {
		return valueobject.SeverityLow
	}
	// Findings are sorted, so the first is the most severe.
	return findings[0].Severity
}

func riskRecommendations(findings []model.RiskFinding) []string {
	var recs []string
	seen := make(map[string]bool)
	for _, f := range findings {
		for _, m := range f.Mitigation {
			if seen[m] {
				continue
			}
			seen[m] = true
			recs = append(recs, m)
			if len(recs) == maxRecommendations {
				return recs
			}
		}
	}
	return recs
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

func ruleQuickLiquidity(in riskInput, _ RiskThresholds) (model.RiskFinding, bool) {
	bm, v, ok := in.metric(MetricQuickRatio)
	if !ok {
		return model.RiskFinding{}, false
	}
	var sev valueobject.Severity
	switch bm.Rating {
	case valueobject.RatingPoor:
		sev = valueobject.SeverityHigh
	case valueobject.RatingFair:
		sev = valueobject.SeverityMedium
	default:
		return model.RiskFinding{}, false
	}
	return model.RiskFinding{
		ID:          "LIQ001",
		Name:        "Weak Quick Liquidity",
		Category:    valueobject.RiskCategoryLiquidity,
		Severity:    sev,
		Description: fmt.Sprintf("Quick ratio of %.2f is %s against the industry benchmark", v, bm.Rating),
		Mitigation:  []string{"Accelerate collections", "Reduce slow-moving inventory", "Arrange a standby working capital line"},
	}, true
}

func ruleCriticalLiquidity(in riskInput, th RiskThresholds) (model.RiskFinding, bool) {
	_, v, ok := in.metric(MetricCurrentRatio)
	if !ok || v >= th.CriticalCurrentRatio {
		return model.RiskFinding{}, false
	}
	return model.RiskFinding{
		ID:          "LIQ002",
		Name:        "Critical Liquidity Shortage",
		Category:    valueobject.RiskCategoryLiquidity,
		Severity:    valueobject.SeverityHigh,
		Description: fmt.Sprintf("Current ratio of %.2f is below %.2f; short-term obligations exceed liquid assets", v, th.CriticalCurrentRatio),
		Mitigation:  []string{"Negotiate payment terms", "Accelerate collections", "Consider emergency financing"},
	}, true
}

func ruleLeverage(in riskInput, th RiskThresholds) (model.RiskFinding, bool) {
	bm, v, ok := in.metric(MetricDebtToEquity)
	if !ok {
		return model.RiskFinding{}, false
	}
	switch {
	case v > th.ExcessiveDebtToEquity:
		return model.RiskFinding{
			ID:          "SOL001",
			Name:        "High Leverage",
			Category:    valueobject.RiskCategorySolvency,
			Severity:    valueobject.SeverityHigh,
			Description: fmt.Sprintf("Debt-to-equity of %.2f exceeds %.1f", v, th.ExcessiveDebtToEquity),
			Mitigation:  []string{"Prioritize debt repayment", "Consider equity infusion"},
		}, true
	case bm.Rating == valueobject.RatingPoor:
		return model.RiskFinding{
			ID:          "SOL001",
			Name:        "High Leverage",
			Category:    valueobject.RiskCategorySolvency,
			Severity:    valueobject.SeverityMedium,
			Description: fmt.Sprintf("Debt-to-equity of %.2f is well above the industry benchmark", v),
			Mitigation:  []string{"Prioritize debt repayment", "Avoid new borrowing until leverage normalizes"},
		}, true
	default:
		return model.RiskFinding{}, false
	}
}

func ruleInterestCoverage(in riskInput, th RiskThresholds) (model.RiskFinding, bool) {
	_, v, ok := in.metric(MetricInterestCoverage)
	if !ok || v >= th.MinInterestCoverage {
		return model.RiskFinding{}, false
	}
	return model.RiskFinding{
		ID:          "SOL002",
		Name:        "Weak Interest Coverage",
		Category:    valueobject.RiskCategorySolvency,
		Severity:    valueobject.SeverityHigh,
		Description: fmt.Sprintf("Operating income covers interest only %.2f times", v),
		Mitigation:  []string{"Refinance at lower rates", "Improve operating margins"},
	}, true
}

func ruleOperatingLosses(in riskInput, _ RiskThresholds) (model.RiskFinding, bool) {
	if !in.stmt.Income().NetIncome.IsNegative() {
		return model.RiskFinding{}, false
	}
	return model.RiskFinding{
		ID:          "PRF001",
		Name:        "Operating Losses",
		Category:    valueobject.RiskCategoryProfitability,
		Severity:    valueobject.SeverityHigh,
		Description: "The business reported a net loss for the period",
		Mitigation:  []string{"Review costs", "Adjust pricing"},
	}, true
}

func ruleNegativeOperatingCashFlow(in riskInput, _ RiskThresholds) (model.RiskFinding, bool) {
	cf := in.stmt.CashFlow()
	if cf == nil || !cf.Operating.IsNegative() {
		return model.RiskFinding{}, false
	}
	return model.RiskFinding{
		ID:          "CF001",
		Name:        "Negative Operating Cash Flow",
		Category:    valueobject.RiskCategoryCashFlow,
		Severity:    valueobject.SeverityHigh,
		Description: fmt.Sprintf("Operations consumed %s of cash", cf.Operating.Abs().StringFixed(2)),
		Mitigation:  []string{"Tighten working capital", "Accelerate collections"},
	}, true
}

func ruleNegativeFreeCashFlow(in riskInput, _ RiskThresholds) (model.RiskFinding, bool) {
	cf := in.stmt.CashFlow()
	if cf == nil || !cf.FreeCashFlow().IsNegative() {
		return model.RiskFinding{}, false
	}
	return model.RiskFinding{
		ID:          "CF002",
		Name:        "Negative Free Cash Flow",
		Category:    valueobject.RiskCategoryCashFlow,
		Severity:    valueobject.SeverityMedium,
		Description: fmt.Sprintf("Free cash flow is %s", cf.FreeCashFlow().StringFixed(2)),
		Mitigation:  []string{"Review capex", "Improve efficiency"},
	}, true
}

func ruleReceivablesAging(in riskInput, th RiskThresholds) (model.RiskFinding, bool) {
	if in.signals.ReceivablesAging == nil {
		return model.RiskFinding{}, false
	}
	overdue, ok := in.signals.ReceivablesAging.OverdueFraction()
	if !ok || overdue < th.AgingTrigger {
		return model.RiskFinding{}, false
	}
	sev := valueobject.SeverityLow
	switch {
	case overdue > th.AgingHigh:
		sev = valueobject.SeverityHigh
	case overdue >= th.AgingMedium:
		sev = valueobject.SeverityMedium
	}
	return model.RiskFinding{
		ID:          "CRD001",
		Name:        "Accounts Receivable Aging",
		Category:    valueobject.RiskCategoryCredit,
		Severity:    sev,
		Description: fmt.Sprintf("%.0f%% of receivables are overdue", overdue*100),
		Mitigation:  []string{"Enforce credit terms", "Follow up on overdue invoices", "Consider invoice discounting"},
	}, true
}

func ruleCustomerConcentration(in riskInput, th RiskThresholds) (model.RiskFinding, bool) {
	share := in.signals.TopCustomerShare
	if share == nil || *share <= th.ConcentrationMedium {
		return model.RiskFinding{}, false
	}
	sev := valueobject.SeverityMedium
	if *share > th.ConcentrationHigh {
		sev = valueobject.SeverityHigh
	}
	return model.RiskFinding{
		ID:          "OPS001",
		Name:        "Customer Concentration",
		Category:    valueobject.RiskCategoryOperational,
		Severity:    sev,
		Description: fmt.Sprintf("The largest customer accounts for %.0f%% of revenue", *share*100),
		Mitigation:  []string{"Diversify the customer base", "Secure longer-term contracts with key accounts"},
	}, true
}
