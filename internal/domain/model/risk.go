package model

import (
	"github.com/shopspring/decimal"

	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// RiskFinding is one categorized, severity-scored issue.
type RiskFinding struct {
	ID          string
	Name        string
	Category    valueobject.RiskCategory
	Severity    valueobject.Severity
	Description string
	Mitigation  []string
}

// RiskProfile is the outcome of a risk assessment. Findings are ordered by
// descending severity.
type RiskProfile struct {
	Findings        []RiskFinding
	OverallLevel    valueobject.Severity
	Recommendations []string
}

// ReceivablesAging splits outstanding receivables by age bucket.
type ReceivablesAging struct {
	Current   decimal.Decimal
	Overdue30 decimal.Decimal
	Overdue60 decimal.Decimal
	Overdue90 decimal.Decimal
}

// Total returns the sum of all buckets.
func (a ReceivablesAging) Total() decimal.Decimal {
	return a.Current.Add(a.Overdue30).Add(a.Overdue60).Add(a.Overdue90)
}

// OverdueFraction returns overdue/total, or false when nothing is outstanding.
func (a ReceivablesAging) OverdueFraction() (float64, bool) {
	total := a.Total()
	if !total.IsPositive() {
		return 0, false
	}
	overdue := a.Overdue30.Add(a.Overdue60).Add(a.Overdue90)
	return overdue.Div(total).InexactFloat64(), true
}

// RiskSignals are optional caller-supplied inputs that are not part of the
// statement itself.
type RiskSignals struct {
	ReceivablesAging *ReceivablesAging
	// TopCustomerShare is the largest customer's share of revenue in [0,1].
	TopCustomerShare *float64
}
