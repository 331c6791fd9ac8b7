package valueobject

import "fmt"

// RiskCategory classifies a risk finding.
type RiskCategory struct {
	value string
}

var (
	RiskCategoryLiquidity     = RiskCategory{value: "liquidity"}
	RiskCategorySolvency      = RiskCategory{value: "solvency"}
	RiskCategoryProfitability = RiskCategory{value: "profitability"}
	RiskCategoryCashFlow      = RiskCategory{value: "cash_flow"}
	RiskCategoryCredit        = RiskCategory{value: "credit"}
	RiskCategoryOperational   = RiskCategory{value: "operational"}
)

// RiskCategoryFromString reconstructs a RiskCategory from its string representation.
func RiskCategoryFromString(s string) (RiskCategory, error) {
	switch s {
	case "liquidity":
		return RiskCategoryLiquidity, nil
	case "solvency":
		return RiskCategorySolvency, nil
	case "profitability":
		return RiskCategoryProfitability, nil
	case "cash_flow":
		return RiskCategoryCashFlow, nil
	case "credit":
		return RiskCategoryCredit, nil
	case "operational":
		return RiskCategoryOperational, nil
	default:
		return RiskCategory{}, fmt.Errorf("invalid risk category: %s", s)
	}
}

// String returns the string representation.
func (c RiskCategory) String() string {
	return c.value
}

// IsZero returns true if the RiskCategory has not been set.
func (c RiskCategory) IsZero() bool {
	return c.value == ""
}
