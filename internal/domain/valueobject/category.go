package valueobject

import "fmt"

// Category is an immutable value object naming a ratio family.
type Category struct {
	value string
}

var (
	CategoryLiquidity     = Category{value: "liquidity"}
	CategoryProfitability = Category{value: "profitability"}
	CategorySolvency      = Category{value: "solvency"}
	CategoryEfficiency    = Category{value: "efficiency"}
)

// Categories lists the ratio families in presentation order.
func Categories() []Category {
	return []Category{CategoryLiquidity, CategoryProfitability, CategorySolvency, CategoryEfficiency}
}

// CategoryFromString reconstructs a Category from its string representation.
func CategoryFromString(s string) (Category, error) {
	switch s {
	case "liquidity":
		return CategoryLiquidity, nil
	case "profitability":
		return CategoryProfitability, nil
	case "solvency":
		return CategorySolvency, nil
	case "efficiency":
		return CategoryEfficiency, nil
	default:
		return Category{}, fmt.Errorf("invalid metric category: %s", s)
	}
}

// String returns the string representation.
func (c Category) String() string {
	return c.value
}

// IsZero returns true if the Category has not been set.
func (c Category) IsZero() bool {
	return c.value == ""
}

// Equal checks equality with another Category.
func (c Category) Equal(other Category) bool {
	return c.value == other.value
}
