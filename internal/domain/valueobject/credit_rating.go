package valueobject

import "fmt"

// CreditRating is the letter grade attached to a 300-900 credit score.
type CreditRating struct {
	value string
}

var (
	CreditRatingA = CreditRating{value: "A"}
	CreditRatingB = CreditRating{value: "B"}
	CreditRatingC = CreditRating{value: "C"}
	CreditRatingD = CreditRating{value: "D"}
)

// CreditRatingBands orders the credit score cut-offs from highest to lowest.
var CreditRatingBands = []Band[CreditRating]{
	{Min: 750, Label: CreditRatingA},
	{Min: 650, Label: CreditRatingB},
	{Min: 550, Label: CreditRatingC},
}

// CreditRatingFromScore derives the letter grade for a credit score.
func CreditRatingFromScore(score int) CreditRating {
	return Classify(CreditRatingBands, float64(score), CreditRatingD)
}

// CreditRatingFromString reconstructs a CreditRating from its string representation.
func CreditRatingFromString(s string) (CreditRating, error) {
	switch s {
	case "A":
		return CreditRatingA, nil
	case "B":
		return CreditRatingB, nil
	case "C":
		return CreditRatingC, nil
	case "D":
		return CreditRatingD, nil
	default:
		return CreditRating{}, fmt.Errorf("invalid credit rating: %s", s)
	}
}

// String returns the string representation.
func (r CreditRating) String() string {
	return r.value
}

// IsZero returns true if the CreditRating has not been set.
func (r CreditRating) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another CreditRating.
func (r CreditRating) Equal(other CreditRating) bool {
	return r.value == other.value
}
