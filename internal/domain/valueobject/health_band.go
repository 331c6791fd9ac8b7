package valueobject

import "fmt"

// HealthBand is the qualitative band of a composite health score.
type HealthBand struct {
	value string
}

var (
	HealthBandExcellent = HealthBand{value: "Excellent"}
	HealthBandGood      = HealthBand{value: "Good"}
	HealthBandFair      = HealthBand{value: "Fair"}
	HealthBandPoor      = HealthBand{value: "Poor"}
)

// HealthBands orders the overall-score cut-offs from highest to lowest.
var HealthBands = []Band[HealthBand]{
	{Min: 80, Label: HealthBandExcellent},
	{Min: 60, Label: HealthBandGood},
	{Min: 40, Label: HealthBandFair},
}

// HealthBandFromScore derives the band for a 0-100 score.
func HealthBandFromScore(score float64) HealthBand {
	return Classify(HealthBands, score, HealthBandPoor)
}

// HealthBandFromString reconstructs a HealthBand from its string representation.
func HealthBandFromString(s string) (HealthBand, error) {
	switch s {
	case "Excellent":
		return HealthBandExcellent, nil
	case "Good":
		return HealthBandGood, nil
	case "Fair":
		return HealthBandFair, nil
	case "Poor":
		return HealthBandPoor, nil
	default:
		return HealthBand{}, fmt.Errorf("invalid health band: %s", s)
	}
}

// String returns the string representation.
func (b HealthBand) String() string {
	return b.value
}

// IsZero returns true if the HealthBand has not been set.
func (b HealthBand) IsZero() bool {
	return b.value == ""
}

// Equal checks equality with another HealthBand.
func (b HealthBand) Equal(other HealthBand) bool {
	return b.value == other.value
}
