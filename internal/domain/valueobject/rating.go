package valueobject

import "fmt"

// Rating is the qualitative grade of a metric against its industry benchmark.
type Rating struct {
	value string
}

var (
	RatingExcellent = Rating{value: "excellent"}
	RatingGood      = Rating{value: "good"}
	RatingFair      = Rating{value: "fair"}
	RatingPoor      = Rating{value: "poor"}
)

// RatingThresholds is the benchmark multiplier table shared by every consumer
// that grades a metric. A higher-is-better metric earns the label when
// value >= Min*benchmark.
var RatingThresholds = []Band[Rating]{
	{Min: 1.2, Label: RatingExcellent},
	{Min: 1.0, Label: RatingGood},
	{Min: 0.8, Label: RatingFair},
}

// RatingPoints maps each rating to the numeric band used by health scoring.
var RatingPoints = map[Rating]float64{
	RatingExcellent: 95,
	RatingGood:      78,
	RatingFair:      55,
	RatingPoor:      30,
}

// RateAgainst grades value relative to a positive benchmark. For
// lower-is-better metrics the comparison is inverted: the label is earned when
// value*Min <= benchmark.
func RateAgainst(value, benchmark float64, lowerIsBetter bool) Rating {
	for _, t := range RatingThresholds {
		if lowerIsBetter {
			if value*t.Min <= benchmark {
				return t.Label
			}
			continue
		}
		if value >= t.Min*benchmark {
			return t.Label
		}
	}
	return RatingPoor
}

// RatingFromString reconstructs a Rating from its string representation.
func RatingFromString(s string) (Rating, error) {
	switch s {
	case "excellent":
		return RatingExcellent, nil
	case "good":
		return RatingGood, nil
	case "fair":
		return RatingFair, nil
	case "poor":
		return RatingPoor, nil
	default:
		return Rating{}, fmt.Errorf("invalid rating: %s", s)
	}
}

// String returns the string representation.
func (r Rating) String() string {
	return r.value
}

// Points returns the health-score band for this rating, 0 when unset.
func (r Rating) Points() float64 {
	return RatingPoints[r]
}

// AtLeastGood reports whether the metric meets or beats its benchmark.
func (r Rating) AtLeastGood() bool {
	return r == RatingExcellent || r == RatingGood
}

// IsZero returns true if the Rating has not been set.
func (r Rating) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another Rating.
func (r Rating) Equal(other Rating) bool {
	return r.value == other.value
}
