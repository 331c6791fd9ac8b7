package valueobject

// Band maps an inclusive lower bound to a label. Band tables are ordered by
// descending Min; the first band whose Min is <= x wins.
type Band[T any] struct {
	Min   float64
	Label T
}

// Classify walks an ordered band table and returns the matching label, or
// fallback when x is below every bound.
func Classify[T any](bands []Band[T], x float64, fallback T) T {
	for _, b := range bands {
		if x >= b.Min {
			return b.Label
		}
	}
	return fallback
}
