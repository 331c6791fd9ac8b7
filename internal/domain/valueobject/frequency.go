package valueobject

import (
	"fmt"
	"strings"
)

// Frequency is the spacing of a historical or projected series.
type Frequency struct {
	value string
}

var (
	FrequencyMonthly   = Frequency{value: "monthly"}
	FrequencyQuarterly = Frequency{value: "quarterly"}
)

// FrequencyFromString parses a series frequency; empty means monthly.
func FrequencyFromString(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly":
		return FrequencyMonthly, nil
	case "quarterly":
		return FrequencyQuarterly, nil
	default:
		return Frequency{}, fmt.Errorf("invalid series frequency: %s", s)
	}
}

// String returns the string representation.
func (f Frequency) String() string {
	return f.value
}

// IsZero returns true if the Frequency has not been set.
func (f Frequency) IsZero() bool {
	return f.value == ""
}
