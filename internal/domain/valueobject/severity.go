package valueobject

import "fmt"

// Severity is an immutable value object grading a risk finding.
type Severity struct {
	value string
}

var (
	SeverityLow    = Severity{value: "low"}
	SeverityMedium = Severity{value: "medium"}
	SeverityHigh   = Severity{value: "high"}
)

// SeverityFromString reconstructs a Severity from its string representation.
func SeverityFromString(s string) (Severity, error) {
	switch s {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	default:
		return Severity{}, fmt.Errorf("invalid severity: %s", s)
	}
}

// String returns the string representation.
func (s Severity) String() string {
	return s.value
}

// Rank orders severities: high=3, medium=2, low=1, unset=0.
func (s Severity) Rank() int {
	switch s.value {
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	default:
		return 0
	}
}

// IsZero returns true if the Severity has not been set.
func (s Severity) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another Severity.
func (s Severity) Equal(other Severity) bool {
	return s.value == other.value
}
