package model

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

// FieldError describes one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports a malformed or incomplete statement. It is fatal:
// no analysis stage runs on input that fails validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a field failure.
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// OrNil returns e when at least one field failed.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// UndefinedMetricError explains why a ratio could not be computed. It never
// aborts a call; its text becomes the metric's undefined reason.
type UndefinedMetricError struct {
	Metric string
	Reason string
}

func (e *UndefinedMetricError) Error() string {
	return fmt.Sprintf("undefined_metric: %s: %s", e.Metric, e.Reason)
}

// UnknownIndustryError records a benchmark lookup that fell back to the
// default industry.
type UnknownIndustryError struct {
	Industry string
	Fallback string
}

func (e *UnknownIndustryError) Error() string {
	return fmt.Sprintf("unknown_industry: %q not in benchmark table, using %q", e.Industry, e.Fallback)
}

// InsufficientHistoryError is returned when a series is too short to fit a trend.
type InsufficientHistoryError struct {
	Series   string
	Got      int
	Required int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient_history: %s has %d points, at least %d required", e.Series, e.Got, e.Required)
}
