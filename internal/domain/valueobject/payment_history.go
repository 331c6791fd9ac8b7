package valueobject

import (
	"fmt"
	"strings"
)

// PaymentHistory is a caller-supplied qualitative signal about how the
// business has serviced its obligations.
type PaymentHistory struct {
	value string
}

var (
	PaymentHistoryClean   = PaymentHistory{value: "clean"}
	PaymentHistoryLate    = PaymentHistory{value: "late"}
	PaymentHistoryDefault = PaymentHistory{value: "default"}
)

// PaymentHistoryFromString parses a payment history flag. The empty string
// yields the zero value, meaning "not supplied".
func PaymentHistoryFromString(s string) (PaymentHistory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PaymentHistory{}, nil
	case "clean":
		return PaymentHistoryClean, nil
	case "late":
		return PaymentHistoryLate, nil
	case "default":
		return PaymentHistoryDefault, nil
	default:
		return PaymentHistory{}, fmt.Errorf("invalid payment history: %s", s)
	}
}

// String returns the string representation.
func (p PaymentHistory) String() string {
	return p.value
}

// IsZero returns true if no payment history was supplied.
func (p PaymentHistory) IsZero() bool {
	return p.value == ""
}
