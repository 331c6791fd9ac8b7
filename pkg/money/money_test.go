package money

import "testing"

func TestNewCurrency_Valid(t *testing.T) {
	tests := []string{"INR", "USD", "EUR"}
	for _, code := range tests {
		c, err := NewCurrency(code)
		if err != nil {
			t.Errorf("NewCurrency(%q) unexpected error: %v", code, err)
		}
		if c.Code() != code {
			t.Errorf("NewCurrency(%q).Code() = %q, want %q", code, c.Code(), code)
		}
	}
}

func TestNewCurrency_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"lowercase", "inr"},
		{"too short", "IN"},
		{"too long", "INRR"},
		{"digits", "IN1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCurrency(tt.code); err == nil {
				t.Errorf("NewCurrency(%q) expected error, got nil", tt.code)
			}
		})
	}
}

func TestMustCurrency_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCurrency with invalid code should panic")
		}
	}()
	MustCurrency("x")
}

func TestCurrency_IsZero(t *testing.T) {
	var c Currency
	if !c.IsZero() {
		t.Error("zero Currency should report IsZero")
	}
	if MustCurrency("INR").IsZero() {
		t.Error("INR should not report IsZero")
	}
}
