package valueobject

import "strings"

// Language selects the label catalog used for presentation fields.
type Language struct {
	value string
}

var (
	LanguageEnglish = Language{value: "en"}
	LanguageHindi   = Language{value: "hi"}
)

// LanguageFromString resolves a language code. Unknown codes resolve to
// English and ok is false; the empty string is English with ok true.
func LanguageFromString(s string) (lang Language, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en":
		return LanguageEnglish, true
	case "hi":
		return LanguageHindi, true
	default:
		return LanguageEnglish, false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return l.value
}

// IsZero returns true if the Language has not been set.
func (l Language) IsZero() bool {
	return l.value == ""
}
