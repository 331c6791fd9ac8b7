package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

func TestRateAgainst_HigherIsBetter(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		benchmark float64
		expected  valueobject.Rating
	}{
		{name: "well above", value: 2.0, benchmark: 1.5, expected: valueobject.RatingExcellent},
		{name: "exactly 1.2x", value: 1.2, benchmark: 1.0, expected: valueobject.RatingExcellent},
		{name: "at benchmark", value: 0.4, benchmark: 0.4, expected: valueobject.RatingGood},
		{name: "exactly 0.8x", value: 0.8, benchmark: 1.0, expected: valueobject.RatingFair},
		{name: "below 0.8x", value: 0.79, benchmark: 1.0, expected: valueobject.RatingPoor},
		{name: "zero value", value: 0, benchmark: 0.2, expected: valueobject.RatingPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, valueobject.RateAgainst(tt.value, tt.benchmark, false))
		})
	}
}

func TestRateAgainst_LowerIsBetter(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		benchmark float64
		expected  valueobject.Rating
	}{
		{name: "far below benchmark", value: 0.2, benchmark: 0.5, expected: valueobject.RatingExcellent},
		{name: "at benchmark", value: 0.5, benchmark: 0.5, expected: valueobject.RatingGood},
		{name: "slightly above", value: 0.6, benchmark: 0.5, expected: valueobject.RatingFair},
		{name: "well above", value: 0.667, benchmark: 0.5, expected: valueobject.RatingPoor},
		{name: "no debt", value: 0, benchmark: 1.0, expected: valueobject.RatingExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, valueobject.RateAgainst(tt.value, tt.benchmark, true))
		})
	}
}

func TestRatingPoints(t *testing.T) {
	assert.Equal(t, 95.0, valueobject.RatingExcellent.Points())
	assert.Equal(t, 78.0, valueobject.RatingGood.Points())
	assert.Equal(t, 55.0, valueobject.RatingFair.Points())
	assert.Equal(t, 30.0, valueobject.RatingPoor.Points())
	assert.Equal(t, 0.0, valueobject.Rating{}.Points())
}

func TestHealthBandFromScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected valueobject.HealthBand
	}{
		{score: 100, expected: valueobject.HealthBandExcellent},
		{score: 80, expected: valueobject.HealthBandExcellent},
		{score: 79.99, expected: valueobject.HealthBandGood},
		{score: 60, expected: valueobject.HealthBandGood},
		{score: 40, expected: valueobject.HealthBandFair},
		{score: 39.9, expected: valueobject.HealthBandPoor},
		{score: 0, expected: valueobject.HealthBandPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, valueobject.HealthBandFromScore(tt.score), "score %v", tt.score)
	}
}

func TestCreditRatingFromScore(t *testing.T) {
	tests := []struct {
		score    int
		expected valueobject.CreditRating
	}{
		{score: 900, expected: valueobject.CreditRatingA},
		{score: 750, expected: valueobject.CreditRatingA},
		{score: 749, expected: valueobject.CreditRatingB},
		{score: 650, expected: valueobject.CreditRatingB},
		{score: 550, expected: valueobject.CreditRatingC},
		{score: 549, expected: valueobject.CreditRatingD},
		{score: 300, expected: valueobject.CreditRatingD},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, valueobject.CreditRatingFromScore(tt.score), "score %d", tt.score)
	}
}

func TestSeverityRank(t *testing.T) {
	assert.Greater(t, valueobject.SeverityHigh.Rank(), valueobject.SeverityMedium.Rank())
	assert.Greater(t, valueobject.SeverityMedium.Rank(), valueobject.SeverityLow.Rank())
	assert.Equal(t, 0, valueobject.Severity{}.Rank())
}

func TestFromStringRoundTrips(t *testing.T) {
	for _, c := range valueobject.Categories() {
		got, err := valueobject.CategoryFromString(c.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(c))
	}

	_, err := valueobject.CategoryFromString("growth")
	assert.Error(t, err)

	_, err = valueobject.RatingFromString("stellar")
	assert.Error(t, err)

	_, err = valueobject.SeverityFromString("critical")
	assert.Error(t, err)
}

func TestLanguageFromString(t *testing.T) {
	lang, ok := valueobject.LanguageFromString("HI")
	assert.True(t, ok)
	assert.Equal(t, valueobject.LanguageHindi, lang)

	lang, ok = valueobject.LanguageFromString("")
	assert.True(t, ok)
	assert.Equal(t, valueobject.LanguageEnglish, lang)

	lang, ok = valueobject.LanguageFromString("fr")
	assert.False(t, ok)
	assert.Equal(t, valueobject.LanguageEnglish, lang)
}

func TestPaymentHistoryFromString(t *testing.T) {
	p, err := valueobject.PaymentHistoryFromString("")
	require.NoError(t, err)
	assert.True(t, p.IsZero())

	p, err = valueobject.PaymentHistoryFromString(" Late ")
	require.NoError(t, err)
	assert.Equal(t, valueobject.PaymentHistoryLate, p)

	_, err = valueobject.PaymentHistoryFromString("sometimes")
	assert.Error(t, err)
}
