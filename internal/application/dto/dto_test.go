package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

type stubCatalog map[string]string

func (c stubCatalog) Label(_ valueobject.Language, key string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return key
}

func TestAnalysisRequest_Decode(t *testing.T) {
	body := `{
		"financial_data": {
			"income_statement": {"revenue": 1000, "cost_of_goods_sold": 600, "net_income": null},
			"balance_sheet": {"total_assets": "5000.50", "equity": 2000},
			"cash_flow": {"operating": -150},
			"previous_period": {"revenue": 800}
		},
		"industry": "retail",
		"historical_data": {"revenue": [{"period": 1, "value": 10}, {"period": 2, "value": 12}]},
		"credit_signals": {"payment_history": "late", "years_in_operation": 4}
	}`

	var req dto.AnalysisRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	in, err := req.ToModel()
	require.NoError(t, err)

	assert.True(t, in.Statement.Income.Revenue.Valid)
	assert.False(t, in.Statement.Income.NetIncome.Valid)
	assert.False(t, in.Statement.Income.InterestExpense.Valid)
	assert.True(t, in.Statement.Balance.TotalAssets.Decimal.Equal(decimal.RequireFromString("5000.5")))
	require.NotNil(t, in.Statement.CashFlow)
	assert.True(t, in.Statement.CashFlow.Operating.Decimal.IsNegative())
	require.NotNil(t, in.Statement.Prior)
	assert.True(t, in.Statement.Prior.Revenue.Decimal.Equal(decimal.NewFromInt(800)))
	assert.False(t, in.Statement.Prior.NetIncome.Valid)

	require.NotNil(t, in.History)
	assert.Equal(t, valueobject.FrequencyMonthly, in.History.Frequency)
	assert.Len(t, in.History.Revenue, 2)
	assert.Nil(t, in.History.Expenses)

	assert.Equal(t, valueobject.PaymentHistoryLate, in.CreditSignals.PaymentHistory)
	require.NotNil(t, in.CreditSignals.YearsInOperation)
	assert.Equal(t, 4, *in.CreditSignals.YearsInOperation)
	assert.Equal(t, "retail", in.Industry)
}

func TestAnalysisRequest_ToModel_Validation(t *testing.T) {
	years := -1
	share := 1.2
	req := dto.AnalysisRequest{
		HistoricalData: &dto.HistoricalData{Frequency: "weekly"},
		CreditSignals:  &dto.CreditSignals{PaymentHistory: "often", YearsInOperation: &years},
		RiskSignals: &dto.RiskSignals{
			TopCustomerShare: &share,
			ReceivablesAging: &dto.ReceivablesAging{
				Current:   decimal.NewFromInt(10),
				Overdue60: decimal.NewFromInt(-5),
				Overdue90: decimal.RequireFromString("1e400"),
			},
		},
	}

	_, err := req.ToModel()

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"historical_data.frequency",
		"credit_signals.payment_history",
		"credit_signals.years_in_operation",
		"risk_signals.top_customer_share",
		"risk_signals.receivables_aging.overdue_31_60",
		"risk_signals.receivables_aging.overdue_over_60",
	}, fields)
}

func TestForecastRequest_ToModel(t *testing.T) {
	t.Run("missing history", func(t *testing.T) {
		_, err := dto.ForecastRequest{}.ToModel()

		var verr *model.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "historical_data", verr.Fields[0].Field)
	})

	t.Run("quarterly history", func(t *testing.T) {
		h, err := dto.ForecastRequest{HistoricalData: &dto.HistoricalData{
			Frequency: "quarterly",
			Revenue:   []dto.SeriesPoint{{Period: 1, Value: decimal.NewFromInt(5)}},
			Expenses:  []dto.SeriesPoint{{Period: 1, Value: decimal.NewFromInt(3)}},
		}}.ToModel()
		require.NoError(t, err)
		assert.Equal(t, valueobject.FrequencyQuarterly, h.Frequency)
		assert.Len(t, h.Expenses, 1)
	})
}

func TestPresenter_Labels(t *testing.T) {
	catalog := stubCatalog{
		"band.Good":        "अच्छा",
		"severity.high":    "उच्च",
		"factor.liquidity": "तरलता",
	}
	p := dto.NewPresenter(catalog, valueobject.LanguageHindi)

	score := 70.0
	health := p.HealthScore(model.HealthScore{
		OverallScore: 66.915,
		Rating:       valueobject.HealthBandGood,
		Components:   map[valueobject.Category]*float64{valueobject.CategoryLiquidity: &score, valueobject.CategoryEfficiency: nil},
	})
	assert.Equal(t, "Good", health.Rating)
	assert.Equal(t, "अच्छा", health.RatingLabel)
	assert.InDelta(t, 66.92, health.OverallScore, 0.011)
	assert.Nil(t, health.Components["efficiency"])
	require.NotNil(t, health.Components["liquidity"])
	assert.Equal(t, 70.0, *health.Components["liquidity"])

	risks := p.RiskFindings(model.RiskProfile{Findings: []model.RiskFinding{{
		ID:       "LIQ002",
		Category: valueobject.RiskCategoryLiquidity,
		Severity: valueobject.SeverityHigh,
	}}})
	require.Len(t, risks, 1)
	assert.Equal(t, "उच्च", risks[0].SeverityLabel)
	assert.Equal(t, []string{}, risks[0].Mitigation)

	credit := p.CreditScore(model.CreditScore{
		Score:   701,
		Rating:  valueobject.CreditRatingB,
		Factors: []model.CreditFactor{{Name: "liquidity", Score: 95, Weight: 0.25}},
	})
	assert.Equal(t, "तरलता", credit.Factors[0].Label)
	assert.Equal(t, "B", credit.Rating)
	assert.Equal(t, []string{}, credit.Strengths)
}

func TestPresenter_NilCatalogUsesKeys(t *testing.T) {
	p := dto.NewPresenter(nil, valueobject.LanguageEnglish)

	health := p.HealthScore(model.HealthScore{Rating: valueobject.HealthBandPoor})
	assert.Equal(t, "band.Poor", health.RatingLabel)

	resp := p.FullAnalysis(model.AnalysisResult{Language: valueobject.LanguageEnglish},
		time.Date(2026, 1, 1, 5, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), resp.GeneratedAt)
	assert.Equal(t, []string{}, resp.Warnings)
	assert.Equal(t, []dto.PartialResult{}, resp.Partial)
	assert.Nil(t, resp.Forecast)
}

func TestForecast_RoundsValues(t *testing.T) {
	out := dto.Forecast(model.Forecast{
		Method:  "linear_trend",
		Periods: 1,
		Revenue: model.ForecastSeries{
			VolatilityFactor: 0.05,
			Points:           []model.ForecastPoint{{PeriodIndex: 7, Base: 100.456, Optimistic: 105.4788, Pessimistic: 95.4332}},
		},
	})

	assert.Equal(t, "monthly", out.Frequency)
	require.Len(t, out.Revenue.Points, 1)
	assert.Equal(t, dto.ForecastPoint{Period: 7, Base: 100.46, Optimistic: 105.48, Pessimistic: 95.43}, out.Revenue.Points[0])
	assert.Nil(t, out.Expenses)
}

func TestIndustries_Sorted(t *testing.T) {
	out := dto.Industries([]string{"retail", "agriculture", "services"}, "services")
	assert.Equal(t, []string{"agriculture", "retail", "services"}, out.Industries)
	assert.Equal(t, "services", out.DefaultIndustry)
}
