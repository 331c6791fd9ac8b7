package model_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
)

func nd(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

func validRaw() model.RawStatement {
	return model.RawStatement{
		Income: model.RawIncomeStatement{
			Revenue:           nd(54_000_000),
			CostOfGoodsSold:   nd(32_400_000),
			GrossProfit:       nd(21_600_000),
			OperatingExpenses: nd(12_960_000),
			NetIncome:         nd(8_640_000),
		},
		Balance: model.RawBalanceSheet{
			TotalAssets:        nd(125_000_000),
			CurrentAssets:      nd(45_000_000),
			TotalLiabilities:   nd(50_000_000),
			CurrentLiabilities: nd(24_000_000),
			Equity:             nd(75_000_000),
		},
	}
}

func TestNewStatement_Valid(t *testing.T) {
	stmt, warnings, err := model.NewStatement(validRaw())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, model.DefaultCurrency, stmt.Currency().Code())
	assert.True(t, stmt.Income().Revenue.Equal(decimal.NewFromInt(54_000_000)))
	assert.False(t, stmt.HasCashFlow())
	assert.Nil(t, stmt.CashFlow())
	assert.False(t, stmt.Balance().Cash.Valid)
}

func TestNewStatement_MissingRequiredFields(t *testing.T) {
	raw := validRaw()
	raw.Income.Revenue = decimal.NullDecimal{}
	raw.Balance.Equity = decimal.NullDecimal{}

	_, _, err := model.NewStatement(raw)
	require.Error(t, err)

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "income_statement.revenue", verr.Fields[0].Field)
	assert.Equal(t, "balance_sheet.equity", verr.Fields[1].Field)
	assert.Contains(t, err.Error(), "is required")
}

func TestNewStatement_NegativeValues(t *testing.T) {
	t.Run("net income may be negative", func(t *testing.T) {
		raw := validRaw()
		raw.Income.NetIncome = nd(-1_000_000)
		_, _, err := model.NewStatement(raw)
		assert.NoError(t, err)
	})

	t.Run("negative revenue is rejected", func(t *testing.T) {
		raw := validRaw()
		raw.Income.Revenue = nd(-5)
		_, _, err := model.NewStatement(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "income_statement.revenue: must not be negative")
	})

	t.Run("negative optional inventory is rejected", func(t *testing.T) {
		raw := validRaw()
		raw.Balance.Inventory = nd(-1)
		_, _, err := model.NewStatement(raw)
		assert.Error(t, err)
	})

	t.Run("cash flows are signed", func(t *testing.T) {
		raw := validRaw()
		raw.CashFlow = &model.RawCashFlow{Operating: nd(-200), Investing: nd(-500), Financing: nd(900)}
		stmt, _, err := model.NewStatement(raw)
		require.NoError(t, err)
		require.NotNil(t, stmt.CashFlow())
		assert.True(t, stmt.CashFlow().NetChange.Equal(decimal.NewFromInt(200)))
		assert.True(t, stmt.CashFlow().FreeCashFlow().Equal(decimal.NewFromInt(-700)))
	})
}

func TestNewStatement_InconsistentBalanceSheetWarns(t *testing.T) {
	raw := validRaw()
	raw.Balance.TotalAssets = nd(140_000_000)

	stmt, warnings, err := model.NewStatement(raw)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "inconsistent_statement")
	assert.True(t, stmt.Balance().TotalAssets.Equal(decimal.NewFromInt(140_000_000)))
}

func TestNewStatement_BalanceWithinTolerance(t *testing.T) {
	raw := validRaw()
	raw.Balance.TotalAssets = nd(126_000_000) // 0.8% off

	_, warnings, err := model.NewStatement(raw)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestNewStatement_GrossProfit(t *testing.T) {
	t.Run("derived when absent", func(t *testing.T) {
		raw := validRaw()
		raw.Income.GrossProfit = decimal.NullDecimal{}
		stmt, warnings, err := model.NewStatement(raw)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.True(t, stmt.Income().GrossProfit.Equal(decimal.NewFromInt(21_600_000)))
	})

	t.Run("mismatch is flagged but kept", func(t *testing.T) {
		raw := validRaw()
		raw.Income.GrossProfit = nd(25_000_000)
		stmt, warnings, err := model.NewStatement(raw)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "gross_profit")
		assert.True(t, stmt.Income().GrossProfit.Equal(decimal.NewFromInt(25_000_000)))
	})
}

func TestNewStatement_InvalidCurrency(t *testing.T) {
	raw := validRaw()
	raw.Currency = "rupees"
	_, _, err := model.NewStatement(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency")
}

func TestStatement_CashFlowIsCopied(t *testing.T) {
	raw := validRaw()
	raw.CashFlow = &model.RawCashFlow{Operating: nd(100)}
	stmt, _, err := model.NewStatement(raw)
	require.NoError(t, err)

	cf := stmt.CashFlow()
	cf.Operating = decimal.NewFromInt(-1)
	assert.True(t, stmt.CashFlow().Operating.Equal(decimal.NewFromInt(100)))
}

func TestNewStatement_OutOfRangeAmounts(t *testing.T) {
	huge := decimal.NewNullDecimal(decimal.RequireFromString("1e400"))
	negHuge := decimal.NewNullDecimal(decimal.RequireFromString("-1e400"))

	tests := []struct {
		name  string
		mut   func(*model.RawStatement)
		field string
	}{
		{"required amount", func(r *model.RawStatement) { r.Income.Revenue = huge }, "income_statement.revenue"},
		{"signed required amount", func(r *model.RawStatement) { r.Income.NetIncome = negHuge }, "income_statement.net_income"},
		{"optional amount", func(r *model.RawStatement) { r.Balance.Receivables = huge }, "balance_sheet.receivables"},
		{"cash flow line", func(r *model.RawStatement) {
			r.CashFlow = &model.RawCashFlow{Operating: nd(1_000), Investing: negHuge}
		}, "cash_flow.investing"},
		{"prior period", func(r *model.RawStatement) {
			r.Prior = &model.RawPriorPeriod{Revenue: huge}
		}, "previous_period.revenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mut(&raw)

			_, _, err := model.NewStatement(raw)
			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, "is out of range", verr.Fields[0].Reason)
		})
	}
}

func TestNewStatement_PriorPeriod(t *testing.T) {
	raw := validRaw()
	stmt, _, err := model.NewStatement(raw)
	require.NoError(t, err)
	assert.Nil(t, stmt.Prior())

	raw.Prior = &model.RawPriorPeriod{Revenue: nd(45_000_000), NetIncome: nd(-1_000_000)}
	stmt, _, err = model.NewStatement(raw)
	require.NoError(t, err)
	require.NotNil(t, stmt.Prior())
	assert.True(t, stmt.Prior().Revenue.Decimal.Equal(decimal.NewFromInt(45_000_000)))
	assert.True(t, stmt.Prior().NetIncome.Decimal.IsNegative())

	raw.Prior = &model.RawPriorPeriod{Revenue: nd(-1)}
	_, _, err = model.NewStatement(raw)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "previous_period.revenue", verr.Fields[0].Field)
}

func TestHistoricalSeries_OutOfRangeValue(t *testing.T) {
	h := model.HistoricalSeries{Revenue: []model.SeriesPoint{
		{PeriodIndex: 1, Value: decimal.NewFromInt(100)},
		{PeriodIndex: 2, Value: decimal.RequireFromString("1e400")},
		{PeriodIndex: 3, Value: decimal.NewFromInt(120)},
	}}

	err := h.Validate()
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "historical_data.revenue", verr.Fields[0].Field)
	assert.Contains(t, verr.Fields[0].Reason, "period 2 is out of range")
}
