package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

func nd(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

func ptr[T any](v T) *T {
	return &v
}

// scenarioRaw is a healthy services-sector statement.
func scenarioRaw() model.RawStatement {
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

func scenarioStatement(t *testing.T) model.Statement {
	t.Helper()
	stmt, warnings, err := model.NewStatement(scenarioRaw())
	require.NoError(t, err)
	require.Empty(t, warnings)
	return stmt
}

func testTable(t *testing.T) model.BenchmarkTable {
	t.Helper()
	liq := valueobject.CategoryLiquidity
	prf := valueobject.CategoryProfitability
	sol := valueobject.CategorySolvency
	eff := valueobject.CategoryEfficiency

	var entries []model.BenchmarkEntry
	add := func(industry string, c valueobject.Category, metric string, v float64) {
		entries = append(entries, model.BenchmarkEntry{Industry: industry, Category: c, Metric: metric, Value: v})
	}

	add("services", liq, service.MetricCurrentRatio, 1.5)
	add("services", liq, service.MetricQuickRatio, 1.2)
	add("services", liq, service.MetricCashRatio, 0.2)
	add("services", prf, service.MetricGrossMargin, 0.40)
	add("services", prf, service.MetricOperatingMargin, 0.15)
	add("services", prf, service.MetricNetMargin, 0.15)
	add("services", prf, service.MetricROE, 0.15)
	add("services", prf, service.MetricROA, 0.05)
	add("services", sol, service.MetricDebtToEquity, 0.5)
	add("services", sol, service.MetricDebtRatio, 0.5)
	add("services", sol, service.MetricInterestCoverage, 3.0)
	add("services", eff, service.MetricAssetTurnover, 1.0)
	add("services", eff, service.MetricReceivablesTurnover, 10)

	add("manufacturing", liq, service.MetricCurrentRatio, 1.5)
	add("manufacturing", prf, service.MetricNetMargin, 0.08)
	add("manufacturing", sol, service.MetricDebtToEquity, 1.0)
	add("manufacturing", eff, service.MetricAssetTurnover, 1.0)

	table, err := model.NewBenchmarkTable(model.DefaultIndustry, entries)
	require.NoError(t, err)
	return table
}

func newOrchestrator(t *testing.T) *service.AnalysisOrchestrator {
	t.Helper()
	return service.NewAnalysisOrchestrator(
		service.NewMetricsCalculator(),
		service.NewBenchmarkComparator(testTable(t)),
		service.NewHealthScoreAggregator(service.DefaultHealthWeights()),
		service.NewRiskAssessor(service.DefaultRiskThresholds()),
		service.NewCreditScorer(service.DefaultCreditPolicy()),
		service.NewForecastEngine(service.DefaultForecastPeriods),
	)
}

func linearHistory(n int, start, step float64) *model.HistoricalSeries {
	h := &model.HistoricalSeries{Frequency: valueobject.FrequencyMonthly}
	for i := 0; i < n; i++ {
		h.Revenue = append(h.Revenue, model.SeriesPoint{
			PeriodIndex: i + 1,
			Value:       decimal.NewFromFloat(start + step*float64(i)),
		})
	}
	return h
}
