package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// Metric names.
const (
	MetricCurrentRatio             = "current_ratio"
	MetricQuickRatio               = "quick_ratio"
	MetricCashRatio                = "cash_ratio"
	MetricWorkingCapital           = "working_capital"
	MetricOperatingCashFlowRatio   = "operating_cash_flow_ratio"
	MetricFreeCashFlow             = "free_cash_flow"
	MetricGrossMargin              = "gross_margin"
	MetricOperatingMargin          = "operating_margin"
	MetricNetMargin                = "net_margin"
	MetricROE                      = "roe"
	MetricROA                      = "roa"
	MetricDebtToEquity             = "debt_to_equity"
	MetricDebtRatio                = "debt_ratio"
	MetricEquityRatio              = "equity_ratio"
	MetricInterestCoverage         = "interest_coverage"
	MetricAssetTurnover            = "asset_turnover"
	MetricInventoryTurnover        = "inventory_turnover"
	MetricReceivablesTurnover      = "receivables_turnover"
	MetricDaysSalesOutstanding     = "days_sales_outstanding"
	MetricDaysInventoryOutstanding = "days_inventory_outstanding"
	MetricPayablesTurnover         = "payables_turnover"
	MetricDaysPayablesOutstanding  = "days_payables_outstanding"
	MetricCashFlowQuality          = "cash_flow_quality"
	MetricRevenueGrowth            = "revenue_growth"
	MetricNetProfitGrowth          = "net_profit_growth"
)

var daysInYear = decimal.NewFromInt(365)

// ---------------------------------------------------------------------------
// MetricsCalculator – domain service computing financial ratios
// ---------------------------------------------------------------------------

// MetricsCalculator derives liquidity, profitability, solvency and efficiency
// ratios from a validated statement. It holds no state and is safe for
// concurrent use.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new MetricsCalculator.
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// Calculate computes every metric in a fixed order. Division happens in
// decimal; a non-positive denominator produces an undefined metric.
func (c *MetricsCalculator) Calculate(stmt model.Statement) model.MetricSet {
	inc := stmt.Income()
	bs := stmt.Balance()
	cf := stmt.CashFlow()

	liquidity := valueobject.CategoryLiquidity
	profitability := valueobject.CategoryProfitability
	solvency := valueobject.CategorySolvency
	efficiency := valueobject.CategoryEfficiency

	metrics := []model.Metric{
		ratio(MetricCurrentRatio, liquidity, model.UnitRatio, bs.CurrentAssets, bs.CurrentLiabilities, "current_liabilities"),
		ratio(MetricQuickRatio, liquidity, model.UnitRatio, bs.CurrentAssets.Sub(bs.Inventory.Decimal), bs.CurrentLiabilities, "current_liabilities"),
		needs(bs.Cash, "cash", ratio(MetricCashRatio, liquidity, model.UnitRatio, bs.Cash.Decimal, bs.CurrentLiabilities, "current_liabilities")),
		amount(MetricWorkingCapital, liquidity, bs.CurrentAssets.Sub(bs.CurrentLiabilities)),

		ratio(MetricGrossMargin, profitability, model.UnitRatio, inc.GrossProfit, inc.Revenue, "revenue"),
		ratio(MetricOperatingMargin, profitability, model.UnitRatio, inc.OperatingIncome(), inc.Revenue, "revenue"),
		ratio(MetricNetMargin, profitability, model.UnitRatio, inc.NetIncome, inc.Revenue, "revenue"),
		ratio(MetricROE, profitability, model.UnitRatio, inc.NetIncome, bs.Equity, "equity"),
		ratio(MetricROA, profitability, model.UnitRatio, inc.NetIncome, bs.TotalAssets, "total_assets"),

		ratio(MetricDebtToEquity, solvency, model.UnitRatio, bs.TotalLiabilities, bs.Equity, "equity"),
		ratio(MetricDebtRatio, solvency, model.UnitRatio, bs.TotalLiabilities, bs.TotalAssets, "total_assets"),
		ratio(MetricEquityRatio, solvency, model.UnitRatio, bs.Equity, bs.TotalAssets, "total_assets"),
	}

	// Interest coverage is omitted, not undefined, when no interest figure exists.
	if inc.InterestExpense.Valid {
		metrics = append(metrics, ratio(MetricInterestCoverage, solvency, model.UnitTimes, inc.OperatingIncome(), inc.InterestExpense.Decimal, "interest_expense"))
	}

	metrics = append(metrics,
		ratio(MetricAssetTurnover, efficiency, model.UnitTimes, inc.Revenue, bs.TotalAssets, "total_assets"),
		needs(bs.Inventory, "inventory", ratio(MetricInventoryTurnover, efficiency, model.UnitTimes, inc.CostOfGoodsSold, bs.Inventory.Decimal, "inventory")),
		needs(bs.Receivables, "receivables", ratio(MetricReceivablesTurnover, efficiency, model.UnitTimes, inc.Revenue, bs.Receivables.Decimal, "receivables")),
		needs(bs.Receivables, "receivables", ratio(MetricDaysSalesOutstanding, efficiency, model.UnitDays, bs.Receivables.Decimal.Mul(daysInYear), inc.Revenue, "revenue")),
		needs(bs.Inventory, "inventory", ratio(MetricDaysInventoryOutstanding, efficiency, model.UnitDays, bs.Inventory.Decimal.Mul(daysInYear), inc.CostOfGoodsSold, "cost_of_goods_sold")),
		needs(bs.Payables, "payables", ratio(MetricPayablesTurnover, efficiency, model.UnitTimes, inc.CostOfGoodsSold, bs.Payables.Decimal, "payables")),
		needs(bs.Payables, "payables", ratio(MetricDaysPayablesOutstanding, efficiency, model.UnitDays, bs.Payables.Decimal.Mul(daysInYear), inc.CostOfGoodsSold, "cost_of_goods_sold")),
	)

	if cf != nil {
		metrics = append(metrics,
			ratio(MetricOperatingCashFlowRatio, liquidity, model.UnitRatio, cf.Operating, bs.CurrentLiabilities, "current_liabilities"),
			amount(MetricFreeCashFlow, liquidity, cf.FreeCashFlow()),
			ratio(MetricCashFlowQuality, liquidity, model.UnitTimes, cf.Operating, inc.NetIncome, "net_income"),
		)
	}

	// Growth needs the previous period; each metric needs its own line.
	if prior := stmt.Prior(); prior != nil {
		metrics = append(metrics,
			needs(prior.Revenue, "previous_period.revenue", growth(MetricRevenueGrowth, inc.Revenue, prior.Revenue.Decimal, "previous_period.revenue")),
			needs(prior.NetIncome, "previous_period.net_income", growth(MetricNetProfitGrowth, inc.NetIncome, prior.NetIncome.Decimal, "previous_period.net_income")),
		)
	}

	return model.NewMetricSet(metrics)
}

// ratio divides num by den, yielding an undefined metric when den <= 0.
func ratio(name string, category valueobject.Category, unit string, num, den decimal.Decimal, denName string) model.Metric {
	m := model.Metric{Name: name, Category: category, Unit: unit}
	if !den.IsPositive() {
		m.UndefinedReason = (&model.UndefinedMetricError{Metric: name, Reason: denName + " is not positive"}).Error()
		return m
	}
	return withValue(m, num.Div(den))
}

// amount wraps a currency figure as a metric.
func amount(name string, category valueobject.Category, v decimal.Decimal) model.Metric {
	return withValue(model.Metric{Name: name, Category: category, Unit: model.UnitCurrency}, v)
}

// growth is (current - previous) / |previous|, undefined when previous is zero.
func growth(name string, current, previous decimal.Decimal, prevName string) model.Metric {
	m := model.Metric{Name: name, Category: valueobject.CategoryProfitability, Unit: model.UnitRatio}
	if previous.IsZero() {
		m.UndefinedReason = (&model.UndefinedMetricError{Metric: name, Reason: prevName + " is zero"}).Error()
		return m
	}
	return withValue(m, current.Sub(previous).Div(previous.Abs()))
}

// withValue sets the metric value, leaving it undefined when v does not fit
// in a float64.
func withValue(m model.Metric, v decimal.Decimal) model.Metric {
	f := v.InexactFloat64()
	if math.IsInf(f, 0) {
		m.UndefinedReason = (&model.UndefinedMetricError{Metric: m.Name, Reason: "value out of range"}).Error()
		return m
	}
	m.Value = &f
	return m
}

// needs marks m undefined when the optional input it depends on was not supplied.
func needs(field decimal.NullDecimal, fieldName string, m model.Metric) model.Metric {
	if field.Valid {
		return m
	}
	m.Value = nil
	m.UndefinedReason = (&model.UndefinedMetricError{Metric: m.Name, Reason: fieldName + " not reported"}).Error()
	return m
}
