package service

import (
	"fmt"
	"math"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
)

// Forecast limits.
const (
	DefaultForecastPeriods = 12
	MaxForecastPeriods     = 60
	MinVolatility          = 0.05
	MaxVolatility          = 0.30

	ForecastMethodLinear = "linear_trend"
)

// ---------------------------------------------------------------------------
// ForecastEngine – linear trend projection with volatility bands
// ---------------------------------------------------------------------------

// ForecastEngine fits an ordinary least-squares line to a historical series
// and projects it forward with optimistic and pessimistic bands.
type ForecastEngine struct {
	defaultPeriods int
}

// NewForecastEngine creates an engine. A non-positive default uses
// DefaultForecastPeriods.
func NewForecastEngine(defaultPeriods int) *ForecastEngine {
	if defaultPeriods <= 0 {
		defaultPeriods = DefaultForecastPeriods
	}
	return &ForecastEngine{defaultPeriods: min(defaultPeriods, MaxForecastPeriods)}
}

// Forecast projects revenue and, when supplied, expenses and net cash flow.
// Fewer than MinHistoryPoints observations yields *model.InsufficientHistoryError;
// gaps or misaligned series yield *model.ValidationError.
func (e *ForecastEngine) Forecast(history model.HistoricalSeries, periods int) (model.Forecast, error) {
	if n := len(history.Revenue); n < model.MinHistoryPoints {
		return model.Forecast{}, &model.InsufficientHistoryError{
			Series:   "revenue",
			Got:      n,
			Required: model.MinHistoryPoints,
		}
	}
	if err := history.Validate(); err != nil {
		return model.Forecast{}, err
	}

	var warnings []string
	if periods <= 0 {
		periods = e.defaultPeriods
	}
	if periods > MaxForecastPeriods {
		warnings = append(warnings, fmt.Sprintf("forecast_periods_capped: requested %d, projecting %d", periods, MaxForecastPeriods))
		periods = MaxForecastPeriods
	}

	result := model.Forecast{
		Method:    ForecastMethodLinear,
		Frequency: history.Frequency,
		Periods:   periods,
		Revenue:   project(history.Revenue, periods),
		Warnings:  warnings,
	}

	if len(history.Expenses) > 0 {
		expenses := project(history.Expenses, periods)
		net := netCashFlow(result.Revenue, expenses)
		result.Expenses = &expenses
		result.NetCashFlow = &net
	}
	return result, nil
}

// project fits y = a + b*x over the series and extends it by periods points.
func project(points []model.SeriesPoint, periods int) model.ForecastSeries {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value.InexactFloat64()
	}

	intercept, slope := fitLine(values)
	v := volatility(values)

	last := points[len(points)-1].PeriodIndex
	out := model.ForecastSeries{
		VolatilityFactor: v,
		Points:           make([]model.ForecastPoint, 0, periods),
	}
	for i := 1; i <= periods; i++ {
		x := float64(len(values) - 1 + i)
		base := math.Max(0, intercept+slope*x)
		out.Points = append(out.Points, model.ForecastPoint{
			PeriodIndex: last + i,
			Base:        base,
			Optimistic:  base * (1 + v),
			Pessimistic: base * (1 - v),
		})
	}
	return out
}

// fitLine returns the least-squares intercept and slope with x = 0..n-1.
func fitLine(y []float64) (intercept, slope float64) {
	n := float64(len(y))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return sumY / n, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return intercept, slope
}

// volatility is the population coefficient of variation clamped to
// [MinVolatility, MaxVolatility]. A non-positive mean yields MaxVolatility.
func volatility(y []float64) float64 {
	var sum float64
	for _, v := range y {
		sum += v
	}
	mean := sum / float64(len(y))
	if mean <= 0 {
		return MaxVolatility
	}
	var sq float64
	for _, v := range y {
		sq += (v - mean) * (v - mean)
	}
	cv := math.Sqrt(sq/float64(len(y))) / mean
	return math.Max(MinVolatility, math.Min(MaxVolatility, cv))
}

// netCashFlow pairs the best revenue case with the best expense case and
// vice versa. Both series share period indices.
func netCashFlow(revenue, expenses model.ForecastSeries) model.ForecastSeries {
	out := model.ForecastSeries{
		VolatilityFactor: math.Max(revenue.VolatilityFactor, expenses.VolatilityFactor),
		Points:           make([]model.ForecastPoint, len(revenue.Points)),
	}
	for i, r := range revenue.Points {
		x := expenses.Points[i]
		out.Points[i] = model.ForecastPoint{
			PeriodIndex: r.PeriodIndex,
			Base:        r.Base - x.Base,
			Optimistic:  r.Optimistic - x.Pessimistic,
			Pessimistic: r.Pessimistic - x.Optimistic,
		}
	}
	return out
}
