package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// MinHistoryPoints is the shortest series a trend may be fitted to.
const MinHistoryPoints = 3

// SeriesPoint is one historical observation.
type SeriesPoint struct {
	PeriodIndex int
	Value       decimal.Decimal
}

// HistoricalSeries is a gap-free, monotonically indexed history of revenue
// and, optionally, expenses.
type HistoricalSeries struct {
	Frequency valueobject.Frequency
	Revenue   []SeriesPoint
	Expenses  []SeriesPoint
}

// Validate checks ordering, gaps and alignment. Shortness is not checked
// here; the forecast engine reports it as InsufficientHistoryError.
func (h HistoricalSeries) Validate() error {
	verr := &ValidationError{}
	checkSeries(verr, "historical_data.revenue", h.Revenue)
	if len(h.Expenses) > 0 {
		checkSeries(verr, "historical_data.expenses", h.Expenses)
		if len(h.Expenses) != len(h.Revenue) {
			verr.Add("historical_data.expenses", "must have the same number of periods as revenue")
		} else if len(h.Revenue) > 0 && h.Expenses[0].PeriodIndex != h.Revenue[0].PeriodIndex {
			verr.Add("historical_data.expenses", "must start at the same period as revenue")
		}
	}
	return verr.OrNil()
}

func checkSeries(verr *ValidationError, field string, points []SeriesPoint) {
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].PeriodIndex, points[i].PeriodIndex
		if cur != prev+1 {
			verr.Add(field, fmt.Sprintf("period %d follows %d; series must be consecutive with no gaps", cur, prev))
			return
		}
	}
	for _, p := range points {
		if !IsFinite(p.Value) {
			verr.Add(field, fmt.Sprintf("period %d is out of range", p.PeriodIndex))
			return
		}
		if p.Value.IsNegative() {
			verr.Add(field, fmt.Sprintf("period %d must not be negative", p.PeriodIndex))
			return
		}
	}
}

// ForecastPoint is one projected period.
type ForecastPoint struct {
	PeriodIndex int
	Base        float64
	Optimistic  float64
	Pessimistic float64
}

// ForecastSeries is an ordered sequence of projected periods.
type ForecastSeries struct {
	VolatilityFactor float64
	Points           []ForecastPoint
}

// Forecast groups the projected series for one request.
type Forecast struct {
	Method      string
	Frequency   valueobject.Frequency
	Periods     int
	Revenue     ForecastSeries
	Expenses    *ForecastSeries
	NetCashFlow *ForecastSeries
	Warnings    []string
}
