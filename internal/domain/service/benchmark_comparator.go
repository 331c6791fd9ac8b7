package service

import (
	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// Benchmark standing labels.
const (
	StandingAboveAverage = "above_average"
	StandingAverage      = "average"
	StandingBelowAverage = "below_average"
)

// lowerIsBetter lists metrics whose rating comparison is inverted.
var lowerIsBetter = map[string]bool{
	MetricDebtToEquity:             true,
	MetricDebtRatio:                true,
	MetricDaysSalesOutstanding:     true,
	MetricDaysInventoryOutstanding: true,
}

// rankingBands maps the share of metrics at or above benchmark to a quartile label.
var rankingBands = []valueobject.Band[string]{
	{Min: 0.75, Label: "top_quartile"},
	{Min: 0.50, Label: "above_median"},
	{Min: 0.25, Label: "below_median"},
}

// ---------------------------------------------------------------------------
// BenchmarkComparator – rates metrics against an industry reference table
// ---------------------------------------------------------------------------

// BenchmarkComparator grades metrics against an injected, read-only
// benchmark table. It never fails: unknown industries fall back to the
// table's default industry with a warning.
type BenchmarkComparator struct {
	table model.BenchmarkTable
}

// NewBenchmarkComparator creates a comparator over the given table.
func NewBenchmarkComparator(table model.BenchmarkTable) *BenchmarkComparator {
	return &BenchmarkComparator{table: table}
}

// Table returns the benchmark table in use.
func (c *BenchmarkComparator) Table() model.BenchmarkTable {
	return c.table
}

// ResolveIndustry returns the industry whose benchmarks apply and a warning
// when the requested code was unknown.
func (c *BenchmarkComparator) ResolveIndustry(industry string) (string, []string) {
	resolved, known := c.table.Resolve(industry)
	if known {
		return resolved, nil
	}
	warn := &model.UnknownIndustryError{Industry: industry, Fallback: resolved}
	return resolved, []string{warn.Error()}
}

// Rate grades a single metric for an industry.
func (c *BenchmarkComparator) Rate(metric model.Metric, industry string) (model.BenchmarkedMetric, []string) {
	resolved, warnings := c.ResolveIndustry(industry)
	return c.rateResolved(metric, resolved), warnings
}

// Compare grades every metric in the set. The unknown-industry warning is
// reported once.
func (c *BenchmarkComparator) Compare(set model.MetricSet, industry string) ([]model.BenchmarkedMetric, []string) {
	resolved, warnings := c.ResolveIndustry(industry)

	out := make([]model.BenchmarkedMetric, 0, set.Len())
	for _, m := range set.All() {
		out = append(out, c.rateResolved(m, resolved))
	}
	return out, warnings
}

func (c *BenchmarkComparator) rateResolved(metric model.Metric, industry string) model.BenchmarkedMetric {
	bm := model.BenchmarkedMetric{Metric: metric}

	benchmark, ok := c.table.Lookup(industry, metric.Category, metric.Name)
	if !ok {
		return bm
	}
	bm.BenchmarkValue = &benchmark

	value, defined := metric.Float()
	if !defined {
		return bm
	}
	bm.Rating = valueobject.RateAgainst(value, benchmark, lowerIsBetter[metric.Name])
	return bm
}

// Report builds the industry comparison summary from benchmarked metrics.
func (c *BenchmarkComparator) Report(industry string, benchmarked []model.BenchmarkedMetric) model.BenchmarkReport {
	report := model.BenchmarkReport{Industry: industry}

	atOrAbove := 0
	for _, bm := range benchmarked {
		if !bm.Rated() {
			continue
		}
		value, _ := bm.Float()
		benchmark := *bm.BenchmarkValue

		variance := (value - benchmark) / benchmark * 100
		if lowerIsBetter[bm.Name] {
			variance = -variance
		}

		status := standing(bm.Rating)
		switch status {
		case StandingAboveAverage:
			report.AboveAverageCount++
		case StandingBelowAverage:
			report.BelowAverageCount++
		}
		if bm.Rating.AtLeastGood() {
			atOrAbove++
		}

		report.Comparisons = append(report.Comparisons, model.BenchmarkComparison{
			Metric:         bm.Name,
			Category:       bm.Category,
			CompanyValue:   value,
			BenchmarkValue: benchmark,
			VariancePct:    variance,
			Rating:         bm.Rating,
			Status:         status,
		})
	}

	if len(report.Comparisons) == 0 {
		report.OverallRanking = "insufficient_data"
		return report
	}
	share := float64(atOrAbove) / float64(len(report.Comparisons))
	report.OverallRanking = valueobject.Classify(rankingBands, share, "bottom_quartile")
	return report
}

func standing(r valueobject.Rating) string {
	switch r {
	case valueobject.RatingExcellent:
		return StandingAboveAverage
	case valueobject.RatingGood:
		return StandingAverage
	default:
		return StandingBelowAverage
	}
}
