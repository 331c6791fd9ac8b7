package model

import "github.com/Kishanjee7/finhealth/internal/domain/valueobject"

// Metric units.
const (
	UnitRatio    = "ratio"
	UnitTimes    = "times"
	UnitDays     = "days"
	UnitCurrency = "currency"
)

// Metric is one computed financial indicator. Value is nil when the metric
// is undefined; UndefinedReason then explains why.
type Metric struct {
	Name            string
	Category        valueobject.Category
	Value           *float64
	Unit            string
	UndefinedReason string
}

// Defined reports whether the metric carries a value.
func (m Metric) Defined() bool {
	return m.Value != nil
}

// Float returns the value, or 0 and false when undefined.
func (m Metric) Float() (float64, bool) {
	if m.Value == nil {
		return 0, false
	}
	return *m.Value, true
}

// MetricSet is an ordered, read-only collection of metrics.
type MetricSet struct {
	metrics []Metric
	index   map[string]int
}

// NewMetricSet builds a set preserving the given order. Later duplicates of
// a name are ignored.
func NewMetricSet(metrics []Metric) MetricSet {
	set := MetricSet{
		metrics: make([]Metric, 0, len(metrics)),
		index:   make(map[string]int, len(metrics)),
	}
	for _, m := range metrics {
		if _, dup := set.index[m.Name]; dup {
			continue
		}
		set.index[m.Name] = len(set.metrics)
		set.metrics = append(set.metrics, m)
	}
	return set
}

// All returns a copy of the metrics in order.
func (s MetricSet) All() []Metric {
	out := make([]Metric, len(s.metrics))
	copy(out, s.metrics)
	return out
}

// Get looks up a metric by name.
func (s MetricSet) Get(name string) (Metric, bool) {
	i, ok := s.index[name]
	if !ok {
		return Metric{}, false
	}
	return s.metrics[i], true
}

// Value returns the value of a defined metric.
func (s MetricSet) Value(name string) (float64, bool) {
	m, ok := s.Get(name)
	if !ok {
		return 0, false
	}
	return m.Float()
}

// ByCategory returns the metrics of one category in order.
func (s MetricSet) ByCategory(c valueobject.Category) []Metric {
	var out []Metric
	for _, m := range s.metrics {
		if m.Category.Equal(c) {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of metrics.
func (s MetricSet) Len() int {
	return len(s.metrics)
}

// BenchmarkedMetric pairs a metric with its industry reference and rating.
// BenchmarkValue is nil and Rating is zero when the metric is undefined or
// has no benchmark; such metrics are excluded from health scoring.
type BenchmarkedMetric struct {
	Metric
	BenchmarkValue *float64
	Rating         valueobject.Rating
}

// Rated reports whether the metric received a rating.
func (b BenchmarkedMetric) Rated() bool {
	return !b.Rating.IsZero()
}

// FindBenchmarked returns the benchmarked metric with the given name.
func FindBenchmarked(items []BenchmarkedMetric, name string) (BenchmarkedMetric, bool) {
	for _, b := range items {
		if b.Name == name {
			return b, true
		}
	}
	return BenchmarkedMetric{}, false
}
