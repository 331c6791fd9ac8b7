package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// DefaultIndustry is the benchmark set used when an industry is unknown.
const DefaultIndustry = "services"

// BenchmarkEntry is one row of the reference dataset.
type BenchmarkEntry struct {
	Industry string
	Category valueobject.Category
	Metric   string
	Value    float64
}

// BenchmarkTable maps industry -> category -> metric -> benchmark value. It
// is built once and never mutated; every accessor returns copies.
type BenchmarkTable struct {
	defaultIndustry string
	data            map[string]map[valueobject.Category]map[string]float64
}

// NewBenchmarkTable validates entries and builds an immutable table. The
// default industry must be present.
func NewBenchmarkTable(defaultIndustry string, entries []BenchmarkEntry) (BenchmarkTable, error) {
	defaultIndustry = normalizeIndustry(defaultIndustry)
	if defaultIndustry == "" {
		return BenchmarkTable{}, errors.New("default industry is required")
	}

	data := make(map[string]map[valueobject.Category]map[string]float64)
	for _, e := range entries {
		industry := normalizeIndustry(e.Industry)
		switch {
		case industry == "":
			return BenchmarkTable{}, errors.New("benchmark entry has empty industry")
		case e.Category.IsZero():
			return BenchmarkTable{}, fmt.Errorf("benchmark %s/%s has no category", industry, e.Metric)
		case e.Metric == "":
			return BenchmarkTable{}, fmt.Errorf("benchmark entry for %s has empty metric", industry)
		case e.Value <= 0:
			return BenchmarkTable{}, fmt.Errorf("benchmark %s/%s must be positive, got %v", industry, e.Metric, e.Value)
		}

		byCategory, ok := data[industry]
		if !ok {
			byCategory = make(map[valueobject.Category]map[string]float64)
			data[industry] = byCategory
		}
		metrics, ok := byCategory[e.Category]
		if !ok {
			metrics = make(map[string]float64)
			byCategory[e.Category] = metrics
		}
		metrics[e.Metric] = e.Value
	}

	if _, ok := data[defaultIndustry]; !ok {
		return BenchmarkTable{}, fmt.Errorf("default industry %q has no benchmarks", defaultIndustry)
	}

	return BenchmarkTable{defaultIndustry: defaultIndustry, data: data}, nil
}

// DefaultIndustry returns the fallback industry code.
func (t BenchmarkTable) DefaultIndustry() string {
	return t.defaultIndustry
}

// Resolve normalizes an industry code and reports whether the table knows
// it. Unknown codes resolve to the default industry.
func (t BenchmarkTable) Resolve(industry string) (resolved string, known bool) {
	code := normalizeIndustry(industry)
	if _, ok := t.data[code]; ok {
		return code, true
	}
	return t.defaultIndustry, false
}

// Lookup returns the benchmark for a metric within an already resolved industry.
func (t BenchmarkTable) Lookup(industry string, category valueobject.Category, metric string) (float64, bool) {
	v, ok := t.data[industry][category][metric]
	return v, ok
}

// Industries lists known industry codes in sorted order.
func (t BenchmarkTable) Industries() []string {
	out := make([]string, 0, len(t.data))
	for k := range t.data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Entries flattens the table in a deterministic order.
func (t BenchmarkTable) Entries() []BenchmarkEntry {
	var out []BenchmarkEntry
	for _, industry := range t.Industries() {
		for _, c := range valueobject.Categories() {
			metrics := t.data[industry][c]
			names := make([]string, 0, len(metrics))
			for name := range metrics {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				out = append(out, BenchmarkEntry{Industry: industry, Category: c, Metric: name, Value: metrics[name]})
			}
		}
	}
	return out
}

func normalizeIndustry(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
