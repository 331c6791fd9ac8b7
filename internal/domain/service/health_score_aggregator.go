package service

import (
	"fmt"
	"math"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// HealthWeights assigns each category its share of the overall score.
type HealthWeights map[valueobject.Category]float64

// DefaultHealthWeights returns the standard category weighting.
func DefaultHealthWeights() HealthWeights {
	return HealthWeights{
		valueobject.CategoryLiquidity:     0.25,
		valueobject.CategoryProfitability: 0.30,
		valueobject.CategorySolvency:      0.25,
		valueobject.CategoryEfficiency:    0.20,
	}
}

// Validate checks that every category has a non-negative weight and that
// the weights are not all zero.
func (w HealthWeights) Validate() error {
	var total float64
	for _, c := range valueobject.Categories() {
		v, ok := w[c]
		if !ok {
			return fmt.Errorf("health weight for %s is missing", c)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("health weight for %s must be a non-negative number", c)
		}
		total += v
	}
	if total <= 0 {
		return fmt.Errorf("health weights must not all be zero")
	}
	return nil
}

// ---------------------------------------------------------------------------
// HealthScoreAggregator – composite 0-100 score from benchmark ratings
// ---------------------------------------------------------------------------

// HealthScoreAggregator folds rated metrics into per-category sub-scores and
// a weighted overall score.
type HealthScoreAggregator struct {
	weights HealthWeights
}

// NewHealthScoreAggregator creates an aggregator. Invalid weights fall back
// to the defaults.
func NewHealthScoreAggregator(weights HealthWeights) *HealthScoreAggregator {
	if weights == nil || weights.Validate() != nil {
		weights = DefaultHealthWeights()
	}
	copied := make(HealthWeights, len(weights))
	for k, v := range weights {
		copied[k] = v
	}
	return &HealthScoreAggregator{weights: copied}
}

// Aggregate computes the health score. Categories without rated metrics are
// reported as nil and excluded; weights are renormalized over the rest.
func (a *HealthScoreAggregator) Aggregate(benchmarked []model.BenchmarkedMetric) model.HealthScore {
	sums := make(map[valueobject.Category]float64)
	counts := make(map[valueobject.Category]int)
	for _, bm := range benchmarked {
		if !bm.Rated() {
			continue
		}
		sums[bm.Category] += bm.Rating.Points()
		counts[bm.Category]++
	}

	components := make(map[valueobject.Category]*float64, len(valueobject.Categories()))
	var weighted, weightTotal float64
	for _, c := range valueobject.Categories() {
		n := counts[c]
		if n == 0 {
			components[c] = nil
			continue
		}
		sub := sums[c] / float64(n)
		components[c] = &sub

		w := a.weights[c]
		weighted += sub * w
		weightTotal += w
	}

	overall := 0.0
	if weightTotal > 0 {
		overall = weighted / weightTotal
	}
	overall = math.Max(0, math.Min(100, overall))

	return model.HealthScore{
		OverallScore: overall,
		Rating:       valueobject.HealthBandFromScore(overall),
		Components:   components,
	}
}
