package dto

import (
	"math"
	"sort"
	"time"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/port"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// FullAnalysisResponse is the output DTO of a full analysis.
type FullAnalysisResponse struct {
	GeneratedAt        time.Time               `json:"generated_at"`
	Industry           string                  `json:"industry"`
	Language           string                  `json:"language"`
	Currency           string                  `json:"currency"`
	Metrics            []MetricResponse        `json:"metrics"`
	BenchmarkedMetrics []BenchmarkedMetric     `json:"benchmarked_metrics"`
	Benchmark          BenchmarkReport         `json:"benchmark"`
	HealthScore        HealthScoreResponse     `json:"health_score"`
	Risks              []RiskFindingResponse   `json:"risks"`
	RiskSummary        RiskSummary             `json:"risk_summary"`
	CreditScore        CreditScoreResponse     `json:"credit_score"`
	Forecast           *ForecastResponseSeries `json:"forecast"`
	Partial            []PartialResult         `json:"partial"`
	Warnings           []string                `json:"warnings"`
}

// MetricsResponse is the output DTO of the metrics-only use case.
type MetricsResponse struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Currency    string           `json:"currency"`
	Metrics     []MetricResponse `json:"metrics"`
	Warnings    []string         `json:"warnings"`
}

// BenchmarkResponse is the output DTO of the benchmark-only use case.
type BenchmarkResponse struct {
	GeneratedAt        time.Time           `json:"generated_at"`
	Industry           string              `json:"industry"`
	BenchmarkedMetrics []BenchmarkedMetric `json:"benchmarked_metrics"`
	Benchmark          BenchmarkReport     `json:"benchmark"`
	Warnings           []string            `json:"warnings"`
}

// RiskResponse is the output DTO of the risk-only use case.
type RiskResponse struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Industry    string                `json:"industry"`
	Risks       []RiskFindingResponse `json:"risks"`
	RiskSummary RiskSummary           `json:"risk_summary"`
	Warnings    []string              `json:"warnings"`
}

// CreditScoreResult is the output DTO of the credit-score-only use case.
type CreditScoreResult struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Industry    string              `json:"industry"`
	HealthScore HealthScoreResponse `json:"health_score"`
	CreditScore CreditScoreResponse `json:"credit_score"`
	Warnings    []string            `json:"warnings"`
}

// ForecastResponse is the output DTO of the forecast-only use case.
type ForecastResponse struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Forecast    ForecastResponseSeries `json:"forecast"`
	Warnings    []string               `json:"warnings"`
}

// IndustriesResponse lists the benchmark table's industries.
type IndustriesResponse struct {
	Industries      []string `json:"industries"`
	DefaultIndustry string   `json:"default_industry"`
}

// MetricResponse is one computed metric.
type MetricResponse struct {
	Name            string   `json:"name"`
	Label           string   `json:"label"`
	Category        string   `json:"category"`
	Value           *float64 `json:"value"`
	Unit            string   `json:"unit"`
	UndefinedReason string   `json:"undefined_reason,omitempty"`
}

// BenchmarkedMetric is a metric with its benchmark and rating.
type BenchmarkedMetric struct {
	MetricResponse
	BenchmarkValue *float64 `json:"benchmark_value"`
	Rating         string   `json:"rating,omitempty"`
	RatingLabel    string   `json:"rating_label,omitempty"`
}

// BenchmarkReport summarizes a company against its industry.
type BenchmarkReport struct {
	Industry          string                `json:"industry"`
	Comparisons       []BenchmarkComparison `json:"comparisons"`
	AboveAverageCount int                   `json:"above_average_count"`
	BelowAverageCount int                   `json:"below_average_count"`
	OverallRanking    string                `json:"overall_ranking"`
}

// BenchmarkComparison is one line of a benchmark report.
type BenchmarkComparison struct {
	Metric         string  `json:"metric"`
	Label          string  `json:"label"`
	Category       string  `json:"category"`
	CompanyValue   float64 `json:"company_value"`
	BenchmarkValue float64 `json:"benchmark_value"`
	VariancePct    float64 `json:"variance_pct"`
	Rating         string  `json:"rating"`
	Status         string  `json:"status"`
}

// HealthScoreResponse is the composite health score.
type HealthScoreResponse struct {
	OverallScore float64             `json:"overall_score"`
	Rating       string              `json:"rating"`
	RatingLabel  string              `json:"rating_label"`
	Components   map[string]*float64 `json:"components"`
}

// RiskFindingResponse is one risk finding.
type RiskFindingResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Severity      string   `json:"severity"`
	SeverityLabel string   `json:"severity_label"`
	Description   string   `json:"description"`
	Mitigation    []string `json:"mitigation"`
}

// RiskSummary is the overall risk level with consolidated recommendations.
type RiskSummary struct {
	OverallLevel    string   `json:"overall_level"`
	Recommendations []string `json:"recommendations"`
}

// CreditScoreResponse is the 300-900 credit score.
type CreditScoreResponse struct {
	Score           int            `json:"score"`
	Rating          string         `json:"rating"`
	BaseScore       float64        `json:"base_score"`
	Adjustment      int            `json:"adjustment"`
	Factors         []CreditFactor `json:"factors"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
}

// CreditFactor is one line of the credit breakdown.
type CreditFactor struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Impact string  `json:"impact"`
}

// ForecastResponseSeries groups projected series.
type ForecastResponseSeries struct {
	Method      string          `json:"method"`
	Frequency   string          `json:"frequency"`
	Periods     int             `json:"periods"`
	Revenue     ForecastSeries  `json:"revenue"`
	Expenses    *ForecastSeries `json:"expenses,omitempty"`
	NetCashFlow *ForecastSeries `json:"net_cash_flow,omitempty"`
}

// ForecastSeries is one projected series.
type ForecastSeries struct {
	VolatilityFactor float64         `json:"volatility_factor"`
	Points           []ForecastPoint `json:"points"`
}

// ForecastPoint is one projected period.
type ForecastPoint struct {
	Period      int     `json:"period"`
	Base        float64 `json:"base"`
	Optimistic  float64 `json:"optimistic"`
	Pessimistic float64 `json:"pessimistic"`
}

// PartialResult flags a stage that produced no output.
type PartialResult struct {
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

// ---------------------------------------------------------------------------
// Presenter
// ---------------------------------------------------------------------------

// Presenter maps domain results to response DTOs, attaching display labels
// in the requested language. A nil catalog leaves labels as their keys.
type Presenter struct {
	catalog port.LabelCatalog
	lang    valueobject.Language
}

// NewPresenter creates a presenter for one language.
func NewPresenter(catalog port.LabelCatalog, lang valueobject.Language) Presenter {
	return Presenter{catalog: catalog, lang: lang}
}

func (p Presenter) label(namespace, key string) string {
	if key == "" {
		return ""
	}
	if p.catalog == nil {
		return key
	}
	return p.catalog.Label(p.lang, namespace+"."+key)
}

// FullAnalysis maps a full analysis result.
func (p Presenter) FullAnalysis(res model.AnalysisResult, generatedAt time.Time) FullAnalysisResponse {
	out := FullAnalysisResponse{
		GeneratedAt:        generatedAt.UTC(),
		Industry:           res.Industry,
		Language:           res.Language.String(),
		Currency:           res.Currency,
		Metrics:            p.Metrics(res.Metrics),
		BenchmarkedMetrics: p.BenchmarkedMetrics(res.BenchmarkedMetrics),
		Benchmark:          p.BenchmarkReport(res.Benchmark),
		HealthScore:        p.HealthScore(res.HealthScore),
		Risks:              p.RiskFindings(res.Risk),
		RiskSummary:        p.RiskSummary(res.Risk),
		CreditScore:        p.CreditScore(res.CreditScore),
		Partial:            []PartialResult{},
		Warnings:           nonNil(res.Warnings),
	}
	if res.Forecast != nil {
		fc := Forecast(*res.Forecast)
		out.Forecast = &fc
	}
	for _, s := range res.Partial {
		out.Partial = append(out.Partial, PartialResult{Stage: s.Stage, Reason: s.Reason})
	}
	return out
}

// Metrics maps a metric set, preserving its order.
func (p Presenter) Metrics(set model.MetricSet) []MetricResponse {
	all := set.All()
	out := make([]MetricResponse, 0, len(all))
	for _, m := range all {
		out = append(out, p.metric(m))
	}
	return out
}

func (p Presenter) metric(m model.Metric) MetricResponse {
	return MetricResponse{
		Name:            m.Name,
		Label:           p.label("metric", m.Name),
		Category:        m.Category.String(),
		Value:           m.Value,
		Unit:            m.Unit,
		UndefinedReason: m.UndefinedReason,
	}
}

// BenchmarkedMetrics maps benchmarked metrics.
func (p Presenter) BenchmarkedMetrics(items []model.BenchmarkedMetric) []BenchmarkedMetric {
	out := make([]BenchmarkedMetric, 0, len(items))
	for _, bm := range items {
		out = append(out, BenchmarkedMetric{
			MetricResponse: p.metric(bm.Metric),
			BenchmarkValue: bm.BenchmarkValue,
			Rating:         bm.Rating.String(),
			RatingLabel:    p.label("rating", bm.Rating.String()),
		})
	}
	return out
}

// BenchmarkReport maps the industry comparison summary.
func (p Presenter) BenchmarkReport(r model.BenchmarkReport) BenchmarkReport {
	out := BenchmarkReport{
		Industry:          r.Industry,
		Comparisons:       make([]BenchmarkComparison, 0, len(r.Comparisons)),
		AboveAverageCount: r.AboveAverageCount,
		BelowAverageCount: r.BelowAverageCount,
		OverallRanking:    r.OverallRanking,
	}
	for _, c := range r.Comparisons {
		out.Comparisons = append(out.Comparisons, BenchmarkComparison{
			Metric:         c.Metric,
			Label:          p.label("metric", c.Metric),
			Category:       c.Category.String(),
			CompanyValue:   c.CompanyValue,
			BenchmarkValue: c.BenchmarkValue,
			VariancePct:    round2(c.VariancePct),
			Rating:         c.Rating.String(),
			Status:         c.Status,
		})
	}
	return out
}

// HealthScore maps the composite health score.
func (p Presenter) HealthScore(h model.HealthScore) HealthScoreResponse {
	out := HealthScoreResponse{
		OverallScore: round2(h.OverallScore),
		Rating:       h.Rating.String(),
		RatingLabel:  p.label("band", h.Rating.String()),
		Components:   make(map[string]*float64, len(h.Components)),
	}
	for c, v := range h.Components {
		if v == nil {
			out.Components[c.String()] = nil
			continue
		}
		r := round2(*v)
		out.Components[c.String()] = &r
	}
	return out
}

// RiskFindings maps risk findings in their severity order.
func (p Presenter) RiskFindings(r model.RiskProfile) []RiskFindingResponse {
	out := make([]RiskFindingResponse, 0, len(r.Findings))
	for _, f := range r.Findings {
		out = append(out, RiskFindingResponse{
			ID:            f.ID,
			Name:          f.Name,
			Category:      f.Category.String(),
			Severity:      f.Severity.String(),
			SeverityLabel: p.label("severity", f.Severity.String()),
			Description:   f.Description,
			Mitigation:    nonNil(f.Mitigation),
		})
	}
	return out
}

// RiskSummary maps the overall risk level.
func (p Presenter) RiskSummary(r model.RiskProfile) RiskSummary {
	return RiskSummary{
		OverallLevel:    r.OverallLevel.String(),
		Recommendations: nonNil(r.Recommendations),
	}
}

// CreditScore maps the credit score.
func (p Presenter) CreditScore(c model.CreditScore) CreditScoreResponse {
	out := CreditScoreResponse{
		Score:           c.Score,
		Rating:          c.Rating.String(),
		BaseScore:       round2(c.BaseScore),
		Adjustment:      c.Adjustment,
		Factors:         make([]CreditFactor, 0, len(c.Factors)),
		Strengths:       nonNil(c.Strengths),
		Weaknesses:      nonNil(c.Weaknesses),
		Recommendations: nonNil(c.Recommendations),
	}
	for _, f := range c.Factors {
		out.Factors = append(out.Factors, CreditFactor{
			Name:   f.Name,
			Label:  p.label("factor", f.Name),
			Score:  round2(f.Score),
			Weight: f.Weight,
			Impact: f.Impact,
		})
	}
	return out
}

// Forecast maps a forecast. Values are rounded to two decimals.
func Forecast(f model.Forecast) ForecastResponseSeries {
	out := ForecastResponseSeries{
		Method:    f.Method,
		Frequency: f.Frequency.String(),
		Periods:   f.Periods,
		Revenue:   forecastSeries(f.Revenue),
	}
	if out.Frequency == "" {
		out.Frequency = valueobject.FrequencyMonthly.String()
	}
	if f.Expenses != nil {
		s := forecastSeries(*f.Expenses)
		out.Expenses = &s
	}
	if f.NetCashFlow != nil {
		s := forecastSeries(*f.NetCashFlow)
		out.NetCashFlow = &s
	}
	return out
}

func forecastSeries(s model.ForecastSeries) ForecastSeries {
	out := ForecastSeries{
		VolatilityFactor: s.VolatilityFactor,
		Points:           make([]ForecastPoint, 0, len(s.Points)),
	}
	for _, pt := range s.Points {
		out.Points = append(out.Points, ForecastPoint{
			Period:      pt.PeriodIndex,
			Base:        round2(pt.Base),
			Optimistic:  round2(pt.Optimistic),
			Pessimistic: round2(pt.Pessimistic),
		})
	}
	return out
}

// Industries maps the benchmark industry listing.
func Industries(industries []string, defaultIndustry string) IndustriesResponse {
	sorted := append([]string(nil), industries...)
	sort.Strings(sorted)
	return IndustriesResponse{Industries: nonNil(sorted), DefaultIndustry: defaultIndustry}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// nonNil keeps empty lists serialized as [] rather than null.
// Warnings returns s, or an empty slice so the field encodes as [].
func Warnings(s []string) []string {
	return nonNil(s)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
