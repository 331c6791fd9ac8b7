package model

import "github.com/Kishanjee7/finhealth/internal/domain/valueobject"

// AnalysisRequest is the engine input for one full analysis.
type AnalysisRequest struct {
	Statement       RawStatement
	Industry        string
	Language        string
	ForecastPeriods int
	History         *HistoricalSeries
	CreditSignals   CreditSignals
	RiskSignals     RiskSignals
}

// StageOutcome flags a stage that did not produce output.
type StageOutcome struct {
	Stage  string
	Reason string
}

// AnalysisResult is the full output of one orchestrated call. It carries no
// identifiers or timestamps so identical input yields identical output.
type AnalysisResult struct {
	Industry           string
	Language           valueobject.Language
	Currency           string
	Metrics            MetricSet
	BenchmarkedMetrics []BenchmarkedMetric
	Benchmark          BenchmarkReport
	HealthScore        HealthScore
	Risk               RiskProfile
	CreditScore        CreditScore
	Forecast           *Forecast
	Partial            []StageOutcome
	Warnings           []string
}

// BenchmarkComparison is one line of an industry benchmark report.
type BenchmarkComparison struct {
	Metric         string
	Category       valueobject.Category
	CompanyValue   float64
	BenchmarkValue float64
	VariancePct    float64
	Rating         valueobject.Rating
	Status         string
}

// BenchmarkReport summarizes a company against its industry.
type BenchmarkReport struct {
	Industry          string
	Comparisons       []BenchmarkComparison
	AboveAverageCount int
	BelowAverageCount int
	OverallRanking    string
}

// MetricsResult is the output of the metrics-only entry point.
type MetricsResult struct {
	Currency string
	Metrics  MetricSet
	Warnings []string
}

// BenchmarkResult is the output of the benchmark-only entry point.
type BenchmarkResult struct {
	Industry           string
	BenchmarkedMetrics []BenchmarkedMetric
	Report             BenchmarkReport
	Warnings           []string
}

// RiskResult is the output of the risk-only entry point.
type RiskResult struct {
	Industry string
	Risk     RiskProfile
	Warnings []string
}

// CreditResult is the output of the credit-score-only entry point.
type CreditResult struct {
	Industry    string
	HealthScore HealthScore
	CreditScore CreditScore
	Warnings    []string
}
