package service

import (
	"fmt"
	"strings"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// StageForecast names the only optional stage of a full analysis.
const StageForecast = "forecast"

// ---------------------------------------------------------------------------
// AnalysisOrchestrator – sequences the analysis stages
// ---------------------------------------------------------------------------

// AnalysisOrchestrator runs validate, metrics, benchmark, health, risk,
// credit and forecast in order. Only statement validation is fatal; a failed
// forecast is recorded as a partial result and the call still succeeds.
type AnalysisOrchestrator struct {
	metrics    *MetricsCalculator
	comparator *BenchmarkComparator
	health     *HealthScoreAggregator
	risk       *RiskAssessor
	credit     *CreditScorer
	forecast   *ForecastEngine
	language   valueobject.Language
}

// NewAnalysisOrchestrator wires the stage services together.
func NewAnalysisOrchestrator(
	metrics *MetricsCalculator,
	comparator *BenchmarkComparator,
	health *HealthScoreAggregator,
	risk *RiskAssessor,
	credit *CreditScorer,
	forecast *ForecastEngine,
) *AnalysisOrchestrator {
	return &AnalysisOrchestrator{
		metrics:    metrics,
		comparator: comparator,
		health:     health,
		risk:       risk,
		credit:     credit,
		forecast:   forecast,
		language:   valueobject.LanguageEnglish,
	}
}

// SetDefaultLanguage sets the language used when a request names none.
func (o *AnalysisOrchestrator) SetDefaultLanguage(lang valueobject.Language) {
	if !lang.IsZero() {
		o.language = lang
	}
}

// ResolveLanguage is ResolveLanguage with the orchestrator's default applied
// to requests that name no language.
func (o *AnalysisOrchestrator) ResolveLanguage(code string) (valueobject.Language, []string) {
	if strings.TrimSpace(code) == "" {
		return o.language, nil
	}
	return ResolveLanguage(code)
}

// Industries lists the industries the benchmark table covers.
func (o *AnalysisOrchestrator) Industries() (industries []string, defaultIndustry string) {
	t := o.comparator.Table()
	return t.Industries(), t.DefaultIndustry()
}

// RunFullAnalysis executes every stage. A *model.ValidationError for the
// statement aborts the call; every other problem is reported through
// Partial and Warnings.
func (o *AnalysisOrchestrator) RunFullAnalysis(req model.AnalysisRequest) (model.AnalysisResult, error) {
	lang, warnings := o.ResolveLanguage(req.Language)

	// Step 1: validate
	stmt, stmtWarnings, err := model.NewStatement(req.Statement)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	warnings = append(warnings, stmtWarnings...)

	// Step 2: metrics
	set := o.metrics.Calculate(stmt)

	// Step 3: benchmark
	industry, benchmarked, benchWarnings := o.benchmark(set, req.Industry)
	warnings = append(warnings, benchWarnings...)

	// Step 4: health score
	health := o.health.Aggregate(benchmarked)

	// Step 5: risk
	risk := o.risk.Assess(stmt, benchmarked, req.RiskSignals)

	// Step 6: credit score
	credit := o.credit.Score(health, set, req.CreditSignals)

	result := model.AnalysisResult{
		Industry:           industry,
		Language:           lang,
		Currency:           stmt.Currency().Code(),
		Metrics:            set,
		BenchmarkedMetrics: benchmarked,
		Benchmark:          o.comparator.Report(industry, benchmarked),
		HealthScore:        health,
		Risk:               risk,
		CreditScore:        credit,
	}

	// Step 7: forecast, only when history was supplied
	if req.History != nil {
		fc, err := o.forecast.Forecast(*req.History, req.ForecastPeriods)
		if err != nil {
			result.Partial = append(result.Partial, model.StageOutcome{Stage: StageForecast, Reason: err.Error()})
			warnings = append(warnings, fmt.Sprintf("forecast_skipped: %v", err))
		} else {
			result.Forecast = &fc
			warnings = append(warnings, fc.Warnings...)
		}
	}

	result.Warnings = warnings
	return result, nil
}

// ComputeMetrics validates the statement and returns its metrics.
func (o *AnalysisOrchestrator) ComputeMetrics(raw model.RawStatement) (model.MetricsResult, error) {
	stmt, warnings, err := model.NewStatement(raw)
	if err != nil {
		return model.MetricsResult{}, err
	}
	return model.MetricsResult{
		Currency: stmt.Currency().Code(),
		Metrics:  o.metrics.Calculate(stmt),
		Warnings: warnings,
	}, nil
}

// CompareBenchmarks grades the statement's metrics against an industry.
func (o *AnalysisOrchestrator) CompareBenchmarks(raw model.RawStatement, industry string) (model.BenchmarkResult, error) {
	stmt, warnings, err := model.NewStatement(raw)
	if err != nil {
		return model.BenchmarkResult{}, err
	}
	resolved, benchmarked, benchWarnings := o.benchmark(o.metrics.Calculate(stmt), industry)
	return model.BenchmarkResult{
		Industry:           resolved,
		BenchmarkedMetrics: benchmarked,
		Report:             o.comparator.Report(resolved, benchmarked),
		Warnings:           append(warnings, benchWarnings...),
	}, nil
}

// AssessRisk returns the risk profile for the statement.
func (o *AnalysisOrchestrator) AssessRisk(raw model.RawStatement, industry string, signals model.RiskSignals) (model.RiskResult, error) {
	stmt, warnings, err := model.NewStatement(raw)
	if err != nil {
		return model.RiskResult{}, err
	}
	resolved, benchmarked, benchWarnings := o.benchmark(o.metrics.Calculate(stmt), industry)
	return model.RiskResult{
		Industry: resolved,
		Risk:     o.risk.Assess(stmt, benchmarked, signals),
		Warnings: append(warnings, benchWarnings...),
	}, nil
}

// ScoreCredit returns the health score and the credit score derived from it.
func (o *AnalysisOrchestrator) ScoreCredit(raw model.RawStatement, industry string, signals model.CreditSignals) (model.CreditResult, error) {
	stmt, warnings, err := model.NewStatement(raw)
	if err != nil {
		return model.CreditResult{}, err
	}
	set := o.metrics.Calculate(stmt)
	resolved, benchmarked, benchWarnings := o.benchmark(set, industry)
	health := o.health.Aggregate(benchmarked)
	return model.CreditResult{
		Industry:    resolved,
		HealthScore: health,
		CreditScore: o.credit.Score(health, set, signals),
		Warnings:    append(warnings, benchWarnings...),
	}, nil
}

// Forecast projects the history directly. Unlike the full analysis, an
// *model.InsufficientHistoryError is returned to the caller.
func (o *AnalysisOrchestrator) Forecast(history model.HistoricalSeries, periods int) (model.Forecast, error) {
	return o.forecast.Forecast(history, periods)
}

// ResolveLanguage maps a requested language code to a supported language,
// warning when it falls back to English.
func ResolveLanguage(code string) (valueobject.Language, []string) {
	lang, ok := valueobject.LanguageFromString(code)
	if ok {
		return lang, nil
	}
	return lang, []string{fmt.Sprintf("unsupported_language: %q, using %q", code, lang)}
}

func (o *AnalysisOrchestrator) benchmark(set model.MetricSet, industry string) (string, []model.BenchmarkedMetric, []string) {
	resolved, _ := o.comparator.Table().Resolve(industry)
	benchmarked, warnings := o.comparator.Compare(set, industry)
	return resolved, benchmarked, warnings
}
