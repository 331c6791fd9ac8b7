package usecase

import (
	"context"
	"fmt"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/domain/port"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
)

// CompareBenchmarks is the use case for the benchmark-only entry point.
type CompareBenchmarks struct {
	engine  *service.AnalysisOrchestrator
	catalog port.LabelCatalog
	obs     Observer
}

// NewCompareBenchmarks creates a new CompareBenchmarks use case.
func NewCompareBenchmarks(engine *service.AnalysisOrchestrator, catalog port.LabelCatalog, obs Observer) *CompareBenchmarks {
	return &CompareBenchmarks{engine: engine, catalog: catalog, obs: obs.withDefaults()}
}

// Execute grades the statement's metrics against the requested industry.
func (uc *CompareBenchmarks) Execute(ctx context.Context, req dto.AnalysisRequest) (resp dto.BenchmarkResponse, err error) {
	start := uc.obs.Now()
	defer func() { uc.obs.finish(ctx, OpCompareBenchmarks, start, err) }()

	lang, warnings := uc.engine.ResolveLanguage(req.Language)

	result, err := uc.engine.CompareBenchmarks(req.FinancialData.ToModel(), req.Industry)
	if err != nil {
		return dto.BenchmarkResponse{}, fmt.Errorf("compare benchmarks: %w", err)
	}

	p := dto.NewPresenter(uc.catalog, lang)
	return dto.BenchmarkResponse{
		GeneratedAt:        uc.obs.Now().UTC(),
		Industry:           result.Industry,
		BenchmarkedMetrics: p.BenchmarkedMetrics(result.BenchmarkedMetrics),
		Benchmark:          p.BenchmarkReport(result.Report),
		Warnings:           joinWarnings(warnings, result.Warnings),
	}, nil
}
