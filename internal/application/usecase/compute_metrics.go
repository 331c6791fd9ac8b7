package usecase

import (
	"context"
	"fmt"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/domain/port"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
)

// ComputeMetrics is the use case for the metrics-only entry point.
type ComputeMetrics struct {
	engine  *service.AnalysisOrchestrator
	catalog port.LabelCatalog
	obs     Observer
}

// NewComputeMetrics creates a new ComputeMetrics use case.
func NewComputeMetrics(engine *service.AnalysisOrchestrator, catalog port.LabelCatalog, obs Observer) *ComputeMetrics {
	return &ComputeMetrics{engine: engine, catalog: catalog, obs: obs.withDefaults()}
}

// Execute validates the statement and returns its metrics.
func (uc *ComputeMetrics) Execute(ctx context.Context, req dto.AnalysisRequest) (resp dto.MetricsResponse, err error) {
	start := uc.obs.Now()
	defer func() { uc.obs.finish(ctx, OpComputeMetrics, start, err) }()

	lang, warnings := uc.engine.ResolveLanguage(req.Language)

	result, err := uc.engine.ComputeMetrics(req.FinancialData.ToModel())
	if err != nil {
		return dto.MetricsResponse{}, fmt.Errorf("compute metrics: %w", err)
	}

	p := dto.NewPresenter(uc.catalog, lang)
	return dto.MetricsResponse{
		GeneratedAt: uc.obs.Now().UTC(),
		Currency:    result.Currency,
		Metrics:     p.Metrics(result.Metrics),
		Warnings:    joinWarnings(warnings, result.Warnings),
	}, nil
}

// joinWarnings concatenates warning lists, never returning nil.
func joinWarnings(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
