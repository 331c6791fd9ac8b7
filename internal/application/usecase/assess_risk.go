package usecase

import (
	"context"
	"fmt"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/domain/port"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
)

// AssessRisk is the use case for the risk-only entry point.
type AssessRisk struct {
	engine  *service.AnalysisOrchestrator
	catalog port.LabelCatalog
	obs     Observer
}

// NewAssessRisk creates a new AssessRisk use case.
func NewAssessRisk(engine *service.AnalysisOrchestrator, catalog port.LabelCatalog, obs Observer) *AssessRisk {
	return &AssessRisk{engine: engine, catalog: catalog, obs: obs.withDefaults()}
}

// Execute returns the risk profile for the statement and signals.
func (uc *AssessRisk) Execute(ctx context.Context, req dto.AnalysisRequest) (resp dto.RiskResponse, err error) {
	start := uc.obs.Now()
	defer func() { uc.obs.finish(ctx, OpAssessRisk, start, err) }()

	in, err := req.ToModel()
	if err != nil {
		return dto.RiskResponse{}, err
	}
	lang, warnings := uc.engine.ResolveLanguage(req.Language)

	result, err := uc.engine.AssessRisk(in.Statement, in.Industry, in.RiskSignals)
	if err != nil {
		return dto.RiskResponse{}, fmt.Errorf("assess risk: %w", err)
	}

	p := dto.NewPresenter(uc.catalog, lang)
	return dto.RiskResponse{
		GeneratedAt: uc.obs.Now().UTC(),
		Industry:    result.Industry,
		Risks:       p.RiskFindings(result.Risk),
		RiskSummary: p.RiskSummary(result.Risk),
		Warnings:    joinWarnings(warnings, result.Warnings),
	}, nil
}
