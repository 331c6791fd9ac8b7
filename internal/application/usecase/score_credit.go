package usecase

import (
	"context"
	"fmt"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/domain/port"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
)

// ScoreCredit is the use case for the credit-score-only entry point.
type ScoreCredit struct {
	engine  *service.AnalysisOrchestrator
	catalog port.LabelCatalog
	obs     Observer
}

// NewScoreCredit creates a new ScoreCredit use case.
func NewScoreCredit(engine *service.AnalysisOrchestrator, catalog port.LabelCatalog, obs Observer) *ScoreCredit {
	return &ScoreCredit{engine: engine, catalog: catalog, obs: obs.withDefaults()}
}

// Execute derives the health score and maps it to a credit score.
func (uc *ScoreCredit) Execute(ctx context.Context, req dto.AnalysisRequest) (resp dto.CreditScoreResult, err error) {
	start := uc.obs.Now()
	defer func() { uc.obs.finish(ctx, OpScoreCredit, start, err) }()

	in, err := req.ToModel()
	if err != nil {
		return dto.CreditScoreResult{}, err
	}
	lang, warnings := uc.engine.ResolveLanguage(req.Language)

	result, err := uc.engine.ScoreCredit(in.Statement, in.Industry, in.CreditSignals)
	if err != nil {
		return dto.CreditScoreResult{}, fmt.Errorf("score credit: %w", err)
	}

	p := dto.NewPresenter(uc.catalog, lang)
	return dto.CreditScoreResult{
		GeneratedAt: uc.obs.Now().UTC(),
		Industry:    result.Industry,
		HealthScore: p.HealthScore(result.HealthScore),
		CreditScore: p.CreditScore(result.CreditScore),
		Warnings:    joinWarnings(warnings, result.Warnings),
	}, nil
}
