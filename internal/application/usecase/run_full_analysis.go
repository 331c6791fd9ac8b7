package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/domain/event"
	"github.com/Kishanjee7/finhealth/internal/domain/port"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
)

// RunFullAnalysis is the use case for a complete statement analysis.
type RunFullAnalysis struct {
	engine    *service.AnalysisOrchestrator
	publisher port.EventPublisher
	catalog   port.LabelCatalog
	obs       Observer
}

// NewRunFullAnalysis creates a new RunFullAnalysis use case.
func NewRunFullAnalysis(
	engine *service.AnalysisOrchestrator,
	publisher port.EventPublisher,
	catalog port.LabelCatalog,
	obs Observer,
) *RunFullAnalysis {
	return &RunFullAnalysis{
		engine:    engine,
		publisher: publisher,
		catalog:   catalog,
		obs:       obs.withDefaults(),
	}
}

// Execute runs every analysis stage and publishes an AnalysisCompleted event.
// A failed publish is logged and does not fail the analysis.
func (uc *RunFullAnalysis) Execute(ctx context.Context, req dto.AnalysisRequest) (resp dto.FullAnalysisResponse, err error) {
	start := uc.obs.Now()
	defer func() { uc.obs.finish(ctx, OpFullAnalysis, start, err) }()

	// 1. Map the request into the engine's input.
	in, err := req.ToModel()
	if err != nil {
		return dto.FullAnalysisResponse{}, err
	}

	// 2. Run the pipeline.
	result, err := uc.engine.RunFullAnalysis(in)
	if err != nil {
		return dto.FullAnalysisResponse{}, fmt.Errorf("full analysis: %w", err)
	}

	generatedAt := uc.obs.Now()
	analysisID := uuid.NewString()

	// 3. Report degraded stages.
	for _, p := range result.Partial {
		uc.obs.Logger.WarnContext(ctx, "analysis stage skipped",
			"analysis_id", analysisID,
			"stage", p.Stage,
			"reason", p.Reason,
		)
	}

	// 4. Publish the completion event.
	if uc.publisher != nil {
		evt := event.NewAnalysisCompleted(analysisID, result, generatedAt)
		if pubErr := uc.publisher.Publish(ctx, evt); pubErr != nil {
			uc.obs.Logger.WarnContext(ctx, "failed to publish analysis event",
				"analysis_id", analysisID,
				"error", pubErr,
			)
		}
	}

	uc.obs.Logger.InfoContext(ctx, "analysis completed",
		"analysis_id", analysisID,
		"industry", result.Industry,
		"health_score", result.HealthScore.OverallScore,
		"credit_score", result.CreditScore.Score,
		"warnings", len(result.Warnings),
	)

	return dto.NewPresenter(uc.catalog, result.Language).FullAnalysis(result, generatedAt), nil
}
