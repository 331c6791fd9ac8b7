package usecase

import (
	"context"
	"fmt"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
)

// Forecast is the use case for the forecast-only entry point. Unlike the
// full analysis, insufficient history is returned as an error.
type Forecast struct {
	engine *service.AnalysisOrchestrator
	obs    Observer
}

// NewForecast creates a new Forecast use case.
func NewForecast(engine *service.AnalysisOrchestrator, obs Observer) *Forecast {
	return &Forecast{engine: engine, obs: obs.withDefaults()}
}

// Execute projects the supplied history.
func (uc *Forecast) Execute(ctx context.Context, req dto.ForecastRequest) (resp dto.ForecastResponse, err error) {
	start := uc.obs.Now()
	defer func() { uc.obs.finish(ctx, OpForecast, start, err) }()

	history, err := req.ToModel()
	if err != nil {
		return dto.ForecastResponse{}, err
	}

	fc, err := uc.engine.Forecast(history, req.ForecastPeriods)
	if err != nil {
		return dto.ForecastResponse{}, fmt.Errorf("forecast: %w", err)
	}

	return dto.ForecastResponse{
		GeneratedAt: uc.obs.Now().UTC(),
		Forecast:    dto.Forecast(fc),
		Warnings:    dto.Warnings(fc.Warnings),
	}, nil
}
