package usecase

import (
	"context"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
)

// ListIndustries returns the industries the benchmark table covers.
type ListIndustries struct {
	engine *service.AnalysisOrchestrator
}

// NewListIndustries creates a new ListIndustries use case.
func NewListIndustries(engine *service.AnalysisOrchestrator) *ListIndustries {
	return &ListIndustries{engine: engine}
}

// Execute lists known industries and the fallback industry.
func (uc *ListIndustries) Execute(_ context.Context) dto.IndustriesResponse {
	return dto.Industries(uc.engine.Industries())
}
