package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/application/usecase"
	"github.com/Kishanjee7/finhealth/internal/domain/model"
)

// AnalysisHandler implements AnalysisServiceServer on top of the use cases.
type AnalysisHandler struct {
	UnimplementedAnalysisServiceServer
	uc     usecase.Set
	logger *slog.Logger
}

// NewAnalysisHandler creates a new gRPC analysis handler.
func NewAnalysisHandler(uc usecase.Set, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, logger: logger}
}

// RunFullAnalysis runs every analysis stage.
func (h *AnalysisHandler) RunFullAnalysis(ctx context.Context, req *dto.AnalysisRequest) (*dto.FullAnalysisResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.uc.FullAnalysis.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "RunFullAnalysis", err)
	}
	return &resp, nil
}

// ComputeMetrics computes the ratio set only.
func (h *AnalysisHandler) ComputeMetrics(ctx context.Context, req *dto.AnalysisRequest) (*dto.MetricsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.uc.ComputeMetrics.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "ComputeMetrics", err)
	}
	return &resp, nil
}

// CompareBenchmarks grades the metrics against the industry.
func (h *AnalysisHandler) CompareBenchmarks(ctx context.Context, req *dto.AnalysisRequest) (*dto.BenchmarkResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.uc.CompareBenchmarks.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "CompareBenchmarks", err)
	}
	return &resp, nil
}

// AssessRisk returns the risk findings.
func (h *AnalysisHandler) AssessRisk(ctx context.Context, req *dto.AnalysisRequest) (*dto.RiskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.uc.AssessRisk.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "AssessRisk", err)
	}
	return &resp, nil
}

// ScoreCredit returns the health and credit scores.
func (h *AnalysisHandler) ScoreCredit(ctx context.Context, req *dto.AnalysisRequest) (*dto.CreditScoreResult, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.uc.ScoreCredit.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "ScoreCredit", err)
	}
	return &resp, nil
}

// Forecast projects a historical series.
func (h *AnalysisHandler) Forecast(ctx context.Context, req *dto.ForecastRequest) (*dto.ForecastResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.uc.Forecast.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "Forecast", err)
	}
	return &resp, nil
}

// ListIndustries lists the benchmarked industries.
func (h *AnalysisHandler) ListIndustries(ctx context.Context, _ *ListIndustriesRequest) (*dto.IndustriesResponse, error) {
	resp := h.uc.ListIndustries.Execute(ctx)
	return &resp, nil
}

// toStatus maps domain errors to gRPC codes: validation failures are
// InvalidArgument, short forecast histories FailedPrecondition, anything
// else Internal.
func (h *AnalysisHandler) toStatus(ctx context.Context, method string, err error) error {
	var (
		verr         *model.ValidationError
		insufficient *model.InsufficientHistoryError
	)
	switch {
	case errors.As(err, &verr):
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field+": "+f.Reason)
		}
		return status.Errorf(codes.InvalidArgument, "validation failed: %s", strings.Join(fields, "; "))
	case errors.As(err, &insufficient):
		return status.Error(codes.FailedPrecondition, insufficient.Error())
	default:
		h.logger.ErrorContext(ctx, "grpc request failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
