package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/application/usecase"
	"github.com/Kishanjee7/finhealth/internal/domain/model"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// AnalysisHandler serves the analysis REST API.
type AnalysisHandler struct {
	uc     usecase.Set
	logger *slog.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(uc usecase.Set, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, logger: logger}
}

// RegisterRoutes registers the API routes on the provided ServeMux.
func (h *AnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/analysis/full", h.FullAnalysis)
	mux.HandleFunc("POST /api/v1/analysis/metrics", h.Metrics)
	mux.HandleFunc("POST /api/v1/analysis/benchmark", h.Benchmark)
	mux.HandleFunc("POST /api/v1/analysis/risk", h.Risk)
	mux.HandleFunc("POST /api/v1/analysis/credit-score", h.CreditScore)
	mux.HandleFunc("POST /api/v1/analysis/forecast", h.Forecast)
	mux.HandleFunc("GET /api/v1/benchmarks/industries", h.Industries)
}

// FullAnalysis runs every analysis stage.
func (h *AnalysisHandler) FullAnalysis(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalysisRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.FullAnalysis.Execute(r.Context(), req)
	h.respond(w, r, resp, err)
}

// Metrics computes the ratio set only.
func (h *AnalysisHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalysisRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.ComputeMetrics.Execute(r.Context(), req)
	h.respond(w, r, resp, err)
}

// Benchmark grades the metrics against the industry.
func (h *AnalysisHandler) Benchmark(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalysisRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.CompareBenchmarks.Execute(r.Context(), req)
	h.respond(w, r, resp, err)
}

// Risk returns the risk findings.
func (h *AnalysisHandler) Risk(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalysisRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.AssessRisk.Execute(r.Context(), req)
	h.respond(w, r, resp, err)
}

// CreditScore returns the health and credit scores.
func (h *AnalysisHandler) CreditScore(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalysisRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.ScoreCredit.Execute(r.Context(), req)
	h.respond(w, r, resp, err)
}

// Forecast projects a historical series.
func (h *AnalysisHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req dto.ForecastRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.Forecast.Execute(r.Context(), req)
	h.respond(w, r, resp, err)
}

// Industries lists the benchmarked industries.
func (h *AnalysisHandler) Industries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.uc.ListIndustries.Execute(r.Context()))
}

// decode reads a JSON body into dst. Malformed bodies are reported as a
// validation failure on the "body" field.
func (h *AnalysisHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
		return false
	}
	if errors.Is(err, io.EOF) {
		err = errors.New("request body is empty")
	}

	verr := &model.ValidationError{}
	verr.Add("body", err.Error())
	writeError(w, r, h.logger, verr)
	return false
}

func (h *AnalysisHandler) respond(w http.ResponseWriter, r *http.Request, resp any, err error) {
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
