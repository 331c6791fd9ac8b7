package rest

import (
	"log/slog"
	"net/http"
)

// NewRouter assembles the HTTP surface. Only /api/ routes are rate limited;
// a nil limiter disables limiting and a nil metrics handler omits /metrics.
func NewRouter(api *AnalysisHandler, health *HealthHandler, metrics http.Handler, limiter *RateLimiter, logger *slog.Logger) http.Handler {
	apiMux := http.NewServeMux()
	api.RegisterRoutes(apiMux)

	var apiHandler http.Handler = apiMux
	if limiter != nil {
		apiHandler = RateLimitMiddleware(limiter)(apiMux)
	}

	mux := http.NewServeMux()
	health.RegisterRoutes(mux)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	mux.Handle("/api/", apiHandler)

	return Chain(mux, RequestIDMiddleware, LoggingMiddleware(logger))
}
