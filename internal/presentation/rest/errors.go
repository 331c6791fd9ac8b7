package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Details []model.FieldError `json:"details,omitempty"`
}

// writeJSON encodes body before writing the status line, so an unencodable
// body becomes a 500 instead of a truncated 2xx.
func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(ErrorResponse{Error: "response encoding failed"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

// writeError maps domain errors to status codes: validation failures are
// 400, short forecast histories 422, anything else 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		verr         *model.ValidationError
		insufficient *model.InsufficientHistoryError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: verr.Fields})
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: insufficient.Error()})
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
