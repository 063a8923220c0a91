package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/healthbridge/healthbridge/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", slog.Any("err", err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps the error taxonomy to HTTP statuses. Upstream
// errors surface only their categorized message; persistence errors keep
// their text since no secret material is involved.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user identity")
	case errors.Is(err, domain.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		respondError(w, http.StatusBadGateway, "assistant_unavailable", "health assistant is not configured")
	case errors.Is(err, domain.ErrUpstreamError):
		respondError(w, http.StatusBadGateway, "assistant_error", "health assistant is unavailable, please try again")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
