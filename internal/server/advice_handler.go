package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/healthbridge/healthbridge/internal/domain"
)

type AdviceService interface {
	GetAdvice(ctx context.Context, req domain.AdviceRequest) (domain.AdviceResponse, error)
}

type AdviceHandler struct {
	advice AdviceService
}

func NewAdviceHandler(advice AdviceService) *AdviceHandler {
	return &AdviceHandler{advice: advice}
}

type AdviceRequestDTO struct {
	Symptoms string `json:"symptoms"`
	Key      string `json:"key,omitempty"`
}

type AdviceResponseDTO struct {
	Response   string `json:"response"`
	Obfuscated bool   `json:"obfuscated"`
}

func (h *AdviceHandler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	resp, err := h.advice.GetAdvice(r.Context(), domain.AdviceRequest{
		Symptoms:       req.Symptoms,
		ObfuscationKey: req.Key,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AdviceResponseDTO{
		Response:   resp.Text,
		Obfuscated: resp.Obfuscated,
	})
}
