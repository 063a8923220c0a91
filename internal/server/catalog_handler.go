package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthbridge/healthbridge/internal/domain"
)

type CatalogService interface {
	ListMedicines(ctx context.Context) ([]domain.Medicine, error)
	GetMedicine(ctx context.Context, id uuid.UUID) (domain.Medicine, error)
}

type CatalogHandler struct {
	catalog CatalogService
}

func NewCatalogHandler(catalog CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type MedicineDTO struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Category             string `json:"category"`
	Description          string `json:"description,omitempty"`
	Price                string `json:"price"`
	Currency             string `json:"currency"`
	ImageURL             string `json:"image_url,omitempty"`
	InStock              bool   `json:"in_stock"`
	RequiresPrescription bool   `json:"requires_prescription"`
}

func (h *CatalogHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.catalog.ListMedicines(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	dtos := make([]MedicineDTO, 0, len(medicines))
	for _, m := range medicines {
		dtos = append(dtos, mapMedicineToDTO(m))
	}

	respondJSON(w, http.StatusOK, dtos)
}

func (h *CatalogHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "medicine_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_medicine_id", "medicine_id must be a UUID")
		return
	}

	medicine, err := h.catalog.GetMedicine(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapMedicineToDTO(medicine))
}

func mapMedicineToDTO(m domain.Medicine) MedicineDTO {
	return MedicineDTO{
		ID:                   m.ID.String(),
		Name:                 m.Name,
		Category:             m.Category,
		Description:          m.Description,
		Price:                m.Price.Amount.StringFixed(2),
		Currency:             m.Price.Currency.String(),
		ImageURL:             m.ImageURL,
		InStock:              m.InStock,
		RequiresPrescription: m.RequiresPrescription,
	}
}
