package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthbridge/healthbridge/internal/domain"
)

type CartService interface {
	Load(ctx context.Context, ownerID string) (domain.Cart, error)
	Add(ctx context.Context, ownerID string, medicineID uuid.UUID) error
	UpdateQuantity(ctx context.Context, ownerID string, medicineID uuid.UUID, quantity int32) error
	Remove(ctx context.Context, ownerID string, medicineID uuid.UUID) error
}

type CartHandler struct {
	cart CartService
}

func NewCartHandler(cart CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type AddItemRequestDTO struct {
	MedicineID string `json:"medicine_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int32 `json:"quantity"`
}

type CartItemDTO struct {
	ID         string `json:"id"`
	MedicineID string `json:"medicine_id"`
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Subtotal   string `json:"subtotal"`
	ImageURL   string `json:"image_url,omitempty"`
}

type CartDTO struct {
	Items    []CartItemDTO `json:"items"`
	Total    string        `json:"total"`
	Currency string        `json:"currency"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromContext(r.Context())

	cart, err := h.cart.Load(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	dto, err := mapCartToDTO(cart)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	medicineID, err := uuid.Parse(req.MedicineID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_medicine_id", "medicine_id must be a UUID")
		return
	}

	if err := h.cart.Add(r.Context(), ownerID, medicineID); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromContext(r.Context())

	medicineID, err := uuid.Parse(chi.URLParam(r, "medicine_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_medicine_id", "medicine_id must be a UUID")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), ownerID, medicineID, req.Quantity); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromContext(r.Context())

	medicineID, err := uuid.Parse(chi.URLParam(r, "medicine_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_medicine_id", "medicine_id must be a UUID")
		return
	}

	if err := h.cart.Remove(r.Context(), ownerID, medicineID); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func mapCartToDTO(cart domain.Cart) (CartDTO, error) {
	total, err := cart.Total()
	if err != nil {
		return CartDTO{}, err
	}

	items := make([]CartItemDTO, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemDTO{
			ID:         item.ID.String(),
			MedicineID: item.MedicineID.String(),
			Name:       item.Medicine.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.Medicine.Price.Amount.StringFixed(2),
			Subtotal:   item.Subtotal().Amount.StringFixed(2),
			ImageURL:   item.Medicine.ImageURL,
		})
	}

	return CartDTO{
		Items:    items,
		Total:    total.Amount.StringFixed(2),
		Currency: total.Currency.String(),
	}, nil
}
