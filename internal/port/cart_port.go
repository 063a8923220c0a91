package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthbridge/healthbridge/internal/domain"
)

type CartRepository interface {
	// GetCart returns all lines for the owner joined with their medicine rows.
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)

	// AddItem inserts a line with quantity 1 or atomically increments an
	// existing one. It returns the resulting quantity.
	AddItem(ctx context.Context, ownerID string, medicineID uuid.UUID) (int32, error)

	// SetItemQuantity overwrites the quantity of an existing line. It
	// reports whether the line existed.
	SetItemQuantity(ctx context.Context, ownerID string, medicineID uuid.UUID, quantity int32) (bool, error)

	// DeleteItem removes a line and reports whether it existed.
	DeleteItem(ctx context.Context, ownerID string, medicineID uuid.UUID) (bool, error)
}
