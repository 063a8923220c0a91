package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/healthbridge/healthbridge/internal/domain"
	"github.com/healthbridge/healthbridge/internal/port"
)

// CartService owns a user's set of cart lines and mediates all mutations
// against the repository. It holds no cart state of its own: every call
// takes explicit inputs and re-reads through the repository.
type CartService struct {
	carts port.CartRepository
	log   *slog.Logger
}

func NewCartService(carts port.CartRepository, log *slog.Logger) *CartService {
	return &CartService{
		carts: carts,
		log:   log,
	}
}

func (s *CartService) Load(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, domain.ErrUnauthenticated
	}

	cart, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	return cart, nil
}

func (s *CartService) Add(ctx context.Context, ownerID string, medicineID uuid.UUID) error {
	if ownerID == "" {
		return domain.ErrUnauthenticated
	}

	quantity, err := s.carts.AddItem(ctx, ownerID, medicineID)
	if err != nil {
		return fmt.Errorf("carts.AddItem: %w", err)
	}

	s.log.DebugContext(ctx, "cart item added",
		slog.String("owner_id", ownerID),
		slog.String("medicine_id", medicineID.String()),
		slog.Int("quantity", int(quantity)))

	return nil
}

// UpdateQuantity overwrites a line's quantity. A quantity of zero or less
// behaves as Remove.
func (s *CartService) UpdateQuantity(ctx context.Context, ownerID string, medicineID uuid.UUID, quantity int32) error {
	if ownerID == "" {
		return domain.ErrUnauthenticated
	}

	if quantity <= 0 {
		return s.Remove(ctx, ownerID, medicineID)
	}

	found, err := s.carts.SetItemQuantity(ctx, ownerID, medicineID, quantity)
	if err != nil {
		return fmt.Errorf("carts.SetItemQuantity: %w", err)
	}
	if !found {
		return fmt.Errorf("cart line for medicine %s: %w", medicineID, domain.ErrNotFound)
	}

	return nil
}

// Remove deletes the line if present. Removing an absent line is a no-op.
func (s *CartService) Remove(ctx context.Context, ownerID string, medicineID uuid.UUID) error {
	if ownerID == "" {
		return domain.ErrUnauthenticated
	}

	if _, err := s.carts.DeleteItem(ctx, ownerID, medicineID); err != nil {
		return fmt.Errorf("carts.DeleteItem: %w", err)
	}

	return nil
}
