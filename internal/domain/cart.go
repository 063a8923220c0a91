package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

// CartItem is one (medicine, quantity) line of a user's cart.
// At most one line exists per (owner, medicine) pair.
type CartItem struct {
	ID         uuid.UUID
	MedicineID uuid.UUID
	Quantity   int32
	Medicine   Medicine

	CreatedAt time.Time
}

func (i CartItem) Subtotal() Money {
	return i.Medicine.Price.Mul(i.Quantity)
}

// Total derives the cart total from its lines: sum of unit price times
// quantity. An empty cart totals zero. The catalog is single-currency,
// mixed currencies across lines are an error rather than a conversion.
func (c Cart) Total() (Money, error) {
	if len(c.Items) == 0 {
		return ZeroMoney(), nil
	}

	total := Money{Currency: c.Items[0].Medicine.Price.Currency}
	for _, item := range c.Items {
		sub := item.Subtotal()
		if sub.Currency != total.Currency {
			return Money{}, fmt.Errorf("item %s has currency %s, cart has %s: %w",
				item.MedicineID, sub.Currency, total.Currency, ErrCurrencyMismatch)
		}
		total.Amount = total.Amount.Add(sub.Amount)
	}

	return total, nil
}
