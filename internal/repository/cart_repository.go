package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/healthbridge/healthbridge/internal/db"
	"github.com/healthbridge/healthbridge/internal/domain"
	"github.com/healthbridge/healthbridge/internal/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/currency"
)

const fkViolation = "23503"

type cartRepository struct {
	q *db.Queries
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q: db.New(pool),
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q: db.New(tx),
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

// AddItem is a single atomic upsert: insert with quantity 1 or increment
// the existing line. Concurrent adds for the same (owner, medicine) cannot
// lose increments or duplicate the line.
func (r *cartRepository) AddItem(ctx context.Context, ownerID string, medicineID uuid.UUID) (int32, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	item, err := r.q.AddItemIncrement(ctx, db.AddItemIncrementParams{
		OwnerID:    ownerID,
		MedicineID: medicineID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return 0, fmt.Errorf("medicine %s: %w", medicineID, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("q.AddItemIncrement: %w", err)
	}

	return item.Quantity, nil
}

func (r *cartRepository) SetItemQuantity(ctx context.Context, ownerID string, medicineID uuid.UUID, quantity int32) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}
	if quantity < 1 {
		return false, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	rowsAffected, err := r.q.SetItemQuantity(ctx, db.SetItemQuantityParams{
		OwnerID:    ownerID,
		MedicineID: medicineID,
		Quantity:   quantity,
	})
	if err != nil {
		return false, fmt.Errorf("q.SetItemQuantity: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, medicineID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteItem(ctx, db.DeleteItemParams{
		OwnerID:    ownerID,
		MedicineID: medicineID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		ID:         row.ID,
		MedicineID: row.MedicineID,
		Quantity:   row.Quantity,
		Medicine: domain.Medicine{
			ID:                   row.MedicineID,
			Name:                 row.Name,
			Category:             row.Category,
			Description:          derefString(row.Description),
			Price:                domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			ImageURL:             derefString(row.ImageUrl),
			InStock:              row.InStock,
			RequiresPrescription: row.RequiresPrescription,
		},
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
