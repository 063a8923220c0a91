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
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/currency"
)

type medicineRepository struct {
	q *db.Queries
}

func NewMedicine(pool *pgxpool.Pool) port.MedicineRepository {
	return &medicineRepository{
		q: db.New(pool),
	}
}

func NewMedicineWithTx(tx pgx.Tx) port.MedicineRepository {
	return &medicineRepository{
		q: db.New(tx),
	}
}

func (r *medicineRepository) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	rows, err := r.q.ListMedicines(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListMedicines: %w", err)
	}

	var medicines []domain.Medicine
	for _, row := range rows {
		medicine, err := mapMedicineToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapMedicineToDomain: %w", err)
		}

		medicines = append(medicines, medicine)
	}

	return medicines, nil
}

func (r *medicineRepository) GetMedicine(ctx context.Context, id uuid.UUID) (domain.Medicine, bool, error) {
	row, err := r.q.GetMedicine(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Medicine{}, false, nil
		}
		return domain.Medicine{}, false, fmt.Errorf("q.GetMedicine: %w", err)
	}

	medicine, err := mapMedicineToDomain(row)
	if err != nil {
		return domain.Medicine{}, false, fmt.Errorf("mapMedicineToDomain: %w", err)
	}

	return medicine, true, nil
}

func mapMedicineToDomain(row db.Medicine) (domain.Medicine, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Medicine{
		ID:                   row.ID,
		Name:                 row.Name,
		Category:             row.Category,
		Description:          derefString(row.Description),
		Price:                domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		ImageURL:             derefString(row.ImageUrl),
		InStock:              row.InStock,
		RequiresPrescription: row.RequiresPrescription,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}, nil
}
