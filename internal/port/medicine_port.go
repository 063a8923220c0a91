package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthbridge/healthbridge/internal/domain"
)

type MedicineRepository interface {
	ListMedicines(ctx context.Context) ([]domain.Medicine, error)
	GetMedicine(ctx context.Context, id uuid.UUID) (domain.Medicine, bool, error)
}
