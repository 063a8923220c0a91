package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/healthbridge/healthbridge/internal/domain"
	"github.com/healthbridge/healthbridge/internal/port"
)

// CatalogService is the read side of the medical store.
type CatalogService struct {
	medicines port.MedicineRepository
}

func NewCatalogService(medicines port.MedicineRepository) *CatalogService {
	return &CatalogService{medicines: medicines}
}

func (s *CatalogService) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	medicines, err := s.medicines.ListMedicines(ctx)
	if err != nil {
		return nil, fmt.Errorf("medicines.ListMedicines: %w", err)
	}

	return medicines, nil
}

func (s *CatalogService) GetMedicine(ctx context.Context, id uuid.UUID) (domain.Medicine, error) {
	medicine, found, err := s.medicines.GetMedicine(ctx, id)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("medicines.GetMedicine: %w", err)
	}
	if !found {
		return domain.Medicine{}, fmt.Errorf("medicine %s: %w", id, domain.ErrNotFound)
	}

	return medicine, nil
}
