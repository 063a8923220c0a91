package domain

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is a catalog row. The cart never mutates it, the store
// subsystem owns it.
type Medicine struct {
	ID                   uuid.UUID
	Name                 string
	Category             string
	Description          string
	Price                Money
	ImageURL             string
	InStock              bool
	RequiresPrescription bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
