package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// HorseFilter defines filter options for searching horses.
type HorseFilter struct {
	Search     string // matches name or account number, case-insensitive
	ActiveOnly bool
}

// HorseRepository defines persistence operations for horses and their
// ownership and location records.
type HorseRepository interface {
	// Create persists a new horse.
	Create(ctx context.Context, horse *entity.Horse) error

	// FindByID retrieves a horse with its ownership associations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Horse, error)

	// Search lists horses matching the filter, ordered by name.
	Search(ctx context.Context, filter HorseFilter) ([]*entity.Horse, error)

	// Update persists changes to a horse.
	Update(ctx context.Context, horse *entity.Horse) error

	// SetOwners replaces the horse's ownership associations atomically.
	SetOwners(ctx context.Context, horseID uuid.UUID, owners []*entity.HorseOwner) error

	// AssignLocation opens a new current location entry and closes the prior
	// one in the same database transaction, keeping the one-current-row
	// invariant.
	AssignLocation(ctx context.Context, horseID, locationID uuid.UUID, reason string) (*entity.HorseLocation, error)

	// HasBillingRecords reports whether any transactions reference the horse.
	HasBillingRecords(ctx context.Context, horseID uuid.UUID) (bool, error)

	// Deactivate marks the horse inactive.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Delete removes a horse that has no billing records.
	Delete(ctx context.Context, id uuid.UUID) error
}
