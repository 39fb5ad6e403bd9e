package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// OwnerFilter defines filter options for listing owners.
type OwnerFilter struct {
	Search     string // matches farm, last or first name, case-insensitive
	ActiveOnly bool
}

// OwnerRepository defines persistence operations for owners.
type OwnerRepository interface {
	// Create persists a new owner.
	Create(ctx context.Context, owner *entity.Owner) error

	// FindByID retrieves an owner by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error)

	// FindByFilter lists owners matching the filter, ordered by farm name
	// then last name.
	FindByFilter(ctx context.Context, filter OwnerFilter) ([]*entity.Owner, error)

	// ExistsByAccountNumber checks whether an account number is taken,
	// optionally excluding one owner (for updates).
	ExistsByAccountNumber(ctx context.Context, accountNumber string, excludeID *uuid.UUID) (bool, error)

	// Update persists changes to an owner.
	Update(ctx context.Context, owner *entity.Owner) error
}
