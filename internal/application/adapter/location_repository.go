package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// LocationRepository defines persistence operations for locations.
type LocationRepository interface {
	// Create persists a new location.
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a location by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// ExistsByName checks whether a location name is taken, optionally
	// excluding one location (for updates).
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	// List retrieves locations ordered by name.
	List(ctx context.Context, activeOnly bool) ([]*entity.Location, error)

	// Update persists changes to a location.
	Update(ctx context.Context, location *entity.Location) error

	// CountCurrentHorses counts horses whose current location entry points here.
	CountCurrentHorses(ctx context.Context, locationID uuid.UUID) (int64, error)

	// Delete removes a location that houses no horses.
	Delete(ctx context.Context, id uuid.UUID) error
}
