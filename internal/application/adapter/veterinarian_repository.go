package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// VeterinarianRepository defines persistence operations for veterinarians.
type VeterinarianRepository interface {
	// Create persists a new veterinarian.
	Create(ctx context.Context, vet *entity.Veterinarian) error

	// FindByID retrieves a veterinarian by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Veterinarian, error)

	// ExistsByLicenseNumber checks whether a license number is taken,
	// optionally excluding one veterinarian (for updates).
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID *uuid.UUID) (bool, error)

	// List retrieves veterinarians ordered by last then first name.
	List(ctx context.Context, activeOnly bool) ([]*entity.Veterinarian, error)

	// Update persists changes to a veterinarian.
	Update(ctx context.Context, vet *entity.Veterinarian) error
}
