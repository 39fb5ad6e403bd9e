package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// ChargeCodeRepository defines persistence operations for the charge code catalog.
type ChargeCodeRepository interface {
	// Create persists a new charge code.
	Create(ctx context.Context, chargeCode *entity.ChargeCode) error

	// FindByID retrieves a charge code by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ChargeCode, error)

	// FindByCode retrieves a charge code by its unique code.
	FindByCode(ctx context.Context, code string) (*entity.ChargeCode, error)

	// List retrieves charge codes ordered by code.
	List(ctx context.Context, activeOnly bool) ([]*entity.ChargeCode, error)

	// Update persists changes to a charge code.
	Update(ctx context.Context, chargeCode *entity.ChargeCode) error
}
