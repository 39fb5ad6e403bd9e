package owner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// GetOwnerInput represents the input for retrieving an owner.
type GetOwnerInput struct {
	OwnerID uuid.UUID
}

// GetOwnerOutput represents the output of retrieving an owner.
type GetOwnerOutput struct {
	Owner *OwnerOutput
}

// GetOwnerUseCase retrieves one owner.
type GetOwnerUseCase struct {
	ownerRepo adapter.OwnerRepository
}

// NewGetOwnerUseCase creates a new GetOwnerUseCase instance.
func NewGetOwnerUseCase(ownerRepo adapter.OwnerRepository) *GetOwnerUseCase {
	return &GetOwnerUseCase{ownerRepo: ownerRepo}
}

// Execute retrieves the owner.
func (uc *GetOwnerUseCase) Execute(ctx context.Context, input GetOwnerInput) (*GetOwnerOutput, error) {
	owner, err := uc.ownerRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOwnerNotFound) {
			return nil, domainerror.NewOwnerError(
				domainerror.ErrCodeOwnerNotFound,
				"owner not found",
				domainerror.ErrOwnerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}

	return &GetOwnerOutput{Owner: toOwnerOutput(owner)}, nil
}
