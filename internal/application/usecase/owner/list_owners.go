package owner

import (
	"context"
	"fmt"

	"github.com/equivet/backend/internal/application/adapter"
)

// ListOwnersInput represents the input for listing owners.
type ListOwnersInput struct {
	Search     string
	ActiveOnly bool
}

// ListOwnersOutput represents the output of listing owners.
type ListOwnersOutput struct {
	Owners []*OwnerOutput
}

// ListOwnersUseCase lists owners with an optional search filter.
type ListOwnersUseCase struct {
	ownerRepo adapter.OwnerRepository
}

// NewListOwnersUseCase creates a new ListOwnersUseCase instance.
func NewListOwnersUseCase(ownerRepo adapter.OwnerRepository) *ListOwnersUseCase {
	return &ListOwnersUseCase{ownerRepo: ownerRepo}
}

// Execute retrieves the owners, ordered by farm name then last name.
func (uc *ListOwnersUseCase) Execute(ctx context.Context, input ListOwnersInput) (*ListOwnersOutput, error) {
	owners, err := uc.ownerRepo.FindByFilter(ctx, adapter.OwnerFilter{
		Search:     input.Search,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	return &ListOwnersOutput{Owners: toOwnerOutputs(owners)}, nil
}
