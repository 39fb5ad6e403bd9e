package horse

import (
	"context"
	"fmt"

	"github.com/equivet/backend/internal/application/adapter"
)

// SearchHorsesInput represents the input for searching horses.
type SearchHorsesInput struct {
	Search     string
	ActiveOnly bool
}

// SearchHorsesOutput represents the output of searching horses.
type SearchHorsesOutput struct {
	Horses []*HorseOutput
}

// SearchHorsesUseCase searches horses by name or account number.
type SearchHorsesUseCase struct {
	horseRepo adapter.HorseRepository
}

// NewSearchHorsesUseCase creates a new SearchHorsesUseCase instance.
func NewSearchHorsesUseCase(horseRepo adapter.HorseRepository) *SearchHorsesUseCase {
	return &SearchHorsesUseCase{horseRepo: horseRepo}
}

// Execute performs the search, ordered by name.
func (uc *SearchHorsesUseCase) Execute(ctx context.Context, input SearchHorsesInput) (*SearchHorsesOutput, error) {
	horses, err := uc.horseRepo.Search(ctx, adapter.HorseFilter{
		Search:     input.Search,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search horses: %w", err)
	}

	return &SearchHorsesOutput{Horses: toHorseOutputs(horses)}, nil
}
