package horse

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// GetHorseInput represents the input for retrieving a horse.
type GetHorseInput struct {
	HorseID uuid.UUID
}

// GetHorseOutput represents the output of retrieving a horse.
type GetHorseOutput struct {
	Horse *HorseOutput
}

// GetHorseUseCase retrieves one horse with its ownership list.
type GetHorseUseCase struct {
	horseRepo adapter.HorseRepository
}

// NewGetHorseUseCase creates a new GetHorseUseCase instance.
func NewGetHorseUseCase(horseRepo adapter.HorseRepository) *GetHorseUseCase {
	return &GetHorseUseCase{horseRepo: horseRepo}
}

// Execute retrieves the horse.
func (uc *GetHorseUseCase) Execute(ctx context.Context, input GetHorseInput) (*GetHorseOutput, error) {
	horse, err := uc.horseRepo.FindByID(ctx, input.HorseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHorseNotFound) {
			return nil, domainerror.NewHorseError(
				domainerror.ErrCodeHorseNotFound,
				"horse not found",
				domainerror.ErrHorseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find horse: %w", err)
	}

	return &GetHorseOutput{Horse: toHorseOutput(horse)}, nil
}
