package horse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// DeleteHorseInput represents the input for deleting a horse.
type DeleteHorseInput struct {
	HorseID uuid.UUID
}

// DeleteHorseOutput represents the output of deleting a horse.
type DeleteHorseOutput struct {
	Deleted     bool // false when the horse was deactivated instead
	Deactivated bool
}

// DeleteHorseUseCase handles horse removal.
type DeleteHorseUseCase struct {
	horseRepo adapter.HorseRepository
}

// NewDeleteHorseUseCase creates a new DeleteHorseUseCase instance.
func NewDeleteHorseUseCase(horseRepo adapter.HorseRepository) *DeleteHorseUseCase {
	return &DeleteHorseUseCase{horseRepo: horseRepo}
}

// Execute removes the horse. A horse referenced by billing records is never
// hard-deleted; it is deactivated so its history stays intact.
func (uc *DeleteHorseUseCase) Execute(ctx context.Context, input DeleteHorseInput) (*DeleteHorseOutput, error) {
	if _, err := uc.horseRepo.FindByID(ctx, input.HorseID); err != nil {
		if errors.Is(err, domainerror.ErrHorseNotFound) {
			return nil, domainerror.NewHorseError(
				domainerror.ErrCodeHorseNotFound,
				"horse not found",
				domainerror.ErrHorseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load horse: %w", err)
	}

	hasBilling, err := uc.horseRepo.HasBillingRecords(ctx, input.HorseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check billing records: %w", err)
	}

	if hasBilling {
		if err := uc.horseRepo.Deactivate(ctx, input.HorseID); err != nil {
			return nil, fmt.Errorf("failed to deactivate horse: %w", err)
		}
		slog.Info("Horse deactivated", "horseID", input.HorseID)
		return &DeleteHorseOutput{Deactivated: true}, nil
	}

	if err := uc.horseRepo.Delete(ctx, input.HorseID); err != nil {
		return nil, fmt.Errorf("failed to delete horse: %w", err)
	}
	slog.Info("Horse deleted", "horseID", input.HorseID)
	return &DeleteHorseOutput{Deleted: true}, nil
}
