package horse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// AssignLocationInput represents the input for moving a horse.
type AssignLocationInput struct {
	HorseID       uuid.UUID
	LocationID    uuid.UUID
	ReasonForMove string
}

// AssignLocationOutput represents the output of moving a horse.
type AssignLocationOutput struct {
	LocationEntryID uuid.UUID
	LocationID      uuid.UUID
	ArrivalDate     time.Time
}

// AssignLocationUseCase moves a horse to a new location.
type AssignLocationUseCase struct {
	horseRepo    adapter.HorseRepository
	locationRepo adapter.LocationRepository
}

// NewAssignLocationUseCase creates a new AssignLocationUseCase instance.
func NewAssignLocationUseCase(
	horseRepo adapter.HorseRepository,
	locationRepo adapter.LocationRepository,
) *AssignLocationUseCase {
	return &AssignLocationUseCase{horseRepo: horseRepo, locationRepo: locationRepo}
}

// Execute opens a new current location entry and closes the prior one in
// the same unit of work, so a horse never has two current entries.
func (uc *AssignLocationUseCase) Execute(ctx context.Context, input AssignLocationInput) (*AssignLocationOutput, error) {
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

	if _, err := uc.locationRepo.FindByID(ctx, input.LocationID); err != nil {
		if errors.Is(err, domainerror.ErrLocationNotFound) {
			return nil, domainerror.NewLocationError(
				domainerror.ErrCodeLocationNotFound,
				"location not found",
				domainerror.ErrLocationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load location: %w", err)
	}

	entry, err := uc.horseRepo.AssignLocation(ctx, input.HorseID, input.LocationID, input.ReasonForMove)
	if err != nil {
		return nil, fmt.Errorf("failed to assign location: %w", err)
	}

	slog.Info("Horse moved", "horseID", input.HorseID, "locationID", input.LocationID)

	return &AssignLocationOutput{
		LocationEntryID: entry.ID,
		LocationID:      entry.LocationID,
		ArrivalDate:     entry.ArrivalDate,
	}, nil
}
