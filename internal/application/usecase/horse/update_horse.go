package horse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// UpdateHorseInput represents the input for updating a horse. Nil pointers
// leave the stored value untouched.
type UpdateHorseInput struct {
	HorseID            uuid.UUID
	Name               *string
	AccountNumber      *string
	Breed              *string
	Color              *string
	Sex                *string
	DateOfBirth        *time.Time
	RegistrationNumber *string
	MicrochipID        *string
	IsActive           *bool
	Notes              *string
}

// UpdateHorseOutput represents the output of updating a horse.
type UpdateHorseOutput struct {
	Horse *HorseOutput
}

// UpdateHorseUseCase handles horse updates.
type UpdateHorseUseCase struct {
	horseRepo adapter.HorseRepository
}

// NewUpdateHorseUseCase creates a new UpdateHorseUseCase instance.
func NewUpdateHorseUseCase(horseRepo adapter.HorseRepository) *UpdateHorseUseCase {
	return &UpdateHorseUseCase{horseRepo: horseRepo}
}

// Execute applies the update.
func (uc *UpdateHorseUseCase) Execute(ctx context.Context, input UpdateHorseInput) (*UpdateHorseOutput, error) {
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

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewHorseError(
				domainerror.ErrCodeMissingHorseName,
				"horse name is required",
				nil,
			)
		}
		horse.Name = *input.Name
	}
	if input.AccountNumber != nil {
		horse.AccountNumber = *input.AccountNumber
	}
	if input.Breed != nil {
		horse.Breed = *input.Breed
	}
	if input.Color != nil {
		horse.Color = *input.Color
	}
	if input.Sex != nil {
		horse.Sex = *input.Sex
	}
	if input.DateOfBirth != nil {
		horse.DateOfBirth = input.DateOfBirth
	}
	if input.RegistrationNumber != nil {
		horse.RegistrationNumber = *input.RegistrationNumber
	}
	if input.MicrochipID != nil {
		horse.MicrochipID = *input.MicrochipID
	}
	if input.IsActive != nil {
		horse.IsActive = *input.IsActive
	}
	if input.Notes != nil {
		horse.Notes = *input.Notes
	}
	horse.UpdatedAt = time.Now().UTC()

	if err := uc.horseRepo.Update(ctx, horse); err != nil {
		return nil, fmt.Errorf("failed to update horse: %w", err)
	}

	return &UpdateHorseOutput{Horse: toHorseOutput(horse)}, nil
}
