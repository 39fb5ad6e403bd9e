package horse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// CreateHorseInput represents the input for horse creation.
type CreateHorseInput struct {
	Name               string
	AccountNumber      string
	Breed              string
	Color              string
	Sex                string
	DateOfBirth        *time.Time
	RegistrationNumber string
	MicrochipID        string
	Notes              string
	Owners             []OwnershipAssignment
}

// CreateHorseOutput represents the output of horse creation.
type CreateHorseOutput struct {
	Horse *HorseOutput
}

// CreateHorseUseCase handles horse creation.
type CreateHorseUseCase struct {
	horseRepo adapter.HorseRepository
	ownerRepo adapter.OwnerRepository
}

// NewCreateHorseUseCase creates a new CreateHorseUseCase instance.
func NewCreateHorseUseCase(horseRepo adapter.HorseRepository, ownerRepo adapter.OwnerRepository) *CreateHorseUseCase {
	return &CreateHorseUseCase{horseRepo: horseRepo, ownerRepo: ownerRepo}
}

// Execute creates the horse and, when supplied, its initial ownership list.
func (uc *CreateHorseUseCase) Execute(ctx context.Context, input CreateHorseInput) (*CreateHorseOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewHorseError(
			domainerror.ErrCodeMissingHorseName,
			"horse name is required",
			nil,
		)
	}

	horse := entity.NewHorse(input.Name, input.AccountNumber)
	horse.Breed = input.Breed
	horse.Color = input.Color
	horse.Sex = input.Sex
	horse.DateOfBirth = input.DateOfBirth
	horse.RegistrationNumber = input.RegistrationNumber
	horse.MicrochipID = input.MicrochipID
	horse.Notes = input.Notes

	if len(input.Owners) > 0 {
		owners, err := buildOwnerAssociations(horse.ID, input.Owners)
		if err != nil {
			return nil, err
		}
		for _, o := range owners {
			if _, err := uc.ownerRepo.FindByID(ctx, o.OwnerID); err != nil {
				return nil, domainerror.NewOwnerError(
					domainerror.ErrCodeOwnerNotFound,
					"owner not found",
					domainerror.ErrOwnerNotFound,
				)
			}
		}
		horse.Owners = owners
	}

	if err := uc.horseRepo.Create(ctx, horse); err != nil {
		return nil, fmt.Errorf("failed to create horse: %w", err)
	}

	slog.Info("Horse created", "horseID", horse.ID, "name", horse.Name)

	return &CreateHorseOutput{Horse: toHorseOutput(horse)}, nil
}
