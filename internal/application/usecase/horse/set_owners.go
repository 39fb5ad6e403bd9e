package horse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// OwnershipAssignment is one owner's share in a set-owners request. A nil
// percentage records the association without an explicit share.
type OwnershipAssignment struct {
	OwnerID    uuid.UUID
	Percentage *decimal.Decimal
}

// SetOwnersInput represents the input for replacing a horse's ownership.
type SetOwnersInput struct {
	HorseID uuid.UUID
	Owners  []OwnershipAssignment
}

// SetOwnersOutput represents the output of replacing a horse's ownership.
type SetOwnersOutput struct {
	Horse *HorseOutput
}

// SetOwnersUseCase replaces a horse's ownership associations.
type SetOwnersUseCase struct {
	horseRepo adapter.HorseRepository
	ownerRepo adapter.OwnerRepository
}

// NewSetOwnersUseCase creates a new SetOwnersUseCase instance.
func NewSetOwnersUseCase(horseRepo adapter.HorseRepository, ownerRepo adapter.OwnerRepository) *SetOwnersUseCase {
	return &SetOwnersUseCase{horseRepo: horseRepo, ownerRepo: ownerRepo}
}

// Execute replaces the horse's ownership list atomically. Position follows
// the order of the request, which later drives split resolution order.
func (uc *SetOwnersUseCase) Execute(ctx context.Context, input SetOwnersInput) (*SetOwnersOutput, error) {
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

	owners, err := uc.buildAssociations(ctx, input.HorseID, input.Owners)
	if err != nil {
		return nil, err
	}

	if err := uc.horseRepo.SetOwners(ctx, input.HorseID, owners); err != nil {
		return nil, fmt.Errorf("failed to set horse owners: %w", err)
	}

	horse, err := uc.horseRepo.FindByID(ctx, input.HorseID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload horse: %w", err)
	}

	slog.Info("Horse ownership replaced", "horseID", input.HorseID, "owners", len(owners))

	return &SetOwnersOutput{Horse: toHorseOutput(horse)}, nil
}

func (uc *SetOwnersUseCase) buildAssociations(
	ctx context.Context,
	horseID uuid.UUID,
	assignments []OwnershipAssignment,
) ([]*entity.HorseOwner, error) {
	owners, err := buildOwnerAssociations(horseID, assignments)
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
	return owners, nil
}

var ownershipBounds = struct{ min, max decimal.Decimal }{
	min: decimal.Zero,
	max: decimal.NewFromInt(100),
}

// buildOwnerAssociations validates the assignment list and turns it into
// HorseOwner records. Duplicate owners and out-of-range percentages are
// rejected; the percentages are not required to sum to 100, the split
// resolver normalizes them at invoicing time.
func buildOwnerAssociations(horseID uuid.UUID, assignments []OwnershipAssignment) ([]*entity.HorseOwner, error) {
	seen := make(map[uuid.UUID]bool, len(assignments))
	owners := make([]*entity.HorseOwner, len(assignments))
	now := time.Now().UTC()

	for i, a := range assignments {
		if seen[a.OwnerID] {
			return nil, domainerror.NewHorseError(
				domainerror.ErrCodeDuplicateHorseOwner,
				"owner listed more than once",
				domainerror.ErrDuplicateHorseOwner,
			)
		}
		seen[a.OwnerID] = true

		if a.Percentage != nil {
			if a.Percentage.LessThan(ownershipBounds.min) || a.Percentage.GreaterThan(ownershipBounds.max) {
				return nil, domainerror.NewHorseError(
					domainerror.ErrCodeInvalidPercentage,
					"ownership percentage must be between 0 and 100",
					domainerror.ErrInvalidPercentage,
				)
			}
		}

		owners[i] = &entity.HorseOwner{
			HorseID:    horseID,
			OwnerID:    a.OwnerID,
			Percentage: a.Percentage,
			Position:   i,
			StartDate:  now,
		}
	}
	return owners, nil
}
