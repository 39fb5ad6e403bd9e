package owner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// CreateOwnerInput represents the input for owner creation.
type CreateOwnerInput struct {
	AccountNumber string
	FarmName      string
	FirstName     string
	LastName      string
	AddressLine1  string
	AddressLine2  string
	City          string
	State         string
	ZipCode       string
	Phone         string
	Email         string
	CreditLimit   *decimal.Decimal
	Notes         string
}

// CreateOwnerOutput represents the output of owner creation.
type CreateOwnerOutput struct {
	Owner *OwnerOutput
}

// CreateOwnerUseCase handles owner creation.
type CreateOwnerUseCase struct {
	ownerRepo adapter.OwnerRepository
}

// NewCreateOwnerUseCase creates a new CreateOwnerUseCase instance.
func NewCreateOwnerUseCase(ownerRepo adapter.OwnerRepository) *CreateOwnerUseCase {
	return &CreateOwnerUseCase{ownerRepo: ownerRepo}
}

// Execute creates the owner. Some billable name is required: either a farm
// name or a personal one.
func (uc *CreateOwnerUseCase) Execute(ctx context.Context, input CreateOwnerInput) (*CreateOwnerOutput, error) {
	if input.FarmName == "" && input.FirstName == "" && input.LastName == "" {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeMissingOwnerName,
			"farm name or personal name is required",
			nil,
		)
	}

	if input.AccountNumber != "" {
		taken, err := uc.ownerRepo.ExistsByAccountNumber(ctx, input.AccountNumber, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check account number: %w", err)
		}
		if taken {
			return nil, domainerror.NewOwnerError(
				domainerror.ErrCodeDuplicateAccountNumber,
				"account number already in use",
				domainerror.ErrDuplicateAccountNumber,
			)
		}
	}

	owner := entity.NewOwner(input.AccountNumber, input.FarmName, input.FirstName, input.LastName)
	owner.AddressLine1 = input.AddressLine1
	owner.AddressLine2 = input.AddressLine2
	owner.City = input.City
	owner.State = input.State
	owner.ZipCode = input.ZipCode
	owner.Phone = input.Phone
	owner.Email = input.Email
	owner.CreditLimit = input.CreditLimit
	owner.Notes = input.Notes

	if err := uc.ownerRepo.Create(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	slog.Info("Owner created", "ownerID", owner.ID, "displayName", owner.DisplayName())

	return &CreateOwnerOutput{Owner: toOwnerOutput(owner)}, nil
}
