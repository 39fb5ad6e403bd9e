package owner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// UpdateOwnerInput represents the input for updating an owner. Nil pointers
// leave the stored value untouched. Balance is deliberately absent; it is
// maintained by invoicing and payment recording only.
type UpdateOwnerInput struct {
	OwnerID          uuid.UUID
	AccountNumber    *string
	FarmName         *string
	FirstName        *string
	LastName         *string
	AddressLine1     *string
	AddressLine2     *string
	City             *string
	State            *string
	ZipCode          *string
	Phone            *string
	Email            *string
	IsActive         *bool
	CreditLimit      *decimal.Decimal
	ClearCreditLimit bool
	Notes            *string
}

// UpdateOwnerOutput represents the output of updating an owner.
type UpdateOwnerOutput struct {
	Owner *OwnerOutput
}

// UpdateOwnerUseCase handles owner updates.
type UpdateOwnerUseCase struct {
	ownerRepo adapter.OwnerRepository
}

// NewUpdateOwnerUseCase creates a new UpdateOwnerUseCase instance.
func NewUpdateOwnerUseCase(ownerRepo adapter.OwnerRepository) *UpdateOwnerUseCase {
	return &UpdateOwnerUseCase{ownerRepo: ownerRepo}
}

// Execute applies the update.
func (uc *UpdateOwnerUseCase) Execute(ctx context.Context, input UpdateOwnerInput) (*UpdateOwnerOutput, error) {
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

	if input.AccountNumber != nil && *input.AccountNumber != owner.AccountNumber {
		if *input.AccountNumber != "" {
			taken, err := uc.ownerRepo.ExistsByAccountNumber(ctx, *input.AccountNumber, &owner.ID)
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
		owner.AccountNumber = *input.AccountNumber
	}

	if input.FarmName != nil {
		owner.FarmName = *input.FarmName
	}
	if input.FirstName != nil {
		owner.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		owner.LastName = *input.LastName
	}
	if owner.FarmName == "" && owner.FirstName == "" && owner.LastName == "" {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeMissingOwnerName,
			"farm name or personal name is required",
			nil,
		)
	}

	if input.AddressLine1 != nil {
		owner.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		owner.AddressLine2 = *input.AddressLine2
	}
	if input.City != nil {
		owner.City = *input.City
	}
	if input.State != nil {
		owner.State = *input.State
	}
	if input.ZipCode != nil {
		owner.ZipCode = *input.ZipCode
	}
	if input.Phone != nil {
		owner.Phone = *input.Phone
	}
	if input.Email != nil {
		owner.Email = *input.Email
	}
	if input.IsActive != nil {
		owner.IsActive = *input.IsActive
	}
	if input.ClearCreditLimit {
		owner.CreditLimit = nil
	} else if input.CreditLimit != nil {
		owner.CreditLimit = input.CreditLimit
	}
	if input.Notes != nil {
		owner.Notes = *input.Notes
	}
	owner.UpdatedAt = time.Now().UTC()

	if err := uc.ownerRepo.Update(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to update owner: %w", err)
	}

	return &UpdateOwnerOutput{Owner: toOwnerOutput(owner)}, nil
}
