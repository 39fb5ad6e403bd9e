package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/adapter"
	domainbilling "github.com/equivet/backend/internal/domain/billing"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a pending charge.
// Fields are a closed, enumerated set; nil pointers leave the stored value
// untouched. Unknown fields never reach this layer.
type UpdateTransactionInput struct {
	TransactionID   uuid.UUID
	Description     *string
	Quantity        *decimal.Decimal
	UnitPrice       *decimal.Decimal
	Taxable         *bool
	ServiceDate     *time.Time
	BillingDate     *time.Time
	ChargeCodeID    *uuid.UUID
	ClearChargeCode bool
	Notes           *string
}

// UpdateTransactionOutput represents the output of a charge update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles edits to pending charges.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	chargeCodeRepo  adapter.ChargeCodeRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	chargeCodeRepo adapter.ChargeCodeRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		chargeCodeRepo:  chargeCodeRepo,
	}
}

// Execute performs the update. Invoiced transactions are closed for edits.
// The total is recomputed whenever quantity or unit price changes.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if !transaction.IsPending() {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeAlreadyInvoiced,
			"invoiced transactions cannot be edited",
			domainerror.ErrTransactionAlreadyInvoiced,
		)
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeMissingDescription,
				"description is required",
				nil,
			)
		}
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				nil,
			)
		}
		transaction.Description = *input.Description
	}

	if input.Quantity != nil {
		if !input.Quantity.IsPositive() {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvalidQuantity,
				"quantity must be greater than zero",
				nil,
			)
		}
		transaction.Quantity = input.Quantity.Round(3)
	}

	if input.UnitPrice != nil {
		if input.UnitPrice.IsNegative() {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvalidUnitPrice,
				"unit price cannot be negative",
				nil,
			)
		}
		transaction.UnitPrice = domainbilling.RoundCurrency(*input.UnitPrice)
	}

	if input.Quantity != nil || input.UnitPrice != nil {
		transaction.Total = domainbilling.LineTotal(transaction.Quantity, transaction.UnitPrice)
	}

	if input.Taxable != nil {
		transaction.Taxable = *input.Taxable
	}

	if input.ServiceDate != nil {
		if input.ServiceDate.After(endOfToday()) {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvalidServiceDate,
				"service date cannot be in the future",
				nil,
			)
		}
		transaction.ServiceDate = *input.ServiceDate
	}

	if input.BillingDate != nil {
		transaction.BillingDate = *input.BillingDate
	}

	if input.ClearChargeCode {
		transaction.ChargeCodeID = nil
	} else if input.ChargeCodeID != nil {
		if _, err := uc.chargeCodeRepo.FindByID(ctx, *input.ChargeCodeID); err != nil {
			return nil, domainerror.NewChargeCodeError(
				domainerror.ErrCodeChargeCodeNotFound,
				"charge code not found",
				domainerror.ErrChargeCodeNotFound,
			)
		}
		transaction.ChargeCodeID = input.ChargeCodeID
	}

	if input.Notes != nil {
		if len(*input.Notes) > MaxNotesLength {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
				nil,
			)
		}
		transaction.Notes = *input.Notes
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}
