package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/adapter"
	domainbilling "github.com/equivet/backend/internal/domain/billing"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// ChargeItemInput represents one line of a charge batch. When a charge code
// is supplied, an empty description and a nil unit price are pre-filled from
// the catalog; every field stays editable per line. An explicit zero price
// makes a free line even with a priced charge code.
type ChargeItemInput struct {
	ChargeCodeID *uuid.UUID
	Description  string
	Quantity     decimal.Decimal
	UnitPrice    *decimal.Decimal
	Taxable      *bool // nil falls back to the charge code's flag
	Notes        string
}

// AddChargeBatchInput represents the input for charge batch creation.
type AddChargeBatchInput struct {
	HorseID          uuid.UUID
	OwnerID          uuid.UUID
	ServiceDate      time.Time
	BillingDate      *time.Time // defaults to the service date
	Items            []ChargeItemInput
	AdministeredByID uuid.UUID
}

// AddChargeBatchOutput represents the output of charge batch creation.
type AddChargeBatchOutput struct {
	Transactions []*TransactionOutput
}

// AddChargeBatchUseCase handles charge batch entry for a horse.
type AddChargeBatchUseCase struct {
	transactionRepo adapter.TransactionRepository
	horseRepo       adapter.HorseRepository
	ownerRepo       adapter.OwnerRepository
	chargeCodeRepo  adapter.ChargeCodeRepository
}

// NewAddChargeBatchUseCase creates a new AddChargeBatchUseCase instance.
func NewAddChargeBatchUseCase(
	transactionRepo adapter.TransactionRepository,
	horseRepo adapter.HorseRepository,
	ownerRepo adapter.OwnerRepository,
	chargeCodeRepo adapter.ChargeCodeRepository,
) *AddChargeBatchUseCase {
	return &AddChargeBatchUseCase{
		transactionRepo: transactionRepo,
		horseRepo:       horseRepo,
		ownerRepo:       ownerRepo,
		chargeCodeRepo:  chargeCodeRepo,
	}
}

// Execute validates and persists the charge batch. The whole batch is
// rejected when any line fails validation; nothing is partially applied.
func (uc *AddChargeBatchUseCase) Execute(ctx context.Context, input AddChargeBatchInput) (*AddChargeBatchOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeEmptyChargeBatch,
			"no charge items provided",
			domainerror.ErrEmptyChargeBatch,
		)
	}

	if input.ServiceDate.After(endOfToday()) {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidServiceDate,
			"service date cannot be in the future",
			nil,
		)
	}

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

	if _, err := uc.ownerRepo.FindByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, domainerror.ErrOwnerNotFound) {
			return nil, domainerror.NewOwnerError(
				domainerror.ErrCodeOwnerNotFound,
				"owner not found",
				domainerror.ErrOwnerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	billingDate := input.ServiceDate
	if input.BillingDate != nil {
		billingDate = *input.BillingDate
	}

	transactions := make([]*entity.Transaction, 0, len(input.Items))
	for i, item := range input.Items {
		line, err := uc.buildLine(ctx, input, item, billingDate, i+1)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, line)
	}

	if err := uc.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to create charge batch: %w", err)
	}

	slog.Info("Charge batch created",
		"horseID", input.HorseID,
		"ownerID", input.OwnerID,
		"lines", len(transactions),
	)

	return &AddChargeBatchOutput{Transactions: toTransactionOutputs(transactions)}, nil
}

func (uc *AddChargeBatchUseCase) buildLine(
	ctx context.Context,
	input AddChargeBatchInput,
	item ChargeItemInput,
	billingDate time.Time,
	lineNumber int,
) (*entity.Transaction, error) {
	description := item.Description
	unitPrice := decimal.Zero
	if item.UnitPrice != nil {
		unitPrice = *item.UnitPrice
	}
	taxable := false

	if item.ChargeCodeID != nil {
		code, err := uc.chargeCodeRepo.FindByID(ctx, *item.ChargeCodeID)
		if err != nil {
			return nil, domainerror.NewChargeCodeError(
				domainerror.ErrCodeChargeCodeNotFound,
				fmt.Sprintf("line %d: charge code not found", lineNumber),
				domainerror.ErrChargeCodeNotFound,
			)
		}
		if !code.IsActive {
			return nil, domainerror.NewChargeCodeError(
				domainerror.ErrCodeChargeCodeInactive,
				fmt.Sprintf("line %d: charge code %s is inactive", lineNumber, code.Code),
				domainerror.ErrChargeCodeInactive,
			)
		}
		if description == "" {
			description = code.Description
		}
		if item.UnitPrice == nil {
			unitPrice = code.StandardCharge
		}
		taxable = code.Taxable
	}
	if item.Taxable != nil {
		taxable = *item.Taxable
	}

	if description == "" {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeMissingDescription,
			fmt.Sprintf("line %d: description is required", lineNumber),
			nil,
		)
	}
	if len(description) > MaxDescriptionLength {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("line %d: description must not exceed %d characters", lineNumber, MaxDescriptionLength),
			nil,
		)
	}
	if !item.Quantity.IsPositive() {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidQuantity,
			fmt.Sprintf("line %d: quantity must be greater than zero", lineNumber),
			nil,
		)
	}
	if unitPrice.IsNegative() {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidUnitPrice,
			fmt.Sprintf("line %d: unit price cannot be negative", lineNumber),
			nil,
		)
	}

	// Quantity carries 3 decimals, unit price 2; the stored total is always
	// derived from the rounded factors.
	quantity := item.Quantity.Round(3)
	unitPrice = domainbilling.RoundCurrency(unitPrice)
	total := domainbilling.LineTotal(quantity, unitPrice)

	return entity.NewTransaction(
		input.HorseID,
		input.OwnerID,
		item.ChargeCodeID,
		input.ServiceDate,
		billingDate,
		description,
		quantity,
		unitPrice,
		total,
		taxable,
		item.Notes,
		input.AdministeredByID,
	), nil
}

func endOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
