// Package chargecode contains the charge code catalog use cases.
package chargecode

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

// ChargeCodeOutput represents a charge code in use case outputs.
type ChargeCodeOutput struct {
	ID             uuid.UUID
	Code           string
	AlternateCode  string
	Description    string
	Category       string
	StandardCharge decimal.Decimal
	Taxable        bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toChargeCodeOutput(c *entity.ChargeCode) *ChargeCodeOutput {
	return &ChargeCodeOutput{
		ID:             c.ID,
		Code:           c.Code,
		AlternateCode:  c.AlternateCode,
		Description:    c.Description,
		Category:       c.Category,
		StandardCharge: c.StandardCharge,
		Taxable:        c.Taxable,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// CreateChargeCodeInput represents the input for charge code creation.
type CreateChargeCodeInput struct {
	Code           string
	AlternateCode  string
	Description    string
	Category       string
	StandardCharge decimal.Decimal
	Taxable        bool
}

// CreateChargeCodeOutput represents the output of charge code creation.
type CreateChargeCodeOutput struct {
	ChargeCode *ChargeCodeOutput
}

// CreateChargeCodeUseCase handles charge code creation.
type CreateChargeCodeUseCase struct {
	chargeCodeRepo adapter.ChargeCodeRepository
}

// NewCreateChargeCodeUseCase creates a new CreateChargeCodeUseCase instance.
func NewCreateChargeCodeUseCase(chargeCodeRepo adapter.ChargeCodeRepository) *CreateChargeCodeUseCase {
	return &CreateChargeCodeUseCase{chargeCodeRepo: chargeCodeRepo}
}

// Execute creates the charge code. Codes are unique.
func (uc *CreateChargeCodeUseCase) Execute(ctx context.Context, input CreateChargeCodeInput) (*CreateChargeCodeOutput, error) {
	if input.Code == "" {
		return nil, domainerror.NewChargeCodeError(
			domainerror.ErrCodeMissingChargeCode,
			"charge code is required",
			nil,
		)
	}
	if input.StandardCharge.IsNegative() {
		return nil, domainerror.NewChargeCodeError(
			domainerror.ErrCodeNegativeCharge,
			"standard charge cannot be negative",
			nil,
		)
	}

	if _, err := uc.chargeCodeRepo.FindByCode(ctx, input.Code); err == nil {
		return nil, domainerror.NewChargeCodeError(
			domainerror.ErrCodeDuplicateChargeCode,
			"charge code already in use",
			domainerror.ErrDuplicateChargeCode,
		)
	} else if !errors.Is(err, domainerror.ErrChargeCodeNotFound) {
		return nil, fmt.Errorf("failed to check charge code: %w", err)
	}

	chargeCode := entity.NewChargeCode(input.Code, input.Description, input.Category, input.StandardCharge, input.Taxable)
	chargeCode.AlternateCode = input.AlternateCode

	if err := uc.chargeCodeRepo.Create(ctx, chargeCode); err != nil {
		return nil, fmt.Errorf("failed to create charge code: %w", err)
	}

	slog.Info("Charge code created", "chargeCodeID", chargeCode.ID, "code", chargeCode.Code)

	return &CreateChargeCodeOutput{ChargeCode: toChargeCodeOutput(chargeCode)}, nil
}

// UpdateChargeCodeInput represents the input for updating a charge code.
// Nil pointers leave the stored value untouched.
type UpdateChargeCodeInput struct {
	ChargeCodeID   uuid.UUID
	Code           *string
	AlternateCode  *string
	Description    *string
	Category       *string
	StandardCharge *decimal.Decimal
	Taxable        *bool
	IsActive       *bool
}

// UpdateChargeCodeOutput represents the output of updating a charge code.
type UpdateChargeCodeOutput struct {
	ChargeCode *ChargeCodeOutput
}

// UpdateChargeCodeUseCase handles charge code updates. Updating a code only
// affects future charge lines; existing transactions keep their stored
// description and price.
type UpdateChargeCodeUseCase struct {
	chargeCodeRepo adapter.ChargeCodeRepository
}

// NewUpdateChargeCodeUseCase creates a new UpdateChargeCodeUseCase instance.
func NewUpdateChargeCodeUseCase(chargeCodeRepo adapter.ChargeCodeRepository) *UpdateChargeCodeUseCase {
	return &UpdateChargeCodeUseCase{chargeCodeRepo: chargeCodeRepo}
}

// Execute applies the update.
func (uc *UpdateChargeCodeUseCase) Execute(ctx context.Context, input UpdateChargeCodeInput) (*UpdateChargeCodeOutput, error) {
	chargeCode, err := uc.chargeCodeRepo.FindByID(ctx, input.ChargeCodeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrChargeCodeNotFound) {
			return nil, domainerror.NewChargeCodeError(
				domainerror.ErrCodeChargeCodeNotFound,
				"charge code not found",
				domainerror.ErrChargeCodeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find charge code: %w", err)
	}

	if input.Code != nil && *input.Code != chargeCode.Code {
		if *input.Code == "" {
			return nil, domainerror.NewChargeCodeError(
				domainerror.ErrCodeMissingChargeCode,
				"charge code is required",
				nil,
			)
		}
		if _, err := uc.chargeCodeRepo.FindByCode(ctx, *input.Code); err == nil {
			return nil, domainerror.NewChargeCodeError(
				domainerror.ErrCodeDuplicateChargeCode,
				"charge code already in use",
				domainerror.ErrDuplicateChargeCode,
			)
		} else if !errors.Is(err, domainerror.ErrChargeCodeNotFound) {
			return nil, fmt.Errorf("failed to check charge code: %w", err)
		}
		chargeCode.Code = *input.Code
	}
	if input.AlternateCode != nil {
		chargeCode.AlternateCode = *input.AlternateCode
	}
	if input.Description != nil {
		chargeCode.Description = *input.Description
	}
	if input.Category != nil {
		chargeCode.Category = *input.Category
	}
	if input.StandardCharge != nil {
		if input.StandardCharge.IsNegative() {
			return nil, domainerror.NewChargeCodeError(
				domainerror.ErrCodeNegativeCharge,
				"standard charge cannot be negative",
				nil,
			)
		}
		chargeCode.StandardCharge = *input.StandardCharge
	}
	if input.Taxable != nil {
		chargeCode.Taxable = *input.Taxable
	}
	if input.IsActive != nil {
		chargeCode.IsActive = *input.IsActive
	}
	chargeCode.UpdatedAt = time.Now().UTC()

	if err := uc.chargeCodeRepo.Update(ctx, chargeCode); err != nil {
		return nil, fmt.Errorf("failed to update charge code: %w", err)
	}

	return &UpdateChargeCodeOutput{ChargeCode: toChargeCodeOutput(chargeCode)}, nil
}

// ListChargeCodesInput represents the input for listing charge codes.
type ListChargeCodesInput struct {
	ActiveOnly bool
}

// ListChargeCodesOutput represents the output of listing charge codes.
type ListChargeCodesOutput struct {
	ChargeCodes []*ChargeCodeOutput
}

// ListChargeCodesUseCase lists the charge code catalog.
type ListChargeCodesUseCase struct {
	chargeCodeRepo adapter.ChargeCodeRepository
}

// NewListChargeCodesUseCase creates a new ListChargeCodesUseCase instance.
func NewListChargeCodesUseCase(chargeCodeRepo adapter.ChargeCodeRepository) *ListChargeCodesUseCase {
	return &ListChargeCodesUseCase{chargeCodeRepo: chargeCodeRepo}
}

// Execute retrieves the charge codes, ordered by code.
func (uc *ListChargeCodesUseCase) Execute(ctx context.Context, input ListChargeCodesInput) (*ListChargeCodesOutput, error) {
	chargeCodes, err := uc.chargeCodeRepo.List(ctx, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list charge codes: %w", err)
	}

	outputs := make([]*ChargeCodeOutput, len(chargeCodes))
	for i, c := range chargeCodes {
		outputs[i] = toChargeCodeOutput(c)
	}
	return &ListChargeCodesOutput{ChargeCodes: outputs}, nil
}
