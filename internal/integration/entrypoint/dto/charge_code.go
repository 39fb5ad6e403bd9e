// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/usecase/chargecode"
)

// CreateChargeCodeRequest represents the request body for charge code creation.
type CreateChargeCodeRequest struct {
	Code           string          `json:"code" binding:"required,min=1,max=20"`
	AlternateCode  string          `json:"alternate_code,omitempty"`
	Description    string          `json:"description" binding:"required,min=1,max=255"`
	Category       string          `json:"category,omitempty"`
	StandardCharge decimal.Decimal `json:"standard_charge"`
	Taxable        bool            `json:"taxable"`
}

// UpdateChargeCodeRequest represents the request body for charge code updates.
type UpdateChargeCodeRequest struct {
	Code           *string          `json:"code,omitempty" binding:"omitempty,min=1,max=20"`
	AlternateCode  *string          `json:"alternate_code,omitempty"`
	Description    *string          `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Category       *string          `json:"category,omitempty"`
	StandardCharge *decimal.Decimal `json:"standard_charge,omitempty"`
	Taxable        *bool            `json:"taxable,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

// ChargeCodeResponse represents a charge code in API responses.
type ChargeCodeResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	AlternateCode  string          `json:"alternate_code"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	StandardCharge decimal.Decimal `json:"standard_charge"`
	Taxable        bool            `json:"taxable"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ChargeCodeListResponse represents the response for listing charge codes.
type ChargeCodeListResponse struct {
	ChargeCodes []ChargeCodeResponse `json:"charge_codes"`
}

// ToChargeCodeResponse converts a ChargeCodeOutput to a ChargeCodeResponse DTO.
func ToChargeCodeResponse(output *chargecode.ChargeCodeOutput) ChargeCodeResponse {
	return ChargeCodeResponse{
		ID:             output.ID.String(),
		Code:           output.Code,
		AlternateCode:  output.AlternateCode,
		Description:    output.Description,
		Category:       output.Category,
		StandardCharge: output.StandardCharge,
		Taxable:        output.Taxable,
		IsActive:       output.IsActive,
		CreatedAt:      output.CreatedAt,
		UpdatedAt:      output.UpdatedAt,
	}
}

// ToChargeCodeListResponse converts a list of ChargeCodeOutput to ChargeCodeListResponse.
func ToChargeCodeListResponse(outputs []*chargecode.ChargeCodeOutput) ChargeCodeListResponse {
	chargeCodes := make([]ChargeCodeResponse, len(outputs))
	for i, output := range outputs {
		chargeCodes[i] = ToChargeCodeResponse(output)
	}
	return ChargeCodeListResponse{ChargeCodes: chargeCodes}
}
