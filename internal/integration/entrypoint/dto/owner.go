// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/usecase/owner"
)

// CreateOwnerRequest represents the request body for owner creation.
type CreateOwnerRequest struct {
	AccountNumber string           `json:"account_number,omitempty"`
	FarmName      string           `json:"farm_name,omitempty"`
	FirstName     string           `json:"first_name,omitempty"`
	LastName      string           `json:"last_name,omitempty"`
	AddressLine1  string           `json:"address_line1,omitempty"`
	AddressLine2  string           `json:"address_line2,omitempty"`
	City          string           `json:"city,omitempty"`
	State         string           `json:"state,omitempty"`
	ZipCode       string           `json:"zip_code,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	Email         string           `json:"email,omitempty" binding:"omitempty,email"`
	CreditLimit   *decimal.Decimal `json:"credit_limit,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// UpdateOwnerRequest represents the request body for owner updates.
type UpdateOwnerRequest struct {
	AccountNumber    *string          `json:"account_number,omitempty"`
	FarmName         *string          `json:"farm_name,omitempty"`
	FirstName        *string          `json:"first_name,omitempty"`
	LastName         *string          `json:"last_name,omitempty"`
	AddressLine1     *string          `json:"address_line1,omitempty"`
	AddressLine2     *string          `json:"address_line2,omitempty"`
	City             *string          `json:"city,omitempty"`
	State            *string          `json:"state,omitempty"`
	ZipCode          *string          `json:"zip_code,omitempty"`
	Phone            *string          `json:"phone,omitempty"`
	Email            *string          `json:"email,omitempty" binding:"omitempty,email"`
	IsActive         *bool            `json:"is_active,omitempty"`
	CreditLimit      *decimal.Decimal `json:"credit_limit,omitempty"`
	ClearCreditLimit bool             `json:"clear_credit_limit,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

// OwnerResponse represents an owner in API responses.
type OwnerResponse struct {
	ID            string           `json:"id"`
	AccountNumber string           `json:"account_number"`
	FarmName      string           `json:"farm_name"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	DisplayName   string           `json:"display_name"`
	AddressLine1  string           `json:"address_line1"`
	AddressLine2  string           `json:"address_line2"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	ZipCode       string           `json:"zip_code"`
	Phone         string           `json:"phone"`
	Email         string           `json:"email"`
	IsActive      bool             `json:"is_active"`
	Balance       decimal.Decimal  `json:"balance"`
	CreditLimit   *decimal.Decimal `json:"credit_limit,omitempty"`
	Notes         string           `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// OwnerListResponse represents the response for listing owners.
type OwnerListResponse struct {
	Owners []OwnerResponse `json:"owners"`
}

// ToOwnerResponse converts an OwnerOutput to an OwnerResponse DTO.
func ToOwnerResponse(output *owner.OwnerOutput) OwnerResponse {
	return OwnerResponse{
		ID:            output.ID.String(),
		AccountNumber: output.AccountNumber,
		FarmName:      output.FarmName,
		FirstName:     output.FirstName,
		LastName:      output.LastName,
		DisplayName:   output.DisplayName,
		AddressLine1:  output.AddressLine1,
		AddressLine2:  output.AddressLine2,
		City:          output.City,
		State:         output.State,
		ZipCode:       output.ZipCode,
		Phone:         output.Phone,
		Email:         output.Email,
		IsActive:      output.IsActive,
		Balance:       output.Balance,
		CreditLimit:   output.CreditLimit,
		Notes:         output.Notes,
		CreatedAt:     output.CreatedAt,
		UpdatedAt:     output.UpdatedAt,
	}
}

// ToOwnerListResponse converts a list of OwnerOutput to OwnerListResponse.
func ToOwnerListResponse(outputs []*owner.OwnerOutput) OwnerListResponse {
	owners := make([]OwnerResponse, len(outputs))
	for i, output := range outputs {
		owners[i] = ToOwnerResponse(output)
	}
	return OwnerListResponse{Owners: owners}
}
