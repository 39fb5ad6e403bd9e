package dto

import (
	"time"

	"github.com/equivet/backend/internal/application/usecase/companyprofile"
)

// UpdateCompanyProfileRequest represents the request body for saving the
// practice profile. The whole profile is replaced on each save.
type UpdateCompanyProfileRequest struct {
	CompanyName  string `json:"company_name" binding:"required,min=1,max=255"`
	AddressLine1 string `json:"address_line1,omitempty" binding:"omitempty,max=255"`
	AddressLine2 string `json:"address_line2,omitempty" binding:"omitempty,max=255"`
	City         string `json:"city,omitempty" binding:"omitempty,max=100"`
	State        string `json:"state,omitempty" binding:"omitempty,max=100"`
	ZipCode      string `json:"zip_code,omitempty" binding:"omitempty,max=20"`
	Phone        string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Email        string `json:"email,omitempty" binding:"omitempty,email"`
	Website      string `json:"website,omitempty" binding:"omitempty,max=255"`
	Notes        string `json:"notes,omitempty"`
}

// CompanyProfileResponse represents the practice profile in API responses.
type CompanyProfileResponse struct {
	CompanyName  string    `json:"company_name"`
	AddressLine1 string    `json:"address_line1,omitempty"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	ZipCode      string    `json:"zip_code,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Website      string    `json:"website,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToCompanyProfileResponse converts a CompanyProfileOutput to a CompanyProfileResponse DTO.
func ToCompanyProfileResponse(output *companyprofile.CompanyProfileOutput) CompanyProfileResponse {
	return CompanyProfileResponse{
		CompanyName:  output.CompanyName,
		AddressLine1: output.AddressLine1,
		AddressLine2: output.AddressLine2,
		City:         output.City,
		State:        output.State,
		ZipCode:      output.ZipCode,
		Phone:        output.Phone,
		Email:        output.Email,
		Website:      output.Website,
		Notes:        output.Notes,
		UpdatedAt:    output.UpdatedAt,
	}
}
