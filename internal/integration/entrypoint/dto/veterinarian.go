package dto

import (
	"time"

	"github.com/equivet/backend/internal/application/usecase/veterinarian"
)

// CreateVeterinarianRequest represents the request body for veterinarian creation.
type CreateVeterinarianRequest struct {
	FirstName     string `json:"first_name" binding:"required,min=1,max=50"`
	LastName      string `json:"last_name" binding:"required,min=1,max=50"`
	LicenseNumber string `json:"license_number,omitempty" binding:"omitempty,max=50"`
	Phone         string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Email         string `json:"email,omitempty" binding:"omitempty,email"`
}

// UpdateVeterinarianRequest represents the request body for veterinarian updates.
type UpdateVeterinarianRequest struct {
	FirstName     *string `json:"first_name,omitempty" binding:"omitempty,min=1,max=50"`
	LastName      *string `json:"last_name,omitempty" binding:"omitempty,min=1,max=50"`
	LicenseNumber *string `json:"license_number,omitempty" binding:"omitempty,max=50"`
	Phone         *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// VeterinarianResponse represents a veterinarian in API responses.
type VeterinarianResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	LicenseNumber string    `json:"license_number,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// VeterinarianListResponse represents the response for listing veterinarians.
type VeterinarianListResponse struct {
	Veterinarians []VeterinarianResponse `json:"veterinarians"`
}

// ToVeterinarianResponse converts a VeterinarianOutput to a VeterinarianResponse DTO.
func ToVeterinarianResponse(output *veterinarian.VeterinarianOutput) VeterinarianResponse {
	return VeterinarianResponse{
		ID:            output.ID.String(),
		FirstName:     output.FirstName,
		LastName:      output.LastName,
		LicenseNumber: output.LicenseNumber,
		Phone:         output.Phone,
		Email:         output.Email,
		IsActive:      output.IsActive,
		CreatedAt:     output.CreatedAt,
		UpdatedAt:     output.UpdatedAt,
	}
}

// ToVeterinarianListResponse converts a list of VeterinarianOutput to VeterinarianListResponse.
func ToVeterinarianListResponse(outputs []*veterinarian.VeterinarianOutput) VeterinarianListResponse {
	vets := make([]VeterinarianResponse, len(outputs))
	for i, output := range outputs {
		vets[i] = ToVeterinarianResponse(output)
	}
	return VeterinarianListResponse{Veterinarians: vets}
}
