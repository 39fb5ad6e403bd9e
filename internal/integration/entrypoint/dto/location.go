// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/equivet/backend/internal/application/usecase/location"
)

// CreateLocationRequest represents the request body for location creation.
type CreateLocationRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// UpdateLocationRequest represents the request body for location updates.
type UpdateLocationRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// LocationResponse represents a location in API responses.
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationListResponse represents the response for listing locations.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ToLocationResponse converts a LocationOutput to a LocationResponse DTO.
func ToLocationResponse(output *location.LocationOutput) LocationResponse {
	return LocationResponse{
		ID:          output.ID.String(),
		Name:        output.Name,
		Description: output.Description,
		IsActive:    output.IsActive,
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
}

// ToLocationListResponse converts a list of LocationOutput to LocationListResponse.
func ToLocationListResponse(outputs []*location.LocationOutput) LocationListResponse {
	locations := make([]LocationResponse, len(outputs))
	for i, output := range outputs {
		locations[i] = ToLocationResponse(output)
	}
	return LocationListResponse{Locations: locations}
}
