// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/usecase/horse"
)

// OwnershipAssignmentRequest represents one ownership entry in a request.
type OwnershipAssignmentRequest struct {
	OwnerID    string           `json:"owner_id" binding:"required,uuid"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

// CreateHorseRequest represents the request body for horse creation.
type CreateHorseRequest struct {
	Name               string                       `json:"name" binding:"required,min=1,max=100"`
	AccountNumber      string                       `json:"account_number,omitempty"`
	Breed              string                       `json:"breed,omitempty"`
	Color              string                       `json:"color,omitempty"`
	Sex                string                       `json:"sex,omitempty"`
	DateOfBirth        string                       `json:"date_of_birth,omitempty"`
	RegistrationNumber string                       `json:"registration_number,omitempty"`
	MicrochipID        string                       `json:"microchip_id,omitempty"`
	Notes              string                       `json:"notes,omitempty"`
	Owners             []OwnershipAssignmentRequest `json:"owners,omitempty"`
}

// UpdateHorseRequest represents the request body for horse updates.
type UpdateHorseRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	AccountNumber      *string `json:"account_number,omitempty"`
	Breed              *string `json:"breed,omitempty"`
	Color              *string `json:"color,omitempty"`
	Sex                *string `json:"sex,omitempty"`
	DateOfBirth        *string `json:"date_of_birth,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	MicrochipID        *string `json:"microchip_id,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

// SetOwnersRequest represents the request body for replacing a horse's owners.
type SetOwnersRequest struct {
	Owners []OwnershipAssignmentRequest `json:"owners" binding:"required"`
}

// AssignLocationRequest represents the request body for moving a horse.
type AssignLocationRequest struct {
	LocationID    string `json:"location_id" binding:"required,uuid"`
	ReasonForMove string `json:"reason_for_move,omitempty"`
}

// OwnershipResponse represents one ownership entry in API responses.
type OwnershipResponse struct {
	OwnerID    string           `json:"owner_id"`
	Percentage *decimal.Decimal `json:"percentage"`
	Position   int              `json:"position"`
	StartDate  time.Time        `json:"start_date"`
	EndDate    *time.Time       `json:"end_date,omitempty"`
}

// HorseResponse represents a horse in API responses.
type HorseResponse struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	AccountNumber      string              `json:"account_number"`
	Breed              string              `json:"breed"`
	Color              string              `json:"color"`
	Sex                string              `json:"sex"`
	DateOfBirth        *time.Time          `json:"date_of_birth,omitempty"`
	RegistrationNumber string              `json:"registration_number"`
	MicrochipID        string              `json:"microchip_id"`
	CurrentLocationID  *string             `json:"current_location_id,omitempty"`
	IsActive           bool                `json:"is_active"`
	Notes              string              `json:"notes"`
	Owners             []OwnershipResponse `json:"owners"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// HorseListResponse represents the response for listing horses.
type HorseListResponse struct {
	Horses []HorseResponse `json:"horses"`
}

// AssignLocationResponse represents the response for moving a horse.
type AssignLocationResponse struct {
	LocationEntryID string    `json:"location_entry_id"`
	LocationID      string    `json:"location_id"`
	ArrivalDate     time.Time `json:"arrival_date"`
}

// ToHorseResponse converts a HorseOutput to a HorseResponse DTO.
func ToHorseResponse(output *horse.HorseOutput) HorseResponse {
	owners := make([]OwnershipResponse, len(output.Owners))
	for i, o := range output.Owners {
		owners[i] = OwnershipResponse{
			OwnerID:    o.OwnerID.String(),
			Percentage: o.Percentage,
			Position:   o.Position,
			StartDate:  o.StartDate,
			EndDate:    o.EndDate,
		}
	}

	var locationID *string
	if output.CurrentLocationID != nil {
		id := output.CurrentLocationID.String()
		locationID = &id
	}

	return HorseResponse{
		ID:                 output.ID.String(),
		Name:               output.Name,
		AccountNumber:      output.AccountNumber,
		Breed:              output.Breed,
		Color:              output.Color,
		Sex:                output.Sex,
		DateOfBirth:        output.DateOfBirth,
		RegistrationNumber: output.RegistrationNumber,
		MicrochipID:        output.MicrochipID,
		CurrentLocationID:  locationID,
		IsActive:           output.IsActive,
		Notes:              output.Notes,
		Owners:             owners,
		CreatedAt:          output.CreatedAt,
		UpdatedAt:          output.UpdatedAt,
	}
}

// ToHorseListResponse converts a list of HorseOutput to HorseListResponse.
func ToHorseListResponse(outputs []*horse.HorseOutput) HorseListResponse {
	horses := make([]HorseResponse, len(outputs))
	for i, output := range outputs {
		horses[i] = ToHorseResponse(output)
	}
	return HorseListResponse{Horses: horses}
}
