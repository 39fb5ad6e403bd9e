// Package horse contains the horse management use cases.
package horse

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

// OwnershipOutput represents one ownership association in use case outputs.
type OwnershipOutput struct {
	OwnerID    uuid.UUID
	Percentage *decimal.Decimal
	Position   int
	StartDate  time.Time
	EndDate    *time.Time
}

// HorseOutput represents a horse in use case outputs.
type HorseOutput struct {
	ID                 uuid.UUID
	Name               string
	AccountNumber      string
	Breed              string
	Color              string
	Sex                string
	DateOfBirth        *time.Time
	RegistrationNumber string
	MicrochipID        string
	CurrentLocationID  *uuid.UUID
	IsActive           bool
	Notes              string
	Owners             []*OwnershipOutput
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func toHorseOutput(h *entity.Horse) *HorseOutput {
	owners := make([]*OwnershipOutput, len(h.Owners))
	for i, o := range h.Owners {
		owners[i] = &OwnershipOutput{
			OwnerID:    o.OwnerID,
			Percentage: o.Percentage,
			Position:   o.Position,
			StartDate:  o.StartDate,
			EndDate:    o.EndDate,
		}
	}
	return &HorseOutput{
		ID:                 h.ID,
		Name:               h.Name,
		AccountNumber:      h.AccountNumber,
		Breed:              h.Breed,
		Color:              h.Color,
		Sex:                h.Sex,
		DateOfBirth:        h.DateOfBirth,
		RegistrationNumber: h.RegistrationNumber,
		MicrochipID:        h.MicrochipID,
		CurrentLocationID:  h.CurrentLocationID,
		IsActive:           h.IsActive,
		Notes:              h.Notes,
		Owners:             owners,
		CreatedAt:          h.CreatedAt,
		UpdatedAt:          h.UpdatedAt,
	}
}

func toHorseOutputs(horses []*entity.Horse) []*HorseOutput {
	outputs := make([]*HorseOutput, len(horses))
	for i, h := range horses {
		outputs[i] = toHorseOutput(h)
	}
	return outputs
}
