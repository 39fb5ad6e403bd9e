// Package owner contains the owner management use cases.
package owner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

// OwnerOutput represents an owner in use case outputs.
type OwnerOutput struct {
	ID            uuid.UUID
	AccountNumber string
	FarmName      string
	FirstName     string
	LastName      string
	DisplayName   string
	AddressLine1  string
	AddressLine2  string
	City          string
	State         string
	ZipCode       string
	Phone         string
	Email         string
	IsActive      bool
	Balance       decimal.Decimal
	CreditLimit   *decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toOwnerOutput(o *entity.Owner) *OwnerOutput {
	return &OwnerOutput{
		ID:            o.ID,
		AccountNumber: o.AccountNumber,
		FarmName:      o.FarmName,
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		DisplayName:   o.DisplayName(),
		AddressLine1:  o.AddressLine1,
		AddressLine2:  o.AddressLine2,
		City:          o.City,
		State:         o.State,
		ZipCode:       o.ZipCode,
		Phone:         o.Phone,
		Email:         o.Email,
		IsActive:      o.IsActive,
		Balance:       o.Balance,
		CreditLimit:   o.CreditLimit,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toOwnerOutputs(owners []*entity.Owner) []*OwnerOutput {
	outputs := make([]*OwnerOutput, len(owners))
	for i, o := range owners {
		outputs[i] = toOwnerOutput(o)
	}
	return outputs
}
