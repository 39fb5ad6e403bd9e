package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeCode is a catalog entry for a billable service or product. It
// pre-fills charge lines (description, standard price, taxable flag) but
// every field remains editable on the individual line.
type ChargeCode struct {
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

// NewChargeCode creates a new ChargeCode entity.
func NewChargeCode(code, description, category string, standardCharge decimal.Decimal, taxable bool) *ChargeCode {
	now := time.Now().UTC()
	return &ChargeCode{
		ID:             uuid.New(),
		Code:           code,
		Description:    description,
		Category:       category,
		StandardCharge: standardCharge,
		Taxable:        taxable,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
