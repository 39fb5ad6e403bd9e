package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single billable line item for a horse. The
// bill-to owner is fixed at creation time; it is not re-derived from the
// horse's current ownership later. A transaction is pending while InvoiceID
// is nil and becomes closed for billing-relevant edits once invoiced.
type Transaction struct {
	ID               uuid.UUID
	HorseID          uuid.UUID
	OwnerID          uuid.UUID
	ChargeCodeID     *uuid.UUID
	InvoiceID        *uuid.UUID
	ServiceDate      time.Time
	BillingDate      time.Time
	Description      string
	Quantity         decimal.Decimal // 3-decimal precision
	UnitPrice        decimal.Decimal // 2-decimal precision
	Total            decimal.Decimal // quantity x unit price, 2-decimal half-up
	Taxable          bool
	Notes            string
	AdministeredByID uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTransaction creates a new pending Transaction. Total must be supplied
// by the caller (computed via billing.LineTotal) so the rounding rule lives
// in exactly one place.
func NewTransaction(
	horseID, ownerID uuid.UUID,
	chargeCodeID *uuid.UUID,
	serviceDate, billingDate time.Time,
	description string,
	quantity, unitPrice, total decimal.Decimal,
	taxable bool,
	notes string,
	administeredByID uuid.UUID,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:               uuid.New(),
		HorseID:          horseID,
		OwnerID:          ownerID,
		ChargeCodeID:     chargeCodeID,
		ServiceDate:      serviceDate,
		BillingDate:      billingDate,
		Description:      description,
		Quantity:         quantity,
		UnitPrice:        unitPrice,
		Total:            total,
		Taxable:          taxable,
		Notes:            notes,
		AdministeredByID: administeredByID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsPending reports whether the transaction has not been invoiced yet.
func (t *Transaction) IsPending() bool {
	return t.InvoiceID == nil
}
