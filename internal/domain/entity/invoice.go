package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusVoid          InvoiceStatus = "void"
)

// Invoice is the aggregate billing document for one owner. Subtotal is a
// snapshot of the attached transactions' totals at generation time; it is
// not recomputed afterwards.
type Invoice struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	InvoiceDate time.Time
	DueDate     *time.Time
	Subtotal    decimal.Decimal
	TaxTotal    decimal.Decimal
	Discount    decimal.Decimal
	GrandTotal  decimal.Decimal // subtotal + tax - discount
	AmountPaid  decimal.Decimal
	Status      InvoiceStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BalanceDue returns the outstanding amount on the invoice.
func (i *Invoice) BalanceDue() decimal.Decimal {
	return i.GrandTotal.Sub(i.AmountPaid)
}

// InvoiceWithTransactions pairs an invoice with its line items.
type InvoiceWithTransactions struct {
	Invoice      *Invoice
	Transactions []*Transaction
}

// Payment records money received from an owner, optionally applied to a
// specific invoice.
type Payment struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	InvoiceID   *uuid.UUID
	PaymentDate time.Time
	Amount      decimal.Decimal
	Method      string
	Reference   string
	Notes       string
	CreatedAt   time.Time
}
