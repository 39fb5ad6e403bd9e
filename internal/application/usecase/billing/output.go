// Package billing contains the charge entry and invoicing use cases.
package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

const (
	// MaxDescriptionLength is the maximum allowed length for charge descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for charge notes.
	MaxNotesLength = 1000
)

// TransactionOutput represents a charge transaction in use case outputs.
type TransactionOutput struct {
	ID               uuid.UUID
	HorseID          uuid.UUID
	OwnerID          uuid.UUID
	ChargeCodeID     *uuid.UUID
	InvoiceID        *uuid.UUID
	ServiceDate      time.Time
	BillingDate      time.Time
	Description      string
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal
	Total            decimal.Decimal
	Taxable          bool
	Notes            string
	AdministeredByID uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InvoiceOutput represents an invoice in use case outputs.
type InvoiceOutput struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	InvoiceDate  time.Time
	DueDate      *time.Time
	Subtotal     decimal.Decimal
	TaxTotal     decimal.Decimal
	Discount     decimal.Decimal
	GrandTotal   decimal.Decimal
	AmountPaid   decimal.Decimal
	BalanceDue   decimal.Decimal
	Status       entity.InvoiceStatus
	Notes        string
	Transactions []*TransactionOutput
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:               t.ID,
		HorseID:          t.HorseID,
		OwnerID:          t.OwnerID,
		ChargeCodeID:     t.ChargeCodeID,
		InvoiceID:        t.InvoiceID,
		ServiceDate:      t.ServiceDate,
		BillingDate:      t.BillingDate,
		Description:      t.Description,
		Quantity:         t.Quantity,
		UnitPrice:        t.UnitPrice,
		Total:            t.Total,
		Taxable:          t.Taxable,
		Notes:            t.Notes,
		AdministeredByID: t.AdministeredByID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toTransactionOutputs(transactions []*entity.Transaction) []*TransactionOutput {
	outputs := make([]*TransactionOutput, len(transactions))
	for i, t := range transactions {
		outputs[i] = toTransactionOutput(t)
	}
	return outputs
}

func toInvoiceOutput(invoice *entity.Invoice, transactions []*entity.Transaction) *InvoiceOutput {
	return &InvoiceOutput{
		ID:           invoice.ID,
		OwnerID:      invoice.OwnerID,
		InvoiceDate:  invoice.InvoiceDate,
		DueDate:      invoice.DueDate,
		Subtotal:     invoice.Subtotal,
		TaxTotal:     invoice.TaxTotal,
		Discount:     invoice.Discount,
		GrandTotal:   invoice.GrandTotal,
		AmountPaid:   invoice.AmountPaid,
		BalanceDue:   invoice.BalanceDue(),
		Status:       invoice.Status,
		Notes:        invoice.Notes,
		Transactions: toTransactionOutputs(transactions),
		CreatedAt:    invoice.CreatedAt,
		UpdatedAt:    invoice.UpdatedAt,
	}
}
