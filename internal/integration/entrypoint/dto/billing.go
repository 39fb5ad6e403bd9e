// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/usecase/billing"
)

// ChargeItemRequest represents one charge line in a batch request.
type ChargeItemRequest struct {
	ChargeCodeID *string          `json:"charge_code_id,omitempty" binding:"omitempty,uuid"`
	Description  string           `json:"description,omitempty"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	Taxable      *bool            `json:"taxable,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// AddChargeBatchRequest represents the request body for charge batch creation.
type AddChargeBatchRequest struct {
	OwnerID     string              `json:"owner_id" binding:"required,uuid"`
	ServiceDate string              `json:"service_date" binding:"required"`
	BillingDate string              `json:"billing_date,omitempty"`
	Items       []ChargeItemRequest `json:"items" binding:"required,min=1"`
}

// UpdateTransactionRequest represents the request body for editing a pending charge.
type UpdateTransactionRequest struct {
	Description     *string          `json:"description,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	Taxable         *bool            `json:"taxable,omitempty"`
	ServiceDate     *string          `json:"service_date,omitempty"`
	BillingDate     *string          `json:"billing_date,omitempty"`
	ChargeCodeID    *string          `json:"charge_code_id,omitempty" binding:"omitempty,uuid"`
	ClearChargeCode bool             `json:"clear_charge_code,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// GenerateInvoicesRequest represents the request body for invoice generation.
type GenerateInvoicesRequest struct {
	TransactionIDs []string         `json:"transaction_ids,omitempty" binding:"omitempty,dive,uuid"`
	InvoiceDate    string           `json:"invoice_date,omitempty"`
	DueDate        string           `json:"due_date,omitempty"`
	TaxRate        *decimal.Decimal `json:"tax_rate,omitempty"`
	ManualTax      *decimal.Decimal `json:"manual_tax,omitempty"`
	Discount       decimal.Decimal  `json:"discount"`
	Notes          string           `json:"notes,omitempty"`
}

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	OwnerID     string          `json:"owner_id" binding:"required,uuid"`
	InvoiceID   *string         `json:"invoice_id,omitempty" binding:"omitempty,uuid"`
	PaymentDate string          `json:"payment_date,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// TransactionResponse represents a charge transaction in API responses.
type TransactionResponse struct {
	ID               string          `json:"id"`
	HorseID          string          `json:"horse_id"`
	OwnerID          string          `json:"owner_id"`
	ChargeCodeID     *string         `json:"charge_code_id,omitempty"`
	InvoiceID        *string         `json:"invoice_id,omitempty"`
	ServiceDate      time.Time       `json:"service_date"`
	BillingDate      time.Time       `json:"billing_date"`
	Description      string          `json:"description"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Total            decimal.Decimal `json:"total"`
	Taxable          bool            `json:"taxable"`
	Notes            string          `json:"notes"`
	AdministeredByID string          `json:"administered_by_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the response for listing charges.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// PendingChargesResponse represents the response for listing pending charges.
type PendingChargesResponse struct {
	Transactions    []TransactionResponse `json:"transactions"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	TaxableSubtotal decimal.Decimal       `json:"taxable_subtotal"`
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	OwnerID      string                `json:"owner_id"`
	InvoiceDate  time.Time             `json:"invoice_date"`
	DueDate      *time.Time            `json:"due_date,omitempty"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	TaxTotal     decimal.Decimal       `json:"tax_total"`
	Discount     decimal.Decimal       `json:"discount"`
	GrandTotal   decimal.Decimal       `json:"grand_total"`
	AmountPaid   decimal.Decimal       `json:"amount_paid"`
	BalanceDue   decimal.Decimal       `json:"balance_due"`
	Status       string                `json:"status"`
	Notes        string                `json:"notes"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// PaymentResponse represents the response for recording a payment.
type PaymentResponse struct {
	PaymentID string           `json:"payment_id"`
	Invoice   *InvoiceResponse `json:"invoice,omitempty"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(output *billing.TransactionOutput) TransactionResponse {
	var chargeCodeID *string
	if output.ChargeCodeID != nil {
		id := output.ChargeCodeID.String()
		chargeCodeID = &id
	}
	var invoiceID *string
	if output.InvoiceID != nil {
		id := output.InvoiceID.String()
		invoiceID = &id
	}

	return TransactionResponse{
		ID:               output.ID.String(),
		HorseID:          output.HorseID.String(),
		OwnerID:          output.OwnerID.String(),
		ChargeCodeID:     chargeCodeID,
		InvoiceID:        invoiceID,
		ServiceDate:      output.ServiceDate,
		BillingDate:      output.BillingDate,
		Description:      output.Description,
		Quantity:         output.Quantity,
		UnitPrice:        output.UnitPrice,
		Total:            output.Total,
		Taxable:          output.Taxable,
		Notes:            output.Notes,
		AdministeredByID: output.AdministeredByID.String(),
		CreatedAt:        output.CreatedAt,
		UpdatedAt:        output.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of TransactionOutput to TransactionListResponse.
func ToTransactionListResponse(outputs []*billing.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{Transactions: transactions}
}

// ToInvoiceResponse converts an InvoiceOutput to an InvoiceResponse DTO.
func ToInvoiceResponse(output *billing.InvoiceOutput) InvoiceResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}

	return InvoiceResponse{
		ID:           output.ID.String(),
		OwnerID:      output.OwnerID.String(),
		InvoiceDate:  output.InvoiceDate,
		DueDate:      output.DueDate,
		Subtotal:     output.Subtotal,
		TaxTotal:     output.TaxTotal,
		Discount:     output.Discount,
		GrandTotal:   output.GrandTotal,
		AmountPaid:   output.AmountPaid,
		BalanceDue:   output.BalanceDue,
		Status:       string(output.Status),
		Notes:        output.Notes,
		Transactions: transactions,
		CreatedAt:    output.CreatedAt,
		UpdatedAt:    output.UpdatedAt,
	}
}

// ToInvoiceListResponse converts a list of InvoiceOutput to InvoiceListResponse.
func ToInvoiceListResponse(outputs []*billing.InvoiceOutput) InvoiceListResponse {
	invoices := make([]InvoiceResponse, len(outputs))
	for i, output := range outputs {
		invoices[i] = ToInvoiceResponse(output)
	}
	return InvoiceListResponse{Invoices: invoices}
}
