package billing

import (
	"context"
	"fmt"

	"github.com/equivet/backend/internal/application/adapter"
)

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	Filter adapter.InvoiceFilter
}

// ListInvoicesOutput represents the output of listing invoices.
type ListInvoicesOutput struct {
	Invoices []*InvoiceOutput
}

// ListInvoicesUseCase lists invoices with optional owner/status filters.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo}
}

// Execute retrieves the invoices, newest first. Line items are not loaded
// on the list path.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	invoices, err := uc.invoiceRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	outputs := make([]*InvoiceOutput, len(invoices))
	for i, invoice := range invoices {
		outputs[i] = toInvoiceOutput(invoice, nil)
	}
	return &ListInvoicesOutput{Invoices: outputs}, nil
}
