package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// GetInvoiceInput represents the input for retrieving an invoice.
type GetInvoiceInput struct {
	InvoiceID uuid.UUID
}

// GetInvoiceOutput represents the output of retrieving an invoice.
type GetInvoiceOutput struct {
	Invoice *InvoiceOutput
}

// GetInvoiceUseCase retrieves one invoice with its line items.
type GetInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Execute retrieves the invoice.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, input GetInvoiceInput) (*GetInvoiceOutput, error) {
	result, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvoiceNotFound) {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return &GetInvoiceOutput{
		Invoice: toInvoiceOutput(result.Invoice, result.Transactions),
	}, nil
}
