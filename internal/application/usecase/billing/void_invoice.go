package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// VoidInvoiceInput represents the input for voiding an invoice.
type VoidInvoiceInput struct {
	InvoiceID uuid.UUID
}

// VoidInvoiceOutput represents the output of voiding an invoice.
type VoidInvoiceOutput struct {
	Invoice *InvoiceOutput
}

// VoidInvoiceUseCase handles invoice voiding.
type VoidInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewVoidInvoiceUseCase creates a new VoidInvoiceUseCase instance.
func NewVoidInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *VoidInvoiceUseCase {
	return &VoidInvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Execute voids the invoice and releases its transactions back to pending.
// Paid or already-void invoices are refused.
func (uc *VoidInvoiceUseCase) Execute(ctx context.Context, input VoidInvoiceInput) (*VoidInvoiceOutput, error) {
	invoice, err := uc.invoiceRepo.Void(ctx, input.InvoiceID)
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrInvoiceNotFound):
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		case errors.Is(err, domainerror.ErrInvoiceNotVoidable):
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvoiceNotVoidable,
				"invoice has payments applied or is already void",
				domainerror.ErrInvoiceNotVoidable,
			)
		}
		return nil, fmt.Errorf("failed to void invoice: %w", err)
	}

	slog.Info("Invoice voided", "invoiceID", input.InvoiceID)

	return &VoidInvoiceOutput{Invoice: toInvoiceOutput(invoice, nil)}, nil
}
