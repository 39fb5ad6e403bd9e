package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// RecordPaymentInput represents the input for recording a payment. A nil
// InvoiceID records an on-account payment for the owner without touching any
// invoice.
type RecordPaymentInput struct {
	OwnerID     uuid.UUID
	InvoiceID   *uuid.UUID
	PaymentDate time.Time // zero value defaults to today
	Amount      decimal.Decimal
	Method      string
	Reference   string
	Notes       string
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	PaymentID uuid.UUID
	Invoice   *InvoiceOutput // nil for on-account payments
}

// RecordPaymentUseCase handles payment entry against invoices and accounts.
type RecordPaymentUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	ownerRepo   adapter.OwnerRepository
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(
	invoiceRepo adapter.InvoiceRepository,
	ownerRepo adapter.OwnerRepository,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		invoiceRepo: invoiceRepo,
		ownerRepo:   ownerRepo,
	}
}

// Execute records the payment. Applying more than the invoice's outstanding
// balance is refused; partial payments move the invoice to partially_paid
// and full payments to paid.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			nil,
		)
	}

	if _, err := uc.ownerRepo.FindByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, domainerror.ErrOwnerNotFound) {
			return nil, domainerror.NewOwnerError(
				domainerror.ErrCodeOwnerNotFound,
				"owner not found",
				domainerror.ErrOwnerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	payment := &entity.Payment{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		InvoiceID:   input.InvoiceID,
		PaymentDate: paymentDate,
		Amount:      input.Amount,
		Method:      input.Method,
		Reference:   input.Reference,
		Notes:       input.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	invoice, err := uc.invoiceRepo.RecordPayment(ctx, payment)
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrInvoiceNotFound):
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		case errors.Is(err, domainerror.ErrInvoiceVoid):
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvoiceVoid,
				"payments cannot be applied to a void invoice",
				domainerror.ErrInvoiceVoid,
			)
		case errors.Is(err, domainerror.ErrPaymentExceedsBalance):
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodePaymentExceedsBalance,
				"payment exceeds the invoice balance",
				domainerror.ErrPaymentExceedsBalance,
			)
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	slog.Info("Payment recorded",
		"paymentID", payment.ID,
		"ownerID", input.OwnerID,
		"amount", input.Amount,
	)

	output := &RecordPaymentOutput{PaymentID: payment.ID}
	if invoice != nil {
		output.Invoice = toInvoiceOutput(invoice, nil)
	}
	return output, nil
}
