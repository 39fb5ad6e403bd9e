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
	domainbilling "github.com/equivet/backend/internal/domain/billing"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// GenerateInvoicesInput represents the input for invoice generation. An
// empty TransactionIDs list means "everything pending for the horse". Tax
// comes either from TaxRate (a percentage applied to each invoice's taxable
// subtotal) or from ManualTax (a fixed amount spread across the invoices);
// supplying both is rejected.
type GenerateInvoicesInput struct {
	HorseID        uuid.UUID
	TransactionIDs []uuid.UUID
	InvoiceDate    time.Time // zero value defaults to today
	DueDate        *time.Time
	TaxRate        *decimal.Decimal
	ManualTax      *decimal.Decimal
	Discount       decimal.Decimal
	Notes          string
}

// GenerateInvoicesOutput represents the output of invoice generation.
type GenerateInvoicesOutput struct {
	Invoices []*InvoiceOutput
}

// GenerateInvoicesUseCase turns a batch of pending charges into one invoice
// per bill-to owner.
type GenerateInvoicesUseCase struct {
	transactionRepo adapter.TransactionRepository
	invoiceRepo     adapter.InvoiceRepository
	horseRepo       adapter.HorseRepository
}

// NewGenerateInvoicesUseCase creates a new GenerateInvoicesUseCase instance.
func NewGenerateInvoicesUseCase(
	transactionRepo adapter.TransactionRepository,
	invoiceRepo adapter.InvoiceRepository,
	horseRepo adapter.HorseRepository,
) *GenerateInvoicesUseCase {
	return &GenerateInvoicesUseCase{
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		horseRepo:       horseRepo,
	}
}

// Execute generates the invoices. The batch is split by each transaction's
// stored bill-to owner, so the per-invoice subtotals always sum back to the
// batch subtotal. Persistence is one atomic unit: if any candidate
// transaction was invoiced concurrently, nothing is written.
func (uc *GenerateInvoicesUseCase) Execute(ctx context.Context, input GenerateInvoicesInput) (*GenerateInvoicesOutput, error) {
	if err := validateCharges(input); err != nil {
		return nil, err
	}

	horse, err := uc.horseRepo.FindByID(ctx, input.HorseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHorseNotFound) {
			return nil, domainerror.NewHorseError(
				domainerror.ErrCodeHorseNotFound,
				"horse not found",
				domainerror.ErrHorseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load horse: %w", err)
	}

	transactions, err := uc.loadBatch(ctx, input)
	if err != nil {
		return nil, err
	}

	shares, err := domainbilling.ResolveSplits(horse.Owners)
	if err != nil {
		return nil, err
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	drafts, err := domainbilling.BuildInvoices(input.HorseID, transactions, shares, invoiceDate)
	if err != nil {
		return nil, err
	}

	taxes := uc.taxPerDraft(input, drafts)
	discounts := allocateBySubtotal(input.Discount, drafts)

	batch := make([]adapter.InvoiceCreate, len(drafts))
	now := time.Now().UTC()
	for i, draft := range drafts {
		invoice := &entity.Invoice{
			ID:          uuid.New(),
			OwnerID:     draft.OwnerID,
			InvoiceDate: draft.InvoiceDate,
			DueDate:     input.DueDate,
			Subtotal:    draft.Subtotal,
			TaxTotal:    taxes[i],
			Discount:    discounts[i],
			GrandTotal:  domainbilling.GrandTotal(draft.Subtotal, taxes[i], discounts[i]),
			AmountPaid:  decimal.Zero,
			Status:      entity.InvoiceStatusDraft,
			Notes:       input.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		batch[i] = adapter.InvoiceCreate{
			Invoice:        invoice,
			TransactionIDs: draft.TransactionIDs(),
		}
	}

	invoices, err := uc.invoiceRepo.CreateBatch(ctx, batch)
	if err != nil {
		if errors.Is(err, domainerror.ErrConcurrentModification) {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeConcurrentModification,
				"transactions were invoiced by another request, nothing was written",
				domainerror.ErrConcurrentModification,
			)
		}
		return nil, fmt.Errorf("failed to create invoices: %w", err)
	}

	slog.Info("Invoices generated",
		"horseID", input.HorseID,
		"invoices", len(invoices),
		"transactions", len(transactions),
	)

	outputs := make([]*InvoiceOutput, len(invoices))
	for i, invoice := range invoices {
		for _, t := range drafts[i].Transactions {
			id := invoice.ID
			t.InvoiceID = &id
		}
		outputs[i] = toInvoiceOutput(invoice, drafts[i].Transactions)
	}
	return &GenerateInvoicesOutput{Invoices: outputs}, nil
}

func validateCharges(input GenerateInvoicesInput) error {
	if input.TaxRate != nil && input.ManualTax != nil {
		return domainerror.NewBillingError(
			domainerror.ErrCodeInvalidTaxInput,
			"tax rate and manual tax amount are mutually exclusive",
			nil,
		)
	}
	if input.TaxRate != nil && input.TaxRate.IsNegative() {
		return domainerror.NewBillingError(
			domainerror.ErrCodeInvalidTaxInput,
			"tax rate cannot be negative",
			nil,
		)
	}
	if input.ManualTax != nil && input.ManualTax.IsNegative() {
		return domainerror.NewBillingError(
			domainerror.ErrCodeInvalidTaxInput,
			"manual tax amount cannot be negative",
			nil,
		)
	}
	if input.Discount.IsNegative() {
		return domainerror.NewBillingError(
			domainerror.ErrCodeInvalidDiscount,
			"discount cannot be negative",
			nil,
		)
	}
	return nil
}

func (uc *GenerateInvoicesUseCase) loadBatch(ctx context.Context, input GenerateInvoicesInput) ([]*entity.Transaction, error) {
	if len(input.TransactionIDs) == 0 {
		transactions, err := uc.transactionRepo.FindPendingByHorse(ctx, input.HorseID)
		if err != nil {
			return nil, fmt.Errorf("failed to load pending transactions: %w", err)
		}
		if len(transactions) == 0 {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvalidBatch,
				"horse has no pending transactions",
				domainerror.ErrInvalidBatch,
			)
		}
		return transactions, nil
	}

	transactions, err := uc.transactionRepo.FindByIDs(ctx, input.TransactionIDs)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvalidBatch,
				"batch references unknown transactions",
				domainerror.ErrInvalidBatch,
			)
		}
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return transactions, nil
}

// taxPerDraft computes each draft's tax. With a rate the tax is derived per
// invoice from that invoice's taxable subtotal. A manual amount is spread
// across the drafts in proportion to their subtotals.
func (uc *GenerateInvoicesUseCase) taxPerDraft(input GenerateInvoicesInput, drafts []*domainbilling.Draft) []decimal.Decimal {
	taxes := make([]decimal.Decimal, len(drafts))
	switch {
	case input.TaxRate != nil:
		for i, draft := range drafts {
			taxes[i] = domainbilling.TaxFromRate(draft.TaxableSubtotal, *input.TaxRate)
		}
	case input.ManualTax != nil:
		return allocateBySubtotal(*input.ManualTax, drafts)
	default:
		for i := range taxes {
			taxes[i] = decimal.Zero
		}
	}
	return taxes
}

// allocateBySubtotal spreads an amount across the drafts proportionally to
// their subtotals, with any rounding residual landing on the first draft.
// When every subtotal is zero the whole amount goes to the first draft.
func allocateBySubtotal(amount decimal.Decimal, drafts []*domainbilling.Draft) []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(drafts))
	for i := range amounts {
		amounts[i] = decimal.Zero
	}
	if amount.IsZero() || len(drafts) == 0 {
		return amounts
	}

	total := decimal.Zero
	for _, draft := range drafts {
		total = total.Add(draft.Subtotal)
	}
	if !total.IsPositive() {
		amounts[0] = amount
		return amounts
	}

	shares := make([]domainbilling.OwnerShare, len(drafts))
	for i, draft := range drafts {
		shares[i] = domainbilling.OwnerShare{
			OwnerID:  draft.OwnerID,
			Fraction: draft.Subtotal.Div(total),
		}
	}
	return domainbilling.AllocateTotal(amount, shares)
}
