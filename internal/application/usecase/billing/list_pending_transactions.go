package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/adapter"
	domainbilling "github.com/equivet/backend/internal/domain/billing"
)

// ListPendingTransactionsInput represents the input for listing pending charges.
type ListPendingTransactionsInput struct {
	HorseID uuid.UUID
}

// ListPendingTransactionsOutput represents the output of listing pending charges.
type ListPendingTransactionsOutput struct {
	Transactions    []*TransactionOutput
	Subtotal        decimal.Decimal
	TaxableSubtotal decimal.Decimal
}

// ListPendingTransactionsUseCase lists a horse's un-invoiced charges.
type ListPendingTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListPendingTransactionsUseCase creates a new ListPendingTransactionsUseCase instance.
func NewListPendingTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListPendingTransactionsUseCase {
	return &ListPendingTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute retrieves the pending transactions. An unknown horse simply
// yields an empty list; reads do not fail on absence.
func (uc *ListPendingTransactionsUseCase) Execute(ctx context.Context, input ListPendingTransactionsInput) (*ListPendingTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindPendingByHorse(ctx, input.HorseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}

	return &ListPendingTransactionsOutput{
		Transactions:    toTransactionOutputs(transactions),
		Subtotal:        domainbilling.Subtotal(transactions),
		TaxableSubtotal: domainbilling.TaxableSubtotal(transactions),
	}, nil
}
