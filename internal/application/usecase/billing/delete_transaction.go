package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a pending charge.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles deletion of pending charges.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute deletes the transaction. Invoiced transactions are refused and
// nothing is mutated.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrTransactionNotFound):
			return domainerror.NewBillingError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		case errors.Is(err, domainerror.ErrTransactionAlreadyInvoiced):
			return domainerror.NewBillingError(
				domainerror.ErrCodeAlreadyInvoiced,
				"invoiced transactions cannot be deleted",
				domainerror.ErrTransactionAlreadyInvoiced,
			)
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
