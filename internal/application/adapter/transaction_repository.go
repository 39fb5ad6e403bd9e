// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// TransactionRepository defines persistence operations for charge transactions.
type TransactionRepository interface {
	// CreateBatch persists a batch of charge transactions atomically.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDs retrieves the transactions with the given IDs. Missing IDs
	// are reported as an error, not silently dropped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Transaction, error)

	// FindPendingByHorse retrieves the un-invoiced transactions for a horse,
	// ordered by service date then creation time.
	FindPendingByHorse(ctx context.Context, horseID uuid.UUID) ([]*entity.Transaction, error)

	// FindByInvoice retrieves the transactions attached to an invoice.
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.Transaction, error)

	// Update persists changes to a pending transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a pending transaction. Deleting an invoiced transaction
	// fails with ErrTransactionAlreadyInvoiced and mutates nothing.
	Delete(ctx context.Context, id uuid.UUID) error
}
