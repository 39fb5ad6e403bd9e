package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// InvoiceCreate pairs an invoice with the transactions it should absorb.
type InvoiceCreate struct {
	Invoice        *entity.Invoice
	TransactionIDs []uuid.UUID
}

// InvoiceFilter defines filter options for listing invoices.
type InvoiceFilter struct {
	OwnerID *uuid.UUID
	Status  *entity.InvoiceStatus
}

// InvoiceRepository is the persistence gateway for invoices. Batch creation,
// payment recording and voiding are each a single atomic unit of work:
// either every write in the operation lands or none do.
type InvoiceRepository interface {
	// CreateBatch persists a set of invoices and attaches their transactions
	// in one database transaction. Each candidate transaction is re-checked
	// to still be pending at commit time; a concurrent invoicing surfaces as
	// ErrConcurrentModification and rolls the whole batch back. Owner
	// balances are increased by each invoice's grand total.
	CreateBatch(ctx context.Context, batch []InvoiceCreate) ([]*entity.Invoice, error)

	// FindByID retrieves an invoice with its transactions.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceWithTransactions, error)

	// FindByFilter lists invoices, newest first.
	FindByFilter(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)

	// RecordPayment persists a payment and, when it targets an invoice,
	// advances amount_paid and status and decreases the owner balance, all
	// atomically. Payments exceeding the invoice balance fail with
	// ErrPaymentExceedsBalance.
	RecordPayment(ctx context.Context, payment *entity.Payment) (*entity.Invoice, error)

	// Void marks an invoice void and releases its transactions back to
	// pending so they can be re-billed. Paid or already-void invoices fail
	// with ErrInvoiceNotVoidable.
	Void(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
}
