package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// Draft is an in-memory invoice aggregate that has not been persisted.
// It carries the candidate transactions so the persistence gateway can
// attach them when the draft is committed.
type Draft struct {
	OwnerID         uuid.UUID
	InvoiceDate     time.Time
	Subtotal        decimal.Decimal
	TaxableSubtotal decimal.Decimal
	Transactions    []*entity.Transaction
}

// TransactionIDs returns the ids of the draft's candidate transactions.
func (d *Draft) TransactionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(d.Transactions))
	for i, t := range d.Transactions {
		ids[i] = t.ID
	}
	return ids
}

// BuildInvoices partitions a batch of pending transactions into per-owner
// invoice drafts.
//
// All transactions must belong to horseID and still be pending; anything
// else fails with ErrInvalidBatch. A single-owner horse yields one draft
// holding the whole batch. For a multi-owner horse the batch is grouped by
// each transaction's stored bill-to owner, so the draft subtotals sum back
// to the batch subtotal to the cent by construction. Draft order follows
// resolver order, with owners that appear only on transactions appended in
// first-seen order.
func BuildInvoices(
	horseID uuid.UUID,
	transactions []*entity.Transaction,
	shares []OwnerShare,
	invoiceDate time.Time,
) ([]*Draft, error) {
	if len(transactions) == 0 {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidBatch,
			"generation batch is empty",
			domainerror.ErrInvalidBatch,
		)
	}
	for _, t := range transactions {
		if t.HorseID != horseID {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvalidBatch,
				"batch contains transactions for another horse",
				domainerror.ErrInvalidBatch,
			)
		}
		if !t.IsPending() {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeInvalidBatch,
				"batch contains already-invoiced transactions",
				domainerror.ErrInvalidBatch,
			)
		}
	}

	if len(shares) == 1 {
		return []*Draft{newDraft(shares[0].OwnerID, invoiceDate, transactions)}, nil
	}

	groups := make(map[uuid.UUID][]*entity.Transaction)
	for _, t := range transactions {
		groups[t.OwnerID] = append(groups[t.OwnerID], t)
	}

	// Resolver order first, then owners only present on transactions.
	order := make([]uuid.UUID, 0, len(groups))
	seen := make(map[uuid.UUID]bool)
	for _, s := range shares {
		if _, ok := groups[s.OwnerID]; ok && !seen[s.OwnerID] {
			order = append(order, s.OwnerID)
			seen[s.OwnerID] = true
		}
	}
	for _, t := range transactions {
		if !seen[t.OwnerID] {
			order = append(order, t.OwnerID)
			seen[t.OwnerID] = true
		}
	}

	drafts := make([]*Draft, 0, len(order))
	for _, ownerID := range order {
		drafts = append(drafts, newDraft(ownerID, invoiceDate, groups[ownerID]))
	}
	return drafts, nil
}

func newDraft(ownerID uuid.UUID, invoiceDate time.Time, transactions []*entity.Transaction) *Draft {
	return &Draft{
		OwnerID:         ownerID,
		InvoiceDate:     invoiceDate,
		Subtotal:        Subtotal(transactions),
		TaxableSubtotal: TaxableSubtotal(transactions),
		Transactions:    transactions,
	}
}
