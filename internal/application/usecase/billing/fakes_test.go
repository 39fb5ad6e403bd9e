package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// Test doubles embed the adapter interface so only the methods a use case
// actually calls need implementations.

type fakeHorseRepo struct {
	adapter.HorseRepository
	horses map[uuid.UUID]*entity.Horse
}

func (f *fakeHorseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Horse, error) {
	horse, ok := f.horses[id]
	if !ok {
		return nil, domainerror.ErrHorseNotFound
	}
	return horse, nil
}

type fakeOwnerRepo struct {
	adapter.OwnerRepository
	owners map[uuid.UUID]*entity.Owner
}

func (f *fakeOwnerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Owner, error) {
	owner, ok := f.owners[id]
	if !ok {
		return nil, domainerror.ErrOwnerNotFound
	}
	return owner, nil
}

type fakeChargeCodeRepo struct {
	adapter.ChargeCodeRepository
	codes map[uuid.UUID]*entity.ChargeCode
}

func (f *fakeChargeCodeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ChargeCode, error) {
	code, ok := f.codes[id]
	if !ok {
		return nil, domainerror.ErrChargeCodeNotFound
	}
	return code, nil
}

type fakeTransactionRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepo) CreateBatch(_ context.Context, transactions []*entity.Transaction) error {
	f.transactions = append(f.transactions, transactions...)
	return nil
}

func (f *fakeTransactionRepo) FindPendingByHorse(_ context.Context, horseID uuid.UUID) ([]*entity.Transaction, error) {
	var pending []*entity.Transaction
	for _, t := range f.transactions {
		if t.HorseID == horseID && t.IsPending() {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

func (f *fakeTransactionRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Transaction, error) {
	byID := make(map[uuid.UUID]*entity.Transaction, len(f.transactions))
	for _, t := range f.transactions {
		byID[t.ID] = t
	}
	found := make([]*entity.Transaction, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, domainerror.ErrTransactionNotFound
		}
		found = append(found, t)
	}
	return found, nil
}

type fakeInvoiceRepo struct {
	adapter.InvoiceRepository
	created   []adapter.InvoiceCreate
	createErr error
}

func (f *fakeInvoiceRepo) CreateBatch(_ context.Context, batch []adapter.InvoiceCreate) ([]*entity.Invoice, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, batch...)
	invoices := make([]*entity.Invoice, len(batch))
	for i, item := range batch {
		invoices[i] = item.Invoice
	}
	return invoices, nil
}
