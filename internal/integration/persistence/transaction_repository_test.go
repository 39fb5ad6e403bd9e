package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

func TestTransactionRepositoryCreateBatch(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	owner := seedOwner(t, db, "Willow Creek Farm")
	horse := seedHorse(t, db, "Dante")

	serviceDate := date(t, "2025-03-01")
	batch := []*entity.Transaction{
		entity.NewTransaction(
			horse.ID, owner.ID, nil,
			serviceDate, serviceDate,
			"Farm call",
			decimal.NewFromInt(1), dec(t, "65.00"), dec(t, "65.00"),
			false, "",
			uuid.New(),
		),
		entity.NewTransaction(
			horse.ID, owner.ID, nil,
			serviceDate, serviceDate,
			"Flu/rhino vaccination",
			decimal.NewFromInt(2), dec(t, "42.50"), dec(t, "85.00"),
			true, "",
			uuid.New(),
		),
	}

	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	found, err := repo.FindByID(ctx, batch[1].ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Description != "Flu/rhino vaccination" {
		t.Errorf("expected description to round-trip, got %q", found.Description)
	}
	if !found.Total.Equal(dec(t, "85.00")) {
		t.Errorf("expected total 85.00, got %s", found.Total)
	}
	if !found.Taxable {
		t.Error("expected taxable flag to round-trip")
	}
	if !found.IsPending() {
		t.Error("new transactions should be pending")
	}
}

func TestTransactionRepositoryFindByIDs(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	owner := seedOwner(t, db, "Willow Creek Farm")
	horse := seedHorse(t, db, "Dante")
	first := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "65.00")
	second := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-02"), "85.00")

	t.Run("returns all requested transactions", func(t *testing.T) {
		transactions, err := repo.FindByIDs(ctx, []uuid.UUID{second.ID, first.ID})
		if err != nil {
			t.Fatalf("FindByIDs failed: %v", err)
		}
		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}
	})

	t.Run("missing ID surfaces as not found", func(t *testing.T) {
		_, err := repo.FindByIDs(ctx, []uuid.UUID{first.ID, uuid.New()})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionRepositoryFindPendingByHorse(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	owner := seedOwner(t, db, "Willow Creek Farm")
	horse := seedHorse(t, db, "Dante")
	otherHorse := seedHorse(t, db, "Biscuit")

	later := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-10"), "30.00")
	earlier := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "65.00")
	seedTransaction(t, db, otherHorse.ID, owner.ID, date(t, "2025-03-05"), "40.00")

	invoiced := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-03"), "20.00")
	invoiceID := uuid.New()
	if err := db.Model(&model.TransactionModel{}).
		Where("id = ?", invoiced.ID).
		Update("invoice_id", invoiceID).Error; err != nil {
		t.Fatalf("failed to mark transaction invoiced: %v", err)
	}

	pending, err := repo.FindPendingByHorse(ctx, horse.ID)
	if err != nil {
		t.Fatalf("FindPendingByHorse failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending transactions, got %d", len(pending))
	}
	if pending[0].ID != earlier.ID || pending[1].ID != later.ID {
		t.Error("expected pending transactions ordered by service date")
	}
}

func TestTransactionRepositoryUpdate(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	owner := seedOwner(t, db, "Willow Creek Farm")
	horse := seedHorse(t, db, "Dante")
	transaction := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "65.00")

	transaction.Description = "Farm call, after hours"
	transaction.UnitPrice = dec(t, "95.00")
	transaction.Total = dec(t, "95.00")
	if err := repo.Update(ctx, transaction); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, transaction.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Description != "Farm call, after hours" {
		t.Errorf("expected updated description, got %q", found.Description)
	}
	if !found.Total.Equal(dec(t, "95.00")) {
		t.Errorf("expected total 95.00, got %s", found.Total)
	}
}

func TestTransactionRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a pending transaction", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		horse := seedHorse(t, db, "Dante")
		transaction := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "65.00")

		if err := repo.Delete(ctx, transaction.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		_, err := repo.FindByID(ctx, transaction.ID)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound after delete, got %v", err)
		}
	})

	t.Run("refuses an invoiced transaction", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		horse := seedHorse(t, db, "Dante")
		transaction := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "65.00")
		if err := db.Model(&model.TransactionModel{}).
			Where("id = ?", transaction.ID).
			Update("invoice_id", uuid.New()).Error; err != nil {
			t.Fatalf("failed to mark transaction invoiced: %v", err)
		}

		err := repo.Delete(ctx, transaction.ID)
		if !errors.Is(err, domainerror.ErrTransactionAlreadyInvoiced) {
			t.Fatalf("expected ErrTransactionAlreadyInvoiced, got %v", err)
		}

		if _, err := repo.FindByID(ctx, transaction.ID); err != nil {
			t.Errorf("invoiced transaction should survive the delete attempt: %v", err)
		}
	})

	t.Run("unknown transaction returns not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)

		err := repo.Delete(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
