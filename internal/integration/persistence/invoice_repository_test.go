package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

func buildInvoice(t *testing.T, ownerID uuid.UUID, grandTotal string) *entity.Invoice {
	t.Helper()
	total := dec(t, grandTotal)
	now := time.Now().UTC()
	return &entity.Invoice{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		InvoiceDate: date(t, "2025-03-15"),
		Subtotal:    total,
		TaxTotal:    decimal.Zero,
		Discount:    decimal.Zero,
		GrandTotal:  total,
		AmountPaid:  decimal.Zero,
		Status:      entity.InvoiceStatusSent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func seedInvoice(t *testing.T, db *gorm.DB, invoice *entity.Invoice) {
	t.Helper()
	if err := db.Create(model.InvoiceFromEntity(invoice)).Error; err != nil {
		t.Fatalf("failed to seed invoice: %v", err)
	}
}

func TestInvoiceRepositoryCreateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches transactions and raises owner balance", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		horse := seedHorse(t, db, "Dante")
		first := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "90.00")
		second := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-02"), "60.00")

		invoice := buildInvoice(t, owner.ID, "150.00")
		created, err := repo.CreateBatch(ctx, []adapter.InvoiceCreate{
			{Invoice: invoice, TransactionIDs: []uuid.UUID{first.ID, second.ID}},
		})
		if err != nil {
			t.Fatalf("CreateBatch failed: %v", err)
		}
		if len(created) != 1 {
			t.Fatalf("expected 1 invoice, got %d", len(created))
		}
		if created[0].Status != entity.InvoiceStatusSent {
			t.Errorf("expected status sent, got %s", created[0].Status)
		}

		for _, id := range []uuid.UUID{first.ID, second.ID} {
			var row model.TransactionModel
			if err := db.Where("id = ?", id).First(&row).Error; err != nil {
				t.Fatalf("failed to reload transaction: %v", err)
			}
			if row.InvoiceID == nil || *row.InvoiceID != invoice.ID {
				t.Errorf("transaction %s not attached to invoice", id)
			}
		}

		if balance := ownerBalance(t, db, owner.ID); !balance.Equal(dec(t, "150.00")) {
			t.Errorf("expected owner balance 150.00, got %s", balance)
		}
	})

	t.Run("rolls back when a transaction is already invoiced", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		horse := seedHorse(t, db, "Dante")
		pending := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "90.00")

		claimed := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-02"), "60.00")
		other := buildInvoice(t, owner.ID, "60.00")
		seedInvoice(t, db, other)
		if err := db.Model(&model.TransactionModel{}).
			Where("id = ?", claimed.ID).
			Update("invoice_id", other.ID).Error; err != nil {
			t.Fatalf("failed to pre-claim transaction: %v", err)
		}

		invoice := buildInvoice(t, owner.ID, "150.00")
		_, err := repo.CreateBatch(ctx, []adapter.InvoiceCreate{
			{Invoice: invoice, TransactionIDs: []uuid.UUID{pending.ID, claimed.ID}},
		})
		if !errors.Is(err, domainerror.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}

		var count int64
		if err := db.Model(&model.InvoiceModel{}).Where("id = ?", invoice.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count invoices: %v", err)
		}
		if count != 0 {
			t.Error("invoice should not persist after rollback")
		}

		var row model.TransactionModel
		if err := db.Where("id = ?", pending.ID).First(&row).Error; err != nil {
			t.Fatalf("failed to reload transaction: %v", err)
		}
		if row.InvoiceID != nil {
			t.Error("pending transaction should remain unclaimed after rollback")
		}
	})
}

func TestInvoiceRepositoryRecordPayment(t *testing.T) {
	ctx := context.Background()

	newPayment := func(ownerID uuid.UUID, invoiceID *uuid.UUID, amount decimal.Decimal) *entity.Payment {
		return &entity.Payment{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			InvoiceID:   invoiceID,
			PaymentDate: time.Now().UTC(),
			Amount:      amount,
			Method:      "check",
			CreatedAt:   time.Now().UTC(),
		}
	}

	t.Run("partial payment moves invoice to partially paid", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		invoice := buildInvoice(t, owner.ID, "200.00")
		seedInvoice(t, db, invoice)

		updated, err := repo.RecordPayment(ctx, newPayment(owner.ID, &invoice.ID, dec(t, "50.00")))
		if err != nil {
			t.Fatalf("RecordPayment failed: %v", err)
		}
		if updated.Status != entity.InvoiceStatusPartiallyPaid {
			t.Errorf("expected status partially_paid, got %s", updated.Status)
		}
		if !updated.AmountPaid.Equal(dec(t, "50.00")) {
			t.Errorf("expected amount paid 50.00, got %s", updated.AmountPaid)
		}
		if balance := ownerBalance(t, db, owner.ID); !balance.Equal(dec(t, "-50.00")) {
			t.Errorf("expected owner balance -50.00, got %s", balance)
		}
	})

	t.Run("full payment marks invoice paid", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		invoice := buildInvoice(t, owner.ID, "200.00")
		seedInvoice(t, db, invoice)

		updated, err := repo.RecordPayment(ctx, newPayment(owner.ID, &invoice.ID, dec(t, "200.00")))
		if err != nil {
			t.Fatalf("RecordPayment failed: %v", err)
		}
		if updated.Status != entity.InvoiceStatusPaid {
			t.Errorf("expected status paid, got %s", updated.Status)
		}
		if !updated.BalanceDue().IsZero() {
			t.Errorf("expected zero balance due, got %s", updated.BalanceDue())
		}
	})

	t.Run("overpayment is rejected without side effects", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		invoice := buildInvoice(t, owner.ID, "200.00")
		seedInvoice(t, db, invoice)

		_, err := repo.RecordPayment(ctx, newPayment(owner.ID, &invoice.ID, dec(t, "200.01")))
		if !errors.Is(err, domainerror.ErrPaymentExceedsBalance) {
			t.Fatalf("expected ErrPaymentExceedsBalance, got %v", err)
		}

		var count int64
		if err := db.Model(&model.PaymentModel{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count payments: %v", err)
		}
		if count != 0 {
			t.Error("no payment should persist after rejection")
		}
		if balance := ownerBalance(t, db, owner.ID); !balance.IsZero() {
			t.Errorf("expected unchanged owner balance, got %s", balance)
		}
	})

	t.Run("payment against a void invoice is rejected without side effects", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		invoice := buildInvoice(t, owner.ID, "100.00")
		invoice.Status = entity.InvoiceStatusVoid
		seedInvoice(t, db, invoice)

		_, err := repo.RecordPayment(ctx, newPayment(owner.ID, &invoice.ID, dec(t, "50.00")))
		if !errors.Is(err, domainerror.ErrInvoiceVoid) {
			t.Fatalf("expected ErrInvoiceVoid, got %v", err)
		}

		var count int64
		if err := db.Model(&model.PaymentModel{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count payments: %v", err)
		}
		if count != 0 {
			t.Error("no payment should persist against a void invoice")
		}
		if balance := ownerBalance(t, db, owner.ID); !balance.IsZero() {
			t.Errorf("expected unchanged owner balance, got %s", balance)
		}

		var stored model.InvoiceModel
		if err := db.First(&stored, "id = ?", invoice.ID).Error; err != nil {
			t.Fatalf("failed to reload invoice: %v", err)
		}
		if stored.ToEntity().Status != entity.InvoiceStatusVoid {
			t.Errorf("expected the invoice to stay void, got %s", stored.ToEntity().Status)
		}
	})

	t.Run("on-account payment reduces owner balance only", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")

		updated, err := repo.RecordPayment(ctx, newPayment(owner.ID, nil, dec(t, "75.00")))
		if err != nil {
			t.Fatalf("RecordPayment failed: %v", err)
		}
		if updated != nil {
			t.Error("expected no invoice for an on-account payment")
		}
		if balance := ownerBalance(t, db, owner.ID); !balance.Equal(dec(t, "-75.00")) {
			t.Errorf("expected owner balance -75.00, got %s", balance)
		}
	})

	t.Run("unknown invoice returns not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		missing := uuid.New()

		_, err := repo.RecordPayment(ctx, newPayment(owner.ID, &missing, dec(t, "10.00")))
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceRepositoryVoid(t *testing.T) {
	ctx := context.Background()

	t.Run("releases transactions and reverses the balance charge", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		horse := seedHorse(t, db, "Dante")
		transaction := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "150.00")

		invoice := buildInvoice(t, owner.ID, "150.00")
		if _, err := repo.CreateBatch(ctx, []adapter.InvoiceCreate{
			{Invoice: invoice, TransactionIDs: []uuid.UUID{transaction.ID}},
		}); err != nil {
			t.Fatalf("CreateBatch failed: %v", err)
		}

		voided, err := repo.Void(ctx, invoice.ID)
		if err != nil {
			t.Fatalf("Void failed: %v", err)
		}
		if voided.Status != entity.InvoiceStatusVoid {
			t.Errorf("expected status void, got %s", voided.Status)
		}

		var row model.TransactionModel
		if err := db.Where("id = ?", transaction.ID).First(&row).Error; err != nil {
			t.Fatalf("failed to reload transaction: %v", err)
		}
		if row.InvoiceID != nil {
			t.Error("transaction should return to pending after void")
		}

		if balance := ownerBalance(t, db, owner.ID); !balance.IsZero() {
			t.Errorf("expected owner balance back to zero, got %s", balance)
		}
	})

	t.Run("refuses invoices with payments applied", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		invoice := buildInvoice(t, owner.ID, "150.00")
		invoice.AmountPaid = dec(t, "50.00")
		invoice.Status = entity.InvoiceStatusPartiallyPaid
		seedInvoice(t, db, invoice)

		_, err := repo.Void(ctx, invoice.ID)
		if !errors.Is(err, domainerror.ErrInvoiceNotVoidable) {
			t.Fatalf("expected ErrInvoiceNotVoidable, got %v", err)
		}
	})

	t.Run("refuses already void invoices", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		invoice := buildInvoice(t, owner.ID, "150.00")
		invoice.Status = entity.InvoiceStatusVoid
		seedInvoice(t, db, invoice)

		_, err := repo.Void(ctx, invoice.ID)
		if !errors.Is(err, domainerror.ErrInvoiceNotVoidable) {
			t.Fatalf("expected ErrInvoiceNotVoidable, got %v", err)
		}
	})

	t.Run("unknown invoice returns not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		_, err := repo.Void(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceRepositoryFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the invoice with its transactions in service order", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		owner := seedOwner(t, db, "Willow Creek Farm")
		horse := seedHorse(t, db, "Dante")
		later := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-05"), "60.00")
		earlier := seedTransaction(t, db, horse.ID, owner.ID, date(t, "2025-03-01"), "90.00")

		invoice := buildInvoice(t, owner.ID, "150.00")
		if _, err := repo.CreateBatch(ctx, []adapter.InvoiceCreate{
			{Invoice: invoice, TransactionIDs: []uuid.UUID{later.ID, earlier.ID}},
		}); err != nil {
			t.Fatalf("CreateBatch failed: %v", err)
		}

		found, err := repo.FindByID(ctx, invoice.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if len(found.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(found.Transactions))
		}
		if found.Transactions[0].ID != earlier.ID {
			t.Error("expected earliest service date first")
		}
	})

	t.Run("unknown invoice returns not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewInvoiceRepository(db)

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceRepositoryFindByFilter(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewInvoiceRepository(db)

	first := seedOwner(t, db, "Willow Creek Farm")
	second := seedOwner(t, db, "Oak Hollow Stables")

	sent := buildInvoice(t, first.ID, "100.00")
	seedInvoice(t, db, sent)
	paid := buildInvoice(t, first.ID, "200.00")
	paid.Status = entity.InvoiceStatusPaid
	paid.AmountPaid = dec(t, "200.00")
	seedInvoice(t, db, paid)
	other := buildInvoice(t, second.ID, "300.00")
	seedInvoice(t, db, other)

	t.Run("filters by owner", func(t *testing.T) {
		invoices, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{OwnerID: &first.ID})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if len(invoices) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(invoices))
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		status := entity.InvoiceStatusPaid
		invoices, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{Status: &status})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if len(invoices) != 1 {
			t.Fatalf("expected 1 invoice, got %d", len(invoices))
		}
		if invoices[0].ID != paid.ID {
			t.Error("expected the paid invoice")
		}
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		invoices, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if len(invoices) != 3 {
			t.Fatalf("expected 3 invoices, got %d", len(invoices))
		}
	})
}
