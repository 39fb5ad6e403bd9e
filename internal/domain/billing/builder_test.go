package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

func pendingCharge(horseID, ownerID uuid.UUID, total string) *entity.Transaction {
	return &entity.Transaction{
		ID:      uuid.New(),
		HorseID: horseID,
		OwnerID: ownerID,
		Total:   dec(total),
	}
}

func fullShare(ownerID uuid.UUID) OwnerShare {
	return OwnerShare{OwnerID: ownerID, Fraction: decimal.NewFromInt(1)}
}

func TestBuildInvoices(t *testing.T) {
	horseID := uuid.New()
	now := time.Now()

	t.Run("empty batch fails", func(t *testing.T) {
		_, err := BuildInvoices(horseID, nil, []OwnerShare{fullShare(uuid.New())}, now)
		if !errors.Is(err, domainerror.ErrInvalidBatch) {
			t.Errorf("expected ErrInvalidBatch, got %v", err)
		}
	})

	t.Run("cross-horse batch fails", func(t *testing.T) {
		ownerID := uuid.New()
		batch := []*entity.Transaction{
			pendingCharge(horseID, ownerID, "10.00"),
			pendingCharge(uuid.New(), ownerID, "10.00"),
		}

		_, err := BuildInvoices(horseID, batch, []OwnerShare{fullShare(ownerID)}, now)
		if !errors.Is(err, domainerror.ErrInvalidBatch) {
			t.Errorf("expected ErrInvalidBatch, got %v", err)
		}
	})

	t.Run("already-invoiced transaction fails", func(t *testing.T) {
		ownerID := uuid.New()
		invoiced := pendingCharge(horseID, ownerID, "10.00")
		invoiceID := uuid.New()
		invoiced.InvoiceID = &invoiceID

		_, err := BuildInvoices(horseID, []*entity.Transaction{invoiced}, []OwnerShare{fullShare(ownerID)}, now)
		if !errors.Is(err, domainerror.ErrInvalidBatch) {
			t.Errorf("expected ErrInvalidBatch, got %v", err)
		}
	})

	t.Run("single owner gets one draft with the whole batch", func(t *testing.T) {
		ownerID := uuid.New()
		batch := []*entity.Transaction{
			pendingCharge(horseID, ownerID, "12.50"),
			pendingCharge(horseID, ownerID, "7.25"),
		}

		drafts, err := BuildInvoices(horseID, batch, []OwnerShare{fullShare(ownerID)}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(drafts) != 1 {
			t.Fatalf("expected 1 draft, got %d", len(drafts))
		}
		if drafts[0].OwnerID != ownerID {
			t.Error("draft billed to wrong owner")
		}
		if !drafts[0].Subtotal.Equal(dec("19.75")) {
			t.Errorf("subtotal = %s, want 19.75", drafts[0].Subtotal)
		}
		if len(drafts[0].Transactions) != 2 {
			t.Errorf("expected 2 transactions on draft, got %d", len(drafts[0].Transactions))
		}
	})

	t.Run("multi-owner batch groups by stored bill-to owner", func(t *testing.T) {
		ownerA := uuid.New()
		ownerB := uuid.New()
		shares := []OwnerShare{
			{OwnerID: ownerA, Fraction: dec("0.6")},
			{OwnerID: ownerB, Fraction: dec("0.4")},
		}
		batch := []*entity.Transaction{
			pendingCharge(horseID, ownerB, "40.00"),
			pendingCharge(horseID, ownerA, "35.00"),
			pendingCharge(horseID, ownerA, "25.00"),
		}

		drafts, err := BuildInvoices(horseID, batch, shares, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(drafts) != 2 {
			t.Fatalf("expected 2 drafts, got %d", len(drafts))
		}

		// Resolver order wins over batch order.
		if drafts[0].OwnerID != ownerA || drafts[1].OwnerID != ownerB {
			t.Error("drafts not in resolver order")
		}
		if !drafts[0].Subtotal.Equal(dec("60.00")) {
			t.Errorf("owner A subtotal = %s, want 60.00", drafts[0].Subtotal)
		}
		if !drafts[1].Subtotal.Equal(dec("40.00")) {
			t.Errorf("owner B subtotal = %s, want 40.00", drafts[1].Subtotal)
		}

		sum := drafts[0].Subtotal.Add(drafts[1].Subtotal)
		if !sum.Equal(Subtotal(batch)) {
			t.Errorf("draft subtotals sum to %s, want %s", sum, Subtotal(batch))
		}
	})

	t.Run("owner only present on transactions is appended", func(t *testing.T) {
		resolvedOwner := uuid.New()
		strayOwner := uuid.New()
		shares := []OwnerShare{
			{OwnerID: resolvedOwner, Fraction: dec("0.5")},
			{OwnerID: uuid.New(), Fraction: dec("0.5")},
		}
		batch := []*entity.Transaction{
			pendingCharge(horseID, strayOwner, "5.00"),
			pendingCharge(horseID, resolvedOwner, "10.00"),
		}

		drafts, err := BuildInvoices(horseID, batch, shares, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(drafts) != 2 {
			t.Fatalf("expected 2 drafts, got %d", len(drafts))
		}
		if drafts[0].OwnerID != resolvedOwner {
			t.Error("resolved owner should come first")
		}
		if drafts[1].OwnerID != strayOwner {
			t.Error("stray owner should be appended after resolver order")
		}
	})

	t.Run("taxable subtotal tracks taxable lines only", func(t *testing.T) {
		ownerID := uuid.New()
		taxable := pendingCharge(horseID, ownerID, "30.00")
		taxable.Taxable = true
		exempt := pendingCharge(horseID, ownerID, "20.00")

		drafts, err := BuildInvoices(horseID, []*entity.Transaction{taxable, exempt}, []OwnerShare{fullShare(ownerID)}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !drafts[0].TaxableSubtotal.Equal(dec("30.00")) {
			t.Errorf("taxable subtotal = %s, want 30.00", drafts[0].TaxableSubtotal)
		}
	})
}
