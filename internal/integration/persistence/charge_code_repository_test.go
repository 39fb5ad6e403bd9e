package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

func TestChargeCodeRepository(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewChargeCodeRepository(db)

	farmCall := entity.NewChargeCode("FC", "Farm call", "Call fees", dec(t, "65.00"), false)
	vaccine := entity.NewChargeCode("VAC-FR", "Flu/rhino vaccination", "Vaccinations", dec(t, "42.50"), true)
	retired := entity.NewChargeCode("OLD", "Discontinued service", "", dec(t, "10.00"), false)
	retired.IsActive = false
	for _, code := range []*entity.ChargeCode{farmCall, vaccine, retired} {
		if err := repo.Create(ctx, code); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("finds by code", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, "VAC-FR")
		if err != nil {
			t.Fatalf("FindByCode failed: %v", err)
		}
		if !found.StandardCharge.Equal(dec(t, "42.50")) {
			t.Errorf("expected standard charge 42.50, got %s", found.StandardCharge)
		}
		if !found.Taxable {
			t.Error("expected taxable flag to round-trip")
		}
	})

	t.Run("unknown code returns not found", func(t *testing.T) {
		_, err := repo.FindByCode(ctx, "NOPE")
		if !errors.Is(err, domainerror.ErrChargeCodeNotFound) {
			t.Fatalf("expected ErrChargeCodeNotFound, got %v", err)
		}
	})

	t.Run("list orders by code and honors active only", func(t *testing.T) {
		all, err := repo.List(ctx, false)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 codes, got %d", len(all))
		}
		if all[0].Code != "FC" || all[1].Code != "OLD" || all[2].Code != "VAC-FR" {
			t.Error("expected codes ordered alphabetically")
		}

		active, err := repo.List(ctx, true)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(active) != 2 {
			t.Fatalf("expected 2 active codes, got %d", len(active))
		}
	})

	t.Run("update persists new pricing", func(t *testing.T) {
		farmCall.StandardCharge = dec(t, "70.00")
		if err := repo.Update(ctx, farmCall); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		found, err := repo.FindByID(ctx, farmCall.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if !found.StandardCharge.Equal(dec(t, "70.00")) {
			t.Errorf("expected standard charge 70.00, got %s", found.StandardCharge)
		}
	})
}
