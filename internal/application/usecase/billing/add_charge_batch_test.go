package billing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

func TestAddChargeBatchUseCase(t *testing.T) {
	ctx := context.Background()
	serviceDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*AddChargeBatchUseCase, *fakeTransactionRepo, *fakeChargeCodeRepo, *entity.Horse, *entity.Owner) {
		t.Helper()
		horse := entity.NewHorse("Dante", "")
		owner := entity.NewOwner("AC-1042", "Willow Creek Farm", "Maria", "Santos")
		transactionRepo := &fakeTransactionRepo{}
		chargeCodeRepo := &fakeChargeCodeRepo{codes: map[uuid.UUID]*entity.ChargeCode{}}
		uc := NewAddChargeBatchUseCase(
			transactionRepo,
			&fakeHorseRepo{horses: map[uuid.UUID]*entity.Horse{horse.ID: horse}},
			&fakeOwnerRepo{owners: map[uuid.UUID]*entity.Owner{owner.ID: owner}},
			chargeCodeRepo,
		)
		return uc, transactionRepo, chargeCodeRepo, horse, owner
	}

	t.Run("creates one pending transaction per line", func(t *testing.T) {
		uc, transactionRepo, _, horse, owner := setup(t)

		output, err := uc.Execute(ctx, AddChargeBatchInput{
			HorseID:     horse.ID,
			OwnerID:     owner.ID,
			ServiceDate: serviceDate,
			Items: []ChargeItemInput{
				{Description: "Farm call", Quantity: decimal.NewFromInt(1), UnitPrice: decPtr(t, "65.00")},
				{Description: "Flu/rhino vaccination", Quantity: decimal.NewFromInt(2), UnitPrice: decPtr(t, "42.50")},
			},
			AdministeredByID: uuid.New(),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(output.Transactions))
		}
		if !output.Transactions[1].Total.Equal(dec(t, "85.00")) {
			t.Errorf("expected line total 85.00, got %s", output.Transactions[1].Total)
		}
		if output.Transactions[0].InvoiceID != nil {
			t.Error("new charges should be pending")
		}
		if !output.Transactions[0].BillingDate.Equal(serviceDate) {
			t.Error("billing date should default to the service date")
		}
		if len(transactionRepo.transactions) != 2 {
			t.Errorf("expected 2 persisted transactions, got %d", len(transactionRepo.transactions))
		}
	})

	t.Run("prefills description, price and taxability from the charge code", func(t *testing.T) {
		uc, _, chargeCodeRepo, horse, owner := setup(t)
		code := entity.NewChargeCode("VAC-FR", "Flu/rhino vaccination", "Vaccinations", dec(t, "42.50"), true)
		chargeCodeRepo.codes[code.ID] = code

		output, err := uc.Execute(ctx, AddChargeBatchInput{
			HorseID:     horse.ID,
			OwnerID:     owner.ID,
			ServiceDate: serviceDate,
			Items: []ChargeItemInput{
				{ChargeCodeID: &code.ID, Quantity: decimal.NewFromInt(1)},
			},
			AdministeredByID: uuid.New(),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		line := output.Transactions[0]
		if line.Description != "Flu/rhino vaccination" {
			t.Errorf("expected catalog description, got %q", line.Description)
		}
		if !line.UnitPrice.Equal(dec(t, "42.50")) {
			t.Errorf("expected catalog price, got %s", line.UnitPrice)
		}
		if !line.Taxable {
			t.Error("expected catalog taxable flag")
		}
	})

	t.Run("per-line overrides beat the charge code", func(t *testing.T) {
		uc, _, chargeCodeRepo, horse, owner := setup(t)
		code := entity.NewChargeCode("VAC-FR", "Flu/rhino vaccination", "Vaccinations", dec(t, "42.50"), true)
		chargeCodeRepo.codes[code.ID] = code

		notTaxable := false
		output, err := uc.Execute(ctx, AddChargeBatchInput{
			HorseID:     horse.ID,
			OwnerID:     owner.ID,
			ServiceDate: serviceDate,
			Items: []ChargeItemInput{
				{
					ChargeCodeID: &code.ID,
					Description:  "Discounted vaccination",
					Quantity:     decimal.NewFromInt(1),
					UnitPrice:    decPtr(t, "30.00"),
					Taxable:      &notTaxable,
				},
			},
			AdministeredByID: uuid.New(),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		line := output.Transactions[0]
		if line.Description != "Discounted vaccination" {
			t.Errorf("expected the override description, got %q", line.Description)
		}
		if !line.UnitPrice.Equal(dec(t, "30.00")) {
			t.Errorf("expected the override price, got %s", line.UnitPrice)
		}
		if line.Taxable {
			t.Error("expected the override taxable flag")
		}
	})

	t.Run("explicit zero price makes a free line despite a priced code", func(t *testing.T) {
		uc, _, chargeCodeRepo, horse, owner := setup(t)
		code := entity.NewChargeCode("VAC-FR", "Flu/rhino vaccination", "Vaccinations", dec(t, "42.50"), true)
		chargeCodeRepo.codes[code.ID] = code

		output, err := uc.Execute(ctx, AddChargeBatchInput{
			HorseID:     horse.ID,
			OwnerID:     owner.ID,
			ServiceDate: serviceDate,
			Items: []ChargeItemInput{
				{ChargeCodeID: &code.ID, Quantity: decimal.NewFromInt(1), UnitPrice: decPtr(t, "0.00")},
			},
			AdministeredByID: uuid.New(),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		line := output.Transactions[0]
		if !line.UnitPrice.IsZero() {
			t.Errorf("expected a free line, got unit price %s", line.UnitPrice)
		}
		if !line.Total.IsZero() {
			t.Errorf("expected a zero line total, got %s", line.Total)
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		uc, _, _, horse, owner := setup(t)

		_, err := uc.Execute(ctx, AddChargeBatchInput{
			HorseID:     horse.ID,
			OwnerID:     owner.ID,
			ServiceDate: serviceDate,
		})

		var billErr *domainerror.BillingError
		if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeEmptyChargeBatch {
			t.Fatalf("expected empty batch error, got %v", err)
		}
	})

	t.Run("future service date is rejected", func(t *testing.T) {
		uc, _, _, horse, owner := setup(t)

		_, err := uc.Execute(ctx, AddChargeBatchInput{
			HorseID:     horse.ID,
			OwnerID:     owner.ID,
			ServiceDate: time.Now().UTC().Add(48 * time.Hour),
			Items: []ChargeItemInput{
				{Description: "Farm call", Quantity: decimal.NewFromInt(1), UnitPrice: decPtr(t, "65.00")},
			},
		})

		var billErr *domainerror.BillingError
		if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeInvalidServiceDate {
			t.Fatalf("expected invalid service date error, got %v", err)
		}
	})

	t.Run("line validation failures reject the whole batch", func(t *testing.T) {
		cases := []struct {
			name     string
			item     ChargeItemInput
			wantCode domainerror.BillingErrorCode
		}{
			{
				name:     "missing description",
				item:     ChargeItemInput{Quantity: decimal.NewFromInt(1), UnitPrice: decPtr(t, "10.00")},
				wantCode: domainerror.ErrCodeMissingDescription,
			},
			{
				name: "description too long",
				item: ChargeItemInput{
					Description: strings.Repeat("x", MaxDescriptionLength+1),
					Quantity:    decimal.NewFromInt(1),
					UnitPrice:   decPtr(t, "10.00"),
				},
				wantCode: domainerror.ErrCodeDescriptionTooLong,
			},
			{
				name:     "zero quantity",
				item:     ChargeItemInput{Description: "Farm call", Quantity: decimal.Zero, UnitPrice: decPtr(t, "10.00")},
				wantCode: domainerror.ErrCodeInvalidQuantity,
			},
			{
				name:     "negative unit price",
				item:     ChargeItemInput{Description: "Farm call", Quantity: decimal.NewFromInt(1), UnitPrice: decPtr(t, "-1.00")},
				wantCode: domainerror.ErrCodeInvalidUnitPrice,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, transactionRepo, _, horse, owner := setup(t)

				_, err := uc.Execute(ctx, AddChargeBatchInput{
					HorseID:     horse.ID,
					OwnerID:     owner.ID,
					ServiceDate: serviceDate,
					Items: []ChargeItemInput{
						{Description: "Valid line", Quantity: decimal.NewFromInt(1), UnitPrice: decPtr(t, "10.00")},
						tc.item,
					},
				})

				var billErr *domainerror.BillingError
				if !errors.As(err, &billErr) || billErr.Code != tc.wantCode {
					t.Fatalf("expected %s, got %v", tc.wantCode, err)
				}
				if len(transactionRepo.transactions) != 0 {
					t.Error("no transactions should persist when a line fails")
				}
			})
		}
	})

	t.Run("inactive charge code is rejected", func(t *testing.T) {
		uc, _, chargeCodeRepo, horse, owner := setup(t)
		code := entity.NewChargeCode("OLD", "Discontinued service", "", dec(t, "10.00"), false)
		code.IsActive = false
		chargeCodeRepo.codes[code.ID] = code

		_, err := uc.Execute(ctx, AddChargeBatchInput{
			HorseID:     horse.ID,
			OwnerID:     owner.ID,
			ServiceDate: serviceDate,
			Items: []ChargeItemInput{
				{ChargeCodeID: &code.ID, Quantity: decimal.NewFromInt(1)},
			},
		})

		var codeErr *domainerror.ChargeCodeError
		if !errors.As(err, &codeErr) || codeErr.Code != domainerror.ErrCodeChargeCodeInactive {
			t.Fatalf("expected inactive charge code error, got %v", err)
		}
	})

	t.Run("unknown owner is rejected", func(t *testing.T) {
		uc, _, _, horse, _ := setup(t)

		_, err := uc.Execute(ctx, AddChargeBatchInput{
			HorseID:     horse.ID,
			OwnerID:     uuid.New(),
			ServiceDate: serviceDate,
			Items: []ChargeItemInput{
				{Description: "Farm call", Quantity: decimal.NewFromInt(1), UnitPrice: decPtr(t, "65.00")},
			},
		})

		var ownerErr *domainerror.OwnerError
		if !errors.As(err, &ownerErr) || ownerErr.Code != domainerror.ErrCodeOwnerNotFound {
			t.Fatalf("expected owner not found error, got %v", err)
		}
	})
}
