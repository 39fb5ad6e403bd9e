package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

func TestOwnerRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewOwnerRepository(db)

	owner := entity.NewOwner("AC-1042", "Willow Creek Farm", "Maria", "Santos")
	creditLimit := dec(t, "5000.00")
	owner.CreditLimit = &creditLimit
	if err := repo.Create(ctx, owner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, owner.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.FarmName != "Willow Creek Farm" {
		t.Errorf("expected farm name to round-trip, got %q", found.FarmName)
	}
	if found.CreditLimit == nil || !found.CreditLimit.Equal(creditLimit) {
		t.Error("expected credit limit to round-trip")
	}
	if !found.Balance.IsZero() {
		t.Errorf("new owner should start with zero balance, got %s", found.Balance)
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestOwnerRepositoryFindByFilter(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewOwnerRepository(db)

	santos := entity.NewOwner("AC-1042", "Willow Creek Farm", "Maria", "Santos")
	oak := entity.NewOwner("AC-1043", "Oak Hollow Stables", "James", "Carter")
	inactive := entity.NewOwner("AC-1044", "", "Lena", "Santana")
	inactive.IsActive = false
	for _, owner := range []*entity.Owner{santos, oak, inactive} {
		if err := repo.Create(ctx, owner); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("matches names case-insensitively", func(t *testing.T) {
		owners, err := repo.FindByFilter(ctx, adapter.OwnerFilter{Search: "sant"})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if len(owners) != 2 {
			t.Fatalf("expected 2 owners, got %d", len(owners))
		}
	})

	t.Run("active only excludes inactive owners", func(t *testing.T) {
		owners, err := repo.FindByFilter(ctx, adapter.OwnerFilter{Search: "sant", ActiveOnly: true})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if len(owners) != 1 {
			t.Fatalf("expected 1 owner, got %d", len(owners))
		}
		if owners[0].LastName != "Santos" {
			t.Errorf("expected Santos, got %s", owners[0].LastName)
		}
	})
}

func TestOwnerRepositoryExistsByAccountNumber(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewOwnerRepository(db)

	owner := entity.NewOwner("AC-1042", "Willow Creek Farm", "Maria", "Santos")
	if err := repo.Create(ctx, owner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, err := repo.ExistsByAccountNumber(ctx, "AC-1042", nil)
	if err != nil {
		t.Fatalf("ExistsByAccountNumber failed: %v", err)
	}
	if !exists {
		t.Error("expected account number to exist")
	}

	// Excluding the owner itself allows updates to keep the number.
	exists, err = repo.ExistsByAccountNumber(ctx, "AC-1042", &owner.ID)
	if err != nil {
		t.Fatalf("ExistsByAccountNumber failed: %v", err)
	}
	if exists {
		t.Error("expected no conflict when excluding the owner itself")
	}

	exists, err = repo.ExistsByAccountNumber(ctx, "AC-9999", nil)
	if err != nil {
		t.Fatalf("ExistsByAccountNumber failed: %v", err)
	}
	if exists {
		t.Error("expected unused account number to be free")
	}
}

func TestOwnerRepositoryUpdate(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewOwnerRepository(db)

	owner := entity.NewOwner("AC-1042", "Willow Creek Farm", "Maria", "Santos")
	if err := repo.Create(ctx, owner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	owner.Phone = "555-0142"
	owner.Email = "maria@willowcreek.example"
	if err := repo.Update(ctx, owner); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var row model.OwnerModel
	if err := db.Where("id = ?", owner.ID).First(&row).Error; err != nil {
		t.Fatalf("failed to reload owner: %v", err)
	}
	if row.Phone != "555-0142" || row.Email != "maria@willowcreek.example" {
		t.Error("expected updated contact details to persist")
	}
}
