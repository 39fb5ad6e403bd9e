package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

func horseOwner(horseID, ownerID uuid.UUID, percentage *decimal.Decimal, position int) *entity.HorseOwner {
	return &entity.HorseOwner{
		HorseID:    horseID,
		OwnerID:    ownerID,
		Percentage: percentage,
		Position:   position,
		StartDate:  time.Now().UTC(),
	}
}

func TestHorseRepositoryFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns owners ordered by position", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewHorseRepository(db)

		first := seedOwner(t, db, "Willow Creek Farm")
		second := seedOwner(t, db, "Oak Hollow Stables")
		horse := seedHorse(t, db, "Dante")

		sixty := dec(t, "60.00")
		forty := dec(t, "40.00")
		if err := repo.SetOwners(ctx, horse.ID, []*entity.HorseOwner{
			horseOwner(horse.ID, second.ID, &forty, 1),
			horseOwner(horse.ID, first.ID, &sixty, 0),
		}); err != nil {
			t.Fatalf("SetOwners failed: %v", err)
		}

		found, err := repo.FindByID(ctx, horse.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if len(found.Owners) != 2 {
			t.Fatalf("expected 2 owners, got %d", len(found.Owners))
		}
		if found.Owners[0].OwnerID != first.ID {
			t.Error("expected position 0 owner first")
		}
		if found.Owners[0].Percentage == nil || !found.Owners[0].Percentage.Equal(sixty) {
			t.Error("expected 60.00 percentage on first owner")
		}
	})

	t.Run("unknown horse returns not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewHorseRepository(db)

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrHorseNotFound) {
			t.Fatalf("expected ErrHorseNotFound, got %v", err)
		}
	})
}

func TestHorseRepositorySetOwners(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewHorseRepository(db)

	first := seedOwner(t, db, "Willow Creek Farm")
	second := seedOwner(t, db, "Oak Hollow Stables")
	horse := seedHorse(t, db, "Dante")

	if err := repo.SetOwners(ctx, horse.ID, []*entity.HorseOwner{
		horseOwner(horse.ID, first.ID, nil, 0),
	}); err != nil {
		t.Fatalf("SetOwners failed: %v", err)
	}

	// Replace the single owner with a 50/50 split.
	half := dec(t, "50.00")
	if err := repo.SetOwners(ctx, horse.ID, []*entity.HorseOwner{
		horseOwner(horse.ID, second.ID, &half, 0),
		horseOwner(horse.ID, first.ID, &half, 1),
	}); err != nil {
		t.Fatalf("SetOwners replace failed: %v", err)
	}

	found, err := repo.FindByID(ctx, horse.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if len(found.Owners) != 2 {
		t.Fatalf("expected 2 owners after replace, got %d", len(found.Owners))
	}
	if found.Owners[0].OwnerID != second.ID {
		t.Error("expected the new position 0 owner first")
	}
}

func TestHorseRepositorySearch(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewHorseRepository(db)

	seedHorse(t, db, "Dante")
	seedHorse(t, db, "Biscuit")
	retired := seedHorse(t, db, "Danny Boy")
	if err := repo.Deactivate(ctx, retired.ID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		horses, err := repo.Search(ctx, adapter.HorseFilter{Search: "dan"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(horses) != 2 {
			t.Fatalf("expected 2 horses, got %d", len(horses))
		}
		if horses[0].Name != "Danny Boy" || horses[1].Name != "Dante" {
			t.Error("expected horses ordered by name")
		}
	})

	t.Run("active only excludes deactivated horses", func(t *testing.T) {
		horses, err := repo.Search(ctx, adapter.HorseFilter{Search: "dan", ActiveOnly: true})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(horses) != 1 {
			t.Fatalf("expected 1 horse, got %d", len(horses))
		}
		if horses[0].Name != "Dante" {
			t.Errorf("expected Dante, got %s", horses[0].Name)
		}
	})
}

func TestHorseRepositoryAssignLocation(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewHorseRepository(db)

	horse := seedHorse(t, db, "Dante")
	barn := entity.NewLocation("Main Barn", "")
	paddock := entity.NewLocation("North Paddock", "")
	for _, location := range []*entity.Location{barn, paddock} {
		if err := db.Create(model.LocationFromEntity(location)).Error; err != nil {
			t.Fatalf("failed to seed location: %v", err)
		}
	}

	if _, err := repo.AssignLocation(ctx, horse.ID, barn.ID, "intake"); err != nil {
		t.Fatalf("AssignLocation failed: %v", err)
	}
	entry, err := repo.AssignLocation(ctx, horse.ID, paddock.ID, "turnout")
	if err != nil {
		t.Fatalf("AssignLocation failed: %v", err)
	}
	if !entry.IsCurrent {
		t.Error("new entry should be current")
	}

	var history []model.HorseLocationModel
	if err := db.Where("horse_id = ?", horse.ID).Order("arrival_date ASC").Find(&history).Error; err != nil {
		t.Fatalf("failed to load location history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].IsCurrent || history[0].DepartureDate == nil {
		t.Error("prior entry should be closed with a departure date")
	}
	if !history[1].IsCurrent || history[1].LocationID != paddock.ID {
		t.Error("latest entry should be current and point at the new location")
	}

	found, err := repo.FindByID(ctx, horse.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.CurrentLocationID == nil || *found.CurrentLocationID != paddock.ID {
		t.Error("horse should carry the new current location")
	}
}

func TestHorseRepositoryHasBillingRecords(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewHorseRepository(db)

	owner := seedOwner(t, db, "Willow Creek Farm")
	billed := seedHorse(t, db, "Dante")
	clean := seedHorse(t, db, "Biscuit")
	seedTransaction(t, db, billed.ID, owner.ID, date(t, "2025-03-01"), "65.00")

	has, err := repo.HasBillingRecords(ctx, billed.ID)
	if err != nil {
		t.Fatalf("HasBillingRecords failed: %v", err)
	}
	if !has {
		t.Error("expected billing records for the billed horse")
	}

	has, err = repo.HasBillingRecords(ctx, clean.ID)
	if err != nil {
		t.Fatalf("HasBillingRecords failed: %v", err)
	}
	if has {
		t.Error("expected no billing records for the clean horse")
	}
}

func TestHorseRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewHorseRepository(db)

	owner := seedOwner(t, db, "Willow Creek Farm")
	horse := seedHorse(t, db, "Dante")
	if err := repo.SetOwners(ctx, horse.ID, []*entity.HorseOwner{
		horseOwner(horse.ID, owner.ID, nil, 0),
	}); err != nil {
		t.Fatalf("SetOwners failed: %v", err)
	}

	if err := repo.Delete(ctx, horse.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, horse.ID); !errors.Is(err, domainerror.ErrHorseNotFound) {
		t.Fatalf("expected ErrHorseNotFound after delete, got %v", err)
	}

	var count int64
	if err := db.Model(&model.HorseOwnerModel{}).Where("horse_id = ?", horse.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count ownership rows: %v", err)
	}
	if count != 0 {
		t.Error("ownership rows should be removed with the horse")
	}
}
