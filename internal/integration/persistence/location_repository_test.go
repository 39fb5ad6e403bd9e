package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

func TestLocationRepository(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	repo := NewLocationRepository(db)
	horseRepo := NewHorseRepository(db)

	barn := entity.NewLocation("Main Barn", "12-stall barn")
	paddock := entity.NewLocation("North Paddock", "")
	closed := entity.NewLocation("Old Annex", "")
	closed.IsActive = false
	for _, location := range []*entity.Location{barn, paddock, closed} {
		if err := repo.Create(ctx, location); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("exists by name honors the excluded ID", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "Main Barn", nil)
		if err != nil {
			t.Fatalf("ExistsByName failed: %v", err)
		}
		if !exists {
			t.Error("expected existing name to match")
		}

		exists, err = repo.ExistsByName(ctx, "Main Barn", &barn.ID)
		if err != nil {
			t.Fatalf("ExistsByName failed: %v", err)
		}
		if exists {
			t.Error("expected no conflict when excluding the location itself")
		}
	})

	t.Run("list honors active only", func(t *testing.T) {
		all, err := repo.List(ctx, false)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 locations, got %d", len(all))
		}

		active, err := repo.List(ctx, true)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(active) != 2 {
			t.Fatalf("expected 2 active locations, got %d", len(active))
		}
	})

	t.Run("counts horses currently housed", func(t *testing.T) {
		horse := seedHorse(t, db, "Dante")
		if _, err := horseRepo.AssignLocation(ctx, horse.ID, barn.ID, "intake"); err != nil {
			t.Fatalf("AssignLocation failed: %v", err)
		}

		count, err := repo.CountCurrentHorses(ctx, barn.ID)
		if err != nil {
			t.Fatalf("CountCurrentHorses failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 horse in the barn, got %d", count)
		}

		// Moving the horse frees the barn.
		if _, err := horseRepo.AssignLocation(ctx, horse.ID, paddock.ID, "turnout"); err != nil {
			t.Fatalf("AssignLocation failed: %v", err)
		}
		count, err = repo.CountCurrentHorses(ctx, barn.ID)
		if err != nil {
			t.Fatalf("CountCurrentHorses failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected empty barn after the move, got %d", count)
		}
	})

	t.Run("delete removes the location", func(t *testing.T) {
		if err := repo.Delete(ctx, closed.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := repo.FindByID(ctx, closed.ID); !errors.Is(err, domainerror.ErrLocationNotFound) {
			t.Fatalf("expected ErrLocationNotFound after delete, got %v", err)
		}
	})

	t.Run("unknown location returns not found", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrLocationNotFound) {
			t.Fatalf("expected ErrLocationNotFound, got %v", err)
		}
	})
}
