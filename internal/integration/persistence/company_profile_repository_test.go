package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

func TestCompanyProfileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table returns not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCompanyProfileRepository(db)

		_, err := repo.Get(ctx)
		if !errors.Is(err, domainerror.ErrCompanyProfileNotFound) {
			t.Fatalf("expected ErrCompanyProfileNotFound, got %v", err)
		}
	})

	t.Run("save and reload the single row", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCompanyProfileRepository(db)

		profile := entity.NewCompanyProfile("Equivet Clinic")
		profile.City = "Lexington"
		profile.Phone = "555-0100"
		if err := repo.Save(ctx, profile); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		found, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if found.CompanyName != "Equivet Clinic" || found.City != "Lexington" {
			t.Errorf("unexpected profile %q in %q", found.CompanyName, found.City)
		}

		found.CompanyName = "Equivet Equine Clinic"
		if err := repo.Save(ctx, found); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		again, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if again.CompanyName != "Equivet Equine Clinic" {
			t.Errorf("expected the renamed profile, got %q", again.CompanyName)
		}
	})
}
