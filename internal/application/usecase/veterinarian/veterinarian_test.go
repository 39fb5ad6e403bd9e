package veterinarian

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

type fakeVetRepo struct {
	vets map[uuid.UUID]*entity.Veterinarian
}

func newFakeVetRepo() *fakeVetRepo {
	return &fakeVetRepo{vets: map[uuid.UUID]*entity.Veterinarian{}}
}

func (f *fakeVetRepo) Create(_ context.Context, vet *entity.Veterinarian) error {
	f.vets[vet.ID] = vet
	return nil
}

func (f *fakeVetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Veterinarian, error) {
	vet, ok := f.vets[id]
	if !ok {
		return nil, domainerror.ErrVeterinarianNotFound
	}
	return vet, nil
}

func (f *fakeVetRepo) ExistsByLicenseNumber(_ context.Context, licenseNumber string, excludeID *uuid.UUID) (bool, error) {
	for _, vet := range f.vets {
		if excludeID != nil && vet.ID == *excludeID {
			continue
		}
		if vet.LicenseNumber == licenseNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVetRepo) List(_ context.Context, activeOnly bool) ([]*entity.Veterinarian, error) {
	var vets []*entity.Veterinarian
	for _, vet := range f.vets {
		if activeOnly && !vet.IsActive {
			continue
		}
		vets = append(vets, vet)
	}
	return vets, nil
}

func (f *fakeVetRepo) Update(_ context.Context, vet *entity.Veterinarian) error {
	f.vets[vet.ID] = vet
	return nil
}

func TestCreateVeterinarianUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active veterinarian", func(t *testing.T) {
		repo := newFakeVetRepo()
		uc := NewCreateVeterinarianUseCase(repo)

		output, err := uc.Execute(ctx, CreateVeterinarianInput{
			FirstName:     "Ana",
			LastName:      "Reyes",
			LicenseNumber: "VET-4417",
			Email:         "reyes@equivet.example",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !output.Veterinarian.IsActive {
			t.Error("new veterinarians should be active")
		}
		if len(repo.vets) != 1 {
			t.Errorf("expected 1 persisted veterinarian, got %d", len(repo.vets))
		}
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		uc := NewCreateVeterinarianUseCase(newFakeVetRepo())

		_, err := uc.Execute(ctx, CreateVeterinarianInput{FirstName: "Ana"})

		var vetErr *domainerror.VeterinarianError
		if !errors.As(err, &vetErr) || vetErr.Code != domainerror.ErrCodeMissingVeterinarianName {
			t.Fatalf("expected missing name error, got %v", err)
		}
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		uc := NewCreateVeterinarianUseCase(newFakeVetRepo())

		_, err := uc.Execute(ctx, CreateVeterinarianInput{
			FirstName: "Ana",
			LastName:  "Reyes",
			Email:     "not-an-address",
		})

		var vetErr *domainerror.VeterinarianError
		if !errors.As(err, &vetErr) || vetErr.Code != domainerror.ErrCodeInvalidVeterinarianEmail {
			t.Fatalf("expected invalid email error, got %v", err)
		}
	})

	t.Run("duplicate license number is rejected", func(t *testing.T) {
		repo := newFakeVetRepo()
		uc := NewCreateVeterinarianUseCase(repo)

		if _, err := uc.Execute(ctx, CreateVeterinarianInput{
			FirstName: "Ana", LastName: "Reyes", LicenseNumber: "VET-4417",
		}); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		_, err := uc.Execute(ctx, CreateVeterinarianInput{
			FirstName: "Ben", LastName: "Alcott", LicenseNumber: "VET-4417",
		})

		var vetErr *domainerror.VeterinarianError
		if !errors.As(err, &vetErr) || vetErr.Code != domainerror.ErrCodeDuplicateLicenseNumber {
			t.Fatalf("expected duplicate license error, got %v", err)
		}
	})
}

func TestUpdateVeterinarianUseCase(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeVetRepo, *entity.Veterinarian) {
		t.Helper()
		repo := newFakeVetRepo()
		vet := entity.NewVeterinarian("Ana", "Reyes", "VET-4417", "", "")
		repo.vets[vet.ID] = vet
		return repo, vet
	}

	t.Run("deactivates the record", func(t *testing.T) {
		repo, vet := seed(t)
		uc := NewUpdateVeterinarianUseCase(repo)

		inactive := false
		output, err := uc.Execute(ctx, UpdateVeterinarianInput{
			VeterinarianID: vet.ID,
			IsActive:       &inactive,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Veterinarian.IsActive {
			t.Error("expected the veterinarian to be deactivated")
		}
	})

	t.Run("license change to a taken number is rejected", func(t *testing.T) {
		repo, vet := seed(t)
		other := entity.NewVeterinarian("Ben", "Alcott", "VET-9001", "", "")
		repo.vets[other.ID] = other
		uc := NewUpdateVeterinarianUseCase(repo)

		taken := "VET-9001"
		_, err := uc.Execute(ctx, UpdateVeterinarianInput{
			VeterinarianID: vet.ID,
			LicenseNumber:  &taken,
		})

		var vetErr *domainerror.VeterinarianError
		if !errors.As(err, &vetErr) || vetErr.Code != domainerror.ErrCodeDuplicateLicenseNumber {
			t.Fatalf("expected duplicate license error, got %v", err)
		}
	})

	t.Run("unknown veterinarian returns not found", func(t *testing.T) {
		uc := NewUpdateVeterinarianUseCase(newFakeVetRepo())

		name := "Ana"
		_, err := uc.Execute(ctx, UpdateVeterinarianInput{
			VeterinarianID: uuid.New(),
			FirstName:      &name,
		})

		var vetErr *domainerror.VeterinarianError
		if !errors.As(err, &vetErr) || vetErr.Code != domainerror.ErrCodeVeterinarianNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}
