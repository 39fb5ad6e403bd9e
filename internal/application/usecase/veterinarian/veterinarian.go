// Package veterinarian contains the veterinarian reference-data use cases.
package veterinarian

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// VeterinarianOutput represents a veterinarian in use case outputs.
type VeterinarianOutput struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	LicenseNumber string
	Phone         string
	Email         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toVeterinarianOutput(v *entity.Veterinarian) *VeterinarianOutput {
	return &VeterinarianOutput{
		ID:            v.ID,
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		LicenseNumber: v.LicenseNumber,
		Phone:         v.Phone,
		Email:         v.Email,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domainerror.NewVeterinarianError(
			domainerror.ErrCodeInvalidVeterinarianEmail,
			"email address is not valid",
			nil,
		)
	}
	return nil
}

// CreateVeterinarianInput represents the input for veterinarian creation.
type CreateVeterinarianInput struct {
	FirstName     string
	LastName      string
	LicenseNumber string
	Phone         string
	Email         string
}

// CreateVeterinarianOutput represents the output of veterinarian creation.
type CreateVeterinarianOutput struct {
	Veterinarian *VeterinarianOutput
}

// CreateVeterinarianUseCase handles veterinarian creation.
type CreateVeterinarianUseCase struct {
	vetRepo adapter.VeterinarianRepository
}

// NewCreateVeterinarianUseCase creates a new CreateVeterinarianUseCase instance.
func NewCreateVeterinarianUseCase(vetRepo adapter.VeterinarianRepository) *CreateVeterinarianUseCase {
	return &CreateVeterinarianUseCase{vetRepo: vetRepo}
}

// Execute creates the veterinarian. License numbers are unique when given.
func (uc *CreateVeterinarianUseCase) Execute(ctx context.Context, input CreateVeterinarianInput) (*CreateVeterinarianOutput, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, domainerror.NewVeterinarianError(
			domainerror.ErrCodeMissingVeterinarianName,
			"first and last name are required",
			nil,
		)
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}

	if input.LicenseNumber != "" {
		taken, err := uc.vetRepo.ExistsByLicenseNumber(ctx, input.LicenseNumber, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check license number: %w", err)
		}
		if taken {
			return nil, domainerror.NewVeterinarianError(
				domainerror.ErrCodeDuplicateLicenseNumber,
				"license number already in use",
				domainerror.ErrDuplicateLicenseNumber,
			)
		}
	}

	vet := entity.NewVeterinarian(input.FirstName, input.LastName, input.LicenseNumber, input.Phone, input.Email)
	if err := uc.vetRepo.Create(ctx, vet); err != nil {
		return nil, fmt.Errorf("failed to create veterinarian: %w", err)
	}

	slog.Info("Veterinarian created", "veterinarianID", vet.ID, "name", vet.FullName())

	return &CreateVeterinarianOutput{Veterinarian: toVeterinarianOutput(vet)}, nil
}

// GetVeterinarianInput represents the input for retrieving a veterinarian.
type GetVeterinarianInput struct {
	VeterinarianID uuid.UUID
}

// GetVeterinarianOutput represents the output of retrieving a veterinarian.
type GetVeterinarianOutput struct {
	Veterinarian *VeterinarianOutput
}

// GetVeterinarianUseCase retrieves a single veterinarian.
type GetVeterinarianUseCase struct {
	vetRepo adapter.VeterinarianRepository
}

// NewGetVeterinarianUseCase creates a new GetVeterinarianUseCase instance.
func NewGetVeterinarianUseCase(vetRepo adapter.VeterinarianRepository) *GetVeterinarianUseCase {
	return &GetVeterinarianUseCase{vetRepo: vetRepo}
}

// Execute retrieves the veterinarian.
func (uc *GetVeterinarianUseCase) Execute(ctx context.Context, input GetVeterinarianInput) (*GetVeterinarianOutput, error) {
	vet, err := uc.vetRepo.FindByID(ctx, input.VeterinarianID)
	if err != nil {
		if errors.Is(err, domainerror.ErrVeterinarianNotFound) {
			return nil, domainerror.NewVeterinarianError(
				domainerror.ErrCodeVeterinarianNotFound,
				"veterinarian not found",
				domainerror.ErrVeterinarianNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find veterinarian: %w", err)
	}
	return &GetVeterinarianOutput{Veterinarian: toVeterinarianOutput(vet)}, nil
}

// ListVeterinariansInput represents the input for listing veterinarians.
type ListVeterinariansInput struct {
	ActiveOnly bool
}

// ListVeterinariansOutput represents the output of listing veterinarians.
type ListVeterinariansOutput struct {
	Veterinarians []*VeterinarianOutput
}

// ListVeterinariansUseCase lists veterinarians.
type ListVeterinariansUseCase struct {
	vetRepo adapter.VeterinarianRepository
}

// NewListVeterinariansUseCase creates a new ListVeterinariansUseCase instance.
func NewListVeterinariansUseCase(vetRepo adapter.VeterinarianRepository) *ListVeterinariansUseCase {
	return &ListVeterinariansUseCase{vetRepo: vetRepo}
}

// Execute retrieves the veterinarians, ordered by last then first name.
func (uc *ListVeterinariansUseCase) Execute(ctx context.Context, input ListVeterinariansInput) (*ListVeterinariansOutput, error) {
	vets, err := uc.vetRepo.List(ctx, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list veterinarians: %w", err)
	}

	outputs := make([]*VeterinarianOutput, len(vets))
	for i, v := range vets {
		outputs[i] = toVeterinarianOutput(v)
	}
	return &ListVeterinariansOutput{Veterinarians: outputs}, nil
}

// UpdateVeterinarianInput represents the input for updating a veterinarian.
// Nil pointers leave the stored value untouched.
type UpdateVeterinarianInput struct {
	VeterinarianID uuid.UUID
	FirstName      *string
	LastName       *string
	LicenseNumber  *string
	Phone          *string
	Email          *string
	IsActive       *bool
}

// UpdateVeterinarianOutput represents the output of updating a veterinarian.
type UpdateVeterinarianOutput struct {
	Veterinarian *VeterinarianOutput
}

// UpdateVeterinarianUseCase handles veterinarian updates, including
// activating and deactivating the record.
type UpdateVeterinarianUseCase struct {
	vetRepo adapter.VeterinarianRepository
}

// NewUpdateVeterinarianUseCase creates a new UpdateVeterinarianUseCase instance.
func NewUpdateVeterinarianUseCase(vetRepo adapter.VeterinarianRepository) *UpdateVeterinarianUseCase {
	return &UpdateVeterinarianUseCase{vetRepo: vetRepo}
}

// Execute applies the update.
func (uc *UpdateVeterinarianUseCase) Execute(ctx context.Context, input UpdateVeterinarianInput) (*UpdateVeterinarianOutput, error) {
	vet, err := uc.vetRepo.FindByID(ctx, input.VeterinarianID)
	if err != nil {
		if errors.Is(err, domainerror.ErrVeterinarianNotFound) {
			return nil, domainerror.NewVeterinarianError(
				domainerror.ErrCodeVeterinarianNotFound,
				"veterinarian not found",
				domainerror.ErrVeterinarianNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find veterinarian: %w", err)
	}

	if input.FirstName != nil {
		if *input.FirstName == "" {
			return nil, domainerror.NewVeterinarianError(
				domainerror.ErrCodeMissingVeterinarianName,
				"first name cannot be empty",
				nil,
			)
		}
		vet.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		if *input.LastName == "" {
			return nil, domainerror.NewVeterinarianError(
				domainerror.ErrCodeMissingVeterinarianName,
				"last name cannot be empty",
				nil,
			)
		}
		vet.LastName = *input.LastName
	}
	if input.LicenseNumber != nil && *input.LicenseNumber != vet.LicenseNumber {
		if *input.LicenseNumber != "" {
			taken, err := uc.vetRepo.ExistsByLicenseNumber(ctx, *input.LicenseNumber, &vet.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check license number: %w", err)
			}
			if taken {
				return nil, domainerror.NewVeterinarianError(
					domainerror.ErrCodeDuplicateLicenseNumber,
					"license number already in use",
					domainerror.ErrDuplicateLicenseNumber,
				)
			}
		}
		vet.LicenseNumber = *input.LicenseNumber
	}
	if input.Phone != nil {
		vet.Phone = *input.Phone
	}
	if input.Email != nil {
		if err := validateEmail(*input.Email); err != nil {
			return nil, err
		}
		vet.Email = *input.Email
	}
	if input.IsActive != nil {
		vet.IsActive = *input.IsActive
	}
	vet.UpdatedAt = time.Now().UTC()

	if err := uc.vetRepo.Update(ctx, vet); err != nil {
		return nil, fmt.Errorf("failed to update veterinarian: %w", err)
	}

	return &UpdateVeterinarianOutput{Veterinarian: toVeterinarianOutput(vet)}, nil
}
