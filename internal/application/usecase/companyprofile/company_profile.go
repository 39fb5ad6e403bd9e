// Package companyprofile contains the practice profile use cases.
package companyprofile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// CompanyProfileOutput represents the profile in use case outputs.
type CompanyProfileOutput struct {
	CompanyName  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Phone        string
	Email        string
	Website      string
	Notes        string
	UpdatedAt    time.Time
}

func toCompanyProfileOutput(p *entity.CompanyProfile) *CompanyProfileOutput {
	return &CompanyProfileOutput{
		CompanyName:  p.CompanyName,
		AddressLine1: p.AddressLine1,
		AddressLine2: p.AddressLine2,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Phone:        p.Phone,
		Email:        p.Email,
		Website:      p.Website,
		Notes:        p.Notes,
		UpdatedAt:    p.UpdatedAt,
	}
}

// GetCompanyProfileOutput represents the output of retrieving the profile.
type GetCompanyProfileOutput struct {
	Profile *CompanyProfileOutput
}

// GetCompanyProfileUseCase retrieves the practice profile.
type GetCompanyProfileUseCase struct {
	profileRepo adapter.CompanyProfileRepository
}

// NewGetCompanyProfileUseCase creates a new GetCompanyProfileUseCase instance.
func NewGetCompanyProfileUseCase(profileRepo adapter.CompanyProfileRepository) *GetCompanyProfileUseCase {
	return &GetCompanyProfileUseCase{profileRepo: profileRepo}
}

// Execute retrieves the profile.
func (uc *GetCompanyProfileUseCase) Execute(ctx context.Context) (*GetCompanyProfileOutput, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyProfileNotFound) {
			return nil, domainerror.NewCompanyProfileError(
				domainerror.ErrCodeCompanyProfileNotFound,
				"company profile has not been set up",
				domainerror.ErrCompanyProfileNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load company profile: %w", err)
	}
	return &GetCompanyProfileOutput{Profile: toCompanyProfileOutput(profile)}, nil
}

// UpdateCompanyProfileInput represents the full replacement profile. The
// first update creates the row.
type UpdateCompanyProfileInput struct {
	CompanyName  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Phone        string
	Email        string
	Website      string
	Notes        string
}

// UpdateCompanyProfileOutput represents the output of updating the profile.
type UpdateCompanyProfileOutput struct {
	Profile *CompanyProfileOutput
}

// UpdateCompanyProfileUseCase creates or replaces the practice profile.
type UpdateCompanyProfileUseCase struct {
	profileRepo adapter.CompanyProfileRepository
}

// NewUpdateCompanyProfileUseCase creates a new UpdateCompanyProfileUseCase instance.
func NewUpdateCompanyProfileUseCase(profileRepo adapter.CompanyProfileRepository) *UpdateCompanyProfileUseCase {
	return &UpdateCompanyProfileUseCase{profileRepo: profileRepo}
}

// Execute saves the profile.
func (uc *UpdateCompanyProfileUseCase) Execute(ctx context.Context, input UpdateCompanyProfileInput) (*UpdateCompanyProfileOutput, error) {
	if input.CompanyName == "" {
		return nil, domainerror.NewCompanyProfileError(
			domainerror.ErrCodeMissingCompanyName,
			"company name is required",
			nil,
		)
	}

	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domainerror.ErrCompanyProfileNotFound) {
			return nil, fmt.Errorf("failed to load company profile: %w", err)
		}
		profile = entity.NewCompanyProfile(input.CompanyName)
	}

	profile.CompanyName = input.CompanyName
	profile.AddressLine1 = input.AddressLine1
	profile.AddressLine2 = input.AddressLine2
	profile.City = input.City
	profile.State = input.State
	profile.ZipCode = input.ZipCode
	profile.Phone = input.Phone
	profile.Email = input.Email
	profile.Website = input.Website
	profile.Notes = input.Notes
	profile.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save company profile: %w", err)
	}

	slog.Info("Company profile saved", "companyName", profile.CompanyName)

	return &UpdateCompanyProfileOutput{Profile: toCompanyProfileOutput(profile)}, nil
}
