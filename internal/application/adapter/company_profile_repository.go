package adapter

import (
	"context"

	"github.com/equivet/backend/internal/domain/entity"
)

// CompanyProfileRepository defines persistence operations for the single
// company profile row.
type CompanyProfileRepository interface {
	// Get retrieves the profile, or ErrCompanyProfileNotFound when none
	// has been saved yet.
	Get(ctx context.Context) (*entity.CompanyProfile, error)

	// Save creates or replaces the profile.
	Save(ctx context.Context, profile *entity.CompanyProfile) error
}
