package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

// companyProfileRepository implements the adapter.CompanyProfileRepository interface.
type companyProfileRepository struct {
	db *gorm.DB
}

// NewCompanyProfileRepository creates a new company profile repository instance.
func NewCompanyProfileRepository(db *gorm.DB) adapter.CompanyProfileRepository {
	return &companyProfileRepository{
		db: db,
	}
}

// Get retrieves the single profile row.
func (r *companyProfileRepository) Get(ctx context.Context) (*entity.CompanyProfile, error) {
	var profileModel model.CompanyProfileModel
	result := r.db.WithContext(ctx).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompanyProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// Save creates or replaces the profile row.
func (r *companyProfileRepository) Save(ctx context.Context, profile *entity.CompanyProfile) error {
	result := r.db.WithContext(ctx).Save(model.CompanyProfileFromEntity(profile))
	return result.Error
}
