package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

// ownerRepository implements the adapter.OwnerRepository interface.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository instance.
func NewOwnerRepository(db *gorm.DB) adapter.OwnerRepository {
	return &ownerRepository{
		db: db,
	}
}

// Create creates a new owner in the database.
func (r *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	ownerModel := model.OwnerFromEntity(owner)
	result := r.db.WithContext(ctx).Create(ownerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an owner by ID.
func (r *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	var ownerModel model.OwnerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&ownerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOwnerNotFound
		}
		return nil, result.Error
	}
	return ownerModel.ToEntity(), nil
}

// FindByFilter lists owners matching the filter.
func (r *ownerRepository) FindByFilter(ctx context.Context, filter adapter.OwnerFilter) ([]*entity.Owner, error) {
	query := r.db.WithContext(ctx).Model(&model.OwnerModel{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(farm_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(first_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var ownerModels []model.OwnerModel
	result := query.Order("farm_name ASC, last_name ASC").Find(&ownerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	owners := make([]*entity.Owner, len(ownerModels))
	for i, om := range ownerModels {
		owners[i] = om.ToEntity()
	}
	return owners, nil
}

// ExistsByAccountNumber checks whether an account number is taken.
func (r *ownerRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.OwnerModel{}).
		Where("account_number = ?", accountNumber)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing owner in the database.
func (r *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	ownerModel := model.OwnerFromEntity(owner)
	result := r.db.WithContext(ctx).Save(ownerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
