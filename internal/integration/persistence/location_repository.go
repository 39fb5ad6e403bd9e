package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

// locationRepository implements the adapter.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository instance.
func NewLocationRepository(db *gorm.DB) adapter.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create creates a new location in the database.
func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationModel := model.LocationFromEntity(location)
	result := r.db.WithContext(ctx).Create(locationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a location by ID.
func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationModel model.LocationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&locationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLocationNotFound
		}
		return nil, result.Error
	}
	return locationModel.ToEntity(), nil
}

// ExistsByName checks whether a location name is taken.
func (r *locationRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List retrieves locations ordered by name.
func (r *locationRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Location, error) {
	query := r.db.WithContext(ctx).Model(&model.LocationModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var locationModels []model.LocationModel
	result := query.Order("name ASC").Find(&locationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	locations := make([]*entity.Location, len(locationModels))
	for i, lm := range locationModels {
		locations[i] = lm.ToEntity()
	}
	return locations, nil
}

// Update updates an existing location in the database.
func (r *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locationModel := model.LocationFromEntity(location)
	result := r.db.WithContext(ctx).Save(locationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountCurrentHorses counts horses whose current location entry points here.
func (r *locationRepository) CountCurrentHorses(ctx context.Context, locationID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HorseLocationModel{}).
		Where("location_id = ? AND is_current = ?", locationID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete removes a location.
func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LocationModel{}, "id = ?", id)
	return result.Error
}
