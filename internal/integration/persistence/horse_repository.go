package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

// horseRepository implements the adapter.HorseRepository interface.
type horseRepository struct {
	db *gorm.DB
}

// NewHorseRepository creates a new horse repository instance.
func NewHorseRepository(db *gorm.DB) adapter.HorseRepository {
	return &horseRepository{
		db: db,
	}
}

// Create creates a new horse with its ownership rows.
func (r *horseRepository) Create(ctx context.Context, horse *entity.Horse) error {
	horseModel := model.HorseFromEntity(horse)
	result := r.db.WithContext(ctx).Create(horseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a horse with its ownership associations, ordered by
// position so split resolution stays deterministic.
func (r *horseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Horse, error) {
	var horseModel model.HorseModel
	result := r.db.WithContext(ctx).
		Preload("Owners", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&horseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHorseNotFound
		}
		return nil, result.Error
	}
	return horseModel.ToEntity(), nil
}

// Search lists horses matching the filter, ordered by name.
func (r *horseRepository) Search(ctx context.Context, filter adapter.HorseFilter) ([]*entity.Horse, error) {
	query := r.db.WithContext(ctx).Model(&model.HorseModel{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(account_number) LIKE ?", pattern, pattern)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var horseModels []model.HorseModel
	result := query.
		Preload("Owners", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("name ASC").
		Find(&horseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	horses := make([]*entity.Horse, len(horseModels))
	for i, hm := range horseModels {
		horses[i] = hm.ToEntity()
	}
	return horses, nil
}

// Update updates a horse's own columns. Ownership rows are managed through
// SetOwners only.
func (r *horseRepository) Update(ctx context.Context, horse *entity.Horse) error {
	horseModel := model.HorseFromEntity(horse)
	horseModel.Owners = nil
	result := r.db.WithContext(ctx).Omit("Owners").Save(horseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SetOwners replaces the horse's ownership associations atomically.
func (r *horseRepository) SetOwners(ctx context.Context, horseID uuid.UUID, owners []*entity.HorseOwner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("horse_id = ?", horseID).Delete(&model.HorseOwnerModel{}).Error; err != nil {
			return err
		}
		for _, owner := range owners {
			if err := tx.Create(model.HorseOwnerFromEntity(owner)).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.HorseModel{}).
			Where("id = ?", horseID).
			Update("updated_at", time.Now().UTC()).Error
	})
}

// AssignLocation opens a new current location entry and closes the prior
// one in the same database transaction.
func (r *horseRepository) AssignLocation(ctx context.Context, horseID, locationID uuid.UUID, reason string) (*entity.HorseLocation, error) {
	now := time.Now().UTC()
	entry := &model.HorseLocationModel{
		ID:            uuid.New(),
		HorseID:       horseID,
		LocationID:    locationID,
		ArrivalDate:   now,
		IsCurrent:     true,
		ReasonForMove: reason,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		closeResult := tx.Model(&model.HorseLocationModel{}).
			Where("horse_id = ? AND is_current = ?", horseID, true).
			Updates(map[string]interface{}{
				"is_current":     false,
				"departure_date": now,
			})
		if closeResult.Error != nil {
			return closeResult.Error
		}

		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&model.HorseModel{}).
			Where("id = ?", horseID).
			Updates(map[string]interface{}{
				"current_location_id": locationID,
				"updated_at":          now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return entry.ToEntity(), nil
}

// HasBillingRecords reports whether any transactions reference the horse.
func (r *horseRepository) HasBillingRecords(ctx context.Context, horseID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("horse_id = ?", horseID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Deactivate marks the horse inactive.
func (r *horseRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.HorseModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	return result.Error
}

// Delete removes a horse along with its ownership and location history.
func (r *horseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("horse_id = ?", id).Delete(&model.HorseOwnerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("horse_id = ?", id).Delete(&model.HorseLocationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.HorseModel{}, "id = ?", id).Error
	})
}
