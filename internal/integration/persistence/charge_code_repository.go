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

// chargeCodeRepository implements the adapter.ChargeCodeRepository interface.
type chargeCodeRepository struct {
	db *gorm.DB
}

// NewChargeCodeRepository creates a new charge code repository instance.
func NewChargeCodeRepository(db *gorm.DB) adapter.ChargeCodeRepository {
	return &chargeCodeRepository{
		db: db,
	}
}

// Create creates a new charge code in the database.
func (r *chargeCodeRepository) Create(ctx context.Context, chargeCode *entity.ChargeCode) error {
	chargeCodeModel := model.ChargeCodeFromEntity(chargeCode)
	result := r.db.WithContext(ctx).Create(chargeCodeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a charge code by ID.
func (r *chargeCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ChargeCode, error) {
	var chargeCodeModel model.ChargeCodeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&chargeCodeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChargeCodeNotFound
		}
		return nil, result.Error
	}
	return chargeCodeModel.ToEntity(), nil
}

// FindByCode retrieves a charge code by its unique code.
func (r *chargeCodeRepository) FindByCode(ctx context.Context, code string) (*entity.ChargeCode, error) {
	var chargeCodeModel model.ChargeCodeModel
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&chargeCodeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChargeCodeNotFound
		}
		return nil, result.Error
	}
	return chargeCodeModel.ToEntity(), nil
}

// List retrieves charge codes ordered by code.
func (r *chargeCodeRepository) List(ctx context.Context, activeOnly bool) ([]*entity.ChargeCode, error) {
	query := r.db.WithContext(ctx).Model(&model.ChargeCodeModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var chargeCodeModels []model.ChargeCodeModel
	result := query.Order("code ASC").Find(&chargeCodeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	chargeCodes := make([]*entity.ChargeCode, len(chargeCodeModels))
	for i, cm := range chargeCodeModels {
		chargeCodes[i] = cm.ToEntity()
	}
	return chargeCodes, nil
}

// Update updates an existing charge code in the database.
func (r *chargeCodeRepository) Update(ctx context.Context, chargeCode *entity.ChargeCode) error {
	chargeCodeModel := model.ChargeCodeFromEntity(chargeCode)
	result := r.db.WithContext(ctx).Save(chargeCodeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
