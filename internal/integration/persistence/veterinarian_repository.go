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

// veterinarianRepository implements the adapter.VeterinarianRepository interface.
type veterinarianRepository struct {
	db *gorm.DB
}

// NewVeterinarianRepository creates a new veterinarian repository instance.
func NewVeterinarianRepository(db *gorm.DB) adapter.VeterinarianRepository {
	return &veterinarianRepository{
		db: db,
	}
}

// Create creates a new veterinarian in the database.
func (r *veterinarianRepository) Create(ctx context.Context, vet *entity.Veterinarian) error {
	vetModel := model.VeterinarianFromEntity(vet)
	result := r.db.WithContext(ctx).Create(vetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a veterinarian by ID.
func (r *veterinarianRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Veterinarian, error) {
	var vetModel model.VeterinarianModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&vetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrVeterinarianNotFound
		}
		return nil, result.Error
	}
	return vetModel.ToEntity(), nil
}

// ExistsByLicenseNumber checks whether a license number is taken.
func (r *veterinarianRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.VeterinarianModel{}).
		Where("license_number = ?", licenseNumber)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List retrieves veterinarians ordered by last then first name.
func (r *veterinarianRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Veterinarian, error) {
	query := r.db.WithContext(ctx).Model(&model.VeterinarianModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var vetModels []model.VeterinarianModel
	result := query.Order("last_name ASC, first_name ASC").Find(&vetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	vets := make([]*entity.Veterinarian, len(vetModels))
	for i, vm := range vetModels {
		vets[i] = vm.ToEntity()
	}
	return vets, nil
}

// Update updates an existing veterinarian in the database.
func (r *veterinarianRepository) Update(ctx context.Context, vet *entity.Veterinarian) error {
	vetModel := model.VeterinarianFromEntity(vet)
	result := r.db.WithContext(ctx).Save(vetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
