package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// VeterinarianModel represents the veterinarians table in the database.
type VeterinarianModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"type:varchar(50);not null"`
	LastName      string    `gorm:"type:varchar(50);not null"`
	LicenseNumber string    `gorm:"type:varchar(50)"`
	Phone         string    `gorm:"type:varchar(20)"`
	Email         string    `gorm:"type:varchar(100)"`
	IsActive      bool      `gorm:"default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the VeterinarianModel.
func (VeterinarianModel) TableName() string {
	return "veterinarians"
}

// ToEntity converts a VeterinarianModel to a domain Veterinarian entity.
func (m *VeterinarianModel) ToEntity() *entity.Veterinarian {
	return &entity.Veterinarian{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		LicenseNumber: m.LicenseNumber,
		Phone:         m.Phone,
		Email:         m.Email,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// VeterinarianFromEntity creates a VeterinarianModel from a domain Veterinarian entity.
func VeterinarianFromEntity(vet *entity.Veterinarian) *VeterinarianModel {
	return &VeterinarianModel{
		ID:            vet.ID,
		FirstName:     vet.FirstName,
		LastName:      vet.LastName,
		LicenseNumber: vet.LicenseNumber,
		Phone:         vet.Phone,
		Email:         vet.Email,
		IsActive:      vet.IsActive,
		CreatedAt:     vet.CreatedAt,
		UpdatedAt:     vet.UpdatedAt,
	}
}
