package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// LocationModel represents the locations table in the database.
type LocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:varchar(255)"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the LocationModel.
func (LocationModel) TableName() string {
	return "locations"
}

// ToEntity converts a LocationModel to a domain Location entity.
func (m *LocationModel) ToEntity() *entity.Location {
	return &entity.Location{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// LocationFromEntity creates a LocationModel from a domain Location entity.
func LocationFromEntity(location *entity.Location) *LocationModel {
	return &LocationModel{
		ID:          location.ID,
		Name:        location.Name,
		Description: location.Description,
		IsActive:    location.IsActive,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}
