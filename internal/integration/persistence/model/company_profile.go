package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

// CompanyProfileModel represents the company_profile table in the database.
// The table holds at most one row.
type CompanyProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName  string    `gorm:"type:varchar(255);not null"`
	AddressLine1 string    `gorm:"type:varchar(255)"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(100)"`
	ZipCode      string    `gorm:"type:varchar(20)"`
	Phone        string    `gorm:"type:varchar(50)"`
	Email        string    `gorm:"type:varchar(255)"`
	Website      string    `gorm:"type:varchar(255)"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompanyProfileModel.
func (CompanyProfileModel) TableName() string {
	return "company_profile"
}

// ToEntity converts a CompanyProfileModel to a domain CompanyProfile entity.
func (m *CompanyProfileModel) ToEntity() *entity.CompanyProfile {
	return &entity.CompanyProfile{
		ID:           m.ID,
		CompanyName:  m.CompanyName,
		AddressLine1: m.AddressLine1,
		AddressLine2: m.AddressLine2,
		City:         m.City,
		State:        m.State,
		ZipCode:      m.ZipCode,
		Phone:        m.Phone,
		Email:        m.Email,
		Website:      m.Website,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CompanyProfileFromEntity creates a CompanyProfileModel from a domain CompanyProfile entity.
func CompanyProfileFromEntity(profile *entity.CompanyProfile) *CompanyProfileModel {
	return &CompanyProfileModel{
		ID:           profile.ID,
		CompanyName:  profile.CompanyName,
		AddressLine1: profile.AddressLine1,
		AddressLine2: profile.AddressLine2,
		City:         profile.City,
		State:        profile.State,
		ZipCode:      profile.ZipCode,
		Phone:        profile.Phone,
		Email:        profile.Email,
		Website:      profile.Website,
		Notes:        profile.Notes,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}
