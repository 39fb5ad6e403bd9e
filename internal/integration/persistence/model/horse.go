// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

// HorseModel represents the horses table in the database.
type HorseModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"type:varchar(100);not null;index"`
	AccountNumber      string     `gorm:"type:varchar(30);index"`
	Breed              string     `gorm:"type:varchar(100)"`
	Color              string     `gorm:"type:varchar(50)"`
	Sex                string     `gorm:"type:varchar(20)"`
	DateOfBirth        *time.Time `gorm:"type:date"`
	RegistrationNumber string     `gorm:"type:varchar(50)"`
	MicrochipID        string     `gorm:"type:varchar(50)"`
	CurrentLocationID  *uuid.UUID `gorm:"type:uuid;index"`
	IsActive           bool       `gorm:"default:true;index"`
	Notes              string     `gorm:"type:text"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Owners []*HorseOwnerModel `gorm:"foreignKey:HorseID;references:ID"`
}

// TableName returns the table name for the HorseModel.
func (HorseModel) TableName() string {
	return "horses"
}

// ToEntity converts a HorseModel to a domain Horse entity.
func (m *HorseModel) ToEntity() *entity.Horse {
	owners := make([]*entity.HorseOwner, len(m.Owners))
	for i, o := range m.Owners {
		owners[i] = o.ToEntity()
	}
	return &entity.Horse{
		ID:                 m.ID,
		Name:               m.Name,
		AccountNumber:      m.AccountNumber,
		Breed:              m.Breed,
		Color:              m.Color,
		Sex:                m.Sex,
		DateOfBirth:        m.DateOfBirth,
		RegistrationNumber: m.RegistrationNumber,
		MicrochipID:        m.MicrochipID,
		CurrentLocationID:  m.CurrentLocationID,
		IsActive:           m.IsActive,
		Notes:              m.Notes,
		Owners:             owners,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// HorseFromEntity creates a HorseModel from a domain Horse entity. Ownership
// rows are mapped separately; Create cascades them, updates go through
// SetOwners.
func HorseFromEntity(horse *entity.Horse) *HorseModel {
	owners := make([]*HorseOwnerModel, len(horse.Owners))
	for i, o := range horse.Owners {
		owners[i] = HorseOwnerFromEntity(o)
	}
	return &HorseModel{
		ID:                 horse.ID,
		Name:               horse.Name,
		AccountNumber:      horse.AccountNumber,
		Breed:              horse.Breed,
		Color:              horse.Color,
		Sex:                horse.Sex,
		DateOfBirth:        horse.DateOfBirth,
		RegistrationNumber: horse.RegistrationNumber,
		MicrochipID:        horse.MicrochipID,
		CurrentLocationID:  horse.CurrentLocationID,
		IsActive:           horse.IsActive,
		Notes:              horse.Notes,
		Owners:             owners,
		CreatedAt:          horse.CreatedAt,
		UpdatedAt:          horse.UpdatedAt,
	}
}

// HorseOwnerModel represents the horse_owners association table.
type HorseOwnerModel struct {
	HorseID    uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID        `gorm:"type:uuid;primaryKey;index"`
	Percentage *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Position   int              `gorm:"not null;default:0"`
	StartDate  time.Time        `gorm:"type:date;not null"`
	EndDate    *time.Time       `gorm:"type:date"`
}

// TableName returns the table name for the HorseOwnerModel.
func (HorseOwnerModel) TableName() string {
	return "horse_owners"
}

// ToEntity converts a HorseOwnerModel to a domain HorseOwner entity.
func (m *HorseOwnerModel) ToEntity() *entity.HorseOwner {
	return &entity.HorseOwner{
		HorseID:    m.HorseID,
		OwnerID:    m.OwnerID,
		Percentage: m.Percentage,
		Position:   m.Position,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
	}
}

// HorseOwnerFromEntity creates a HorseOwnerModel from a domain HorseOwner entity.
func HorseOwnerFromEntity(owner *entity.HorseOwner) *HorseOwnerModel {
	return &HorseOwnerModel{
		HorseID:    owner.HorseID,
		OwnerID:    owner.OwnerID,
		Percentage: owner.Percentage,
		Position:   owner.Position,
		StartDate:  owner.StartDate,
		EndDate:    owner.EndDate,
	}
}

// HorseLocationModel represents the horse_locations history table. At most
// one row per horse has is_current set.
type HorseLocationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HorseID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	LocationID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ArrivalDate   time.Time  `gorm:"not null"`
	DepartureDate *time.Time
	IsCurrent     bool       `gorm:"default:false;index"`
	ReasonForMove string     `gorm:"type:varchar(255)"`
}

// TableName returns the table name for the HorseLocationModel.
func (HorseLocationModel) TableName() string {
	return "horse_locations"
}

// ToEntity converts a HorseLocationModel to a domain HorseLocation entity.
func (m *HorseLocationModel) ToEntity() *entity.HorseLocation {
	return &entity.HorseLocation{
		ID:            m.ID,
		HorseID:       m.HorseID,
		LocationID:    m.LocationID,
		ArrivalDate:   m.ArrivalDate,
		DepartureDate: m.DepartureDate,
		IsCurrent:     m.IsCurrent,
		ReasonForMove: m.ReasonForMove,
	}
}
