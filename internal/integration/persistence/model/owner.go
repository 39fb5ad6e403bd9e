package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

// OwnerModel represents the owners table in the database.
type OwnerModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	AccountNumber string           `gorm:"type:varchar(30);index"`
	FarmName      string           `gorm:"type:varchar(150);index"`
	FirstName     string           `gorm:"type:varchar(100)"`
	LastName      string           `gorm:"type:varchar(100);index"`
	AddressLine1  string           `gorm:"type:varchar(255)"`
	AddressLine2  string           `gorm:"type:varchar(255)"`
	City          string           `gorm:"type:varchar(100)"`
	State         string           `gorm:"type:varchar(50)"`
	ZipCode       string           `gorm:"type:varchar(20)"`
	Phone         string           `gorm:"type:varchar(30)"`
	Email         string           `gorm:"type:varchar(255)"`
	IsActive      bool             `gorm:"default:true;index"`
	Balance       decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	CreditLimit   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Notes         string           `gorm:"type:text"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the OwnerModel.
func (OwnerModel) TableName() string {
	return "owners"
}

// ToEntity converts an OwnerModel to a domain Owner entity.
func (m *OwnerModel) ToEntity() *entity.Owner {
	return &entity.Owner{
		ID:            m.ID,
		AccountNumber: m.AccountNumber,
		FarmName:      m.FarmName,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		AddressLine1:  m.AddressLine1,
		AddressLine2:  m.AddressLine2,
		City:          m.City,
		State:         m.State,
		ZipCode:       m.ZipCode,
		Phone:         m.Phone,
		Email:         m.Email,
		IsActive:      m.IsActive,
		Balance:       m.Balance,
		CreditLimit:   m.CreditLimit,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// OwnerFromEntity creates an OwnerModel from a domain Owner entity.
func OwnerFromEntity(owner *entity.Owner) *OwnerModel {
	return &OwnerModel{
		ID:            owner.ID,
		AccountNumber: owner.AccountNumber,
		FarmName:      owner.FarmName,
		FirstName:     owner.FirstName,
		LastName:      owner.LastName,
		AddressLine1:  owner.AddressLine1,
		AddressLine2:  owner.AddressLine2,
		City:          owner.City,
		State:         owner.State,
		ZipCode:       owner.ZipCode,
		Phone:         owner.Phone,
		Email:         owner.Email,
		IsActive:      owner.IsActive,
		Balance:       owner.Balance,
		CreditLimit:   owner.CreditLimit,
		Notes:         owner.Notes,
		CreatedAt:     owner.CreatedAt,
		UpdatedAt:     owner.UpdatedAt,
	}
}
