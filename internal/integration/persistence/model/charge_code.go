package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

// ChargeCodeModel represents the charge_codes table in the database.
type ChargeCodeModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code           string          `gorm:"type:varchar(30);uniqueIndex;not null"`
	AlternateCode  string          `gorm:"type:varchar(30);index"`
	Description    string          `gorm:"type:varchar(255);not null"`
	Category       string          `gorm:"type:varchar(100);index"`
	StandardCharge decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Taxable        bool            `gorm:"default:false"`
	IsActive       bool            `gorm:"default:true;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ChargeCodeModel.
func (ChargeCodeModel) TableName() string {
	return "charge_codes"
}

// ToEntity converts a ChargeCodeModel to a domain ChargeCode entity.
func (m *ChargeCodeModel) ToEntity() *entity.ChargeCode {
	return &entity.ChargeCode{
		ID:             m.ID,
		Code:           m.Code,
		AlternateCode:  m.AlternateCode,
		Description:    m.Description,
		Category:       m.Category,
		StandardCharge: m.StandardCharge,
		Taxable:        m.Taxable,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ChargeCodeFromEntity creates a ChargeCodeModel from a domain ChargeCode entity.
func ChargeCodeFromEntity(chargeCode *entity.ChargeCode) *ChargeCodeModel {
	return &ChargeCodeModel{
		ID:             chargeCode.ID,
		Code:           chargeCode.Code,
		AlternateCode:  chargeCode.AlternateCode,
		Description:    chargeCode.Description,
		Category:       chargeCode.Category,
		StandardCharge: chargeCode.StandardCharge,
		Taxable:        chargeCode.Taxable,
		IsActive:       chargeCode.IsActive,
		CreatedAt:      chargeCode.CreatedAt,
		UpdatedAt:      chargeCode.UpdatedAt,
	}
}
