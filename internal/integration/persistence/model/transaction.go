package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. A row
// with a NULL invoice_id is pending; invoicing fills the column and voiding
// clears it again.
type TransactionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HorseID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChargeCodeID     *uuid.UUID      `gorm:"type:uuid;index"`
	InvoiceID        *uuid.UUID      `gorm:"type:uuid;index"`
	ServiceDate      time.Time       `gorm:"type:date;not null;index"`
	BillingDate      time.Time       `gorm:"type:date;not null"`
	Description      string          `gorm:"type:varchar(255);not null"`
	Quantity         decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Taxable          bool            `gorm:"default:false"`
	Notes            string          `gorm:"type:text"`
	AdministeredByID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:               m.ID,
		HorseID:          m.HorseID,
		OwnerID:          m.OwnerID,
		ChargeCodeID:     m.ChargeCodeID,
		InvoiceID:        m.InvoiceID,
		ServiceDate:      m.ServiceDate,
		BillingDate:      m.BillingDate,
		Description:      m.Description,
		Quantity:         m.Quantity,
		UnitPrice:        m.UnitPrice,
		Total:            m.Total,
		Taxable:          m.Taxable,
		Notes:            m.Notes,
		AdministeredByID: m.AdministeredByID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:               transaction.ID,
		HorseID:          transaction.HorseID,
		OwnerID:          transaction.OwnerID,
		ChargeCodeID:     transaction.ChargeCodeID,
		InvoiceID:        transaction.InvoiceID,
		ServiceDate:      transaction.ServiceDate,
		BillingDate:      transaction.BillingDate,
		Description:      transaction.Description,
		Quantity:         transaction.Quantity,
		UnitPrice:        transaction.UnitPrice,
		Total:            transaction.Total,
		Taxable:          transaction.Taxable,
		Notes:            transaction.Notes,
		AdministeredByID: transaction.AdministeredByID,
		CreatedAt:        transaction.CreatedAt,
		UpdatedAt:        transaction.UpdatedAt,
	}
}
