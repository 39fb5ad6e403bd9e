package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceDate time.Time       `gorm:"type:date;not null;index"`
	DueDate     *time.Time      `gorm:"type:date"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Discount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GrandTotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AmountPaid  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToEntity converts an InvoiceModel to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	return &entity.Invoice{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		InvoiceDate: m.InvoiceDate,
		DueDate:     m.DueDate,
		Subtotal:    m.Subtotal,
		TaxTotal:    m.TaxTotal,
		Discount:    m.Discount,
		GrandTotal:  m.GrandTotal,
		AmountPaid:  m.AmountPaid,
		Status:      entity.InvoiceStatus(m.Status),
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel from a domain Invoice entity.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:          invoice.ID,
		OwnerID:     invoice.OwnerID,
		InvoiceDate: invoice.InvoiceDate,
		DueDate:     invoice.DueDate,
		Subtotal:    invoice.Subtotal,
		TaxTotal:    invoice.TaxTotal,
		Discount:    invoice.Discount,
		GrandTotal:  invoice.GrandTotal,
		AmountPaid:  invoice.AmountPaid,
		Status:      string(invoice.Status),
		Notes:       invoice.Notes,
		CreatedAt:   invoice.CreatedAt,
		UpdatedAt:   invoice.UpdatedAt,
	}
}

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceID   *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentDate time.Time       `gorm:"type:date;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Method      string          `gorm:"type:varchar(30)"`
	Reference   string          `gorm:"type:varchar(100)"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		InvoiceID:   m.InvoiceID,
		PaymentDate: m.PaymentDate,
		Amount:      m.Amount,
		Method:      m.Method,
		Reference:   m.Reference,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:          payment.ID,
		OwnerID:     payment.OwnerID,
		InvoiceID:   payment.InvoiceID,
		PaymentDate: payment.PaymentDate,
		Amount:      payment.Amount,
		Method:      payment.Method,
		Reference:   payment.Reference,
		Notes:       payment.Notes,
		CreatedAt:   payment.CreatedAt,
	}
}
