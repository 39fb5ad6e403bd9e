package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// CreateBatch persists a set of invoices and attaches their transactions in
// one database transaction. Attachment is a conditional update on
// invoice_id IS NULL; fewer affected rows than candidates means another
// process invoiced one of them first, and the whole batch rolls back with
// ErrConcurrentModification.
func (r *invoiceRepository) CreateBatch(ctx context.Context, batch []adapter.InvoiceCreate) ([]*entity.Invoice, error) {
	invoices := make([]*entity.Invoice, len(batch))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for i, item := range batch {
			invoiceModel := model.InvoiceFromEntity(item.Invoice)
			if err := tx.Create(invoiceModel).Error; err != nil {
				return err
			}

			result := tx.Model(&model.TransactionModel{}).
				Where("id IN ? AND invoice_id IS NULL", item.TransactionIDs).
				Updates(map[string]interface{}{
					"invoice_id": item.Invoice.ID,
					"updated_at": now,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected != int64(len(item.TransactionIDs)) {
				return domainerror.ErrConcurrentModification
			}

			balanceResult := tx.Model(&model.OwnerModel{}).
				Where("id = ?", item.Invoice.OwnerID).
				Updates(map[string]interface{}{
					"balance":    gorm.Expr("balance + ?", item.Invoice.GrandTotal),
					"updated_at": now,
				})
			if balanceResult.Error != nil {
				return balanceResult.Error
			}

			invoices[i] = invoiceModel.ToEntity()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindByID retrieves an invoice with its transactions.
func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceWithTransactions, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}

	var transactionModels []model.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", id).
		Order("service_date ASC, created_at ASC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}

	return &entity.InvoiceWithTransactions{
		Invoice:      invoiceModel.ToEntity(),
		Transactions: transactions,
	}, nil
}

// FindByFilter lists invoices, newest first.
func (r *invoiceRepository) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter) ([]*entity.Invoice, error) {
	query := r.db.WithContext(ctx).Model(&model.InvoiceModel{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var invoiceModels []model.InvoiceModel
	result := query.Order("invoice_date DESC, created_at DESC").Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// RecordPayment persists a payment atomically. When the payment targets an
// invoice it advances amount_paid and status and decreases the owner
// balance in the same database transaction. Void invoices refuse payments.
func (r *invoiceRepository) RecordPayment(ctx context.Context, payment *entity.Payment) (*entity.Invoice, error) {
	var updated *entity.Invoice

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var invoiceModel model.InvoiceModel
		if payment.InvoiceID != nil {
			if err := tx.Where("id = ?", *payment.InvoiceID).First(&invoiceModel).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domainerror.ErrInvoiceNotFound
				}
				return err
			}

			invoice := invoiceModel.ToEntity()
			if invoice.Status == entity.InvoiceStatusVoid {
				return domainerror.ErrInvoiceVoid
			}
			if payment.Amount.GreaterThan(invoice.BalanceDue()) {
				return domainerror.ErrPaymentExceedsBalance
			}
		}

		if err := tx.Create(model.PaymentFromEntity(payment)).Error; err != nil {
			return err
		}

		balanceResult := tx.Model(&model.OwnerModel{}).
			Where("id = ?", payment.OwnerID).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance - ?", payment.Amount),
				"updated_at": now,
			})
		if balanceResult.Error != nil {
			return balanceResult.Error
		}

		if payment.InvoiceID == nil {
			return nil
		}

		invoice := invoiceModel.ToEntity()
		invoice.AmountPaid = invoice.AmountPaid.Add(payment.Amount)
		if invoice.BalanceDue().IsZero() {
			invoice.Status = entity.InvoiceStatusPaid
		} else {
			invoice.Status = entity.InvoiceStatusPartiallyPaid
		}
		invoice.UpdatedAt = now

		if err := tx.Save(model.InvoiceFromEntity(invoice)).Error; err != nil {
			return err
		}
		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Void marks an invoice void, releases its transactions back to pending and
// reverses the balance charge from generation. Invoices with payments
// applied or already void cannot be voided.
func (r *invoiceRepository) Void(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var voided *entity.Invoice

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var invoiceModel model.InvoiceModel
		if err := tx.Where("id = ?", id).First(&invoiceModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrInvoiceNotFound
			}
			return err
		}

		invoice := invoiceModel.ToEntity()
		if invoice.Status == entity.InvoiceStatusVoid || !invoice.AmountPaid.IsZero() {
			return domainerror.ErrInvoiceNotVoidable
		}

		releaseResult := tx.Model(&model.TransactionModel{}).
			Where("invoice_id = ?", id).
			Updates(map[string]interface{}{
				"invoice_id": nil,
				"updated_at": now,
			})
		if releaseResult.Error != nil {
			return releaseResult.Error
		}

		balanceResult := tx.Model(&model.OwnerModel{}).
			Where("id = ?", invoice.OwnerID).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance - ?", invoice.GrandTotal),
				"updated_at": now,
			})
		if balanceResult.Error != nil {
			return balanceResult.Error
		}

		invoice.Status = entity.InvoiceStatusVoid
		invoice.UpdatedAt = now
		if err := tx.Save(model.InvoiceFromEntity(invoice)).Error; err != nil {
			return err
		}
		voided = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return voided, nil
}
