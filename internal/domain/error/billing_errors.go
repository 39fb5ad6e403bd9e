// Package error defines domain-specific errors for the Equivet backend.
package error

import "errors"

// Billing domain errors.
var (
	// ErrTransactionNotFound is returned when a charge transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionAlreadyInvoiced is returned when a billing-relevant change
	// is attempted on a transaction that has already been invoiced.
	ErrTransactionAlreadyInvoiced = errors.New("transaction already invoiced")

	// ErrEmptyChargeBatch is returned when a charge batch contains no items.
	ErrEmptyChargeBatch = errors.New("charge batch contains no items")

	// ErrNoOwner is returned when invoice generation is attempted for a horse
	// with no ownership records.
	ErrNoOwner = errors.New("horse has no owners")

	// ErrInvalidOwnership is returned when ownership percentages cannot be
	// normalized (all shares missing or zero across multiple owners).
	ErrInvalidOwnership = errors.New("ownership percentages cannot be resolved")

	// ErrInvalidBatch is returned when a generation batch mixes horses or
	// includes already-invoiced transactions.
	ErrInvalidBatch = errors.New("invalid invoice generation batch")

	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvoiceNotVoidable is returned when voiding an invoice that has
	// payments applied or is already void.
	ErrInvoiceNotVoidable = errors.New("invoice cannot be voided")

	// ErrPaymentExceedsBalance is returned when a payment applied to an
	// invoice is larger than its outstanding balance.
	ErrPaymentExceedsBalance = errors.New("payment exceeds invoice balance")

	// ErrInvoiceVoid is returned when a payment is applied to a void invoice.
	ErrInvoiceVoid = errors.New("invoice is void")

	// ErrConcurrentModification is returned when a transaction was invoiced
	// by another process between selection and commit.
	ErrConcurrentModification = errors.New("transaction was invoiced concurrently")
)

// BillingErrorCode defines error codes for billing errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyChargeBatch       BillingErrorCode = "BIL-010001"
	ErrCodeInvalidQuantity        BillingErrorCode = "BIL-010002"
	ErrCodeInvalidUnitPrice       BillingErrorCode = "BIL-010003"
	ErrCodeInvalidServiceDate     BillingErrorCode = "BIL-010004"
	ErrCodeMissingDescription     BillingErrorCode = "BIL-010005"
	ErrCodeDescriptionTooLong     BillingErrorCode = "BIL-010006"
	ErrCodeInvalidPaymentAmount   BillingErrorCode = "BIL-010007"
	ErrCodeInvalidTaxInput        BillingErrorCode = "BIL-010008"
	ErrCodeInvalidDiscount        BillingErrorCode = "BIL-010009"

	// State errors (02XXXX)
	ErrCodeTransactionNotFound    BillingErrorCode = "BIL-020001"
	ErrCodeAlreadyInvoiced        BillingErrorCode = "BIL-020002"
	ErrCodeInvalidBatch           BillingErrorCode = "BIL-020003"
	ErrCodeNoOwner                BillingErrorCode = "BIL-020004"
	ErrCodeInvalidOwnership       BillingErrorCode = "BIL-020005"
	ErrCodeInvoiceNotFound        BillingErrorCode = "BIL-020006"
	ErrCodeInvoiceNotVoidable     BillingErrorCode = "BIL-020007"
	ErrCodePaymentExceedsBalance  BillingErrorCode = "BIL-020008"
	ErrCodeInvoiceVoid            BillingErrorCode = "BIL-020009"

	// Persistence errors (03XXXX)
	ErrCodeConcurrentModification BillingErrorCode = "BIL-030001"
	ErrCodePersistenceFailure     BillingErrorCode = "BIL-030002"
)

// BillingError represents a billing error with code and message.
type BillingError struct {
	Code    BillingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillingError) Unwrap() error {
	return e.Err
}

// NewBillingError creates a new BillingError with the given code and message.
func NewBillingError(code BillingErrorCode, message string, err error) *BillingError {
	return &BillingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
