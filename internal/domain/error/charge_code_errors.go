package error

import "errors"

// Charge code domain errors.
var (
	// ErrChargeCodeNotFound is returned when a charge code is not found.
	ErrChargeCodeNotFound = errors.New("charge code not found")

	// ErrDuplicateChargeCode is returned when a charge code is already taken.
	ErrDuplicateChargeCode = errors.New("charge code already in use")

	// ErrChargeCodeInactive is returned when an inactive charge code is used
	// on a new charge line.
	ErrChargeCodeInactive = errors.New("charge code is inactive")
)

// ChargeCodeErrorCode defines error codes for charge code errors.
type ChargeCodeErrorCode string

const (
	ErrCodeChargeCodeNotFound  ChargeCodeErrorCode = "CHC-010001"
	ErrCodeMissingChargeCode   ChargeCodeErrorCode = "CHC-010002"
	ErrCodeDuplicateChargeCode ChargeCodeErrorCode = "CHC-010003"
	ErrCodeChargeCodeInactive  ChargeCodeErrorCode = "CHC-010004"
	ErrCodeNegativeCharge      ChargeCodeErrorCode = "CHC-010005"
)

// ChargeCodeError represents a charge code error with code and message.
type ChargeCodeError struct {
	Code    ChargeCodeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChargeCodeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChargeCodeError) Unwrap() error {
	return e.Err
}

// NewChargeCodeError creates a new ChargeCodeError with the given code and message.
func NewChargeCodeError(code ChargeCodeErrorCode, message string, err error) *ChargeCodeError {
	return &ChargeCodeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
