package error

import "errors"

// Owner domain errors.
var (
	// ErrOwnerNotFound is returned when an owner is not found in the system.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrDuplicateAccountNumber is returned when an owner account number is already taken.
	ErrDuplicateAccountNumber = errors.New("account number already in use")
)

// OwnerErrorCode defines error codes for owner errors.
type OwnerErrorCode string

const (
	ErrCodeOwnerNotFound           OwnerErrorCode = "OWN-010001"
	ErrCodeMissingOwnerName        OwnerErrorCode = "OWN-010002"
	ErrCodeDuplicateAccountNumber  OwnerErrorCode = "OWN-010003"
)

// OwnerError represents an owner error with code and message.
type OwnerError struct {
	Code    OwnerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OwnerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OwnerError) Unwrap() error {
	return e.Err
}

// NewOwnerError creates a new OwnerError with the given code and message.
func NewOwnerError(code OwnerErrorCode, message string, err error) *OwnerError {
	return &OwnerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
