package error

import "errors"

// Horse domain errors.
var (
	// ErrHorseNotFound is returned when a horse is not found in the system.
	ErrHorseNotFound = errors.New("horse not found")

	// ErrDuplicateHorseOwner is returned when the same owner appears twice in
	// an ownership assignment.
	ErrDuplicateHorseOwner = errors.New("duplicate owner in ownership list")

	// ErrInvalidPercentage is returned when an ownership percentage is outside [0,100].
	ErrInvalidPercentage = errors.New("ownership percentage must be between 0 and 100")

	// ErrHorseHasBillingRecords is returned when deleting a horse that is
	// referenced by transactions or invoices.
	ErrHorseHasBillingRecords = errors.New("horse has billing records")
)

// HorseErrorCode defines error codes for horse errors.
type HorseErrorCode string

const (
	ErrCodeHorseNotFound          HorseErrorCode = "HRS-010001"
	ErrCodeMissingHorseName       HorseErrorCode = "HRS-010002"
	ErrCodeDuplicateHorseOwner    HorseErrorCode = "HRS-010003"
	ErrCodeInvalidPercentage      HorseErrorCode = "HRS-010004"
	ErrCodeHorseHasBillingRecords HorseErrorCode = "HRS-010005"
)

// HorseError represents a horse error with code and message.
type HorseError struct {
	Code    HorseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HorseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HorseError) Unwrap() error {
	return e.Err
}

// NewHorseError creates a new HorseError with the given code and message.
func NewHorseError(code HorseErrorCode, message string, err error) *HorseError {
	return &HorseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
