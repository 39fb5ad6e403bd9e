package error

import "errors"

// Veterinarian domain errors.
var (
	// ErrVeterinarianNotFound is returned when a veterinarian is not found.
	ErrVeterinarianNotFound = errors.New("veterinarian not found")

	// ErrDuplicateLicenseNumber is returned when a license number is already
	// recorded for another veterinarian.
	ErrDuplicateLicenseNumber = errors.New("license number already in use")
)

// VeterinarianErrorCode defines error codes for veterinarian errors.
type VeterinarianErrorCode string

const (
	ErrCodeVeterinarianNotFound     VeterinarianErrorCode = "VET-010001"
	ErrCodeMissingVeterinarianName  VeterinarianErrorCode = "VET-010002"
	ErrCodeDuplicateLicenseNumber   VeterinarianErrorCode = "VET-010003"
	ErrCodeInvalidVeterinarianEmail VeterinarianErrorCode = "VET-010004"
)

// VeterinarianError represents a veterinarian error with code and message.
type VeterinarianError struct {
	Code    VeterinarianErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VeterinarianError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VeterinarianError) Unwrap() error {
	return e.Err
}

// NewVeterinarianError creates a new VeterinarianError with the given code and message.
func NewVeterinarianError(code VeterinarianErrorCode, message string, err error) *VeterinarianError {
	return &VeterinarianError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
