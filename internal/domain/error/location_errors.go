package error

import "errors"

// Location domain errors.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")

	// ErrDuplicateLocationName is returned when a location name is already taken.
	ErrDuplicateLocationName = errors.New("location name already in use")

	// ErrLocationInUse is returned when deleting a location that currently houses horses.
	ErrLocationInUse = errors.New("location currently houses horses")
)

// LocationErrorCode defines error codes for location errors.
type LocationErrorCode string

const (
	ErrCodeLocationNotFound      LocationErrorCode = "LOC-010001"
	ErrCodeMissingLocationName   LocationErrorCode = "LOC-010002"
	ErrCodeDuplicateLocationName LocationErrorCode = "LOC-010003"
	ErrCodeLocationInUse         LocationErrorCode = "LOC-010004"
)

// LocationError represents a location error with code and message.
type LocationError struct {
	Code    LocationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LocationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LocationError) Unwrap() error {
	return e.Err
}

// NewLocationError creates a new LocationError with the given code and message.
func NewLocationError(code LocationErrorCode, message string, err error) *LocationError {
	return &LocationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
