package error

import "errors"

// Company profile domain errors.
var (
	// ErrCompanyProfileNotFound is returned when no profile has been saved yet.
	ErrCompanyProfileNotFound = errors.New("company profile not found")
)

// CompanyProfileErrorCode defines error codes for company profile errors.
type CompanyProfileErrorCode string

const (
	ErrCodeCompanyProfileNotFound CompanyProfileErrorCode = "PRF-010001"
	ErrCodeMissingCompanyName     CompanyProfileErrorCode = "PRF-010002"
)

// CompanyProfileError represents a company profile error with code and message.
type CompanyProfileError struct {
	Code    CompanyProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CompanyProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CompanyProfileError) Unwrap() error {
	return e.Err
}

// NewCompanyProfileError creates a new CompanyProfileError with the given code and message.
func NewCompanyProfileError(code CompanyProfileErrorCode, message string, err error) *CompanyProfileError {
	return &CompanyProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
