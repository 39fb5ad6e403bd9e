package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUserEmail is returned when the email is already registered.
	ErrDuplicateUserEmail = errors.New("email already registered")

	// ErrInvalidRole is returned when an unknown role is assigned.
	ErrInvalidRole = errors.New("invalid role")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")
)

// UserErrorCode defines error codes for user errors.
type UserErrorCode string

const (
	ErrCodeUserNotFound       UserErrorCode = "USR-010001"
	ErrCodeDuplicateUserEmail UserErrorCode = "USR-010002"
	ErrCodeInvalidRole        UserErrorCode = "USR-010003"
	ErrCodeWeakPassword       UserErrorCode = "USR-010004"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
