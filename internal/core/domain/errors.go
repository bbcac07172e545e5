package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Master-data validation errors. Each ValidationError unwraps to one of these
// so callers can branch with errors.Is while still rendering the field message.
var (
	ErrRequiredField  = errors.New("required field missing")
	ErrLengthExceeded = errors.New("maximum length exceeded")
	ErrDuplicateName  = errors.New("duplicate name")
)

// ValidationError carries a user-facing message for a failed master-data
// check. Kind is one of the sentinel errors above.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

// RequiredField builds a required-field validation error.
func RequiredField(message string) error {
	return &ValidationError{Kind: ErrRequiredField, Message: message}
}

// LengthExceeded builds a length validation error.
func LengthExceeded(message string) error {
	return &ValidationError{Kind: ErrLengthExceeded, Message: message}
}

// DuplicateName builds a uniqueness validation error.
func DuplicateName(message string) error {
	return &ValidationError{Kind: ErrDuplicateName, Message: message}
}
