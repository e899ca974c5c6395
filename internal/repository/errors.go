package repository

import "errors"

var (
	// ErrNotFound is returned when no row carries the requested identifier
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials covers both an unknown email and a wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError is a recoverable input problem whose Message can be shown
// to the user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNameRequired = &ValidationError{Field: "name", Message: "First and last name are required."}
	ErrEmailInvalid = &ValidationError{Field: "email", Message: "A valid email address is required."}
	ErrEmailTaken   = &ValidationError{Field: "email", Message: "An account with this email already exists."}
)

// AsValidation unwraps err into a ValidationError when it is one
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
