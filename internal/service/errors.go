package service

import "errors"

var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrRequestNotPending  = errors.New("Only pending requests can be approved or rejected")
)

// ValidationError marks input the caller can fix. Handlers map it to a 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}
