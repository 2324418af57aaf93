// Package apperror defines the error taxonomy shared by every layer.
//
// Services and repositories return these domain errors; the HTTP layer maps
// them to status codes in one place (handler.writeError). That keeps the
// service layer free of HTTP knowledge.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDelivery     = errors.New("delivery failed")
)

// AppError carries a sentinel error plus a human-readable message.
// errors.Is works through Unwrap, so callers can match on the sentinels
// above regardless of how many times the error has been wrapped.
type AppError struct {
	Err     error  // sentinel cause
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict reports a uniqueness violation, e.g. a duplicate username.
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// Unauthorized reports missing or invalid credentials. Handlers map it to 401.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// Delivery reports a downstream transport failure (mail send). The raw cause
// is kept for logging but never exposed to the client.
func Delivery(message string, cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %v", ErrDelivery, cause),
		Message: message,
	}
}
