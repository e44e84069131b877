package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CodeUnauthorized is the application code conveyed on authentication failures.
const CodeUnauthorized = 1000

// AppError is an error that already knows how it should be conveyed to
// clients: an HTTP status, an optional application code and a safe message.
// The wrapped cause is kept for logging and never serialized.
type AppError struct {
	Status  int
	Code    int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps cause into a typed application error. If cause already is
// an AppError it is returned unchanged so deliberate statuses survive.
func NewAppError(status int, message string, cause error) *AppError {
	var existing *AppError
	if errors.As(cause, &existing) {
		return existing
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return &AppError{Status: status, Message: message, Err: cause}
}

// AsAppError extracts a typed application error from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
