package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error with a stable code.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", "invalid email or password")
	ErrNotFound           = New("NOT_FOUND", "resource not found")
	ErrForbidden          = New("FORBIDDEN", "forbidden")
	ErrUnauthorized       = New("UNAUTHORIZED", "unauthorized")
	ErrValidation         = New("VALIDATION_ERROR", "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", "internal error")

	// Storage layer errors. ErrKeyNotFound is the "absent" signal of the
	// key-value port; ErrStoreFull and ErrStoreUnavailable surface write
	// failures so callers decide how to handle them.
	ErrKeyNotFound      = New("KEY_NOT_FOUND", "key not found")
	ErrStoreFull        = New("STORE_FULL", "store is full")
	ErrStoreUnavailable = New("STORE_UNAVAILABLE", "store is unavailable")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// HasCode reports whether err carries the same code as target.
func HasCode(err error, target *Error) bool {
	if err == nil || target == nil {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == target.Code
}
