// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the slotpool library.

package api

import "fmt"

// Sentinel errors used across the library. All pool errors unwrap to one of
// these, so callers branch with errors.Is.
var (
	ErrAcquireTimeout  = fmt.Errorf("timeout waiting for a free slot")
	ErrInvalidSlot     = fmt.Errorf("invalid slot")
	ErrSlotNotAcquired = fmt.Errorf("slot is not acquired")
	ErrPoolClosed      = fmt.Errorf("slot pool is closed")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeTimeout
	ErrCodeInvalidSlot
	ErrCodeSlotNotAcquired
	ErrCodeClosed
	ErrCodeInvalidArgument
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the error code back to its sentinel so that
// errors.Is(err, api.ErrInvalidSlot) works on structured errors.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeTimeout:
		return ErrAcquireTimeout
	case ErrCodeInvalidSlot:
		return ErrInvalidSlot
	case ErrCodeSlotNotAcquired:
		return ErrSlotNotAcquired
	case ErrCodeClosed:
		return ErrPoolClosed
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
