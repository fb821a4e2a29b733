// Package errors holds the error taxonomy shared by the engine, the
// storage layer and the gRPC transport.
package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrSupervisorNotRunning = fmt.Errorf("supervisor is not running")
	ErrOwnerStopped         = fmt.Errorf("schedule owner stopped")
	ErrSequenceGap          = fmt.Errorf("sequence gap, resync required")
	ErrNotSynced            = fmt.Errorf("projection has no snapshot yet")
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown            Code = "UNKNOWN"
	CodeInvalidTransition  Code = "INVALID_TRANSITION"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"
	CodeDeliveryFailure    Code = "DELIVERY_FAILURE"
	CodeStoreUnavailable   Code = "STORE_UNAVAILABLE"
	CodeNotFound           Code = "NOT_FOUND"
)

// Error is a typed failure surfaced to the submitting client.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Sentinels usable with errors.Is: two *Error match when their codes match.
var (
	ErrInvalidTransition  = &Error{Code: CodeInvalidTransition, Message: "invalid status transition"}
	ErrUnauthorized       = &Error{Code: CodeUnauthorized, Message: "actor is not allowed to mutate this event"}
	ErrInvariantViolation = &Error{Code: CodeInvariantViolation, Message: "schedule invariant violated"}
	ErrDeliveryFailure    = &Error{Code: CodeDeliveryFailure, Message: "delta could not be delivered"}
	ErrStoreUnavailable   = &Error{Code: CodeStoreUnavailable, Message: "persistent store unavailable"}
	ErrNotFound           = &Error{Code: CodeNotFound, Message: "not found"}
)

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New builds a typed error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a typed error around an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// With returns a copy of the error carrying an extra metadata entry.
func (e *Error) With(key, value string) *Error {
	cp := *e
	cp.Metadata = make(map[string]string, len(e.Metadata)+1)
	maps.Copy(cp.Metadata, e.Metadata)
	cp.Metadata[key] = value
	return &cp
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a typed error.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// Is and As re-export the standard helpers so callers only import this package.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }
