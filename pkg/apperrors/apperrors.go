package apperrors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidState      = "INVALID_STATE"
	CodeExceedsBalance    = "EXCEEDS_BALANCE"
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	CodeAlreadyProcessed  = "ALREADY_PROCESSED"
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeStorageFailure    = "STORAGE_FAILURE"
)

// Domain errors
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("operation not allowed in current state")
	ErrExceedsBalance    = errors.New("amount exceeds outstanding balance")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrStorageFailure    = errors.New("storage failure")
)

// Error is a business error with a machine-readable code and a
// human-readable message. It wraps one of the sentinel errors above so
// callers can branch with errors.Is.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code string, sentinel error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}

func Validation(format string, args ...any) *Error {
	return newError(CodeValidation, ErrValidation, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return newError(CodeNotFound, ErrNotFound, format, args...)
}

func InvalidState(format string, args ...any) *Error {
	return newError(CodeInvalidState, ErrInvalidState, format, args...)
}

func ExceedsBalance(format string, args ...any) *Error {
	return newError(CodeExceedsBalance, ErrExceedsBalance, format, args...)
}

func InsufficientFunds(format string, args ...any) *Error {
	return newError(CodeInsufficientFunds, ErrInsufficientFunds, format, args...)
}

func AlreadyProcessed(format string, args ...any) *Error {
	return newError(CodeAlreadyProcessed, ErrAlreadyProcessed, format, args...)
}

func Unauthenticated(format string, args ...any) *Error {
	return newError(CodeUnauthenticated, ErrUnauthenticated, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newError(CodeUnauthorized, ErrUnauthorized, format, args...)
}

// Storage wraps a persistence error. Business errors pass through
// untouched so a nested call can't be mistaken for a storage failure.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return &Error{
		Code:    CodeStorageFailure,
		Message: "storage operation failed",
		Err:     fmt.Errorf("%w: %w", ErrStorageFailure, err),
	}
}

// CodeOf returns the code of a business error, or CodeStorageFailure
// for anything else.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeStorageFailure
}

// MessageOf returns the human-readable message of a business error.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
