// Package errors defines common error types for the application.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the application.
const (
	CodeUnknown       = "UNKNOWN_ERROR"
	CodeCodeOverflow  = "CODE_OVERFLOW"
	CodeUnknownSymbol = "UNKNOWN_SYMBOL"
	CodeEmptyAlphabet = "EMPTY_ALPHABET"
	CodeEmptyFile     = "EMPTY_FILE"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeConfigError   = "CONFIG_ERROR"
)

// AppError represents an application error with a code and message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error instances.
var (
	ErrCodeOverflow  = New(CodeCodeOverflow, "code length exceeds maximum width")
	ErrUnknownSymbol = New(CodeUnknownSymbol, "symbol has no assigned code")
	ErrEmptyAlphabet = New(CodeEmptyAlphabet, "no symbols in alphabet")
	ErrEmptyFile     = New(CodeEmptyFile, "empty file")
	ErrInvalidInput  = New(CodeInvalidInput, "invalid input")
	ErrNotFound      = New(CodeNotFound, "resource not found")
	ErrConfigError   = New(CodeConfigError, "configuration error")
)

// IsCodeOverflow checks if the error is a code overflow error.
func IsCodeOverflow(err error) bool {
	return errors.Is(err, ErrCodeOverflow)
}

// IsUnknownSymbol checks if the error is an unknown symbol error.
func IsUnknownSymbol(err error) bool {
	return errors.Is(err, ErrUnknownSymbol)
}

// IsEmptyAlphabet checks if the error is an empty alphabet error.
func IsEmptyAlphabet(err error) bool {
	return errors.Is(err, ErrEmptyAlphabet)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetErrorMessage extracts the error message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
