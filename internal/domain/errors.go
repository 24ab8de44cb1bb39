package domain

import (
	"errors"
	"fmt"
)

// ErrorType classifies conversion failures.
type ErrorType string

const (
	ErrorTypeProcess ErrorType = "process"
	ErrorTypeIO      ErrorType = "io"
	ErrorTypeFormat  ErrorType = "format"
	ErrorTypeConfig  ErrorType = "config"
)

// Error is a classified error carrying the underlying cause.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}

	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new classified error.
func NewError(errType ErrorType, message string, err error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

func ProcessError(message string, err error) *Error {
	return NewError(ErrorTypeProcess, message, err)
}

func IOError(message string, err error) *Error {
	return NewError(ErrorTypeIO, message, err)
}

func FormatError(message string, err error) *Error {
	return NewError(ErrorTypeFormat, message, err)
}

func ConfigError(message string, err error) *Error {
	return NewError(ErrorTypeConfig, message, err)
}

// IsType reports whether any error in err's chain is an *Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return false
	}

	if domainErr.Type == errType {
		return true
	}

	return IsType(domainErr.Err, errType)
}
