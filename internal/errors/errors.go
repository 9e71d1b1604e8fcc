package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a failure
type ErrorCode string

const (
	// ErrIO wraps read/write/create failures on input or output files
	ErrIO ErrorCode = "IO"
	// ErrInvalidInput marks input the pipeline cannot work with
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
)

// Error is a coded error carrying a human-readable message
type Error struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrIO:
		if e.Wrapped != nil {
			return fmt.Sprintf("I/O error: %s: %v", e.Message, e.Wrapped)
		}
		return fmt.Sprintf("I/O error: %s", e.Message)
	case ErrInvalidInput:
		return fmt.Sprintf("Invalid input: %s", e.Message)
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// New creates an Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with a code and message. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps err with a code and formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// HasCode reports whether any error in err's chain is an *Error with code
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	for err != nil {
		if errors.As(err, &e) {
			if e.Code == code {
				return true
			}
			err = e.Wrapped
			continue
		}
		return false
	}
	return false
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
