package errors

import (
	"fmt"
)

// ErrorType classifies an AppError. Its value is the printed prefix.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeDatabase     ErrorType = "database"
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	ErrorTypeTimeout      ErrorType = "timeout"
)

func (et ErrorType) String() string {
	return string(et)
}

// AppError is the error type returned across package boundaries.
// Context carries the values the error was built from, for debug output.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError of the same type and code, which lets sentinels
// like ErrTaskNotFound work with errors.Is.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && other.Type == e.Type && other.Code == e.Code
}
