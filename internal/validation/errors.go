package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType names the rule a field broke
type ValidationErrorType string

const (
	ErrorTypeRequired         ValidationErrorType = "required"
	ErrorTypeInvalidLength    ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue     ValidationErrorType = "invalid_value"
	ErrorTypeInvalidCharacter ValidationErrorType = "invalid_character"
)

// FieldError is one broken rule on one input field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError collects every FieldError found while checking one input
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError returns an empty collection; check HasErrors before returning it
func NewValidationError() *ValidationError {
	return &ValidationError{Errors: []FieldError{}}
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return ve.Errors[0].Error()
	}
	return "multiple validation errors: " + ve.join("; ", func(fe FieldError) string { return fe.Error() })
}

// HasErrors reports whether any rule was broken
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

func (ve *ValidationError) add(field string, errorType ValidationErrorType, value interface{}, format string, args ...interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	})
}

func (ve *ValidationError) AddRequiredError(field string) {
	ve.add(field, ErrorTypeRequired, nil, "%s is required", field)
}

// AddInvalidLengthError records a length violation; a zero bound is left out of the message
func (ve *ValidationError) AddInvalidLengthError(field string, value interface{}, min, max int) {
	switch {
	case min > 0 && max > 0:
		ve.add(field, ErrorTypeInvalidLength, value, "%s must be between %d and %d characters long", field, min, max)
	case max > 0:
		ve.add(field, ErrorTypeInvalidLength, value, "%s must be at most %d characters long", field, max)
	default:
		ve.add(field, ErrorTypeInvalidLength, value, "%s has invalid length", field)
	}
}

func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.add(field, ErrorTypeInvalidValue, value, "%s has invalid value: %s", field, reason)
}

func (ve *ValidationError) AddInvalidCharacterError(field string, value interface{}) {
	ve.add(field, ErrorTypeInvalidCharacter, value, "%s contains invalid characters", field)
}

// GetUserFriendlyMessage returns the bare messages, one per line when there are several
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}
	return "Multiple validation errors occurred:\n" + ve.join("\n", func(fe FieldError) string { return "- " + fe.Message })
}

func (ve *ValidationError) join(sep string, format func(FieldError) string) string {
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = format(fe)
	}
	return strings.Join(parts, sep)
}
