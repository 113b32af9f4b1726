package cli

import (
	stderrors "errors"
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.ShouldLogError(err) {
		logging.Debugf("%s failed [%s]: %v\n", operation, eh.GetErrorCode(err), err)
		if appErr, ok := errors.AsAppError(err); ok && len(appErr.Context) > 0 {
			logging.Debugf("%s context: %v\n", operation, appErr.Context)
		}
	}

	// Field-level validation messages are the most specific
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
