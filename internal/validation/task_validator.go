package validation

import (
	"todo-list/internal/config"
)

// TaskValidator validates task input read from the command line or a session.
// The task list itself accepts any name; these rules only guard user input.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a new task validator with configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError.AddInvalidLengthError("task_name", trimmedName, 1, tv.validator.getTaskNameMaxLength())
	}

	if !tv.validator.HasNoControlCharacters(trimmedName) {
		validationError.AddInvalidCharacterError("task_name", trimmedName)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateStatus validates the wire form of a status
func (tv *TaskValidator) ValidateStatus(status string) error {
	if !tv.validator.IsValidStatus(status) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be one of todo, in_progress, done")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
