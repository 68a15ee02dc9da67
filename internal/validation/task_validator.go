package validation

import (
	"todo-list/internal/domain"
)

// TaskValidator provides validation for task input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator(validator *Validator) *TaskValidator {
	if validator == nil {
		validator = NewValidator()
	}
	return &TaskValidator{validator: validator}
}

// ValidateTaskName validates a task name typed by the user
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)
	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError(FieldTaskName)
		return validationError
	}

	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError.AddInvalidLengthError(FieldTaskName, trimmedName, tv.validator.TaskNameMaxLength())
	}

	if !tv.validator.IsValidTaskName(trimmedName) {
		validationError.AddInvalidCharacterError(FieldTaskName, trimmedName)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTaskName returns the canonical form of name if it is valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return domain.CanonicalName(name), nil
}
