package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewGatewayError creates an error for a failed row store call
func NewGatewayError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeGateway,
		Message: fmt.Sprintf("row store operation failed: %s", operation),
		Code:    "GATEWAY_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidChoiceError creates an error for a menu key outside the menu
func NewInvalidChoiceError(input string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidChoice,
		Message: fmt.Sprintf("invalid choice: %q", input),
		Code:    "INVALID_CHOICE",
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewEmptyNameError creates an error for a blank task name
func NewEmptyNameError() *AppError {
	return &AppError{
		Type:    ErrorTypeEmptyName,
		Message: "task name cannot be empty",
		Code:    "EMPTY_NAME",
		Context: make(map[string]interface{}),
	}
}

// NewAlreadyDoneError creates an error for completing a finished task
func NewAlreadyDoneError(name string) *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyDone,
		Message: fmt.Sprintf("task already completed: %s", name),
		Code:    "ALREADY_DONE",
		Context: map[string]interface{}{
			"name": name,
		},
	}
}

// NewDataFormatError creates an error for a row that cannot be mapped to a task
func NewDataFormatError(row int, field string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDataFormat,
		Message: fmt.Sprintf("malformed %s in row %d", field, row),
		Code:    "DATA_FORMAT",
		Cause:   cause,
		Context: map[string]interface{}{
			"row":   row,
			"field": field,
		},
	}
}

// NewPermissionError creates a new permission error
func NewPermissionError(operation string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, resource),
		Code:    "PERMISSION_DENIED",
		Context: map[string]interface{}{
			"operation": operation,
			"resource":  resource,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsRecoverable reports whether the menu can report err and keep going.
// Gateway, permission and data format errors end the session.
func IsRecoverable(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeInvalidChoice, ErrorTypeEmptyName, ErrorTypeNotFound,
			ErrorTypeAlreadyDone, ErrorTypeValidation:
			return true
		}
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidChoice,
			ErrorTypeEmptyName, ErrorTypeAlreadyDone, ErrorTypePermission:
			return appErr.Message
		case ErrorTypeDataFormat:
			return "The task sheet contains a malformed row: " + appErr.Message
		case ErrorTypeGateway:
			return "Could not reach the task store: " + appErr.Message
		default:
			return "An unexpected error occurred."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidChoice,
			ErrorTypeEmptyName, ErrorTypeAlreadyDone:
			return false // These are user errors, not system errors
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
