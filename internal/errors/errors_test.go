package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "Buy milk")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: Buy milk" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: Buy milk")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "Buy milk" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewGatewayError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewGatewayError("append row", cause)

	if err.Type != ErrorTypeGateway {
		t.Errorf("NewGatewayError type = %v, want %v", err.Type, ErrorTypeGateway)
	}
	if err.Message != "row store operation failed: append row" {
		t.Errorf("NewGatewayError message = %v, want %v", err.Message, "row store operation failed: append row")
	}
	if err.Code != "GATEWAY_ERROR" {
		t.Errorf("NewGatewayError code = %v, want %v", err.Code, "GATEWAY_ERROR")
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewGatewayError should wrap its cause")
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "append row" {
		t.Errorf("NewGatewayError should set operation context")
	}
}

func TestNewInvalidChoiceError(t *testing.T) {
	err := NewInvalidChoiceError("x")

	if err.Type != ErrorTypeInvalidChoice {
		t.Errorf("NewInvalidChoiceError type = %v, want %v", err.Type, ErrorTypeInvalidChoice)
	}
	if err.Message != `invalid choice: "x"` {
		t.Errorf("NewInvalidChoiceError message = %v", err.Message)
	}
	if err.Code != "INVALID_CHOICE" {
		t.Errorf("NewInvalidChoiceError code = %v, want %v", err.Code, "INVALID_CHOICE")
	}

	input, ok := err.GetContext("input")
	if !ok || input != "x" {
		t.Errorf("NewInvalidChoiceError should set input context")
	}
}

func TestNewEmptyNameError(t *testing.T) {
	err := NewEmptyNameError()

	if err.Type != ErrorTypeEmptyName {
		t.Errorf("NewEmptyNameError type = %v, want %v", err.Type, ErrorTypeEmptyName)
	}
	if err.Code != "EMPTY_NAME" {
		t.Errorf("NewEmptyNameError code = %v, want %v", err.Code, "EMPTY_NAME")
	}
}

func TestNewAlreadyDoneError(t *testing.T) {
	err := NewAlreadyDoneError("Buy milk")

	if err.Type != ErrorTypeAlreadyDone {
		t.Errorf("NewAlreadyDoneError type = %v, want %v", err.Type, ErrorTypeAlreadyDone)
	}
	if err.Message != "task already completed: Buy milk" {
		t.Errorf("NewAlreadyDoneError message = %v", err.Message)
	}
	if err.Code != "ALREADY_DONE" {
		t.Errorf("NewAlreadyDoneError code = %v, want %v", err.Code, "ALREADY_DONE")
	}
}

func TestNewDataFormatError(t *testing.T) {
	cause := fmt.Errorf("not a boolean: %q", "yes")
	err := NewDataFormatError(4, "done", cause)

	if err.Type != ErrorTypeDataFormat {
		t.Errorf("NewDataFormatError type = %v, want %v", err.Type, ErrorTypeDataFormat)
	}
	if err.Message != "malformed done in row 4" {
		t.Errorf("NewDataFormatError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewDataFormatError cause = %v, want %v", err.Cause, cause)
	}

	row, ok := err.GetContext("row")
	if !ok || row != 4 {
		t.Errorf("NewDataFormatError should set row context")
	}
}

func TestNewPermissionError(t *testing.T) {
	err := NewPermissionError("read rows", "to_do_list")

	if err.Type != ErrorTypePermission {
		t.Errorf("NewPermissionError type = %v, want %v", err.Type, ErrorTypePermission)
	}
	if err.Message != "permission denied for read rows on to_do_list" {
		t.Errorf("NewPermissionError message = %v, want %v", err.Message, "permission denied for read rows on to_do_list")
	}
	if err.Code != "PERMISSION_DENIED" {
		t.Errorf("NewPermissionError code = %v, want %v", err.Code, "PERMISSION_DENIED")
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "read rows" {
		t.Errorf("NewPermissionError should set operation context")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "to_do_list" {
		t.Errorf("NewPermissionError should set resource context")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeGateway, "wrapped message")

	if err.Type != ErrorTypeGateway {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeGateway)
	}
	if err.Message != "wrapped message" {
		t.Errorf("WrapError message = %v, want %v", err.Message, "wrapped message")
	}
	if err.Code != "gateway" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "gateway")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsAppError(appError) {
		t.Errorf("IsAppError should return true for AppError")
	}

	if IsAppError(regularError) {
		t.Errorf("IsAppError should return false for regular error")
	}

	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}

	if !IsAppError(fmt.Errorf("outer: %w", appError)) {
		t.Errorf("IsAppError should see through wrapping")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	result, ok := AsAppError(appError)
	if !ok {
		t.Errorf("AsAppError should return true for AppError")
	}
	if result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(regularError)
	if ok {
		t.Errorf("AsAppError should return false for regular error")
	}
	if result != nil {
		t.Errorf("AsAppError should return nil for regular error")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return true for matching type")
	}

	if IsErrorType(appError, ErrorTypeGateway) {
		t.Errorf("IsErrorType should return false for different type")
	}

	if IsErrorType(regularError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Invalid choice", NewInvalidChoiceError("x"), true},
		{"Empty name", NewEmptyNameError(), true},
		{"Not found", NewNotFoundError("task", "X"), true},
		{"Already done", NewAlreadyDoneError("X"), true},
		{"Validation", NewValidationError("too long", nil), true},
		{"Data format", NewDataFormatError(2, "item_id", nil), false},
		{"Gateway", NewGatewayError("read rows", errors.New("boom")), false},
		{"Permission", NewPermissionError("read rows", "sheet"), false},
		{"Regular error", errors.New("regular error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecoverable(tt.err); got != tt.expected {
				t.Errorf("IsRecoverable() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "X"),
			expected: "task not found: X",
		},
		{
			name:     "Already done error",
			err:      NewAlreadyDoneError("X"),
			expected: "task already completed: X",
		},
		{
			name:     "Gateway error",
			err:      NewGatewayError("read rows", errors.New("timeout")),
			expected: "Could not reach the task store: row store operation failed: read rows",
		},
		{
			name:     "Data format error",
			err:      NewDataFormatError(3, "done", nil),
			expected: "The task sheet contains a malformed row: malformed done in row 3",
		},
		{
			name:     "Permission error",
			err:      NewPermissionError("read rows", "sheet"),
			expected: "permission denied for read rows on sheet",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	appError := &AppError{Code: "VALIDATION_FAILED"}
	regularError := errors.New("regular error")

	if GetErrorCode(appError) != "VALIDATION_FAILED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}

	if GetErrorCode(regularError) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: false,
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "X"),
			expected: false,
		},
		{
			name:     "Invalid choice error",
			err:      NewInvalidChoiceError("z"),
			expected: false,
		},
		{
			name:     "Gateway error",
			err:      NewGatewayError("read rows", errors.New("timeout")),
			expected: true,
		},
		{
			name:     "Data format error",
			err:      NewDataFormatError(2, "active", nil),
			expected: true,
		},
		{
			name:     "Permission error",
			err:      NewPermissionError("read rows", "sheet"),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
