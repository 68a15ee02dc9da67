package cli

import (
	"context"
	stderrors "errors"
	"log/slog"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/validation"
)

// ErrorHandler classifies and logs errors for the menu and the entry point
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler; a nil logger discards
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ErrorHandler{logger: logger}
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return stderrors.New(validationErr.GetUserFriendlyMessage())
	}

	if errors.IsAppError(err) {
		return stderrors.New(errors.GetUserMessage(err))
	}

	return err
}

// IsRecoverable reports whether the menu can print err and carry on
func (eh *ErrorHandler) IsRecoverable(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsRecoverable(err)
}

// Log records err at error level for system faults and debug level for user errors
func (eh *ErrorHandler) Log(ctx context.Context, err error) {
	level := slog.LevelDebug
	if errors.ShouldLogError(err) {
		level = slog.LevelError
	}
	eh.logger.LogAttrs(ctx, level, "menu error",
		slog.String("code", errors.GetErrorCode(err)),
		logging.Err(err),
	)
}
