package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTaskNameMaxLength applies when no limit is configured.
const DefaultTaskNameMaxLength = 255

// Validator provides common validation utilities
type Validator struct {
	taskNameMaxLength int
}

// NewValidator creates a validator with the default limits
func NewValidator() *Validator {
	return NewValidatorWithMaxLength(DefaultTaskNameMaxLength)
}

// NewValidatorWithMaxLength creates a validator with a task name length limit.
// Non-positive limits fall back to the default.
func NewValidatorWithMaxLength(maxLength int) *Validator {
	if maxLength <= 0 {
		maxLength = DefaultTaskNameMaxLength
	}
	return &Validator{taskNameMaxLength: maxLength}
}

// TaskNameMaxLength returns the configured limit
func (v *Validator) TaskNameMaxLength() int {
	return v.taskNameMaxLength
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks the trimmed character count is within [min, max]
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskNameLength checks a task name against the configured limit
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return v.IsValidStringLength(name, 1, v.taskNameMaxLength)
}

// IsValidTaskName rejects names with control characters such as tabs and
// newlines, which would break the one-line-per-task listing.
func (v *Validator) IsValidTaskName(name string) bool {
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
