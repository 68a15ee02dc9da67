package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Task represents a to-do item in the domain model.
// Active false marks a soft-deleted task; it is never physically removed.
type Task struct {
	ItemID    int64
	Name      string
	Done      bool
	Active    bool
	CreatedOn time.Time
}

// NewTask creates a pending, active task with a canonical name.
func NewTask(itemID int64, name string, createdOn time.Time) Task {
	return Task{
		ItemID:    itemID,
		Name:      CanonicalName(name),
		Done:      false,
		Active:    true,
		CreatedOn: createdOn,
	}
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// CanonicalName trims name and capitalizes it: the first character is
// upper-cased and the rest lower-cased.
func CanonicalName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(first)) + strings.ToLower(trimmed[size:])
}
