package cli

import (
	"context"
	"fmt"
	"strings"

	"todo-list/internal/domain"
	"todo-list/internal/validation"
)

// Menu keys.
const (
	KeyAdd      = "a"
	KeyComplete = "c"
	KeyDelete   = "d"
	KeyExit     = "e"
)

// Snapshot is the task list fetched at the start of a menu cycle
type Snapshot struct {
	All    []domain.Task
	Active []domain.Task
}

// Command is one menu action. It returns the state the menu moves to.
type Command interface {
	Execute(ctx context.Context, snapshot Snapshot) (State, error)
}

type registration struct {
	key     string
	label   string
	command Command
}

// CommandRegistry maps menu keys to commands
type CommandRegistry struct {
	commands map[string]Command
	order    []registration
	choices  *validation.ChoiceValidator
}

// NewCommandRegistry creates a registry holding the add, complete, delete
// and exit commands
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register(KeyAdd, "add", NewAddCommand(app))
	registry.Register(KeyComplete, "complete", NewCompleteCommand(app))
	registry.Register(KeyDelete, "delete", NewDeleteCommand(app))
	registry.Register(KeyExit, "exit", NewExitCommand(app))

	return registry
}

// Register adds a command under key; label is shown in the menu prompt
func (r *CommandRegistry) Register(key, label string, command Command) {
	key = validation.Normalize(key)
	if _, exists := r.commands[key]; !exists {
		r.order = append(r.order, registration{key: key, label: label, command: command})
	} else {
		for i := range r.order {
			if r.order[i].key == key {
				r.order[i] = registration{key: key, label: label, command: command}
			}
		}
	}
	r.commands[key] = command

	keys := make([]string, 0, len(r.order))
	for _, reg := range r.order {
		keys = append(keys, reg.key)
	}
	r.choices = validation.NewChoiceValidator(keys...)
}

// Lookup resolves raw menu input to a command. Input is trimmed and
// lower-cased; anything else is an invalid choice error.
func (r *CommandRegistry) Lookup(input string) (Command, error) {
	key, err := r.choices.ValidateChoice(input)
	if err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, ve.ToAppError()
		}
		return nil, err
	}
	return r.commands[key], nil
}

// GetUsage returns the menu prompt, e.g. "(a) to add, (c) to complete, ..."
func (r *CommandRegistry) GetUsage() string {
	parts := make([]string, 0, len(r.order))
	for _, reg := range r.order {
		parts = append(parts, fmt.Sprintf("(%s) to %s", reg.key, reg.label))
	}
	return strings.Join(parts, ", ")
}
