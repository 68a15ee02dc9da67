package cli

import (
	"context"
	"fmt"
	"log/slog"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/services"
)

// TaskNamePrompt is shown when a task name is needed
const TaskNamePrompt = "Enter task name:"

// AddCommand handles the add menu action
type AddCommand struct {
	app     *App
	service services.TaskService
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, service: app.service}
}

// Execute asks for a name until a non-empty one is given, then adds the task
func (c *AddCommand) Execute(ctx context.Context, snapshot Snapshot) (State, error) {
	for {
		name, err := c.app.prompter.Ask(TaskNamePrompt)
		if err != nil {
			return StateAwaitingChoice, err
		}

		task, err := c.service.Add(ctx, snapshot.All, name)
		if errors.IsErrorType(err, errors.ErrorTypeEmptyName) {
			c.app.logger.LogAttrs(ctx, slog.LevelDebug, "rejected task name",
				logging.Operation("add"),
				logging.Err(err),
			)
			c.app.reportError(err)
			continue
		}
		if err != nil {
			return StateAwaitingChoice, err
		}

		fmt.Fprintln(c.app.out, c.app.presenter.Notice("Added: "+task.Name))
		return StateAwaitingChoice, nil
	}
}
