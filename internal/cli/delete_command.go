package cli

import (
	"context"
	"fmt"

	"todo-list/internal/services"
)

// DeleteCommand handles the delete menu action
type DeleteCommand struct {
	app     *App
	service services.TaskService
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, service: app.service}
}

// Execute asks once for a name and soft-deletes the matching active task.
// The row stays in the store with active set to FALSE.
func (c *DeleteCommand) Execute(ctx context.Context, snapshot Snapshot) (State, error) {
	task, err := c.app.lookupActive(snapshot, "delete")
	if err != nil {
		return StateAwaitingChoice, err
	}

	if err := c.service.SoftDelete(ctx, task); err != nil {
		return StateAwaitingChoice, err
	}

	fmt.Fprintln(c.app.out, c.app.presenter.Notice("Deleted: "+task.Name))
	return StateAwaitingChoice, nil
}
