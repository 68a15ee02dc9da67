package cli

import (
	"context"
	"fmt"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/services"
)

// CompleteCommand handles the complete menu action
type CompleteCommand struct {
	app     *App
	service services.TaskService
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app, service: app.service}
}

// Execute asks once for a name and marks the matching active task done
func (c *CompleteCommand) Execute(ctx context.Context, snapshot Snapshot) (State, error) {
	task, err := c.app.lookupActive(snapshot, "complete")
	if err != nil {
		return StateAwaitingChoice, err
	}

	if err := c.service.Complete(ctx, task); err != nil {
		return StateAwaitingChoice, err
	}

	fmt.Fprintln(c.app.out, c.app.presenter.Notice("Completed: "+task.Name))
	return StateAwaitingChoice, nil
}

// lookupActive prompts for a task name and finds it among the active tasks
func (a *App) lookupActive(snapshot Snapshot, operation string) (*domain.Task, error) {
	name, err := a.prompter.Ask(TaskNamePrompt)
	if err != nil {
		return nil, err
	}

	canonical := domain.CanonicalName(name)
	task := a.service.FindByName(snapshot.Active, canonical)
	if task == nil {
		return nil, errors.NewNotFoundError("task", canonical).WithContext("operation", operation)
	}
	return task, nil
}
