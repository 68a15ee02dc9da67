package cli

import (
	"context"
	"fmt"
)

// ExitCommand prints the farewell banner and ends the menu
type ExitCommand struct {
	app *App
}

// NewExitCommand creates a new exit command handler
func NewExitCommand(app *App) *ExitCommand {
	return &ExitCommand{app: app}
}

// Execute implements Command
func (c *ExitCommand) Execute(ctx context.Context, snapshot Snapshot) (State, error) {
	fmt.Fprintln(c.app.out, c.app.presenter.Farewell())
	return StateExited, nil
}
