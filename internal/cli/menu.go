package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"todo-list/internal/logging"
)

// State is a menu state
type State int

const (
	// StateAwaitingChoice shows the list and waits for a menu key
	StateAwaitingChoice State = iota
	// StateDispatching runs the chosen command
	StateDispatching
	// StateExited is final
	StateExited
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateDispatching:
		return "dispatching"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Menu is the interactive loop: list, prompt, dispatch, repeat.
type Menu struct {
	app   *App
	state State
}

// NewMenu creates a menu in StateAwaitingChoice
func NewMenu(app *App) *Menu {
	return &Menu{app: app, state: StateAwaitingChoice}
}

// State returns the current state
func (m *Menu) State() State {
	return m.state
}

// Run loops until the user exits or input ends. Recoverable errors are
// printed and the loop continues; any other error is returned.
func (m *Menu) Run(ctx context.Context) error {
	m.state = StateAwaitingChoice

	for m.state != StateExited {
		if err := ctx.Err(); err != nil {
			return err
		}

		snapshot, err := m.refresh(ctx)
		if err != nil {
			return err
		}

		command, err := m.awaitChoice(ctx)
		if err != nil {
			return err
		}

		m.transition(ctx, StateDispatching)
		next, err := command.Execute(ctx, snapshot)
		if stderrors.Is(err, io.EOF) {
			next, err = m.exit(ctx, snapshot)
		}
		if err != nil {
			if !m.app.errors.IsRecoverable(err) {
				m.app.errors.Log(ctx, err)
				return err
			}
			m.app.reportError(err)
			next = StateAwaitingChoice
		}
		m.transition(ctx, next)
	}
	return nil
}

// refresh re-reads the store and prints the active tasks
func (m *Menu) refresh(ctx context.Context) (Snapshot, error) {
	all, err := m.app.service.ListAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snapshot := Snapshot{All: all, Active: m.app.service.ListActive(all)}

	fmt.Fprint(m.app.out, m.app.presenter.RenderList(snapshot.Active))
	return snapshot, nil
}

// awaitChoice prompts until the input names a registered command. It does
// not touch the store, so a typo does not trigger a re-fetch. End of input
// selects the exit command.
func (m *Menu) awaitChoice(ctx context.Context) (Command, error) {
	usage := m.app.registry.GetUsage()
	for {
		input, err := m.app.prompter.Ask(usage)
		if stderrors.Is(err, io.EOF) {
			fmt.Fprintln(m.app.out)
			return m.app.registry.commands[KeyExit], nil
		}
		if err != nil {
			return nil, err
		}

		command, err := m.app.registry.Lookup(input)
		if err == nil {
			return command, nil
		}

		logging.WithOperation(m.app.logger, "choose").LogAttrs(ctx, slog.LevelDebug, "rejected menu choice",
			slog.String("input", input),
			logging.Err(err),
		)
		m.app.reportError(err)
	}
}

func (m *Menu) exit(ctx context.Context, snapshot Snapshot) (State, error) {
	fmt.Fprintln(m.app.out)
	return m.app.registry.commands[KeyExit].Execute(ctx, snapshot)
}

func (m *Menu) transition(ctx context.Context, next State) {
	if next == m.state {
		return
	}
	m.app.logger.LogAttrs(ctx, slog.LevelDebug, "menu state change",
		slog.String("from", m.state.String()),
		slog.String("to", next.String()),
	)
	m.state = next
}
