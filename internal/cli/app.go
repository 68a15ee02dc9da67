package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"todo-list/internal/config"
	"todo-list/internal/errors"
	"todo-list/internal/instrumentation"
	"todo-list/internal/logging"
	"todo-list/internal/presenter"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// App holds the dependencies of the interactive menu
type App struct {
	service   services.TaskService
	presenter *presenter.Presenter
	prompter  *Prompter
	out       io.Writer
	logger    *slog.Logger
	errors    *ErrorHandler
	registry  *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(service services.TaskService, pres *presenter.Presenter, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	if pres == nil {
		pres = presenter.New(out, presenter.DefaultWidth, false)
	}

	app := &App{
		service:   service,
		presenter: pres,
		prompter:  NewPrompter(in, out),
		out:       out,
		logger:    logger,
		errors:    NewErrorHandler(logger),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run starts the menu and blocks until it exits
func (a *App) Run(ctx context.Context) error {
	return NewMenu(a).Run(ctx)
}

// Registry returns the menu dispatch table
func (a *App) Registry() *CommandRegistry {
	return a.registry
}

// reportError prints a recoverable error inline
func (a *App) reportError(err error) {
	fmt.Fprintln(a.out, a.presenter.ErrorLine(errors.GetUserMessage(err)))
}

// NewAppFromConfig opens the configured store and builds the whole stack.
// The returned cleanup closes the store, flushes telemetry and closes the
// log file. It is nil when err is not.
func NewAppFromConfig(ctx context.Context, cfg *config.Config, version string, in io.Reader, out io.Writer) (*App, func(), error) {
	logger, logCloser, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		return nil, nil, err
	}

	provider, err := instrumentation.NewProvider(ctx, cfg.InstrumentationConfig(version))
	if err != nil {
		logCloser.Close()
		return nil, nil, fmt.Errorf("failed to start telemetry: %w", err)
	}

	store, err := config.CreateRowStore(ctx, cfg, provider, logger)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failed to open task store",
			slog.String(logging.KeyBackend, cfg.Store.Backend),
			logging.Err(err),
		)
		provider.Shutdown(ctx)
		logCloser.Close()
		return nil, nil, err
	}

	validator := validation.NewTaskValidator(
		validation.NewValidatorWithMaxLength(cfg.Validation.TaskNameMaxLength),
	)
	service := services.NewTaskService(store,
		services.WithTaskValidator(validator),
		services.WithLogger(logger),
	)
	pres := presenter.New(out, cfg.Display.Width, cfg.Display.Color)

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close task store", logging.Err(err))
		}
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Warn("failed to flush telemetry", logging.Err(err))
		}
		logCloser.Close()
	}

	return NewApp(service, pres, in, out, logger), cleanup, nil
}
