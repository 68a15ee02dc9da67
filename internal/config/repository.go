package config

import (
	"context"
	"fmt"
	"log/slog"

	"todo-list/internal/instrumentation"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/repository/sheets"
	"todo-list/internal/repository/sqlite"
)

// CreateRowStore opens the configured backend and wraps it with telemetry
func CreateRowStore(ctx context.Context, config *Config, provider *instrumentation.Provider, logger *slog.Logger) (repository.RowStore, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	var store repository.RowStore
	switch config.Store.Backend {
	case BackendSheets:
		client, err := sheets.New(ctx, config.SheetsClientConfig())
		if err != nil {
			return nil, err
		}
		logger.Info("opened spreadsheet",
			logging.Operation("open"),
			slog.String(logging.KeyBackend, BackendSheets),
			slog.String("spreadsheet_id", client.SpreadsheetID()),
			slog.String("worksheet", config.Sheets.Worksheet),
		)
		store = client

	case BackendSQLite:
		dbPath := config.GetDatabasePath()
		db, err := sqlite.New(ctx, dbPath)
		if err != nil {
			return nil, err
		}
		logger.Info("opened database",
			logging.Operation("open"),
			slog.String(logging.KeyBackend, BackendSQLite),
			slog.String("path", dbPath),
		)
		store = db

	default:
		return nil, &ConfigError{Field: "store.backend", Message: fmt.Sprintf("unknown backend %q", config.Store.Backend)}
	}

	if provider == nil {
		noop, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
		if err != nil {
			store.Close()
			return nil, err
		}
		provider = noop
	}
	instrumented, err := instrumentation.NewInstrumentedStore(store, config.Store.Backend, provider, logger)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to instrument row store: %w", err)
	}
	return instrumented, nil
}

// CreateTestRowStore creates an in-memory SQLite store for testing
func CreateTestRowStore(ctx context.Context) (repository.RowStore, error) {
	store, err := sqlite.New(ctx, sqlite.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return store, nil
}
