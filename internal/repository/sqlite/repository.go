// Package sqlite implements the task row store on a local SQLite file, for
// offline use and tests. Rows keep their insertion order and are addressed
// the same way as spreadsheet rows: the first data row has index 2.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// headerRows is the number of rows before the first data row.
const headerRows = 1

// Store is a repository.RowStore backed by SQLite.
type Store struct {
	db *sql.DB
}

var _ repository.RowStore = (*Store)(nil)

// New opens (creating if needed) the database at dbPath and applies migrations.
func New(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, errors.NewGatewayError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewGatewayError("open database", err)
	}
	if dbPath == MemoryPath {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewGatewayError("run migrations", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetAllRows returns every task row in insertion order.
func (s *Store) GetAllRows(ctx context.Context) ([]repository.Row, error) {
	query := `
	SELECT row_index, item_id, name, done, active, created_on
	FROM tasks
	ORDER BY row_index ASC`

	records, err := QueryMultiple(ctx, s.db, query, scanRecords, "tasks")
	if err != nil {
		return nil, err
	}

	rows := make([]repository.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.toRow())
	}
	return rows, nil
}

// AppendRow inserts values in schema column order. Missing trailing values
// are stored as empty cells.
func (s *Store) AppendRow(ctx context.Context, values []string) error {
	if len(values) > len(repository.Columns) {
		return errors.NewValidationError(
			fmt.Sprintf("row has %d values, schema has %d columns", len(values), len(repository.Columns)), nil)
	}

	cells := make([]interface{}, len(repository.Columns))
	for i := range cells {
		cells[i] = ""
		if i < len(values) {
			cells[i] = values[i]
		}
	}

	query := `
	INSERT INTO tasks (item_id, name, done, active, created_on)
	VALUES (?, ?, ?, ?, ?)`

	_, err := ExecuteWithLastInsertID(ctx, s.db, query, cells...)
	return err
}

// FindRowByKey returns the handle of the first row whose item_id is key.
func (s *Store) FindRowByKey(ctx context.Context, key string) (repository.RowHandle, error) {
	query := `
	SELECT (SELECT COUNT(*) FROM tasks p WHERE p.row_index <= t.row_index)
	FROM tasks t
	WHERE t.item_id = ?
	ORDER BY t.row_index ASC
	LIMIT 1`

	var position int
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&position); err != nil {
		return repository.RowHandle{}, HandleNoRowsError("find row", err, "row", key)
	}
	return repository.RowHandle{Index: position + headerRows}, nil
}

// UpdateCell overwrites one cell of the row at handle.
func (s *Store) UpdateCell(ctx context.Context, handle repository.RowHandle, column int, value string) error {
	name, ok := columnNames[column]
	if !ok {
		return errors.NewValidationError(fmt.Sprintf("column %d is outside the schema", column), nil)
	}
	offset := handle.Index - headerRows - 1
	if offset < 0 {
		return errors.NewNotFoundError("row", strconv.Itoa(handle.Index))
	}

	query := fmt.Sprintf(`
	UPDATE tasks SET %s = ?
	WHERE row_index = (SELECT row_index FROM tasks ORDER BY row_index ASC LIMIT 1 OFFSET ?)`, name)

	return ExecuteWithRowsAffected(ctx, s.db, query, "row", strconv.Itoa(handle.Index), value, offset)
}
