// Package repository defines the row store contract shared by the task
// backends and the codec that turns typed values into the text tokens the
// spreadsheet schema persists.
package repository

import (
	"context"
)

// Column names of the persisted schema, in sheet order.
const (
	ColumnItemID    = "item_id"
	ColumnName      = "name"
	ColumnDone      = "done"
	ColumnActive    = "active"
	ColumnCreatedOn = "created_on"
)

// Columns lists the schema in the order values are appended.
var Columns = []string{ColumnItemID, ColumnName, ColumnDone, ColumnActive, ColumnCreatedOn}

// 1-based column indexes used by UpdateCell.
const (
	ColumnIndexItemID = iota + 1
	ColumnIndexName
	ColumnIndexDone
	ColumnIndexActive
	ColumnIndexCreatedOn
)

// Row is one data row keyed by column name.
type Row map[string]string

// RowHandle identifies a row for targeted cell updates.
// Index is the 1-based sheet row number; the header occupies row 1.
type RowHandle struct {
	Index int
}

// RowStore is a tabular remote store.
type RowStore interface {
	// GetAllRows returns every data row in store order.
	GetAllRows(ctx context.Context) ([]Row, error)
	// AppendRow appends values in Columns order.
	AppendRow(ctx context.Context, values []string) error
	// FindRowByKey returns the first row whose item_id equals key,
	// or a not found error.
	FindRowByKey(ctx context.Context, key string) (RowHandle, error)
	// UpdateCell writes value into the 1-based column of the row.
	UpdateCell(ctx context.Context, handle RowHandle, column int, value string) error
	// Close releases the backend.
	Close() error
}
