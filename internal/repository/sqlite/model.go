package sqlite

import "todo-list/internal/repository"

// record is one row of the tasks table. Values are stored as the same text
// tokens the spreadsheet backend persists.
type record struct {
	RowIndex  int64
	ItemID    string
	Name      string
	Done      string
	Active    string
	CreatedOn string
}

func (r *record) toRow() repository.Row {
	return repository.Row{
		repository.ColumnItemID:    r.ItemID,
		repository.ColumnName:      r.Name,
		repository.ColumnDone:      r.Done,
		repository.ColumnActive:    r.Active,
		repository.ColumnCreatedOn: r.CreatedOn,
	}
}

// columnNames maps the 1-based schema column index to its table column.
var columnNames = map[int]string{
	repository.ColumnIndexItemID:    "item_id",
	repository.ColumnIndexName:      "name",
	repository.ColumnIndexDone:      "done",
	repository.ColumnIndexActive:    "active",
	repository.ColumnIndexCreatedOn: "created_on",
}
