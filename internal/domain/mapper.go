package domain

import (
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
)

// firstDataRow is the sheet row number of the first data row (row 1 is the header).
const firstDataRow = 2

// TaskMapper handles conversion between domain Tasks and persisted rows.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRow converts a domain Task to row values in schema order.
func (m *TaskMapper) ToRow(task Task) []string {
	return []string{
		repository.EncodeID(task.ItemID),
		task.Name,
		repository.EncodeBool(task.Done),
		repository.EncodeBool(task.Active),
		repository.FormatDate(task.CreatedOn),
	}
}

// FromRow converts a persisted row to a domain Task. sheetRow is only used
// to locate the row in error messages.
func (m *TaskMapper) FromRow(sheetRow int, row repository.Row) (Task, error) {
	var task Task

	raw, err := field(sheetRow, row, repository.ColumnItemID)
	if err != nil {
		return Task{}, err
	}
	if task.ItemID, err = repository.DecodeID(raw); err != nil {
		return Task{}, errors.NewDataFormatError(sheetRow, repository.ColumnItemID, err)
	}

	if task.Name, err = field(sheetRow, row, repository.ColumnName); err != nil {
		return Task{}, err
	}
	if task.Name == "" {
		return Task{}, errors.NewDataFormatError(sheetRow, repository.ColumnName, fmt.Errorf("empty name"))
	}

	if raw, err = field(sheetRow, row, repository.ColumnDone); err != nil {
		return Task{}, err
	}
	if task.Done, err = repository.DecodeBool(raw); err != nil {
		return Task{}, errors.NewDataFormatError(sheetRow, repository.ColumnDone, err)
	}

	if raw, err = field(sheetRow, row, repository.ColumnActive); err != nil {
		return Task{}, err
	}
	if task.Active, err = repository.DecodeBool(raw); err != nil {
		return Task{}, errors.NewDataFormatError(sheetRow, repository.ColumnActive, err)
	}

	if raw, err = field(sheetRow, row, repository.ColumnCreatedOn); err != nil {
		return Task{}, err
	}
	if task.CreatedOn, err = repository.ParseDate(raw); err != nil {
		return Task{}, errors.NewDataFormatError(sheetRow, repository.ColumnCreatedOn, err)
	}

	return task, nil
}

// FromRows converts rows in store order. The first malformed row aborts the conversion.
func (m *TaskMapper) FromRows(rows []repository.Row) ([]Task, error) {
	tasks := make([]Task, 0, len(rows))
	for i, row := range rows {
		task, err := m.FromRow(i+firstDataRow, row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func field(sheetRow int, row repository.Row, column string) (string, error) {
	value, ok := row[column]
	if !ok {
		return "", errors.NewDataFormatError(sheetRow, column, fmt.Errorf("missing column %q", column))
	}
	return value, nil
}
