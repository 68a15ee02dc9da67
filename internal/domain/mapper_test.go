package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
)

func validRow() repository.Row {
	return repository.Row{
		"item_id":    "1",
		"name":       "Buy milk",
		"done":       "FALSE",
		"active":     "TRUE",
		"created_on": "2024-05-01",
	}
}

func TestTaskMapper_ToRow(t *testing.T) {
	mapper := NewTaskMapper()
	task := Task{
		ItemID:    7,
		Name:      "Buy milk",
		Done:      true,
		Active:    false,
		CreatedOn: time.Date(2024, time.May, 1, 15, 4, 5, 0, time.UTC),
	}

	assert.Equal(t, []string{"7", "Buy milk", "TRUE", "FALSE", "2024-05-01"}, mapper.ToRow(task))
}

func TestTaskMapper_FromRow(t *testing.T) {
	mapper := NewTaskMapper()

	task, err := mapper.FromRow(2, validRow())
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ItemID)
	assert.Equal(t, "Buy milk", task.Name)
	assert.False(t, task.Done)
	assert.True(t, task.Active)
	assert.Equal(t, "2024-05-01", task.CreatedOn.Format("2006-01-02"))
}

func TestTaskMapper_FromRow_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(repository.Row)
		field  string
	}{
		{
			name:   "missing item_id",
			mutate: func(r repository.Row) { delete(r, "item_id") },
			field:  "item_id",
		},
		{
			name:   "non-numeric item_id",
			mutate: func(r repository.Row) { r["item_id"] = "one" },
			field:  "item_id",
		},
		{
			name:   "empty name",
			mutate: func(r repository.Row) { r["name"] = "" },
			field:  "name",
		},
		{
			name:   "lower case done token",
			mutate: func(r repository.Row) { r["done"] = "false" },
			field:  "done",
		},
		{
			name:   "missing active",
			mutate: func(r repository.Row) { delete(r, "active") },
			field:  "active",
		},
		{
			name:   "bad date",
			mutate: func(r repository.Row) { r["created_on"] = "01/05/2024" },
			field:  "created_on",
		},
	}

	mapper := NewTaskMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(row)

			_, err := mapper.FromRow(5, row)
			require.Error(t, err)

			appErr, ok := errors.AsAppError(err)
			require.True(t, ok)
			assert.True(t, appErr.IsType(errors.ErrorTypeDataFormat))
			field, _ := appErr.GetContext("field")
			assert.Equal(t, tt.field, field)
			sheetRow, _ := appErr.GetContext("row")
			assert.Equal(t, 5, sheetRow)
		})
	}
}

func TestTaskMapper_FromRows(t *testing.T) {
	mapper := NewTaskMapper()

	second := validRow()
	second["item_id"] = "2"
	second["name"] = "Walk dog"
	second["active"] = "FALSE"

	tasks, err := mapper.FromRows([]repository.Row{validRow(), second})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Name)
	assert.Equal(t, "Walk dog", tasks[1].Name)
	assert.False(t, tasks[1].Active)

	empty, err := mapper.FromRows(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTaskMapper_FromRows_ReportsSheetRow(t *testing.T) {
	mapper := NewTaskMapper()

	bad := validRow()
	bad["done"] = "maybe"

	_, err := mapper.FromRows([]repository.Row{validRow(), bad})
	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	sheetRow, _ := appErr.GetContext("row")
	assert.Equal(t, 3, sheetRow)
}
