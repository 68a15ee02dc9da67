package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBool(t *testing.T) {
	assert.Equal(t, "TRUE", EncodeBool(true))
	assert.Equal(t, "FALSE", EncodeBool(false))
}

func TestDecodeBool(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  bool
		expectErr bool
	}{
		{name: "true token", input: "TRUE", expected: true},
		{name: "false token", input: "FALSE", expected: false},
		{name: "lower case is rejected", input: "true", expectErr: true},
		{name: "mixed case is rejected", input: "False", expectErr: true},
		{name: "empty is rejected", input: "", expectErr: true},
		{name: "number is rejected", input: "1", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBool(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	day := time.Date(2024, time.March, 7, 18, 30, 0, 0, time.UTC)

	s := FormatDate(day)
	assert.Equal(t, "2024-03-07", s)

	parsed, err := ParseDate(s)
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 7, parsed.Day())

	_, err = ParseDate("07/03/2024")
	assert.Error(t, err)
}

func TestDecodeID(t *testing.T) {
	id, err := DecodeID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "42", EncodeID(id))

	_, err = DecodeID("0")
	assert.Error(t, err)

	_, err = DecodeID("-3")
	assert.Error(t, err)

	_, err = DecodeID("abc")
	assert.Error(t, err)
}

func TestColumnIndexes(t *testing.T) {
	assert.Equal(t, 1, ColumnIndexItemID)
	assert.Equal(t, 3, ColumnIndexDone)
	assert.Equal(t, 4, ColumnIndexActive)
	assert.Equal(t, 5, ColumnIndexCreatedOn)
	assert.Equal(t, ColumnDone, Columns[ColumnIndexDone-1])
	assert.Equal(t, ColumnActive, Columns[ColumnIndexActive-1])
}
