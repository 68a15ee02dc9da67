package sheets

import (
	"fmt"
	"strings"
)

// columnLetter converts a 1-based column index to its A1 letters (1 -> A, 27 -> AA).
func columnLetter(column int) string {
	var letters []byte
	for column > 0 {
		column--
		letters = append([]byte{byte('A' + column%26)}, letters...)
		column /= 26
	}
	return string(letters)
}

// quoteSheet quotes a worksheet title for use in an A1 range. Titles are
// always quoted so that names like "A1" are not read as cell references.
func quoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// cellRange builds the A1 notation of a single cell, e.g. tasks!C5.
func cellRange(worksheet string, column, row int) string {
	return fmt.Sprintf("%s!%s%d", quoteSheet(worksheet), columnLetter(column), row)
}
