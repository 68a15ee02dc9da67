package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanRecord scans a single task record from a database row
func scanRecord(scanner Scanner) (*record, error) {
	rec := &record{}
	err := scanner.Scan(
		&rec.RowIndex,
		&rec.ItemID,
		&rec.Name,
		&rec.Done,
		&rec.Active,
		&rec.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// scanRecords scans every task record from database rows
func scanRecords(rows Rows) ([]*record, error) {
	var records []*record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
