// Package sheets provides the task row store backed by a Google Sheets
// worksheet.
//
// The worksheet's first row holds the column names (item_id, name, done,
// active, created_on); every following row is one task. Rows are read with
// the values API, appended as RAW input and updated one cell at a time.
//
// Authentication:
// The client authenticates as a service account whose JSON key file is
// named in Config.CredentialsFile. The spreadsheet must be shared with the
// service account's e-mail address. When Config.SpreadsheetID is empty the
// spreadsheet is located by title through the Drive API, which requires the
// Drive metadata scope.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := sheets.New(ctx, sheets.Config{
//	    CredentialsFile: "creds.json",
//	    SpreadsheetName: "to_do_list",
//	    Worksheet:       "tasks",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	rows, err := client.GetAllRows(ctx)
package sheets
