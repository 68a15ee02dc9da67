package sheets

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
)

const (
	// SpreadsheetMimeType is the Drive MIME type of native spreadsheets
	SpreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

	// headerRow is the sheet row holding column names
	headerRow = 1
)

// Scopes requested for the service account.
var Scopes = []string{
	sheetsapi.SpreadsheetsScope,
	drive.DriveMetadataReadonlyScope,
}

// Config selects the spreadsheet and worksheet the client works on.
type Config struct {
	CredentialsFile string
	SpreadsheetName string
	SpreadsheetID   string
	Worksheet       string
}

// Client is a repository.RowStore over one worksheet.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
	worksheet     string
}

var _ repository.RowStore = (*Client)(nil)

// New authenticates with the service account key in cfg.CredentialsFile and
// resolves the spreadsheet. Extra client options replace the credential
// based HTTP client, which is how tests point the client at a fake server.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Client, error) {
	if cfg.Worksheet == "" {
		return nil, errors.NewValidationError("worksheet name is required", nil)
	}

	if len(opts) == 0 {
		httpClient, err := serviceAccountClient(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		opts = []option.ClientOption{option.WithHTTPClient(httpClient)}
	}

	spreadsheetID := cfg.SpreadsheetID
	if spreadsheetID == "" {
		id, err := resolveSpreadsheetID(ctx, cfg.SpreadsheetName, opts)
		if err != nil {
			return nil, err
		}
		spreadsheetID = id
	}

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.NewGatewayError("create Sheets service", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		worksheet:     cfg.Worksheet,
	}, nil
}

// SpreadsheetID returns the resolved spreadsheet ID
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// Close is a no-op; the HTTP transport is shared.
func (c *Client) Close() error {
	return nil
}

// GetAllRows reads the worksheet and returns the data rows keyed by header.
// Cells the API omits at the end of a row are returned as empty strings.
func (c *Client) GetAllRows(ctx context.Context) ([]repository.Row, error) {
	values, err := c.readValues(ctx)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return []repository.Row{}, nil
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = cellString(cell)
	}

	rows := make([]repository.Row, 0, len(values)-1)
	for _, line := range values[1:] {
		row := make(repository.Row, len(header))
		for i, column := range header {
			if column == "" {
				continue
			}
			if i < len(line) {
				row[column] = cellString(line[i])
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow appends values after the last data row.
func (c *Client) AppendRow(ctx context.Context, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	vr := &sheetsapi.ValueRange{Values: [][]interface{}{cells}}
	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, quoteSheet(c.worksheet), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return mapError("append row", c.worksheet, err)
	}
	return nil
}

// FindRowByKey returns the handle of the first data row whose item_id
// cell equals key.
func (c *Client) FindRowByKey(ctx context.Context, key string) (repository.RowHandle, error) {
	values, err := c.readValues(ctx)
	if err != nil {
		return repository.RowHandle{}, err
	}
	if len(values) == 0 {
		return repository.RowHandle{}, errors.NewNotFoundError("row", key)
	}

	keyColumn := -1
	for i, cell := range values[0] {
		if cellString(cell) == repository.ColumnItemID {
			keyColumn = i
			break
		}
	}
	if keyColumn < 0 {
		return repository.RowHandle{}, errors.NewDataFormatError(headerRow, repository.ColumnItemID,
			fmt.Errorf("header has no %s column", repository.ColumnItemID))
	}

	for i, line := range values[1:] {
		if keyColumn < len(line) && cellString(line[keyColumn]) == key {
			return repository.RowHandle{Index: i + headerRow + 1}, nil
		}
	}
	return repository.RowHandle{}, errors.NewNotFoundError("row", key)
}

// UpdateCell writes one cell. The value is entered as if typed by a user,
// so "TRUE" and "FALSE" keep their boolean meaning in the sheet.
func (c *Client) UpdateCell(ctx context.Context, handle repository.RowHandle, column int, value string) error {
	if handle.Index <= headerRow {
		return errors.NewNotFoundError("row", strconv.Itoa(handle.Index))
	}
	if column < repository.ColumnIndexItemID || column > len(repository.Columns) {
		return errors.NewValidationError(fmt.Sprintf("column %d is outside the schema", column), nil)
	}

	target := cellRange(c.worksheet, column, handle.Index)
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{{value}}}
	_, err := c.service.Spreadsheets.Values.
		Update(c.spreadsheetID, target, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return mapError("update cell", target, err)
	}
	return nil
}

func (c *Client) readValues(ctx context.Context) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.
		Get(c.spreadsheetID, quoteSheet(c.worksheet)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError("read rows", c.worksheet, err)
	}
	return resp.Values, nil
}

func serviceAccountClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	if credentialsFile == "" {
		return nil, errors.NewValidationError("credentials file is required", nil)
	}
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, errors.NewGatewayError("read credentials file", err).
			WithContext("path", credentialsFile)
	}
	jwtConfig, err := google.JWTConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, errors.NewValidationError("credentials file is not a service account key", err)
	}
	return jwtConfig.Client(ctx), nil
}

func resolveSpreadsheetID(ctx context.Context, title string, opts []option.ClientOption) (string, error) {
	if title == "" {
		return "", errors.NewValidationError("spreadsheet name or id is required", nil)
	}

	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return "", errors.NewGatewayError("create Drive service", err)
	}

	list, err := service.Files.List().
		Q(spreadsheetQuery(title)).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", mapError("find spreadsheet", title, err)
	}
	if len(list.Files) == 0 {
		return "", errors.NewNotFoundError("spreadsheet", title)
	}
	return list.Files[0].Id, nil
}

// spreadsheetQuery builds the Drive search for a spreadsheet by exact title.
func spreadsheetQuery(title string) string {
	escaped := strings.ReplaceAll(strings.ReplaceAll(title, `\`, `\\`), `'`, `\'`)
	return fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escaped, SpreadsheetMimeType)
}

// mapError converts Google API failures to application errors.
func mapError(operation, resource string, err error) error {
	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.NewPermissionError(operation, resource).WithContext("status", apiErr.Code)
		case http.StatusNotFound:
			// a missing worksheet or range is a store fault, not a lookup miss
			return errors.WrapError(err, errors.ErrorTypeGateway,
				fmt.Sprintf("%s failed: %s does not exist", operation, resource)).
				WithContext("status", apiErr.Code)
		}
	}
	return errors.NewGatewayError(operation, err)
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return repository.TokenTrue
		}
		return repository.TokenFalse
	default:
		return fmt.Sprint(v)
	}
}
