package config

import (
	"os"
	"path/filepath"
	"strings"

	"todo-list/internal/instrumentation"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sheets"
)

// Store backends accepted by StoreConfig.Backend.
const (
	BackendSheets = "sheets"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the to-do list
type Config struct {
	Store      StoreConfig      `mapstructure:"store"`
	Sheets     SheetsConfig     `mapstructure:"sheets"`
	SQLite     SQLiteConfig     `mapstructure:"sqlite"`
	Display    DisplayConfig    `mapstructure:"display"`
	Validation ValidationConfig `mapstructure:"validation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// StoreConfig selects the row store backend
type StoreConfig struct {
	// Backend is "sheets" or "sqlite"
	Backend string `mapstructure:"backend"`
}

// SheetsConfig holds the Google Sheets backend settings
type SheetsConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	SpreadsheetName string `mapstructure:"spreadsheet_name"`
	// SpreadsheetID skips the Drive title lookup when set
	SpreadsheetID string `mapstructure:"spreadsheet_id"`
	Worksheet     string `mapstructure:"worksheet"`
}

// SQLiteConfig holds the local backend settings
type SQLiteConfig struct {
	// Path is the database file; ":memory:" gives an ephemeral store
	Path string `mapstructure:"path"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Width int  `mapstructure:"width"`
	Color bool `mapstructure:"color"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMaxLength int `mapstructure:"task_name_max_length"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

// TelemetryConfig holds OpenTelemetry settings
type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Exporter     string `mapstructure:"exporter"`
	File         string `mapstructure:"file"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool   `mapstructure:"otlp_insecure"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendSheets,
		},
		Sheets: SheetsConfig{
			CredentialsFile: "creds.json",
			SpreadsheetName: "to_do_list",
			Worksheet:       "tasks",
		},
		SQLite: SQLiteConfig{
			Path: DefaultDatabasePath(),
		},
		Display: DisplayConfig{
			Width: 80,
			Color: true,
		},
		Validation: ValidationConfig{
			TaskNameMaxLength: 255,
		},
		Logging: LoggingConfig{
			Level:  logging.LevelWarn,
			Format: logging.FormatText,
		},
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Exporter: instrumentation.ExporterStdout,
		},
	}
}

// DefaultDatabasePath returns ~/.todo/todo.db
func DefaultDatabasePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".todo", "todo.db")
}

// GetDatabasePath returns the SQLite path with a leading ~ expanded
func (c *Config) GetDatabasePath() string {
	path := c.SQLite.Path
	if path == "~" || strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// SheetsClientConfig returns the settings for sheets.New
func (c *Config) SheetsClientConfig() sheets.Config {
	return sheets.Config{
		CredentialsFile: c.Sheets.CredentialsFile,
		SpreadsheetName: c.Sheets.SpreadsheetName,
		SpreadsheetID:   c.Sheets.SpreadsheetID,
		Worksheet:       c.Sheets.Worksheet,
	}
}

// LoggingOptions returns the settings for logging.New
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:   c.Logging.Level,
		Format:  c.Logging.Format,
		File:    c.Logging.File,
		Verbose: c.Logging.Verbose,
	}
}

// InstrumentationConfig returns the settings for instrumentation.NewProvider
func (c *Config) InstrumentationConfig(version string) instrumentation.Config {
	cfg := instrumentation.DefaultConfig()
	cfg.ServiceVersion = version
	cfg.Enabled = c.Telemetry.Enabled
	cfg.Exporter = c.Telemetry.Exporter
	cfg.File = c.Telemetry.File
	cfg.OTLPEndpoint = c.Telemetry.OTLPEndpoint
	cfg.OTLPInsecure = c.Telemetry.OTLPInsecure
	return cfg
}

// Validate validates the configuration and returns the first error found
func (c *Config) Validate() error {
	// Validate store configuration
	switch c.Store.Backend {
	case BackendSheets:
		if c.Sheets.Worksheet == "" {
			return &ConfigError{Field: "sheets.worksheet", Message: "worksheet name cannot be empty"}
		}
		if c.Sheets.SpreadsheetName == "" && c.Sheets.SpreadsheetID == "" {
			return &ConfigError{Field: "sheets.spreadsheet_name", Message: "spreadsheet name or id is required"}
		}
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return &ConfigError{Field: "sqlite.path", Message: "database path cannot be empty"}
		}
	default:
		return &ConfigError{Field: "store.backend", Message: "backend must be one of sheets, sqlite"}
	}

	// Validate display configuration
	if c.Display.Width < 10 {
		return &ConfigError{Field: "display.width", Message: "width must be at least 10"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMaxLength < 1 {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be at least 1"}
	}

	// Validate logging configuration
	if !logging.ValidLevel(c.Logging.Level) {
		return &ConfigError{Field: "logging.level", Message: "level must be one of debug, info, warn, error"}
	}
	if !logging.ValidFormat(c.Logging.Format) {
		return &ConfigError{Field: "logging.format", Message: "format must be one of text, json"}
	}

	// Validate telemetry configuration
	switch c.Telemetry.Exporter {
	case instrumentation.ExporterStdout:
	case instrumentation.ExporterOTLP:
		if c.Telemetry.Enabled && c.Telemetry.OTLPEndpoint == "" {
			return &ConfigError{Field: "telemetry.otlp_endpoint", Message: "endpoint is required for the otlp exporter"}
		}
	default:
		return &ConfigError{Field: "telemetry.exporter", Message: "exporter must be one of stdout, otlp"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
