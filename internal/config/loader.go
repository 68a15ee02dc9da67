package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TODO_STORE_BACKEND
const EnvPrefix = "TODO"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// SetConfigFile makes Load read path instead of searching the config directory.
// Unlike the default location, an explicit file must exist.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// ConfigFileUsed returns the config file that was read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file
// 3. Override with TODO_ environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.readConfigFile(); err != nil {
		return nil, err
	}

	config := NewConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.readConfigFile(); err != nil {
		return nil, err
	}

	config := NewConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) readConfigFile() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", l.configFile, err)
		}
		return nil
	}

	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(ConfigDir())
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Store overrides
	Backend *string

	// Sheets overrides
	CredentialsFile *string
	SpreadsheetName *string
	SpreadsheetID   *string
	Worksheet       *string

	// SQLite overrides
	DatabasePath *string

	// Display overrides
	NoColor *bool

	// Logging overrides
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Store.Backend = *overrides.Backend
	}

	if overrides.CredentialsFile != nil {
		config.Sheets.CredentialsFile = *overrides.CredentialsFile
	}
	if overrides.SpreadsheetName != nil {
		config.Sheets.SpreadsheetName = *overrides.SpreadsheetName
	}
	if overrides.SpreadsheetID != nil {
		config.Sheets.SpreadsheetID = *overrides.SpreadsheetID
	}
	if overrides.Worksheet != nil {
		config.Sheets.Worksheet = *overrides.Worksheet
	}

	if overrides.DatabasePath != nil {
		config.SQLite.Path = *overrides.DatabasePath
	}

	if overrides.NoColor != nil && *overrides.NoColor {
		config.Display.Color = false
	}

	if overrides.Verbose != nil {
		config.Logging.Verbose = *overrides.Verbose
	}
}

// setDefaults registers every key so that environment variables are seen by Unmarshal
func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("store.backend", defaults.Store.Backend)

	v.SetDefault("sheets.credentials_file", defaults.Sheets.CredentialsFile)
	v.SetDefault("sheets.spreadsheet_name", defaults.Sheets.SpreadsheetName)
	v.SetDefault("sheets.spreadsheet_id", defaults.Sheets.SpreadsheetID)
	v.SetDefault("sheets.worksheet", defaults.Sheets.Worksheet)

	v.SetDefault("sqlite.path", defaults.SQLite.Path)

	v.SetDefault("display.width", defaults.Display.Width)
	v.SetDefault("display.color", defaults.Display.Color)

	v.SetDefault("validation.task_name_max_length", defaults.Validation.TaskNameMaxLength)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.verbose", defaults.Logging.Verbose)

	v.SetDefault("telemetry.enabled", defaults.Telemetry.Enabled)
	v.SetDefault("telemetry.exporter", defaults.Telemetry.Exporter)
	v.SetDefault("telemetry.file", defaults.Telemetry.File)
	v.SetDefault("telemetry.otlp_endpoint", defaults.Telemetry.OTLPEndpoint)
	v.SetDefault("telemetry.otlp_insecure", defaults.Telemetry.OTLPInsecure)
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todo"
	}
	return filepath.Join(home, ".config", "todo")
}

// ConfigFile returns the default config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
