package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"todo-list/internal/config"
	"todo-list/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	version string
	in      io.Reader
	out     io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(version string, in io.Reader, out, errOut io.Writer) *RootCommand {
	root := &RootCommand{
		version: version,
		in:      in,
		out:     out,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "An interactive to-do list backed by a Google Sheet",
		Long: `todo keeps a to-do list in a Google Sheets worksheet (or a local SQLite file)
and edits it from an interactive menu.

MENU:
  a   add a task
  c   mark a task as completed
  d   delete a task (the row is kept and marked inactive)
  e   exit

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > TODO_* environment variables > config file > defaults

  The config file is read from --config, else $XDG_CONFIG_HOME/todo/config.yaml,
  else ~/.config/todo/config.yaml.

  Store:
    TODO_STORE_BACKEND                     sheets or sqlite (default: sheets)
    TODO_SHEETS_CREDENTIALS_FILE           Service account key (default: creds.json)
    TODO_SHEETS_SPREADSHEET_NAME           Spreadsheet title (default: to_do_list)
    TODO_SHEETS_SPREADSHEET_ID             Spreadsheet id, skips the title lookup
    TODO_SHEETS_WORKSHEET                  Worksheet name (default: tasks)
    TODO_SQLITE_PATH                       Database file (default: ~/.todo/todo.db)

  Display and validation:
    TODO_DISPLAY_WIDTH                     Separator width (default: 80)
    TODO_DISPLAY_COLOR                     Styled output (default: true)
    TODO_VALIDATION_TASK_NAME_MAX_LENGTH   Max task name length (default: 255)

  Logging and telemetry:
    TODO_LOGGING_LEVEL                     debug, info, warn, error (default: warn)
    TODO_LOGGING_FORMAT                    text or json (default: text)
    TODO_LOGGING_FILE                      Log file (default: stderr)
    TODO_TELEMETRY_ENABLED                 Enable OpenTelemetry (default: false)
    TODO_TELEMETRY_EXPORTER                stdout or otlp (default: stdout)
    TODO_TELEMETRY_OTLP_ENDPOINT           OTLP/HTTP collector endpoint`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          root.runMenu,
	}
	root.cmd.SetIn(in)
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (default: $XDG_CONFIG_HOME/todo/config.yaml)")

	// Store configuration
	flags.String("backend", "", "Row store backend: sheets or sqlite (overrides TODO_STORE_BACKEND)")
	flags.String("credentials", "", "Service account key file (overrides TODO_SHEETS_CREDENTIALS_FILE)")
	flags.String("spreadsheet", "", "Spreadsheet title (overrides TODO_SHEETS_SPREADSHEET_NAME)")
	flags.String("spreadsheet-id", "", "Spreadsheet id (overrides TODO_SHEETS_SPREADSHEET_ID)")
	flags.String("worksheet", "", "Worksheet name (overrides TODO_SHEETS_WORKSHEET)")
	flags.String("db", "", "SQLite database file (overrides TODO_SQLITE_PATH)")

	// Output configuration
	flags.Bool("verbose", false, "Enable debug logging")
	flags.Bool("no-color", false, "Disable styled output (overrides TODO_DISPLAY_COLOR)")
}

// addSubcommands adds the version subcommand
func (r *RootCommand) addSubcommands() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "todo version %s\n", r.version)
			return err
		},
	}

	r.cmd.AddCommand(versionCmd)
}

// runMenu loads configuration, opens the store and runs the menu
func (r *RootCommand) runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}

	app, cleanup, err := NewAppFromConfig(cmd.Context(), cfg, r.version, r.in, r.out)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(cmd.Context())
}

// loadConfig builds the configuration from file, environment and changed flags
func (r *RootCommand) loadConfig() (*config.Config, error) {
	flags := r.cmd.PersistentFlags()

	loader := config.NewLoader()
	if path, _ := flags.GetString("config"); path != "" {
		loader.SetConfigFile(path)
	}

	cfg, err := loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return nil, err
	}

	// the slog logger does not exist yet
	if used := loader.ConfigFileUsed(); used != "" {
		logging.Debugf("config file: %s\n", used)
	} else {
		logging.Debugln("no config file, using defaults and environment")
	}
	return cfg, nil
}

// getOverridesFromFlags returns overrides for the flags set on the command line
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()

	return &config.ConfigOverrides{
		Backend:         changedString(flags, "backend"),
		CredentialsFile: changedString(flags, "credentials"),
		SpreadsheetName: changedString(flags, "spreadsheet"),
		SpreadsheetID:   changedString(flags, "spreadsheet-id"),
		Worksheet:       changedString(flags, "worksheet"),
		DatabasePath:    changedString(flags, "db"),
		Verbose:         changedBool(flags, "verbose"),
		NoColor:         changedBool(flags, "no-color"),
	}
}

// changedString returns the flag value, or nil when the flag was not given
func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &value
}

func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetBool(name)
	if err != nil {
		return nil
	}
	return &value
}
