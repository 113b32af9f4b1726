package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/services"
)

// ServiceFactory builds the services for one command run from the loaded configuration
type ServiceFactory func(ctx context.Context, cfg *config.Config) (*services.ServiceContainer, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory ServiceFactory
	config  *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(factory ServiceFactory) *RootCommand {
	root := &RootCommand{
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "An in-process task list",
		Long: `todo keeps an ordered list of named tasks, each either todo, in progress or done.

Tasks live only for the duration of one run. Feed a session of commands on
stdin or from a file to build and inspect a list.

EXAMPLES:
  todo                                     # Run the built-in self check
  todo session tasks.txt                   # Apply the commands in tasks.txt
  printf 'add Write docs\nlist\n' | todo session
  todo export --format pdf --output tasks.pdf tasks.txt

SESSION COMMANDS:
  add <name>        remove <name>     get <name>
  start <name>      complete <name>   uncomplete <name>
  list [table|csv|json|yaml]          find <text>
  summary           help

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TODO_STORE_BACKEND                     Task store: memory or sqlite (default: memory)
    TODO_STORE_QUERY_TIMEOUT               Store call timeout (default: 5s)
    TODO_VALIDATION_TASK_NAME_MAX          Max task name length, 0 for none (default: 255)
    TODO_LIST_DEFAULT_FORMAT               Default list format (default: table)
    TODO_APP_TIMEOUT                       Timeout for selfcheck and file sessions (default: 60s)
    TODO_APP_VERBOSE                       Enable verbose output (default: false)
    TODO_APP_STRICT                        Fail on commands naming a missing task (default: false)
    TODO_DEBUG                             Enable debug tracing`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.withApp(cmd, cmd.OutOrStdout(), true, func(ctx context.Context, app *App) error {
				return app.SelfCheck(ctx)
			})
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every command context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration loaded for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Store configuration
	flags.String("backend", "", "Task store, memory or sqlite (overrides TODO_STORE_BACKEND)")
	flags.Duration("query-timeout", 0, "Store call timeout (overrides TODO_STORE_QUERY_TIMEOUT)")

	// Validation configuration
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TODO_VALIDATION_TASK_NAME_MAX)")

	// Display configuration
	flags.String("list-format", "", "Default list format (overrides TODO_LIST_DEFAULT_FORMAT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Timeout for selfcheck and file sessions (overrides TODO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
	flags.Bool("strict", false, "Fail on commands naming a missing task (overrides TODO_APP_STRICT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	selfcheckCmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Run the built-in scenario against the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, cmd.OutOrStdout(), true, func(ctx context.Context, app *App) error {
				return app.SelfCheck(ctx)
			})
		},
	}

	sessionCmd := &cobra.Command{
		Use:   "session [file]",
		Short: "Apply session commands to a fresh task list",
		Long: `Read commands one per line from file, or from stdin when no file or "-" is
given, and apply them in order to a single task list. Blank lines and lines
starting with # are ignored. The words after the verb form the task name.
The application timeout applies to session files only; stdin sessions run
until end of input, with each store call still bounded by the query timeout.

Examples:
  todo session tasks.txt
  echo "add Buy milk" | todo session`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, closeInput, err := openSession(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			return r.withApp(cmd, cmd.OutOrStdout(), sessionTimeout(args), func(ctx context.Context, app *App) error {
				return app.RunSession(ctx, input)
			})
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [session file]",
		Short: "Run a session quietly and export the resulting list",
		Long: `Apply a session like "todo session" without printing command output, then
write the final list in the requested format.

Supported formats: table, csv, json, yaml, pdf

Examples:
  todo export --format json tasks.txt
  todo export --format pdf --output tasks.pdf tasks.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outputPath, _ := cmd.Flags().GetString("output")
			if err := ValidateExportFormat(format); err != nil {
				return err
			}

			input, closeInput, err := openSession(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			// Render fully before touching the output so a failure leaves no file behind
			var rendered bytes.Buffer
			err = r.withApp(cmd, io.Discard, sessionTimeout(args), func(ctx context.Context, app *App) error {
				if err := app.RunSession(ctx, input); err != nil {
					return err
				}
				return app.Export(ctx, &rendered, format)
			})
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = cmd.OutOrStdout().Write(rendered.Bytes())
				return err
			}
			if err := os.WriteFile(outputPath, rendered.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			return nil
		},
	}
	exportCmd.Flags().String("format", "csv", "Export format: table, csv, json, yaml or pdf")
	exportCmd.Flags().StringP("output", "o", "", "Write the export to this file instead of stdout")

	r.cmd.AddCommand(
		selfcheckCmd,
		sessionCmd,
		exportCmd,
	)
}

// withApp creates the services for one run and hands an App writing to out to fn.
// When bounded is set the run is limited by the application timeout.
func (r *RootCommand) withApp(cmd *cobra.Command, out io.Writer, bounded bool, fn func(ctx context.Context, app *App) error) error {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if bounded {
		ctx, cancel = context.WithTimeout(cmd.Context(), r.getAppTimeout())
	} else {
		ctx, cancel = context.WithCancel(cmd.Context())
	}
	defer cancel()

	container, err := r.factory(ctx, r.config)
	if err != nil {
		return err
	}
	defer container.Close()

	return fn(ctx, NewApp(container, r.config, out))
}

// sessionTimeout reports whether a session read from args gets the
// application timeout. Sessions typed on stdin may idle indefinitely.
func sessionTimeout(args []string) bool {
	return len(args) > 0 && args[0] != "-"
}

// openSession opens the session named by args, falling back to the command's stdin
func openSession(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session file: %w", err)
	}
	return file, func() { file.Close() }, nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// loadConfig resolves defaults, environment and the flags set on this run
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		overrides.Backend = &backend
	}
	if flags.Changed("query-timeout") {
		queryTimeout, _ := flags.GetDuration("query-timeout")
		overrides.QueryTimeout = &queryTimeout
	}
	if flags.Changed("task-name-max-length") {
		maxLength, _ := flags.GetInt("task-name-max-length")
		overrides.TaskNameMaxLength = &maxLength
	}
	if flags.Changed("list-format") {
		listFormat, _ := flags.GetString("list-format")
		overrides.ListDefaultFormat = &listFormat
	}
	if flags.Changed("app-timeout") {
		appTimeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &appTimeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}
	if flags.Changed("strict") {
		strict, _ := flags.GetBool("strict")
		overrides.Strict = &strict
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)
	return nil
}
