package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/specrun/internal/config"
	"github.com/roach88/specrun/internal/finder"
	"github.com/roach88/specrun/internal/formatter"
	"github.com/roach88/specrun/internal/runner"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string
	NoColor    bool
	ConfigPath string

	// Finder supplies the suites. Set by the binary that embeds the CLI.
	Finder finder.Finder

	// Clock and IDs override the runner's defaults (for testing).
	Clock runner.Clock
	IDs   runner.IDGenerator

	// Config is the merged configuration, resolved before any subcommand runs.
	Config *config.Config
}

// NewRootCommand creates the root command for the specrun CLI.
func NewRootCommand(f finder.Finder) *cobra.Command {
	return newRootCommand(&RootOptions{Finder: f})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specrun",
		Short: "specrun - run nested behaviour specifications",
		Long: `specrun executes context/example specifications compiled into the binary.

Contexts nest, chain their before and act hooks from the outermost context
in, and isolate failures: a broken example or context never stops the rest
of the run. Pending examples are reported but never executed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			opts.Config = cfg
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "report format ("+joinNames()+")")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// config returns the resolved configuration, resolving it now when the
// command runs without the root's pre-run hook.
func (o *RootOptions) config(cmd *cobra.Command) (*config.Config, error) {
	if o.Config != nil {
		return o.Config, nil
	}
	cfg, err := resolveConfig(cmd, o)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	o.Config = cfg
	return cfg, nil
}

// resolveConfig loads the config file, if any, and applies flags the user
// set explicitly on top of it.
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.NoColor
	}
	if flags.Lookup("filter") != nil && flags.Changed("filter") {
		cfg.Filter, _ = flags.GetString("filter")
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Lookup("metrics-textfile") != nil && flags.Changed("metrics-textfile") {
		cfg.MetricsTextfile, _ = flags.GetString("metrics-textfile")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func joinNames() string {
	return strings.Join(formatter.Names, "|")
}
