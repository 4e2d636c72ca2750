package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/specrun/internal/builder"
	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/finder"
	"github.com/roach88/specrun/internal/formatter"
	"github.com/roach88/specrun/internal/metrics"
	"github.com/roach88/specrun/internal/runner"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Filter          string
	Output          string
	MetricsTextfile string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run specifications and write a report",
		Long: `Build the registered specifications, run every example and write a report.

Exit status is 0 when nothing failed, 1 when an example or a context failed,
and 2 when the specifications could not be built or the flags are invalid.

Example:
  specrun run
  specrun run --filter 'stack*' --format html --output report.html
  specrun run --format json --metrics-textfile /var/lib/node_exporter/specrun.prom`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpecs(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "glob over root context names")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "write prometheus metrics in textfile format")

	return cmd
}

func runSpecs(opts *RunOptions, cmd *cobra.Command) error {
	cfg, err := opts.config(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	contexts, err := buildContexts(opts.Finder, cfg.Filter, logger)
	if err != nil {
		return err
	}

	report, err := formatter.ByName(cfg.Format, formatter.Options{NoColor: cfg.NoColor})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid format", err)
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithClock(opts.Clock),
		runner.WithIDGenerator(opts.IDs),
	}
	var recorder *metrics.Recorder
	if cfg.MetricsTextfile != "" {
		recorder = metrics.NewRecorder()
		runnerOpts = append(runnerOpts, runner.WithMetrics(recorder))
	}

	summary := runner.New(runnerOpts...).Run(contexts)

	if err := writeReport(cmd.OutOrStdout(), cfg.Output, report, contexts, summary); err != nil {
		return WrapExitError(ExitCommandError, "failed to write report", err)
	}
	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return WrapExitError(ExitCommandError, "failed to write metrics", err)
		}
	}

	if !summary.Pass() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d example(s) failed, %d context(s) failed",
			summary.Score.Failed, len(summary.ContextFailures)))
	}
	return nil
}

// buildContexts finds and wires the selected suites.
func buildContexts(f finder.Finder, filter string, logger *zap.Logger) (*domain.ContextCollection, error) {
	if f == nil {
		return nil, NewExitError(ExitCommandError, "no specifications registered")
	}

	defs, err := finder.Filter(f, filter).Definitions()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to find specifications", err)
	}
	if len(defs) == 0 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("no specifications match filter %q", filter))
	}

	contexts, err := builder.New(builder.WithLogger(logger)).Build(defs...)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build specifications", err)
	}
	return contexts, nil
}

func writeReport(stdout io.Writer, path string, report formatter.Formatter, contexts *domain.ContextCollection, summary *runner.Summary) error {
	if path == "" {
		return report.Format(stdout, contexts, summary)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Format(f, contexts, summary); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
