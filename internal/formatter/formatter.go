// Package formatter renders a finished run.
//
// Formatters only read the tree: they walk Context and Example accessors and
// the Scorer contract, and never mutate outcomes. Each formatter writes one
// complete document to an io.Writer.
package formatter

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/runner"
)

// Formatter renders contexts after a run. summary may be nil when the tree
// was run without a Runner.
type Formatter interface {
	Format(w io.Writer, contexts *domain.ContextCollection, summary *runner.Summary) error
}

// Names lists the formats ByName resolves, in help-text order.
var Names = []string{"text", "html", "wiki", "json", "table"}

// ErrUnknownFormat is returned by ByName for an unsupported format.
var ErrUnknownFormat = errors.New("unknown format")

// Options are shared by formatters that support them.
type Options struct {
	// NoColor disables terminal styling.
	NoColor bool
}

// ByName returns the formatter registered under name.
func ByName(name string, opts Options) (Formatter, error) {
	switch name {
	case "text":
		return &Text{NoColor: opts.NoColor}, nil
	case "html":
		return &Document{}, nil
	case "wiki":
		return &Wiki{}, nil
	case "json":
		return &JSON{}, nil
	case "table":
		return &Table{NoColor: opts.NoColor}, nil
	}
	return nil, fmt.Errorf("%w %q (want one of: %s)", ErrUnknownFormat, name, strings.Join(Names, ", "))
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

func errorLines(err error) []string {
	return strings.Split(strings.TrimRight(err.Error(), "\n"), "\n")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// runInfo pulls the header fields out of a possibly nil summary.
func runInfo(summary *runner.Summary) (runID string, started time.Time, took time.Duration) {
	if summary == nil {
		return "", time.Time{}, 0
	}
	return summary.RunID, summary.StartedAt, summary.Duration
}
