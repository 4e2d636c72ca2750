package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/specrun/internal/domain"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Filter string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List specifications without running them",
		Long: `Print the context tree of the registered specifications.

Each context shows how many examples it holds. Pending contexts and
examples are marked. Nothing is executed.

Example:
  specrun list
  specrun list --filter 'stack*' --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSpecs(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "glob over root context names")

	return cmd
}

// Listing is the list command's payload.
type Listing struct {
	Contexts []ListedContext `json:"contexts"`
}

// ListedContext is one context in a Listing.
type ListedContext struct {
	Name     string          `json:"name"`
	Pending  bool            `json:"pending,omitempty"`
	Examples []ListedExample `json:"examples,omitempty"`
	Contexts []ListedContext `json:"contexts,omitempty"`
	Total    int             `json:"total"`
}

// ListedExample is one example in a Listing.
type ListedExample struct {
	Description string `json:"description"`
	Pending     bool   `json:"pending,omitempty"`
}

func listSpecs(opts *ListOptions, cmd *cobra.Command) error {
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
	logger.Debug("listing specifications", zap.Int("roots", contexts.Len()))

	listing := Listing{Contexts: []ListedContext{}}
	for _, c := range contexts.Contexts() {
		listing.Contexts = append(listing.Contexts, listContext(c))
	}

	format := "text"
	if cfg.Format == "json" {
		format = "json"
	}
	out := &OutputFormatter{Format: format, Writer: cmd.OutOrStdout()}
	return out.Success(listing)
}

func listContext(c *domain.Context) ListedContext {
	lc := ListedContext{
		Name:    c.Name(),
		Pending: c.IsPending(),
		Total:   domain.Count(c.AllExamples()),
	}
	for _, e := range c.Examples() {
		lc.Examples = append(lc.Examples, ListedExample{Description: e.Description(), Pending: e.IsPending()})
	}
	for _, child := range c.Children() {
		lc.Contexts = append(lc.Contexts, listContext(child))
	}
	return lc
}

// String renders the listing as an indented tree.
func (l Listing) String() string {
	var b strings.Builder
	for _, c := range l.Contexts {
		c.write(&b, 0)
	}
	return b.String()
}

func (c ListedContext) write(b *strings.Builder, level int) {
	pad := strings.Repeat("  ", level)
	fmt.Fprintf(b, "%s%s (%d)%s\n", pad, c.Name, c.Total, pendingMark(c.Pending))
	for _, e := range c.Examples {
		fmt.Fprintf(b, "%s  - %s%s\n", pad, e.Description, pendingMark(e.Pending))
	}
	for _, child := range c.Contexts {
		child.write(b, level+1)
	}
}

func pendingMark(pending bool) string {
	if pending {
		return " [pending]"
	}
	return ""
}
