package formatter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/runner"
)

// Text renders the tree for a terminal.
//
//	calculator
//	  ✓ starts at zero
//	  - divides
//	  adding
//	    ✗ handles overflow
//	      expected 0, got 1
//
// Context names are indented two spaces per level. A context that failed
// on its own is followed by a "!" line with the captured cause.
type Text struct {
	// NoColor disables lipgloss styling.
	NoColor bool
}

type textStyles struct {
	context lipgloss.Style
	passed  lipgloss.Style
	failed  lipgloss.Style
	pending lipgloss.Style
	detail  lipgloss.Style
}

func defaultTextStyles() textStyles {
	return textStyles{
		context: lipgloss.NewStyle().Bold(true),
		passed:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		detail:  lipgloss.NewStyle().Faint(true),
	}
}

type textWriter struct {
	w       *bufio.Writer
	styles  textStyles
	noColor bool
}

func (t *textWriter) paint(style lipgloss.Style, s string) string {
	if t.noColor {
		return s
	}
	return style.Render(s)
}

// Format implements Formatter.
func (f *Text) Format(w io.Writer, contexts *domain.ContextCollection, summary *runner.Summary) error {
	tw := &textWriter{
		w:       bufio.NewWriter(w),
		styles:  defaultTextStyles(),
		noColor: f.NoColor,
	}
	for _, c := range contexts.Contexts() {
		tw.context(c)
	}
	tw.footer(domain.Tally(contexts), summary)
	if err := tw.w.Flush(); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}

func (t *textWriter) context(c *domain.Context) {
	level := c.Depth()
	fmt.Fprintf(t.w, "%s%s\n", indent(level), t.paint(t.styles.context, c.Name()))
	if err := c.Failure(); err != nil {
		for _, line := range errorLines(err) {
			fmt.Fprintf(t.w, "%s%s\n", indent(level+1), t.paint(t.styles.failed, "! "+line))
		}
	}
	for _, e := range c.Examples() {
		t.example(e, level+1)
	}
	for _, child := range c.Children() {
		t.context(child)
	}
}

func (t *textWriter) example(e *domain.Example, level int) {
	switch e.Outcome() {
	case domain.Passed:
		fmt.Fprintf(t.w, "%s%s %s\n", indent(level), t.paint(t.styles.passed, "✓"), e.Description())
	case domain.Failed:
		fmt.Fprintf(t.w, "%s%s %s\n", indent(level), t.paint(t.styles.failed, "✗"), e.Description())
		for _, line := range errorLines(e.Err()) {
			fmt.Fprintf(t.w, "%s%s\n", indent(level+1), t.paint(t.styles.detail, line))
		}
	case domain.Pending:
		fmt.Fprintf(t.w, "%s%s %s\n", indent(level), t.paint(t.styles.pending, "-"), e.Description())
	default:
		fmt.Fprintf(t.w, "%s  %s\n", indent(level), e.Description())
	}
}

func (t *textWriter) footer(score domain.Score, summary *runner.Summary) {
	line := fmt.Sprintf("%s, %d failed, %d pending", plural(score.Total, "example"), score.Failed, score.Pending)
	style := t.styles.passed
	if score.Failed > 0 {
		style = t.styles.failed
	}
	fmt.Fprintf(t.w, "\n%s\n", t.paint(style, line))

	runID, _, took := runInfo(summary)
	if summary == nil {
		return
	}
	if n := len(summary.ContextFailures); n > 0 {
		fmt.Fprintf(t.w, "%s failed\n", plural(n, "context"))
	}
	fmt.Fprintf(t.w, "%s\n", t.paint(t.styles.detail, fmt.Sprintf("Finished in %s (run %s)", took, runID)))
}
