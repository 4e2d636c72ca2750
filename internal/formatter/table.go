package formatter

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/runner"
)

// Table renders a one-row-per-root summary with a TOTAL footer.
type Table struct {
	// NoColor selects a plain box style instead of the coloured ones.
	NoColor bool
}

// Format implements Formatter.
func (f *Table) Format(w io.Writer, contexts *domain.ContextCollection, summary *runner.Summary) error {
	t := table.NewWriter()
	runID, _, took := runInfo(summary)
	if summary != nil {
		t.SetTitle(fmt.Sprintf("Specification Results (%s, run %s)", took, runID))
	}

	t.AppendHeader(table.Row{"Context", "Total", "Passed", "Failed", "Pending", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Context", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Total", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Pending", Align: text.AlignRight},
	})

	for _, c := range contexts.Contexts() {
		score := domain.Tally(c)
		t.AppendRow(table.Row{c.Name(), score.Total, score.Passed, score.Failed, score.Pending, status(score, c.Failure())})
	}

	total := domain.Tally(contexts)
	t.AppendFooter(table.Row{"TOTAL", total.Total, total.Passed, total.Failed, total.Pending, status(total, nil)})

	failed := total.Failed > 0 || (summary != nil && !summary.Pass())
	switch {
	case f.NoColor:
		t.SetStyle(table.StyleLight)
	case failed:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("write table report: %w", err)
	}
	return nil
}

func status(score domain.Score, contextErr error) string {
	switch {
	case contextErr != nil:
		return "BROKEN"
	case score.Failed > 0:
		return "FAIL"
	case score.Total > 0 && score.Pending == score.Total:
		return "PENDING"
	default:
		return "PASS"
	}
}
