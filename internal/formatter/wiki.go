package formatter

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"slices"
	"strings"

	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/runner"
)

// Wiki renders a TiddlyWiki store area: a MainMenu tiddler linking every
// root context, a SpecTotals tiddler with the run score, and one tiddler
// per root context, sorted by name.
//
// Inside a tiddler each nesting level adds a leading "*". Failed and pending
// examples use the markSpecAsFailed, showException and markSpecAsPending
// macros expected by the wiki template.
type Wiki struct{}

const (
	wikiModifier   = "specrun"
	wikiTag        = "specrun"
	wikiTimeLayout = "200601021504"
)

// wikiEscaper escapes markup in tiddler bodies but keeps quotes.
var wikiEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type wikiWriter struct {
	w       *bufio.Writer
	created string
	errors  int
}

// Format implements Formatter.
func (f *Wiki) Format(w io.Writer, contexts *domain.ContextCollection, summary *runner.Summary) error {
	_, started, _ := runInfo(summary)
	ww := &wikiWriter{w: bufio.NewWriter(w), created: started.Format(wikiTimeLayout)}

	roots := contexts.Contexts()
	slices.SortStableFunc(roots, func(a, b *domain.Context) int {
		return strings.Compare(a.Name(), b.Name())
	})

	var menu strings.Builder
	for _, c := range roots {
		fmt.Fprintf(&menu, "[[%s]]\n", c.Name())
	}
	score := domain.Tally(contexts)

	fmt.Fprintln(ww.w, `<div id="storeArea">`)
	ww.tiddler("MainMenu", "", menu.String())
	ww.tiddler("SpecTotals", "", fmt.Sprintf("Total: %d\nFailed: %d\nPending: %d\n", score.Total, score.Failed, score.Pending))
	for _, c := range roots {
		var body strings.Builder
		ww.body(&body, c, 0)
		ww.tiddler(c.Name(), wikiTag, body.String())
	}
	fmt.Fprintln(ww.w, "</div>")

	if err := ww.w.Flush(); err != nil {
		return fmt.Errorf("write wiki report: %w", err)
	}
	return nil
}

func (ww *wikiWriter) tiddler(title, tags, body string) {
	fmt.Fprintf(ww.w, "<div title=%q modifier=%q created=%q tags=%q changecount=\"1\">\n",
		html.EscapeString(title), wikiModifier, ww.created, tags)
	fmt.Fprintf(ww.w, "<pre>%s</pre></div>\n", wikiEscaper.Replace(body))
}

// body writes the markup for c. The root's own name is the tiddler title,
// so it is not repeated.
func (ww *wikiWriter) body(b *strings.Builder, c *domain.Context, level int) {
	if level > 0 {
		fmt.Fprintf(b, "%s%s\n", strings.Repeat("*", level), c.Name())
	}
	bullets := strings.Repeat("*", level+1)
	for _, e := range c.Examples() {
		switch {
		case e.Failed():
			ww.errors++
			fmt.Fprintf(b, "%s<<markSpecAsFailed '%s'>> <<showException 'error_%d' '%s'>>\n",
				bullets, e.Description(), ww.errors, strings.Join(errorLines(e.Err()), " "))
		case e.Outcome() == domain.Pending:
			fmt.Fprintf(b, "%s<<markSpecAsPending '%s'>>\n", bullets, e.Description())
		default:
			fmt.Fprintf(b, "%s%s\n", bullets, e.Description())
		}
	}
	for _, child := range c.Children() {
		ww.body(b, child, level+1)
	}
}
