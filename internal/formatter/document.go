package formatter

import (
	"crypto/md5"
	_ "embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/runner"
)

//go:embed templates/document.html.tmpl
var documentTemplate string

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

// tosAnchor is the anchor name of the table of specifications.
const tosAnchor = "ToS"

// Document renders a single self-contained HTML page: a table of
// specifications followed by one section per context, each with
// breadcrumbs back to its ancestors.
//
// Section anchors are the upper-case hex MD5 of the NFC-normalised path of
// context names joined with ".", so links stay stable across runs.
type Document struct{}

type documentData struct {
	TosID    string
	RunID    string
	RunDate  string
	Score    domain.Score
	Contents template.HTML
	Pages    []documentPage
}

type documentPage struct {
	ID          string
	Name        string
	Breadcrumbs []breadcrumb
	Score       domain.Score
	Failure     string
	Examples    []documentExample
	Children    template.HTML
}

type breadcrumb struct {
	ID   string
	Name string
}

type documentExample struct {
	Description string
	Status      string
	Label       string
	Error       string
}

// Format implements Formatter.
func (f *Document) Format(w io.Writer, contexts *domain.ContextCollection, summary *runner.Summary) error {
	runID, started, _ := runInfo(summary)
	data := documentData{
		TosID:    anchor(tosAnchor),
		RunID:    runID,
		Score:    domain.Tally(contexts),
		Contents: specificationTable(contexts.Contexts()),
	}
	if !started.IsZero() {
		data.RunDate = started.UTC().Format(time.RFC3339)
	}
	for _, c := range contexts.Contexts() {
		data.Pages = appendPages(data.Pages, c)
	}

	if err := documentTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}

// appendPages adds c and its descendants in depth-first declaration order.
func appendPages(pages []documentPage, c *domain.Context) []documentPage {
	path := contextPath(c)
	page := documentPage{
		ID:    anchor(path...),
		Name:  c.Name(),
		Score: domain.Tally(c),
	}
	for i := range path[:len(path)-1] {
		page.Breadcrumbs = append(page.Breadcrumbs, breadcrumb{
			ID:   anchor(path[:i+1]...),
			Name: path[i],
		})
	}
	if err := c.Failure(); err != nil {
		page.Failure = err.Error()
	}
	for _, e := range c.Examples() {
		page.Examples = append(page.Examples, documentExampleOf(e))
	}
	if children := c.Children(); len(children) > 0 {
		page.Children = specificationTable(children)
	}

	pages = append(pages, page)
	for _, child := range c.Children() {
		pages = appendPages(pages, child)
	}
	return pages
}

func documentExampleOf(e *domain.Example) documentExample {
	de := documentExample{Description: e.Description()}
	switch e.Outcome() {
	case domain.Passed:
		de.Status, de.Label = "passed", "Passed"
	case domain.Failed:
		de.Status, de.Label = "failed", "Failed"
		de.Error = e.Err().Error()
	case domain.Pending:
		de.Status, de.Label = "pending", "Pending"
	default:
		de.Status, de.Label = "not-run", "Not run"
	}
	return de
}

// specificationTable renders one row per context with its score and a link
// to its section.
func specificationTable(contexts []*domain.Context) template.HTML {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Total", "Failed", "Pending", "Specification"})
	for _, c := range contexts {
		score := domain.Tally(c)
		t.AppendRow(table.Row{
			span("spec-total", score.Total),
			span(inverseIf("spec-failed", score.Failed), score.Failed),
			span(inverseIf("spec-pending", score.Pending), score.Pending),
			fmt.Sprintf(`<a href="#%s" target="_top">%s</a>`, anchor(contextPath(c)...), html.EscapeString(c.Name())),
		})
	}
	t.Style().HTML = table.HTMLOptions{
		CSSClass:    "specifications",
		EmptyColumn: "&nbsp;",
		EscapeText:  false,
		Newline:     "<br/>",
	}
	return template.HTML(t.RenderHTML())
}

func span(class string, n int) string {
	return fmt.Sprintf(`<span class="%s">%d</span>`, class, n)
}

func inverseIf(class string, n int) string {
	if n == 0 {
		return class
	}
	return class + "-inverse"
}

// contextPath returns the context names from the root down to c.
func contextPath(c *domain.Context) []string {
	var path []string
	for n := c; n != nil; n = n.Parent() {
		path = append(path, n.Name())
	}
	slices.Reverse(path)
	return path
}

// anchor hashes a dotted context path into an HTML id.
func anchor(path ...string) string {
	sum := md5.Sum([]byte(norm.NFC.String(strings.Join(path, "."))))
	return fmt.Sprintf("%X", sum)
}
