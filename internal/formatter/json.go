package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/runner"
)

// JSON renders the whole tree as one indented JSON document.
type JSON struct{}

type jsonReport struct {
	RunID           string               `json:"run_id,omitempty"`
	StartedAt       *time.Time           `json:"started_at,omitempty"`
	Duration        string               `json:"duration,omitempty"`
	Score           domain.Score         `json:"score"`
	ContextFailures []jsonContextFailure `json:"context_failures,omitempty"`
	Contexts        []jsonContext        `json:"contexts"`
}

type jsonContextFailure struct {
	Context string `json:"context"`
	Error   string `json:"error"`
}

type jsonContext struct {
	Name     string        `json:"name"`
	Pending  bool          `json:"pending,omitempty"`
	Failure  string        `json:"failure,omitempty"`
	Score    domain.Score  `json:"score"`
	Examples []jsonExample `json:"examples,omitempty"`
	Contexts []jsonContext `json:"contexts,omitempty"`
}

type jsonExample struct {
	Description string         `json:"description"`
	Outcome     domain.Outcome `json:"outcome"`
	Error       string         `json:"error,omitempty"`
	Duration    string         `json:"duration,omitempty"`
}

// Format implements Formatter.
func (f *JSON) Format(w io.Writer, contexts *domain.ContextCollection, summary *runner.Summary) error {
	report := jsonReport{
		Score:    domain.Tally(contexts),
		Contexts: []jsonContext{},
	}
	if summary != nil {
		started := summary.StartedAt.UTC()
		report.RunID = summary.RunID
		report.StartedAt = &started
		report.Duration = summary.Duration.String()
		for _, cf := range summary.ContextFailures {
			report.ContextFailures = append(report.ContextFailures, jsonContextFailure{
				Context: cf.Context.FullContext(),
				Error:   cf.Err.Error(),
			})
		}
	}
	for _, c := range contexts.Contexts() {
		report.Contexts = append(report.Contexts, jsonContextOf(c, summary))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

func jsonContextOf(c *domain.Context, summary *runner.Summary) jsonContext {
	jc := jsonContext{
		Name:    c.Name(),
		Pending: c.IsPending(),
		Score:   domain.Tally(c),
	}
	if err := c.Failure(); err != nil {
		jc.Failure = err.Error()
	}
	for _, e := range c.Examples() {
		je := jsonExample{Description: e.Description(), Outcome: e.Outcome()}
		if err := e.Err(); err != nil {
			je.Error = err.Error()
		}
		if summary != nil && e.Outcome() != domain.Pending {
			je.Duration = summary.ExampleDuration(e).String()
		}
		jc.Examples = append(jc.Examples, je)
	}
	for _, child := range c.Children() {
		jc.Contexts = append(jc.Contexts, jsonContextOf(child, summary))
	}
	return jc
}
