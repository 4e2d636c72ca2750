package domain

import "iter"

// Scorer is the read-only aggregate contract shared by Context and
// ContextCollection. Formatters depend on this, not on concrete types.
type Scorer interface {
	// AllExamples yields every example in the subtree, depth-first in
	// declaration order: child subtrees first, then own examples.
	AllExamples() iter.Seq[*Example]

	// Failures yields the examples whose outcome is Failed.
	Failures() iter.Seq[*Example]

	// Pendings yields the examples whose outcome is Pending.
	Pendings() iter.Seq[*Example]
}

// Score is a point-in-time tally of a Scorer.
type Score struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
	NotRun  int `json:"not_run"`
}

// Tally counts the examples of s by outcome.
func Tally(s Scorer) Score {
	var score Score
	for e := range s.AllExamples() {
		score.Total++
		switch e.Outcome() {
		case Passed:
			score.Passed++
		case Failed:
			score.Failed++
		case Pending:
			score.Pending++
		default:
			score.NotRun++
		}
	}
	return score
}

// Count returns the number of examples in seq.
func Count(seq iter.Seq[*Example]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// AllExamples implements Scorer.
func (c *Context) AllExamples() iter.Seq[*Example] {
	return func(yield func(*Example) bool) {
		c.walk(yield)
	}
}

// walk yields the subtree's examples and reports whether to continue.
func (c *Context) walk(yield func(*Example) bool) bool {
	for _, child := range c.children {
		if !child.walk(yield) {
			return false
		}
	}
	for _, e := range c.examples {
		if !yield(e) {
			return false
		}
	}
	return true
}

// Failures implements Scorer.
func (c *Context) Failures() iter.Seq[*Example] {
	return filter(c.AllExamples(), Failed)
}

// Pendings implements Scorer.
func (c *Context) Pendings() iter.Seq[*Example] {
	return filter(c.AllExamples(), Pending)
}

func filter(seq iter.Seq[*Example], outcome Outcome) iter.Seq[*Example] {
	return func(yield func(*Example) bool) {
		for e := range seq {
			if e.Outcome() != outcome {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
