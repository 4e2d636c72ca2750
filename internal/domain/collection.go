package domain

import (
	"fmt"
	"iter"
	"slices"
)

// ContextCollection is the ordered set of root contexts for a run.
// It scores exactly like a single Context.
type ContextCollection struct {
	contexts []*Context
}

// NewContextCollection creates a collection from root contexts.
// Returns ErrReparent if any context has a parent.
func NewContextCollection(contexts ...*Context) (*ContextCollection, error) {
	cc := &ContextCollection{}
	for _, c := range contexts {
		if err := cc.Add(c); err != nil {
			return nil, err
		}
	}
	return cc, nil
}

// Add appends a root context.
func (cc *ContextCollection) Add(c *Context) error {
	if c.parent != nil {
		return fmt.Errorf("add root %q: %w", c.name, ErrReparent)
	}
	if slices.Contains(cc.contexts, c) {
		return fmt.Errorf("add root %q: %w", c.name, ErrReparent)
	}
	cc.contexts = append(cc.contexts, c)
	return nil
}

// Contexts returns a copy of the root contexts in order.
func (cc *ContextCollection) Contexts() []*Context {
	return slices.Clone(cc.contexts)
}

// Len returns the number of root contexts.
func (cc *ContextCollection) Len() int {
	return len(cc.contexts)
}

// Find returns the first context, searched depth-first, whose FullContext is path.
func (cc *ContextCollection) Find(path string) *Context {
	var find func(c *Context) *Context
	find = func(c *Context) *Context {
		if c.FullContext() == path {
			return c
		}
		for _, child := range c.children {
			if found := find(child); found != nil {
				return found
			}
		}
		return nil
	}
	for _, c := range cc.contexts {
		if found := find(c); found != nil {
			return found
		}
	}
	return nil
}

// Run executes every root context in order. obs may be nil.
func (cc *ContextCollection) Run(obs Observer) {
	for _, c := range cc.contexts {
		c.Run(obs)
	}
}

// Reset clears the results of a previous run on every root.
func (cc *ContextCollection) Reset() {
	for _, c := range cc.contexts {
		c.Reset()
	}
}

// AllExamples implements Scorer.
func (cc *ContextCollection) AllExamples() iter.Seq[*Example] {
	return func(yield func(*Example) bool) {
		for _, c := range cc.contexts {
			if !c.walk(yield) {
				return
			}
		}
	}
}

// Failures implements Scorer.
func (cc *ContextCollection) Failures() iter.Seq[*Example] {
	return filter(cc.AllExamples(), Failed)
}

// Pendings implements Scorer.
func (cc *ContextCollection) Pendings() iter.Seq[*Example] {
	return filter(cc.AllExamples(), Pending)
}

// ContextFailures returns every context in the forest that recorded a
// context-level failure of its own, in visiting order.
func (cc *ContextCollection) ContextFailures() []*Context {
	var failed []*Context
	var visit func(c *Context)
	visit = func(c *Context) {
		if c.Failure() != nil {
			failed = append(failed, c)
		}
		for _, child := range c.children {
			visit(child)
		}
	}
	for _, c := range cc.contexts {
		visit(c)
	}
	return failed
}
