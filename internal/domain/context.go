package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Context is a node in the specification tree.
//
// Hooks are plain fields and belong to this level only; chaining across
// ancestors happens in RunBefores and RunActs. Set them during construction.
type Context struct {
	// Before runs before every example in this subtree, after ancestor Befores.
	Before Action

	// Act runs after every Before in the chain, after ancestor Acts.
	Act Action

	// After runs after examples owned by this context only.
	After Action

	// BeforeAll runs once when Run descends into this context.
	// A failure here is a context-level failure for the whole subtree.
	BeforeAll Action

	name     string
	parent   *Context
	children []*Context
	examples []*Example
	pending  bool

	// failure is the context-level failure captured during this run.
	failure error

	// buildFailure is a failure from declaring this context. It survives Reset.
	buildFailure error

	frozen bool
}

// NewContext creates a root context. Underscores in name render as spaces.
func NewContext(name string) *Context {
	return &Context{name: strings.ReplaceAll(name, "_", " ")}
}

// Name returns the display name.
func (c *Context) Name() string {
	return c.name
}

// Parent returns the parent context, or nil for a root.
func (c *Context) Parent() *Context {
	return c.parent
}

// Children returns a copy of the ordered child contexts.
func (c *Context) Children() []*Context {
	return slices.Clone(c.children)
}

// Examples returns a copy of the ordered examples owned directly by c.
func (c *Context) Examples() []*Example {
	return slices.Clone(c.examples)
}

// Depth returns the number of ancestors. Roots have depth 0.
func (c *Context) Depth() int {
	depth := 0
	for p := c.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// FullContext joins context names from the root down to c.
// Used for diagnostic labels only.
func (c *Context) FullContext() string {
	if c.parent != nil {
		return c.parent.FullContext() + ". " + c.name
	}
	return c.name
}

// MarkPending marks this context, and so its whole subtree, as pending.
func (c *Context) MarkPending() error {
	if c.frozen {
		return fmt.Errorf("mark %q pending: %w", c.name, ErrFrozen)
	}
	c.pending = true
	return nil
}

// IsPending reports whether c or any ancestor is marked pending.
// Evaluated through the parent chain on every call.
func (c *Context) IsPending() bool {
	return c.pending || (c.parent != nil && c.parent.IsPending())
}

// SetBuildFailure records a failure raised while declaring this context.
// Every example in the subtree will fail with err when run.
func (c *Context) SetBuildFailure(err error) {
	c.buildFailure = err
}

// Failure returns the context-level failure recorded on c itself.
func (c *Context) Failure() error {
	if c.buildFailure != nil {
		return c.buildFailure
	}
	return c.failure
}

// ContextFailure returns the nearest context-level failure on c or an ancestor.
func (c *Context) ContextFailure() error {
	for n := c; n != nil; n = n.parent {
		if err := n.Failure(); err != nil {
			return err
		}
	}
	return nil
}

// AddContext attaches child under c.
//
// Returns ErrCycle if child is c or one of its ancestors, ErrReparent if
// child already has a parent, and ErrFrozen once execution has started.
func (c *Context) AddContext(child *Context) error {
	if c.frozen || child.frozen {
		return fmt.Errorf("add context %q to %q: %w", child.name, c.name, ErrFrozen)
	}
	for n := c; n != nil; n = n.parent {
		if n == child {
			return fmt.Errorf("add context %q to %q: %w", child.name, c.FullContext(), ErrCycle)
		}
	}
	if child.parent != nil {
		return fmt.Errorf("add context %q to %q: %w", child.name, c.name, ErrReparent)
	}

	child.parent = c
	c.children = append(c.children, child)
	return nil
}

// AddExample attaches example under c.
// The context's current pending state is ORed into the example.
func (c *Context) AddExample(example *Example) error {
	if c.frozen {
		return fmt.Errorf("add example %q to %q: %w", example.description, c.name, ErrFrozen)
	}
	if example.context != nil {
		return fmt.Errorf("add example %q to %q: %w", example.description, c.name, ErrReparent)
	}

	example.context = c
	c.examples = append(c.examples, example)
	example.pending = example.pending || c.IsPending()
	return nil
}

// RunBefores runs every ancestor's Before hook, outermost first, then c's own.
func (c *Context) RunBefores() error {
	if c.parent != nil {
		if err := c.parent.RunBefores(); err != nil {
			return err
		}
	}
	return c.Before.call()
}

// RunActs runs every ancestor's Act hook, outermost first, then c's own.
func (c *Context) RunActs() error {
	if c.parent != nil {
		if err := c.parent.RunActs(); err != nil {
			return err
		}
	}
	return c.Act.call()
}

// RunAfters runs c's own After hook. Teardown is not chained.
func (c *Context) RunAfters() error {
	return c.After.call()
}

// Exercise runs one example against c's hook chain and records its outcome.
func (c *Context) Exercise(example *Example) {
	c.exercise(example, NopObserver{})
}

func (c *Context) exercise(example *Example, obs Observer) {
	obs.ExampleStarted(example)
	defer obs.ExampleFinished(example)

	if example.IsPending() {
		example.record(Pending, nil)
		return
	}

	// A broken context fails everything beneath it without running hooks
	if err := c.ContextFailure(); err != nil {
		example.record(Failed, err)
		return
	}

	err := capture(func() error {
		if err := c.RunBefores(); err != nil {
			return err
		}
		if err := c.RunActs(); err != nil {
			return err
		}
		if err := example.action.call(); err != nil {
			return err
		}
		return c.RunAfters()
	})
	if err != nil {
		example.record(Failed, unwrapInvocation(err))
		return
	}
	example.record(Passed, nil)
}

// Run executes the subtree rooted at c.
//
// The subtree is frozen for the duration: AddContext and AddExample fail
// with ErrFrozen until Reset. obs may be nil.
func (c *Context) Run(obs Observer) {
	if obs == nil {
		obs = NopObserver{}
	}
	c.freeze()
	c.run(obs)
}

func (c *Context) run(obs Observer) {
	obs.ContextEntered(c)

	c.setUp(obs)

	for _, child := range c.children {
		child.run(obs)
	}
	for _, example := range c.examples {
		c.exercise(example, obs)
	}
}

// setUp runs BeforeAll unless the subtree is pending or already broken.
func (c *Context) setUp(obs Observer) {
	if err := c.ContextFailure(); err != nil {
		if c.buildFailure != nil {
			obs.ContextFailed(c, c.buildFailure)
		}
		return
	}
	if c.BeforeAll == nil || c.IsPending() {
		return
	}
	if err := capture(c.BeforeAll.call); err != nil {
		c.failure = unwrapInvocation(err)
		obs.ContextFailed(c, c.failure)
	}
}

// Reset clears outcomes and run-time context failures in the subtree
// and unfreezes it. Build failures and pending flags are kept.
func (c *Context) Reset() {
	c.failure = nil
	c.frozen = false
	for _, example := range c.examples {
		example.reset()
	}
	for _, child := range c.children {
		child.Reset()
	}
}

func (c *Context) freeze() {
	c.frozen = true
	for _, child := range c.children {
		child.freeze()
	}
}
