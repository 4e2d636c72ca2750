package builder

import "github.com/roach88/specrun/internal/domain"

// Definition is one pre-resolved context as supplied by a spec-finder.
type Definition struct {
	// Name is the display name. Underscores render as spaces.
	Name string

	// Pending skips every example in this subtree.
	Pending bool

	Before    domain.Action
	Act       domain.Action
	After     domain.Action
	BeforeAll domain.Action

	// Examples are the leaf examples in declaration order.
	Examples []*ExampleDefinition

	// Contexts are the nested definitions in declaration order.
	Contexts []*Definition

	// Failure is an error raised while declaring this context.
	Failure error
}

// ExampleDefinition is one pre-resolved example.
type ExampleDefinition struct {
	Description string

	// Action is the example body. Nil marks the example as a todo (pending).
	Action domain.Action

	// Pending skips this example regardless of its context.
	Pending bool
}

// CountExamples returns the number of examples declared in the subtree.
// Definitions reachable through a cycle are counted once.
func (d *Definition) CountExamples() int {
	seen := make(map[*Definition]bool)
	var count func(d *Definition) int
	count = func(d *Definition) int {
		if d == nil || seen[d] {
			return 0
		}
		seen[d] = true
		n := len(d.Examples)
		for _, child := range d.Contexts {
			n += count(child)
		}
		return n
	}
	return count(d)
}
