// Package dsl is a declaration API for authoring context definitions in Go.
//
// Declaration bodies run immediately, while the definition is being built:
//
//	spec := dsl.Describe("calculator", func(c *dsl.C) {
//	    var calc *Calculator
//	    c.Before(func() error { calc = &Calculator{}; return nil })
//	    c.Act(func() error { calc.Add(1); return nil })
//	    c.It("displays 1", func() error { return dsl.Equal(1, calc.Display()) })
//	    c.Context("another value is added", func(c *dsl.C) {
//	        c.Act(func() error { calc.Add(1); return nil })
//	        c.It("displays 2", func() error { return dsl.Equal(2, calc.Display()) })
//	    })
//	})
//
// Hook setters follow assignment semantics: calling Before twice in the same
// scope keeps the last hook. A body that panics does not abort the build;
// the panic is stored as the definition's Failure and every example in that
// context fails with it when run.
package dsl

import (
	"runtime/debug"

	"github.com/roach88/specrun/internal/builder"
	"github.com/roach88/specrun/internal/domain"
)

// C is the declaration scope of one context.
type C struct {
	def *builder.Definition
}

// Describe declares a root context and runs body to populate it.
func Describe(name string, body func(c *C)) *builder.Definition {
	return declare(name, false, body)
}

// XDescribe declares a pending root context. body still runs so that the
// examples are listed, but none of them execute.
func XDescribe(name string, body func(c *C)) *builder.Definition {
	return declare(name, true, body)
}

func declare(name string, pending bool, body func(c *C)) *builder.Definition {
	def := &builder.Definition{Name: name, Pending: pending}
	if body == nil {
		return def
	}

	scope := &C{def: def}
	func() {
		defer func() {
			if r := recover(); r != nil {
				def.Failure = &domain.PanicError{Value: r, Stack: debug.Stack()}
			}
		}()
		body(scope)
	}()
	return def
}

// Definition returns the definition being declared.
func (c *C) Definition() *builder.Definition {
	return c.def
}

// Context declares a nested context.
func (c *C) Context(name string, body func(c *C)) {
	c.def.Contexts = append(c.def.Contexts, declare(name, false, body))
}

// XContext declares a nested pending context.
func (c *C) XContext(name string, body func(c *C)) {
	c.def.Contexts = append(c.def.Contexts, declare(name, true, body))
}

// It declares an example. A nil action declares a todo.
func (c *C) It(description string, action domain.Action) {
	c.def.Examples = append(c.def.Examples, &builder.ExampleDefinition{
		Description: description,
		Action:      action,
	})
}

// XIt declares a pending example. The action is kept but never run.
func (c *C) XIt(description string, action domain.Action) {
	c.def.Examples = append(c.def.Examples, &builder.ExampleDefinition{
		Description: description,
		Action:      action,
		Pending:     true,
	})
}

// Todo declares a placeholder example with no body.
func (c *C) Todo(description string) {
	c.It(description, nil)
}

// Before sets the per-example setup hook for this context.
func (c *C) Before(hook domain.Action) {
	c.def.Before = hook
}

// Act sets the per-example action hook for this context.
func (c *C) Act(hook domain.Action) {
	c.def.Act = hook
}

// After sets the per-example teardown hook for this context.
func (c *C) After(hook domain.Action) {
	c.def.After = hook
}

// BeforeAll sets the once-per-context setup hook.
func (c *C) BeforeAll(hook domain.Action) {
	c.def.BeforeAll = hook
}
