package dsl

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/specrun/internal/builder"
	"github.com/roach88/specrun/internal/domain"
)

type calculator struct{ sum int }

func (c *calculator) Add(x int) { c.sum += x }
func (c *calculator) Display() int { return c.sum }

func calculatorSpec() *builder.Definition {
	return Describe("before_defined_as_a_method", func(c *C) {
		var calc *calculator
		c.Before(func() error { calc = &calculator{}; return nil })

		c.Context("when_adding_numbers_with_the_calculator", func(c *C) {
			c.Act(func() error { calc.Add(1); return nil })
			c.It("should display 1", func() error { return Equal(1, calc.Display()) })

			c.Context("another value is added", func(c *C) {
				c.Act(func() error { calc.Add(1); return nil })
				c.It("should display 2", func() error { return Equal(2, calc.Display()) })
			})
		})
	})
}

func TestDescribe_CalculatorChainsActs(t *testing.T) {
	cc, err := builder.Build(calculatorSpec())
	require.NoError(t, err)

	cc.Run(nil)

	assert.Equal(t, domain.Score{Total: 2, Passed: 2}, domain.Tally(cc))
}

func TestDescribe_FailedExpectationIsRecorded(t *testing.T) {
	def := Describe("math", func(c *C) {
		c.It("is wrong", func() error { return Equal(3, 1+1) })
	})
	cc, err := builder.Build(def)
	require.NoError(t, err)

	cc.Run(nil)

	failures := slices.Collect(cc.Failures())
	require.Len(t, failures, 1)
	assert.True(t, IsExpectation(failures[0].Err()))
	assert.Contains(t, failures[0].Err().Error(), "expected 3, got 2")
}

func TestDescribe_BodyPanicBecomesFailure(t *testing.T) {
	def := Describe("broken", func(c *C) {
		c.It("declared before the panic", func() error { return nil })
		panic("declaration bug")
	})

	require.Error(t, def.Failure)
	assert.True(t, domain.IsPanic(def.Failure))
	require.Len(t, def.Examples, 1)

	cc, err := builder.Build(def)
	require.NoError(t, err)
	cc.Run(nil)

	assert.Equal(t, 1, domain.Count(cc.Failures()))
}

func TestDescribe_NestedPanicOnlyBreaksThatContext(t *testing.T) {
	def := Describe("root", func(c *C) {
		c.Context("bad", func(c *C) {
			c.It("fails", func() error { return nil })
			panic("boom")
		})
		c.Context("good", func(c *C) {
			c.It("passes", func() error { return nil })
		})
	})
	require.NoError(t, def.Failure)

	cc, err := builder.Build(def)
	require.NoError(t, err)
	cc.Run(nil)

	assert.Equal(t, domain.Score{Total: 2, Passed: 1, Failed: 1}, domain.Tally(cc))
}

func TestPendingDeclarations(t *testing.T) {
	ran := false
	action := func() error { ran = true; return nil }

	def := Describe("root", func(c *C) {
		c.XIt("skipped", action)
		c.Todo("later")
		c.XContext("all skipped", func(c *C) {
			c.It("inherits", action)
		})
	})
	pendingRoot := XDescribe("pending root", func(c *C) {
		c.It("also skipped", action)
	})

	cc, err := builder.Build(def, pendingRoot)
	require.NoError(t, err)
	cc.Run(nil)

	assert.False(t, ran)
	assert.Equal(t, 4, domain.Count(cc.Pendings()))
}

func TestHooks_LastAssignmentWins(t *testing.T) {
	var order []string
	def := Describe("root", func(c *C) {
		c.Before(func() error { order = append(order, "first"); return nil })
		c.Before(func() error { order = append(order, "second"); return nil })
		c.BeforeAll(func() error { order = append(order, "all"); return nil })
		c.After(func() error { order = append(order, "after"); return nil })
		c.It("e", func() error { return nil })
	})

	cc, err := builder.Build(def)
	require.NoError(t, err)
	cc.Run(nil)

	assert.Equal(t, []string{"all", "second", "after"}, order)
}

func TestDescribe_NilBody(t *testing.T) {
	def := Describe("empty", nil)
	assert.Equal(t, "empty", def.Name)
	assert.Empty(t, def.Examples)
}
