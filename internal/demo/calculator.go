package demo

import (
	"github.com/roach88/specrun/internal/builder"
	"github.com/roach88/specrun/internal/dsl"
)

// Calculator accumulates a running sum.
type Calculator struct {
	sum int
}

// Add adds x to the sum.
func (c *Calculator) Add(x int) {
	c.sum += x
}

// Display returns the current sum.
func (c *Calculator) Display() int {
	return c.sum
}

// CalculatorSpec shows Act hooks chaining from the outermost context in.
func CalculatorSpec() *builder.Definition {
	return dsl.Describe("before_defined_as_a_method", func(c *dsl.C) {
		var calc *Calculator
		c.Before(func() error {
			calc = &Calculator{}
			return nil
		})

		c.Context("when_adding_numbers_with_the_calculator", func(c *dsl.C) {
			c.Act(func() error {
				calc.Add(1)
				return nil
			})

			c.It("should display 1", func() error {
				return dsl.Equal(1, calc.Display())
			})

			c.Context("another value is added", func(c *dsl.C) {
				c.Act(func() error {
					calc.Add(1)
					return nil
				})

				c.It("should display 2", func() error {
					return dsl.Equal(2, calc.Display())
				})
			})
		})
	})
}
