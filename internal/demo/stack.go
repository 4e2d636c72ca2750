package demo

import (
	"errors"

	"github.com/roach88/specrun/internal/builder"
	"github.com/roach88/specrun/internal/dsl"
)

// ErrEmptyStack is returned by Pop on an empty Stack.
var ErrEmptyStack = errors.New("stack is empty")

// Stack is a LIFO of ints.
type Stack struct {
	items []int
}

// Push adds v on top.
func (s *Stack) Push(v int) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item.
func (s *Stack) Pop() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrEmptyStack
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Len returns the number of items.
func (s *Stack) Len() int {
	return len(s.items)
}

// StackSpec shows pending examples and a pending context.
func StackSpec() *builder.Definition {
	return dsl.Describe("stack", func(c *dsl.C) {
		var s *Stack
		c.Before(func() error {
			s = &Stack{}
			return nil
		})

		c.It("is empty when created", func() error {
			return dsl.Equal(0, s.Len())
		})
		c.Todo("grows beyond its initial capacity")

		c.Context("after a push", func(c *dsl.C) {
			c.Act(func() error {
				s.Push(42)
				return nil
			})

			c.It("has size 1", func() error {
				return dsl.Equal(1, s.Len())
			})
			c.It("pops the pushed item", func() error {
				v, err := s.Pop()
				if err != nil {
					return dsl.NoError(err)
				}
				return dsl.Equal(42, v)
			})
		})

		c.XContext("when popping an empty stack", func(c *dsl.C) {
			c.It("returns ErrEmptyStack", func() error {
				_, err := s.Pop()
				return dsl.True(errors.Is(err, ErrEmptyStack), "expected ErrEmptyStack, got %v", err)
			})
		})
	})
}
