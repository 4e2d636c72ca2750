package demo

import (
	"errors"

	"github.com/roach88/specrun/internal/builder"
	"github.com/roach88/specrun/internal/dsl"
)

// ErrConnectionRefused is the setup failure raised by FailuresSpec.
var ErrConnectionRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// FailuresSpec fails in every supported way: a failed expectation, a
// panic in an example, and a BeforeAll that breaks a whole context.
func FailuresSpec() *builder.Definition {
	return dsl.Describe("describe_failures", func(c *dsl.C) {
		c.It("reports a failed expectation", func() error {
			return dsl.Equal(4, 2+3)
		})
		c.It("recovers from a panic", func() error {
			var cache map[string]int
			cache["hits"]++
			return nil
		})

		c.Context("when the database is unreachable", func(c *dsl.C) {
			c.BeforeAll(func() error {
				return ErrConnectionRefused
			})

			c.It("loads customers", func() error { return nil })
			c.It("saves orders", func() error { return nil })
		})
	})
}
