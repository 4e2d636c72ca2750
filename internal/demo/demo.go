// Package demo holds the suites compiled into the specrun binary.
//
// They double as living documentation for the dsl package: calculator shows
// chained Before and Act hooks, stack shows pending examples and contexts,
// and failures shows each way an example or context can fail.
package demo

import (
	"github.com/roach88/specrun/internal/builder"
	"github.com/roach88/specrun/internal/finder"
)

// Suites returns fresh definitions for every demo suite.
func Suites() []*builder.Definition {
	return []*builder.Definition{
		CalculatorSpec(),
		StackSpec(),
		FailuresSpec(),
	}
}

// Registry returns a registry holding Suites.
func Registry() *finder.Registry {
	return finder.NewRegistry(Suites()...)
}
