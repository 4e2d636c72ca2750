// Package runner executes a built context tree and summarises the result.
//
// The runner owns everything around the core execution rules: it resets
// the tree, stamps a run ID, measures durations, logs progress and feeds
// metrics. The traversal itself, including hook chaining and failure
// isolation, is domain.ContextCollection.Run; the runner observes it through
// a domain.Observer.
//
// Runs are sequential. The runner never schedules examples concurrently,
// never retries failures and never persists results.
package runner
