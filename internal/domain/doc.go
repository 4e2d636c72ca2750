// Package domain is the specification tree and its execution rules.
//
// A run operates on a forest of Contexts. Each Context owns ordered child
// Contexts, ordered Examples, and optional hooks:
//
//   - Before: per-example setup, chained root-to-leaf
//   - Act: per-example action, chained root-to-leaf after every Before
//   - After: per-example teardown, local to the defining context only
//   - BeforeAll: once-per-context setup, run when execution descends into it
//
// # Execution Order
//
// Run visits each child context (depth-first, declaration order) and then
// exercises the context's own examples in declaration order. Exercising one
// example runs:
//
//	RunBefores -> RunActs -> example action -> RunAfters
//
// The first failing step stops the sequence and its error becomes the
// example's outcome.
//
// # Failure Isolation
//
// Failures are recorded as data, never propagated to the caller:
//
//   - Example-level: a hook in the example's chain or its action returned an
//     error or panicked. Recorded on the Example only.
//   - Context-level: a BeforeAll hook (or the build-time declaration of the
//     context) failed. Recorded on the Context; every undecided example in
//     its subtree is failed with the same error without running any hooks.
//   - Construction-time: malformed wiring (cycles, reparenting, mutation of
//     a running tree). Returned as errors from AddContext/AddExample.
//
// # Pending
//
// A context is pending if it or any ancestor is marked pending. An example
// is pending if it was marked pending, or its context was pending when it
// was attached, or its context is pending now. Pending examples never run.
//
// # Scoring
//
// Context and ContextCollection both implement Scorer. The sequences are
// lazy and recomputed on every call, so counts always reflect the current
// state of the tree.
//
// Execution is single-threaded. Nothing in this package is safe for
// concurrent mutation.
package domain
