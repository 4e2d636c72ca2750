// Package builder wires pre-resolved context definitions into a runnable tree.
//
// The spec-finder hands the builder a forest of Definition values: names,
// pending flags, hook closures, example closures and nested definitions.
// The builder performs no discovery. It only validates the forest, creates
// one domain.Context per definition and links parents, children and
// examples in declaration order.
//
// Structural problems are construction-time failures and are returned as
// *DefinitionError before anything executes:
//
//   - nil definitions or examples
//   - empty context names or example descriptions
//   - cycles (a definition nested inside itself)
//
// A definition whose declaration body failed (Definition.Failure) is not a
// structural problem: it is built normally and the failure is recorded on
// the context so that its examples fail when run.
package builder
