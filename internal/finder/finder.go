// Package finder supplies definition forests to the builder.
//
// A Finder is the spec-finder boundary: it decides which root definitions
// exist. Registry is the in-process implementation used by binaries that
// compile their suites in; Filter narrows any Finder by a glob over root
// context names.
package finder

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/roach88/specrun/internal/builder"
)

// Finder returns the root definitions of a run.
type Finder interface {
	Definitions() ([]*builder.Definition, error)
}

// Registry collects root definitions in registration order.
//
// Thread-safety: Register and Definitions are safe for concurrent use so
// that package init functions may register suites.
type Registry struct {
	mu   sync.Mutex
	defs []*builder.Definition
}

// NewRegistry creates a registry pre-populated with defs.
func NewRegistry(defs ...*builder.Definition) *Registry {
	r := &Registry{}
	r.Register(defs...)
	return r
}

// Register appends root definitions.
func (r *Registry) Register(defs ...*builder.Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = append(r.defs, defs...)
}

// Definitions implements Finder.
// Returns an error if two roots share a name, since reports key on it.
func (r *Registry) Definitions() ([]*builder.Definition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(r.defs))
	out := make([]*builder.Definition, 0, len(r.defs))
	for _, def := range r.defs {
		if def == nil {
			return nil, fmt.Errorf("registry contains a nil definition")
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate root context %q", def.Name)
		}
		seen[def.Name] = true
		out = append(out, def)
	}
	return out, nil
}

// Filter returns a Finder that keeps only roots whose name matches pattern.
//
// The pattern uses path.Match syntax and is matched against the root name
// with underscores turned into spaces and against the raw name. An empty
// pattern keeps everything.
func Filter(f Finder, pattern string) Finder {
	return filtered{inner: f, pattern: pattern}
}

type filtered struct {
	inner   Finder
	pattern string
}

func (f filtered) Definitions() ([]*builder.Definition, error) {
	defs, err := f.inner.Definitions()
	if err != nil {
		return nil, err
	}
	if f.pattern == "" {
		return defs, nil
	}

	// Validate the pattern once so a bad filter is an error even with no roots
	if _, err := path.Match(f.pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid filter pattern: %w", err)
	}

	var out []*builder.Definition
	for _, def := range defs {
		if matches(f.pattern, def.Name) {
			out = append(out, def)
		}
	}
	return out, nil
}

func matches(pattern, name string) bool {
	for _, candidate := range []string{name, strings.ReplaceAll(name, "_", " ")} {
		if ok, _ := path.Match(pattern, candidate); ok {
			return true
		}
	}
	return false
}
