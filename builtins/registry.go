// Package builtins implements the functions available to every script.
package builtins

import (
	"io"
	"os"
	"sort"

	"perch/types"
)

// Registry holds the builtin function table seeded into the global
// environment of each script.
type Registry struct {
	fns map[string]*types.BuiltinValue
	out io.Writer
}

// NewRegistry creates a registry with the core builtins registered
func NewRegistry() *Registry {
	r := &Registry{
		fns: make(map[string]*types.BuiltinValue),
		out: os.Stdout,
	}
	r.registerCore()
	return r
}

// Register adds a builtin under the given name
func (r *Registry) Register(name string, fn types.BuiltinFunc) {
	r.fns[name] = types.NewBuiltin(name, fn)
}

// Get looks up a builtin by name
func (r *Registry) Get(name string) (*types.BuiltinValue, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

// All returns every registered builtin keyed by name
func (r *Registry) All() map[string]*types.BuiltinValue {
	out := make(map[string]*types.BuiltinValue, len(r.fns))
	for name, fn := range r.fns {
		out[name] = fn
	}
	return out
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetOutput redirects print output, mainly for tests
func (r *Registry) SetOutput(w io.Writer) {
	r.out = w
}
