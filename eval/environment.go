package eval

import "perch/types"

// Environment is a lexically scoped variable table. Lookups walk the
// parent chain; assignment updates the scope that defines the name, or
// falls through to the global scope.
type Environment struct {
	vars   map[string]types.Value
	parent *Environment
}

// NewEnvironment creates a root scope
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]types.Value)}
}

// NewChildEnvironment creates a nested scope
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]types.Value), parent: parent}
}

// Get looks up a name, walking outward through enclosing scopes
func (e *Environment) Get(name string) (types.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds a name in this scope, shadowing any outer binding
func (e *Environment) Define(name string, v types.Value) {
	e.vars[name] = v
}

// Set assigns to an existing binding, or creates a global when the
// name is bound nowhere
func (e *Environment) Set(name string, v types.Value) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = v
			return
		}
	}
	e.root().vars[name] = v
}

// isLocal reports whether the name is bound in a scope inside the
// given global scope
func (e *Environment) isLocal(globals *Environment, name string) bool {
	for env := e; env != nil && env != globals; env = env.parent {
		if _, ok := env.vars[name]; ok {
			return true
		}
	}
	return false
}

func (e *Environment) root() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}
