// Package trace provides execution tracing for debugging scripts.
// Tracing is off by default and is enabled globally, typically from
// the command line.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type tracer struct {
	mu      sync.Mutex
	enabled bool
	filters []string
	out     io.Writer
}

var global = &tracer{out: os.Stderr}

// Init configures the global tracer. Filters are glob patterns matched
// against function or method names; an empty filter list traces
// everything.
func Init(enabled bool, filters []string, out io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.enabled = enabled
	global.filters = filters
	if out != nil {
		global.out = out
	}
}

// IsEnabled reports whether tracing is active
func IsEnabled() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.enabled
}

func (t *tracer) matches(name string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pat := range t.filters {
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
	}
	return false
}

func (t *tracer) emit(name, format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled || !t.matches(name) {
		return
	}
	fmt.Fprintf(t.out, "TRACE "+format+"\n", args...)
}

// Call records entry into a function or method
func Call(name string, args []string) {
	global.emit(name, "call %s(%s)", name, strings.Join(args, ", "))
}

// Return records a function returning normally
func Return(name, result string) {
	global.emit(name, "return %s -> %s", name, result)
}

// Exception records an error propagating out of a function
func Exception(name, code, msg string) {
	global.emit(name, "raise %s %s: %s", name, code, msg)
}

// Bind records a method reference evaluation and whether the bound
// value came from the receiver's cache
func Bind(receiver, method string, cached bool) {
	state := "new"
	if cached {
		state = "cached"
	}
	global.emit(method, "bind %s:%s (%s)", receiver, method, state)
}
