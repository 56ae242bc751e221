package eval

import (
	"fmt"

	"perch/parser"
	"perch/types"
)

// Closure is a script function value: the function body plus the
// environment it closed over.
type Closure struct {
	Name   string // from declaration sugar, empty for anonymous functions
	Params []string
	Body   []parser.Stmt
	Env    *Environment
	Pos    parser.Position
}

// Type returns the type code for script functions
func (c *Closure) Type() types.TypeCode {
	return types.TYPE_FUNC
}

// String returns a diagnostic representation
func (c *Closure) String() string {
	if c.Name != "" {
		return fmt.Sprintf("<function %s>", c.Name)
	}
	return fmt.Sprintf("<function @%d>", c.Pos.Line)
}

// Equal checks equality; closures compare by identity
func (c *Closure) Equal(other types.Value) bool {
	o, ok := other.(*Closure)
	return ok && o == c
}

// Truthy returns the perch truthiness; functions are truthy
func (c *Closure) Truthy() bool {
	return true
}

// frameName returns the name shown for this closure in tracebacks
func (c *Closure) frameName() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("<anonymous:%d>", c.Pos.Line)
}
