package types

import "fmt"

// BuiltinFunc is the Go signature of a builtin function
type BuiltinFunc func(ctx *TaskContext, args []Value) Result

// BuiltinValue wraps a Go function as a callable perch value
type BuiltinValue struct {
	Name string
	Fn   BuiltinFunc
}

// NewBuiltin creates a builtin function value
func NewBuiltin(name string, fn BuiltinFunc) *BuiltinValue {
	return &BuiltinValue{Name: name, Fn: fn}
}

// Type returns the type code for builtins
func (b *BuiltinValue) Type() TypeCode {
	return TYPE_BUILTIN
}

// String returns a diagnostic representation
func (b *BuiltinValue) String() string {
	return fmt.Sprintf("<builtin %s>", b.Name)
}

// Equal checks equality; builtins compare by identity
func (b *BuiltinValue) Equal(other Value) bool {
	o, ok := other.(*BuiltinValue)
	return ok && o == b
}

// Truthy returns the perch truthiness; builtins are truthy
func (b *BuiltinValue) Truthy() bool {
	return true
}
