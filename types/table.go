package types

import (
	"fmt"
	"sync"
)

// TableValue is a mutable table with reference identity: two tables are
// equal only when they are the same table, never by contents. The pointer
// is the identity token used everywhere identity matters (equality, the
// bound-method cache key).
type TableValue struct {
	mu      sync.Mutex
	entries map[Value]Value
	meta    *TableValue
	bound   map[string]*BoundValue
}

// NewTable creates a new empty table
func NewTable() *TableValue {
	return &TableValue{
		entries: make(map[Value]Value),
	}
}

// Type returns the type code for tables
func (t *TableValue) Type() TypeCode {
	return TYPE_TABLE
}

// String returns an identity-bearing representation
func (t *TableValue) String() string {
	return fmt.Sprintf("table: %p", t)
}

// Equal checks equality; tables compare by identity
func (t *TableValue) Equal(other Value) bool {
	o, ok := other.(*TableValue)
	return ok && o == t
}

// Truthy returns the perch truthiness; every table is truthy
func (t *TableValue) Truthy() bool {
	return true
}

// Get returns the raw value stored under key, or nil if absent.
// Metatable handlers are not consulted; that is the evaluator's job.
func (t *TableValue) Get(key Value) Value {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.entries[key]; ok {
		return v
	}
	return NewNil()
}

// Set stores value under key. Storing nil removes the entry, so a raw
// nil read always means "absent".
func (t *TableValue) Set(key, value Value) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if IsNil(value) {
		delete(t.entries, key)
		return
	}
	t.entries[key] = value
}

// Len returns the number of stored entries
func (t *TableValue) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Meta returns the table's metatable, or nil if it has none
func (t *TableValue) Meta() *TableValue {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.meta
}

// SetMeta replaces the table's metatable; nil clears it
func (t *TableValue) SetMeta(m *TableValue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.meta = m
}
