package types

import "fmt"

// BoundValue is a bound method: a callable that remembers its receiver
// table and method name. It is a distinct value kind from functions, so
// a bound method never compares equal to the raw function stored in the
// table. Invocation re-reads receiver[method] at call time; nothing about
// the method's current value is captured here.
type BoundValue struct {
	recv   *TableValue
	method string
}

// Receiver returns the bound receiver table
func (b *BoundValue) Receiver() *TableValue {
	return b.recv
}

// Method returns the bound method name
func (b *BoundValue) Method() string {
	return b.method
}

// Type returns the type code for bound methods
func (b *BoundValue) Type() TypeCode {
	return TYPE_BOUND
}

// String returns a diagnostic representation
func (b *BoundValue) String() string {
	return fmt.Sprintf("<bound method %s of %s>", b.method, b.recv.String())
}

// Equal checks equality; bound methods compare by identity. Because of
// the per-table cache below, identity coincides with (receiver identity,
// method name) equality for live receivers.
func (b *BoundValue) Equal(other Value) bool {
	o, ok := other.(*BoundValue)
	return ok && o == b
}

// Truthy returns the perch truthiness; bound methods are truthy
func (b *BoundValue) Truthy() bool {
	return true
}

// BoundMethod returns the unique bound method for (t, name), creating it
// on first request. The reported bool is true on a cache hit.
//
// The cache lives inside the table rather than in a global map keyed by
// table identity. That scoping is what gives the weak-lifetime guarantee:
// entries are reachable only through their table, so once a table is
// otherwise unreachable the whole cache goes with it (the table->bound->
// table cycle is ordinary cyclic garbage). A global map could not offer
// this without ephemerons, since each BoundValue holds a strong reference
// to its receiver.
func (t *TableValue) BoundMethod(name string) (*BoundValue, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if b, ok := t.bound[name]; ok {
		return b, true
	}
	if t.bound == nil {
		t.bound = make(map[string]*BoundValue)
	}
	b := &BoundValue{recv: t, method: name}
	t.bound[name] = b
	return b, false
}
