package types

// NilValue represents the nil value
type NilValue struct{}

// NewNil creates the nil value
func NewNil() NilValue {
	return NilValue{}
}

// Type returns the type code for nil
func (n NilValue) Type() TypeCode {
	return TYPE_NIL
}

// String returns the literal representation
func (n NilValue) String() string {
	return "nil"
}

// Equal checks equality; nil is only equal to nil
func (n NilValue) Equal(other Value) bool {
	return IsNil(other)
}

// Truthy returns the perch truthiness; nil is falsy
func (n NilValue) Truthy() bool {
	return false
}
