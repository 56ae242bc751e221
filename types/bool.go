package types

// BoolValue represents a perch boolean
type BoolValue struct {
	Val bool
}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{Val: val}
}

// Type returns the type code for booleans
func (b BoolValue) Type() TypeCode {
	return TYPE_BOOL
}

// String returns the literal representation
func (b BoolValue) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Equal checks equality
func (b BoolValue) Equal(other Value) bool {
	otherBool, ok := other.(BoolValue)
	if !ok {
		return false
	}
	return b.Val == otherBool.Val
}

// Truthy returns the perch truthiness; false is falsy
func (b BoolValue) Truthy() bool {
	return b.Val
}
