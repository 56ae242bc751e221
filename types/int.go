package types

import "strconv"

// IntValue represents a perch integer
type IntValue struct {
	Val int64
}

// NewInt creates a new IntValue
func NewInt(val int64) IntValue {
	return IntValue{Val: val}
}

// Type returns the type code for integers
func (i IntValue) Type() TypeCode {
	return TYPE_INT
}

// String returns the literal representation
func (i IntValue) String() string {
	return strconv.FormatInt(i.Val, 10)
}

// Equal checks equality; integers compare numerically with floats
func (i IntValue) Equal(other Value) bool {
	switch o := other.(type) {
	case IntValue:
		return i.Val == o.Val
	case FloatValue:
		return float64(i.Val) == o.Val
	default:
		return false
	}
}

// Truthy returns the perch truthiness; every integer is truthy
func (i IntValue) Truthy() bool {
	return true
}
