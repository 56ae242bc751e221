package types

import (
	"math"
	"strconv"
	"strings"
)

// FloatValue represents a perch floating point number
type FloatValue struct {
	Val float64
}

// NewFloat creates a new FloatValue
func NewFloat(val float64) FloatValue {
	return FloatValue{Val: val}
}

// Type returns the type code for floats
func (f FloatValue) Type() TypeCode {
	return TYPE_FLOAT
}

// String returns the literal representation.
// Whole numbers keep a decimal point (3.0, not 3) so the float/int
// distinction stays visible.
func (f FloatValue) String() string {
	if math.IsNaN(f.Val) {
		return "nan"
	}
	if math.IsInf(f.Val, 1) {
		return "inf"
	}
	if math.IsInf(f.Val, -1) {
		return "-inf"
	}
	s := strconv.FormatFloat(f.Val, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Equal checks equality; floats compare numerically with integers.
// NaN is not equal to anything, itself included.
func (f FloatValue) Equal(other Value) bool {
	if math.IsNaN(f.Val) {
		return false
	}
	switch o := other.(type) {
	case FloatValue:
		return f.Val == o.Val
	case IntValue:
		return f.Val == float64(o.Val)
	default:
		return false
	}
}

// Truthy returns the perch truthiness; every float is truthy
func (f FloatValue) Truthy() bool {
	return true
}
