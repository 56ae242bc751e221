package types

import "strings"

// StrValue represents a perch string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the source-literal representation with quoting and escapes
func (s StrValue) String() string {
	var result strings.Builder
	result.WriteByte('"')
	for i := 0; i < len(s.val); i++ {
		switch b := s.val[i]; b {
		case '"':
			result.WriteString("\\\"")
		case '\\':
			result.WriteString("\\\\")
		case '\n':
			result.WriteString("\\n")
		case '\t':
			result.WriteString("\\t")
		case '\r':
			result.WriteString("\\r")
		default:
			result.WriteByte(b)
		}
	}
	result.WriteByte('"')
	return result.String()
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Equal checks equality; strings compare case-sensitively
func (s StrValue) Equal(other Value) bool {
	o, ok := other.(StrValue)
	if !ok {
		return false
	}
	return s.val == o.val
}

// Truthy returns the perch truthiness; every string is truthy, empty included
func (s StrValue) Truthy() bool {
	return true
}

// Value returns the raw string contents
func (s StrValue) Value() string {
	return s.val
}
