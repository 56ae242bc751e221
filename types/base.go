package types

// ErrorCode represents a perch runtime error class (E_INDEX, E_NILMETHOD, etc.)
type ErrorCode int

const (
	E_NONE        ErrorCode = 0
	E_TYPE        ErrorCode = 1
	E_DIV         ErrorCode = 2
	E_VARNF       ErrorCode = 3
	E_ARGS        ErrorCode = 4
	E_INDEX       ErrorCode = 5
	E_NILMETHOD   ErrorCode = 6
	E_NOTCALLABLE ErrorCode = 7
	E_TICKS       ErrorCode = 8
	E_USER        ErrorCode = 9
)

// String returns the symbolic name for an error code
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_TYPE:
		return "E_TYPE"
	case E_DIV:
		return "E_DIV"
	case E_VARNF:
		return "E_VARNF"
	case E_ARGS:
		return "E_ARGS"
	case E_INDEX:
		return "E_INDEX"
	case E_NILMETHOD:
		return "E_NILMETHOD"
	case E_NOTCALLABLE:
		return "E_NOTCALLABLE"
	case E_TICKS:
		return "E_TICKS"
	case E_USER:
		return "E_USER"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns the default human-readable message for an error code.
// Most raise sites supply a more specific message; this is the fallback.
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "no error"
	case E_TYPE:
		return "type mismatch"
	case E_DIV:
		return "attempt to divide by zero"
	case E_VARNF:
		return "variable not found"
	case E_ARGS:
		return "wrong number of arguments"
	case E_INDEX:
		return "attempt to index a non-table value"
	case E_NILMETHOD:
		return "attempt to bind a nil method"
	case E_NOTCALLABLE:
		return "attempt to call a non-callable value"
	case E_TICKS:
		return "too many ticks"
	case E_USER:
		return "error raised"
	default:
		return "unknown error"
	}
}

// ErrorFromString converts a symbolic name like "E_INDEX" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	switch s {
	case "E_NONE":
		return E_NONE, true
	case "E_TYPE":
		return E_TYPE, true
	case "E_DIV":
		return E_DIV, true
	case "E_VARNF":
		return E_VARNF, true
	case "E_ARGS":
		return E_ARGS, true
	case "E_INDEX":
		return E_INDEX, true
	case "E_NILMETHOD":
		return E_NILMETHOD, true
	case "E_NOTCALLABLE":
		return E_NOTCALLABLE, true
	case "E_TICKS":
		return E_TICKS, true
	case "E_USER":
		return E_USER, true
	default:
		return E_NONE, false
	}
}

// Value is the interface all perch values implement
type Value interface {
	Type() TypeCode
	String() string   // source-literal style representation
	Equal(Value) bool // equality per the language's == operator
	Truthy() bool     // only nil and false are falsy
}

// IsNil reports whether a value is the nil value. A Go nil interface is
// treated the same way so lookups that return nothing behave like nil.
func IsNil(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(NilValue)
	return ok
}
