package types

// TypeCode represents perch value kinds
type TypeCode int

const (
	TYPE_NIL     TypeCode = 0
	TYPE_BOOL    TypeCode = 1
	TYPE_INT     TypeCode = 2
	TYPE_FLOAT   TypeCode = 3
	TYPE_STR     TypeCode = 4
	TYPE_TABLE   TypeCode = 5
	TYPE_FUNC    TypeCode = 6
	TYPE_BUILTIN TypeCode = 7
	TYPE_BOUND   TypeCode = 8
)

// String returns the name used in diagnostics ("attempt to index a nil value")
func (t TypeCode) String() string {
	switch t {
	case TYPE_NIL:
		return "nil"
	case TYPE_BOOL:
		return "bool"
	case TYPE_INT:
		return "int"
	case TYPE_FLOAT:
		return "float"
	case TYPE_STR:
		return "str"
	case TYPE_TABLE:
		return "table"
	case TYPE_FUNC:
		return "function"
	case TYPE_BUILTIN:
		return "builtin"
	case TYPE_BOUND:
		return "bound function"
	default:
		return "unknown"
	}
}
