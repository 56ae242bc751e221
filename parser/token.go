package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	// Literals
	TOKEN_INT    // 42
	TOKEN_FLOAT  // 3.14
	TOKEN_STRING // "hello"

	// Keywords
	TOKEN_AND
	TOKEN_BREAK
	TOKEN_DO
	TOKEN_ELSE
	TOKEN_ELSEIF
	TOKEN_END
	TOKEN_FALSE
	TOKEN_FOR
	TOKEN_FUNCTION
	TOKEN_IF
	TOKEN_LOCAL
	TOKEN_NIL
	TOKEN_NOT
	TOKEN_OR
	TOKEN_RETURN
	TOKEN_THEN
	TOKEN_TRUE
	TOKEN_WHILE

	// Identifiers
	TOKEN_IDENTIFIER

	// Operators
	TOKEN_PLUS    // +
	TOKEN_MINUS   // -
	TOKEN_STAR    // *
	TOKEN_SLASH   // /
	TOKEN_PERCENT // %
	TOKEN_CONCAT  // ..

	TOKEN_EQ // ==
	TOKEN_NE // ~=
	TOKEN_LT // <
	TOKEN_GT // >
	TOKEN_LE // <=
	TOKEN_GE // >=

	TOKEN_ASSIGN // =

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_DOT       // .
	TOKEN_COLON     // :
)

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Literal  string // Decoded string value (for TOKEN_STRING)
	Position Position
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_INT:
		return "INT"
	case TOKEN_FLOAT:
		return "FLOAT"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_AND:
		return "AND"
	case TOKEN_BREAK:
		return "BREAK"
	case TOKEN_DO:
		return "DO"
	case TOKEN_ELSE:
		return "ELSE"
	case TOKEN_ELSEIF:
		return "ELSEIF"
	case TOKEN_END:
		return "END"
	case TOKEN_FALSE:
		return "FALSE"
	case TOKEN_FOR:
		return "FOR"
	case TOKEN_FUNCTION:
		return "FUNCTION"
	case TOKEN_IF:
		return "IF"
	case TOKEN_LOCAL:
		return "LOCAL"
	case TOKEN_NIL:
		return "NIL"
	case TOKEN_NOT:
		return "NOT"
	case TOKEN_OR:
		return "OR"
	case TOKEN_RETURN:
		return "RETURN"
	case TOKEN_THEN:
		return "THEN"
	case TOKEN_TRUE:
		return "TRUE"
	case TOKEN_WHILE:
		return "WHILE"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_PLUS:
		return "PLUS"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_SLASH:
		return "SLASH"
	case TOKEN_PERCENT:
		return "PERCENT"
	case TOKEN_CONCAT:
		return "CONCAT"
	case TOKEN_EQ:
		return "EQ"
	case TOKEN_NE:
		return "NE"
	case TOKEN_LT:
		return "LT"
	case TOKEN_GT:
		return "GT"
	case TOKEN_LE:
		return "LE"
	case TOKEN_GE:
		return "GE"
	case TOKEN_ASSIGN:
		return "ASSIGN"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_RPAREN:
		return "RPAREN"
	case TOKEN_LBRACE:
		return "LBRACE"
	case TOKEN_RBRACE:
		return "RBRACE"
	case TOKEN_LBRACKET:
		return "LBRACKET"
	case TOKEN_RBRACKET:
		return "RBRACKET"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_SEMICOLON:
		return "SEMICOLON"
	case TOKEN_DOT:
		return "DOT"
	case TOKEN_COLON:
		return "COLON"
	default:
		return "UNKNOWN"
	}
}

// keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"and":      TOKEN_AND,
	"break":    TOKEN_BREAK,
	"do":       TOKEN_DO,
	"else":     TOKEN_ELSE,
	"elseif":   TOKEN_ELSEIF,
	"end":      TOKEN_END,
	"false":    TOKEN_FALSE,
	"for":      TOKEN_FOR,
	"function": TOKEN_FUNCTION,
	"if":       TOKEN_IF,
	"local":    TOKEN_LOCAL,
	"nil":      TOKEN_NIL,
	"not":      TOKEN_NOT,
	"or":       TOKEN_OR,
	"return":   TOKEN_RETURN,
	"then":     TOKEN_THEN,
	"true":     TOKEN_TRUE,
	"while":    TOKEN_WHILE,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}
