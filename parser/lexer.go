package parser

import (
	"unicode"
)

// Lexer tokenizes perch source code
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips over whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment skips over a comment (-- to end of line)
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()
	for l.ch == '-' && l.peekChar() == '-' {
		l.skipComment()
		l.skipWhitespace()
	}

	tok.Position = Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}

	switch {
	case l.ch == 0:
		tok.Type = TOKEN_EOF
		tok.Value = ""
	case l.ch == '"' || l.ch == '\'':
		return l.readString(l.ch)
	case isLetter(l.ch):
		return l.readIdentifier()
	case isDigit(l.ch):
		return l.readNumber()
	default:
		return l.readOperator()
	}

	return tok
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() Token {
	tok := Token{
		Position: Position{Line: l.line, Column: l.column, Offset: l.position},
	}

	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}

	tok.Value = l.input[start:l.position]
	tok.Type = LookupKeyword(tok.Value)
	return tok
}

// readNumber reads an integer or float literal. A '.' starts a fractional
// part only when followed by a digit, so "1..2" lexes as INT CONCAT INT.
func (l *Lexer) readNumber() Token {
	tok := Token{
		Type:     TOKEN_INT,
		Position: Position{Line: l.line, Column: l.column, Offset: l.position},
	}

	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		tok.Type = TOKEN_FLOAT
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '+' || next == '-' {
			tok.Type = TOKEN_FLOAT
			l.readChar() // consume 'e'
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	tok.Value = l.input[start:l.position]
	return tok
}

// readOperator reads an operator or delimiter token
func (l *Lexer) readOperator() Token {
	tok := Token{
		Position: Position{Line: l.line, Column: l.column, Offset: l.position},
	}

	single := func(t TokenType) Token {
		tok.Type = t
		tok.Value = string(l.ch)
		l.readChar()
		return tok
	}

	double := func(t TokenType) Token {
		start := l.position
		l.readChar()
		l.readChar()
		tok.Type = t
		tok.Value = l.input[start:l.position]
		return tok
	}

	switch l.ch {
	case '+':
		return single(TOKEN_PLUS)
	case '-':
		return single(TOKEN_MINUS)
	case '*':
		return single(TOKEN_STAR)
	case '/':
		return single(TOKEN_SLASH)
	case '%':
		return single(TOKEN_PERCENT)
	case '=':
		if l.peekChar() == '=' {
			return double(TOKEN_EQ)
		}
		return single(TOKEN_ASSIGN)
	case '~':
		if l.peekChar() == '=' {
			return double(TOKEN_NE)
		}
		return single(TOKEN_ILLEGAL)
	case '<':
		if l.peekChar() == '=' {
			return double(TOKEN_LE)
		}
		return single(TOKEN_LT)
	case '>':
		if l.peekChar() == '=' {
			return double(TOKEN_GE)
		}
		return single(TOKEN_GT)
	case '.':
		if l.peekChar() == '.' {
			return double(TOKEN_CONCAT)
		}
		return single(TOKEN_DOT)
	case '(':
		return single(TOKEN_LPAREN)
	case ')':
		return single(TOKEN_RPAREN)
	case '{':
		return single(TOKEN_LBRACE)
	case '}':
		return single(TOKEN_RBRACE)
	case '[':
		return single(TOKEN_LBRACKET)
	case ']':
		return single(TOKEN_RBRACKET)
	case ',':
		return single(TOKEN_COMMA)
	case ';':
		return single(TOKEN_SEMICOLON)
	case ':':
		return single(TOKEN_COLON)
	default:
		return single(TOKEN_ILLEGAL)
	}
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
