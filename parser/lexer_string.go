package parser

// readString reads a string literal with escape sequences.
// Both "..." and '...' quoting are accepted.
func (l *Lexer) readString(quote byte) Token {
	tok := Token{
		Type: TOKEN_STRING,
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}

	start := l.position
	l.readChar() // skip opening quote

	var result []byte
	for l.ch != quote && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar() // skip backslash
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			case '"':
				result = append(result, '"')
			case '\'':
				result = append(result, '\'')
			case '\\':
				result = append(result, '\\')
			default:
				// Unknown escape - keep the backslash
				result = append(result, '\\', l.ch)
			}
			l.readChar()
		} else {
			result = append(result, l.ch)
			l.readChar()
		}
	}

	if l.ch != quote {
		tok.Type = TOKEN_ILLEGAL
		tok.Value = l.input[start:l.position]
		return tok
	}
	l.readChar() // skip closing quote

	tok.Value = l.input[start:l.position] // the full quoted source text
	tok.Literal = string(result)          // the decoded value
	return tok
}
