package parser

import (
	"fmt"
	"strconv"

	"perch/types"
)

// Operator precedence levels, lowest binds loosest
const (
	PREC_LOWEST  = iota
	PREC_OR      // or
	PREC_AND     // and
	PREC_COMPARE // == ~= < <= > >=
	PREC_CONCAT  // .. (right associative)
	PREC_ADD     // + -
	PREC_MUL     // * / %
	PREC_UNARY   // not -
)

// Parser parses perch source code into an AST
type Parser struct {
	lexer     *Lexer
	current   Token
	peek      Token
	loopDepth int
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// expect consumes the current token if it matches, or fails
func (p *Parser) expect(t TokenType, context string) error {
	if p.current.Type != t {
		return fmt.Errorf("line %d: expected %s %s, got '%s'",
			p.current.Position.Line, t, context, p.symbol())
	}
	p.nextToken()
	return nil
}

// symbol returns the current token's text for error messages
func (p *Parser) symbol() string {
	if p.current.Type == TOKEN_EOF {
		return "<eof>"
	}
	return p.current.Value
}

// tokenPrecedence returns the binding power of a binary operator token
func tokenPrecedence(t TokenType) int {
	switch t {
	case TOKEN_OR:
		return PREC_OR
	case TOKEN_AND:
		return PREC_AND
	case TOKEN_EQ, TOKEN_NE, TOKEN_LT, TOKEN_LE, TOKEN_GT, TOKEN_GE:
		return PREC_COMPARE
	case TOKEN_CONCAT:
		return PREC_CONCAT
	case TOKEN_PLUS, TOKEN_MINUS:
		return PREC_ADD
	case TOKEN_STAR, TOKEN_SLASH, TOKEN_PERCENT:
		return PREC_MUL
	default:
		return PREC_LOWEST
	}
}

// ParseExpression parses an expression with the given minimum precedence
func (p *Parser) ParseExpression(prec int) (Expr, error) {
	var left Expr
	var err error

	switch p.current.Type {
	case TOKEN_MINUS, TOKEN_NOT:
		pos := p.current.Position
		op := p.current.Type
		p.nextToken()
		operand, err := p.ParseExpression(PREC_UNARY)
		if err != nil {
			return nil, err
		}
		left = &UnaryExpr{Pos: pos, Operator: op, Operand: operand}
	default:
		left, err = p.parseSuffixed()
		if err != nil {
			return nil, err
		}
	}

	for {
		opPrec := tokenPrecedence(p.current.Type)
		if opPrec <= prec {
			return left, nil
		}

		op := p.current.Type
		pos := p.current.Position
		p.nextToken()

		// Concat is right associative; everything else is left associative
		rightPrec := opPrec
		if op == TOKEN_CONCAT {
			rightPrec = opPrec - 1
		}

		right, err := p.ParseExpression(rightPrec)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Pos: pos, Left: left, Operator: op, Right: right}
	}
}

// parseSuffixed parses a primary expression followed by its suffix chain:
// field access, indexing, calls, method calls, and method references.
func (p *Parser) parseSuffixed() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	// Only prefix expressions (variables and parenthesized expressions)
	// take suffixes; literals and constructors do not.
	switch expr.(type) {
	case *IdentifierExpr, *ParenExpr:
	default:
		return expr, nil
	}

	for {
		switch p.current.Type {
		case TOKEN_DOT:
			p.nextToken()
			if p.current.Type != TOKEN_IDENTIFIER {
				return nil, fmt.Errorf("line %d: expected field name after '.', got '%s'",
					p.current.Position.Line, p.symbol())
			}
			expr = &FieldExpr{Pos: p.current.Position, Object: expr, Field: p.current.Value}
			p.nextToken()

		case TOKEN_LBRACKET:
			pos := p.current.Position
			p.nextToken()
			index, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			if err := p.expect(TOKEN_RBRACKET, "after index expression"); err != nil {
				return nil, err
			}
			expr = &IndexExpr{Pos: pos, Object: expr, Index: index}

		case TOKEN_LPAREN, TOKEN_STRING, TOKEN_LBRACE:
			pos := p.current.Position
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &CallExpr{Pos: pos, Callee: expr, Args: args}

		case TOKEN_COLON:
			p.nextToken()
			if p.current.Type != TOKEN_IDENTIFIER {
				return nil, fmt.Errorf("line %d: expected method name after ':', got '%s'",
					p.current.Position.Line, p.symbol())
			}
			method := p.current.Value
			methodPos := p.current.Position
			p.nextToken()

			if p.current.Type == TOKEN_LPAREN || p.current.Type == TOKEN_STRING || p.current.Type == TOKEN_LBRACE {
				// Ordinary method call, unchanged grammar
				args, err := p.parseCallArgs()
				if err != nil {
					return nil, err
				}
				expr = &MethodCallExpr{Pos: methodPos, Object: expr, Method: method, Args: args}
				continue
			}

			// No call opener follows: this is a method reference, valid
			// only when the operand is a bare identifier. Anything else
			// keeps the pre-reference error.
			ident, ok := expr.(*IdentifierExpr)
			if !ok {
				return nil, fmt.Errorf("line %d: function arguments expected near '%s'",
					methodPos.Line, p.symbol())
			}
			// A reference ends the suffix chain; use parentheses to call
			// or index the resulting value.
			return &MethodRefExpr{Pos: ident.Pos, Object: ident, Method: method}, nil

		default:
			return expr, nil
		}
	}
}

// parseCallArgs parses call arguments in any of the three call forms:
// (a, b), "string", or {table}.
func (p *Parser) parseCallArgs() ([]Expr, error) {
	switch p.current.Type {
	case TOKEN_STRING:
		arg := &LiteralExpr{Pos: p.current.Position, Value: types.NewStr(p.current.Literal)}
		p.nextToken()
		return []Expr{arg}, nil

	case TOKEN_LBRACE:
		arg, err := p.parseTableConstructor()
		if err != nil {
			return nil, err
		}
		return []Expr{arg}, nil

	case TOKEN_LPAREN:
		p.nextToken()
		var args []Expr
		if p.current.Type != TOKEN_RPAREN {
			for {
				arg, err := p.ParseExpression(PREC_LOWEST)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.current.Type != TOKEN_COMMA {
					break
				}
				p.nextToken()
			}
		}
		if err := p.expect(TOKEN_RPAREN, "after arguments"); err != nil {
			return nil, err
		}
		return args, nil

	default:
		return nil, fmt.Errorf("line %d: function arguments expected near '%s'",
			p.current.Position.Line, p.symbol())
	}
}

// parsePrimary parses the atoms of the expression grammar
func (p *Parser) parsePrimary() (Expr, error) {
	switch p.current.Type {
	case TOKEN_NIL:
		e := &LiteralExpr{Pos: p.current.Position, Value: types.NewNil()}
		p.nextToken()
		return e, nil

	case TOKEN_TRUE:
		e := &LiteralExpr{Pos: p.current.Position, Value: types.NewBool(true)}
		p.nextToken()
		return e, nil

	case TOKEN_FALSE:
		e := &LiteralExpr{Pos: p.current.Position, Value: types.NewBool(false)}
		p.nextToken()
		return e, nil

	case TOKEN_INT:
		val, err := strconv.ParseInt(p.current.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed number '%s'", p.current.Position.Line, p.current.Value)
		}
		e := &LiteralExpr{Pos: p.current.Position, Value: types.NewInt(val)}
		p.nextToken()
		return e, nil

	case TOKEN_FLOAT:
		val, err := strconv.ParseFloat(p.current.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed number '%s'", p.current.Position.Line, p.current.Value)
		}
		e := &LiteralExpr{Pos: p.current.Position, Value: types.NewFloat(val)}
		p.nextToken()
		return e, nil

	case TOKEN_STRING:
		e := &LiteralExpr{Pos: p.current.Position, Value: types.NewStr(p.current.Literal)}
		p.nextToken()
		return e, nil

	case TOKEN_IDENTIFIER:
		e := &IdentifierExpr{Pos: p.current.Position, Name: p.current.Value}
		p.nextToken()
		return e, nil

	case TOKEN_LPAREN:
		pos := p.current.Position
		p.nextToken()
		inner, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expect(TOKEN_RPAREN, "after expression"); err != nil {
			return nil, err
		}
		return &ParenExpr{Pos: pos, Expr: inner}, nil

	case TOKEN_LBRACE:
		return p.parseTableConstructor()

	case TOKEN_FUNCTION:
		return p.parseFunctionLiteral()

	default:
		return nil, fmt.Errorf("line %d: unexpected symbol near '%s'",
			p.current.Position.Line, p.symbol())
	}
}

// parseTableConstructor parses {a = 1, [expr] = v, positional, ...}
func (p *Parser) parseTableConstructor() (Expr, error) {
	pos := p.current.Position
	p.nextToken() // consume '{'

	var entries []TableEntry
	for p.current.Type != TOKEN_RBRACE && p.current.Type != TOKEN_EOF {
		var entry TableEntry

		switch {
		case p.current.Type == TOKEN_IDENTIFIER && p.peek.Type == TOKEN_ASSIGN:
			// name = value
			entry.Key = &LiteralExpr{Pos: p.current.Position, Value: types.NewStr(p.current.Value)}
			p.nextToken() // consume name
			p.nextToken() // consume '='
			value, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			entry.Value = value

		case p.current.Type == TOKEN_LBRACKET:
			// [expr] = value
			p.nextToken()
			key, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			if err := p.expect(TOKEN_RBRACKET, "after table key"); err != nil {
				return nil, err
			}
			if err := p.expect(TOKEN_ASSIGN, "after table key"); err != nil {
				return nil, err
			}
			value, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			entry.Key = key
			entry.Value = value

		default:
			// positional value
			value, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			entry.Value = value
		}

		entries = append(entries, entry)

		if p.current.Type == TOKEN_COMMA || p.current.Type == TOKEN_SEMICOLON {
			p.nextToken()
		} else if p.current.Type != TOKEN_RBRACE {
			return nil, fmt.Errorf("line %d: expected ',' or '}' in table constructor, got '%s'",
				p.current.Position.Line, p.symbol())
		}
	}

	if err := p.expect(TOKEN_RBRACE, "to close table constructor"); err != nil {
		return nil, err
	}
	return &TableExpr{Pos: pos, Entries: entries}, nil
}

// parseFunctionLiteral parses function(params) body end
func (p *Parser) parseFunctionLiteral() (Expr, error) {
	pos := p.current.Position
	p.nextToken() // consume 'function'

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	// The function body is a fresh loop context; break cannot cross it
	savedDepth := p.loopDepth
	p.loopDepth = 0
	body, err := p.parseBody(TOKEN_END)
	p.loopDepth = savedDepth
	if err != nil {
		return nil, err
	}

	if err := p.expect(TOKEN_END, "to close function"); err != nil {
		return nil, err
	}

	return &FunctionExpr{Pos: pos, Params: params, Body: body}, nil
}

// parseParams parses a parenthesized parameter name list
func (p *Parser) parseParams() ([]string, error) {
	if err := p.expect(TOKEN_LPAREN, "after 'function'"); err != nil {
		return nil, err
	}

	var params []string
	if p.current.Type != TOKEN_RPAREN {
		for {
			if p.current.Type != TOKEN_IDENTIFIER {
				return nil, fmt.Errorf("line %d: expected parameter name, got '%s'",
					p.current.Position.Line, p.symbol())
			}
			params = append(params, p.current.Value)
			p.nextToken()
			if p.current.Type != TOKEN_COMMA {
				break
			}
			p.nextToken()
		}
	}

	if err := p.expect(TOKEN_RPAREN, "after parameters"); err != nil {
		return nil, err
	}
	return params, nil
}
