package parser

import "fmt"

// ParseProgram parses a complete chunk of statements until EOF
func (p *Parser) ParseProgram() ([]Stmt, error) {
	var stmts []Stmt
	for p.current.Type != TOKEN_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// parseBody parses statements until one of the terminator tokens is reached.
// The terminator itself is not consumed.
func (p *Parser) parseBody(terminators ...TokenType) ([]Stmt, error) {
	var stmts []Stmt
	for {
		if p.current.Type == TOKEN_EOF {
			return nil, fmt.Errorf("line %d: unexpected <eof>, unterminated block",
				p.current.Position.Line)
		}
		for _, t := range terminators {
			if p.current.Type == t {
				return stmts, nil
			}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case TOKEN_SEMICOLON:
		p.nextToken()
		return nil, nil
	case TOKEN_IF:
		return p.parseIf()
	case TOKEN_WHILE:
		return p.parseWhile()
	case TOKEN_FOR:
		return p.parseFor()
	case TOKEN_LOCAL:
		return p.parseLocal()
	case TOKEN_FUNCTION:
		return p.parseFunctionStmt()
	case TOKEN_RETURN:
		return p.parseReturn()
	case TOKEN_BREAK:
		if p.loopDepth == 0 {
			return nil, fmt.Errorf("line %d: break outside a loop",
				p.current.Position.Line)
		}
		stmt := &BreakStmt{Pos: p.current.Position}
		p.nextToken()
		return stmt, nil
	default:
		return p.parseExprOrAssign()
	}
}

// parseExprOrAssign handles the statement forms that begin with an
// expression: assignments and call statements. A suffixed expression
// that is neither is a syntax error, so a bare method reference cannot
// stand alone as a statement.
func (p *Parser) parseExprOrAssign() (Stmt, error) {
	pos := p.current.Position
	expr, err := p.parseSuffixed()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TOKEN_ASSIGN {
		switch expr.(type) {
		case *IdentifierExpr, *FieldExpr, *IndexExpr:
		default:
			return nil, fmt.Errorf("line %d: cannot assign to this expression", pos.Line)
		}
		p.nextToken()
		value, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Pos: pos, Target: expr, Value: value}, nil
	}

	switch expr.(type) {
	case *CallExpr, *MethodCallExpr:
		return &ExprStmt{Pos: pos, Expr: expr}, nil
	}
	return nil, fmt.Errorf("line %d: syntax error near '%s'", pos.Line, p.symbol())
}

func (p *Parser) parseIf() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'if'

	cond, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(TOKEN_THEN, "after if condition"); err != nil {
		return nil, err
	}

	body, err := p.parseBody(TOKEN_ELSEIF, TOKEN_ELSE, TOKEN_END)
	if err != nil {
		return nil, err
	}

	stmt := &IfStmt{Pos: pos, Condition: cond, Body: body}

	for p.current.Type == TOKEN_ELSEIF {
		clausePos := p.current.Position
		p.nextToken()
		clauseCond, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expect(TOKEN_THEN, "after elseif condition"); err != nil {
			return nil, err
		}
		clauseBody, err := p.parseBody(TOKEN_ELSEIF, TOKEN_ELSE, TOKEN_END)
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, &ElseIfClause{Pos: clausePos, Condition: clauseCond, Body: clauseBody})
	}

	if p.current.Type == TOKEN_ELSE {
		p.nextToken()
		elseBody, err := p.parseBody(TOKEN_END)
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBody
	}

	if err := p.expect(TOKEN_END, "to close if"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'while'

	cond, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(TOKEN_DO, "after while condition"); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.parseBody(TOKEN_END)
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	if err := p.expect(TOKEN_END, "to close while"); err != nil {
		return nil, err
	}
	return &WhileStmt{Pos: pos, Condition: cond, Body: body}, nil
}

func (p *Parser) parseFor() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'for'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, fmt.Errorf("line %d: expected loop variable name, got '%s'",
			p.current.Position.Line, p.symbol())
	}
	name := p.current.Value
	p.nextToken()

	if err := p.expect(TOKEN_ASSIGN, "after loop variable"); err != nil {
		return nil, err
	}

	start, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(TOKEN_COMMA, "after loop start value"); err != nil {
		return nil, err
	}
	limit, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}

	var step Expr
	if p.current.Type == TOKEN_COMMA {
		p.nextToken()
		step, err = p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(TOKEN_DO, "after for header"); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.parseBody(TOKEN_END)
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	if err := p.expect(TOKEN_END, "to close for"); err != nil {
		return nil, err
	}

	return &ForStmt{Pos: pos, Var: name, Start: start, Limit: limit, Step: step, Body: body}, nil
}

func (p *Parser) parseLocal() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'local'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, fmt.Errorf("line %d: expected name after 'local', got '%s'",
			p.current.Position.Line, p.symbol())
	}
	name := p.current.Value
	p.nextToken()

	stmt := &LocalStmt{Pos: pos, Name: name}
	if p.current.Type == TOKEN_ASSIGN {
		p.nextToken()
		value, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	return stmt, nil
}

func (p *Parser) parseFunctionStmt() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'function'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, fmt.Errorf("line %d: expected function name, got '%s'",
			p.current.Position.Line, p.symbol())
	}
	name := p.current.Value
	p.nextToken()

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

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

	fn := &FunctionExpr{Pos: pos, Name: name, Params: params, Body: body}
	return &FunctionStmt{Pos: pos, Name: name, Fn: fn}, nil
}

func (p *Parser) parseReturn() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'return'

	stmt := &ReturnStmt{Pos: pos}

	// return may be followed by a value, or end the block directly
	switch p.current.Type {
	case TOKEN_END, TOKEN_ELSE, TOKEN_ELSEIF, TOKEN_EOF, TOKEN_SEMICOLON:
		if p.current.Type == TOKEN_SEMICOLON {
			p.nextToken()
		}
		return stmt, nil
	}

	value, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.current.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
	return stmt, nil
}
