package parser

import "testing"

// The colon suffix is a method call when a call opener follows the
// method name, and a method reference otherwise. These tests pin the
// boundary between the two.

func TestMethodCallForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  int
	}{
		{"paren args", "t:m(1, 2)", 2},
		{"empty parens", "t:m()", 0},
		{"string sugar", `t:m "s"`, 1},
		{"table sugar", "t:m {}", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := parseExpr(t, tt.input)
			call, ok := expr.(*MethodCallExpr)
			if !ok {
				t.Fatalf("expected *MethodCallExpr, got %T", expr)
			}
			if call.Method != "m" {
				t.Errorf("expected method m, got %q", call.Method)
			}
			if len(call.Args) != tt.args {
				t.Errorf("expected %d args, got %d", tt.args, len(call.Args))
			}
		})
	}
}

func TestMethodReference(t *testing.T) {
	expr := parseExpr(t, "t:m")
	ref, ok := expr.(*MethodRefExpr)
	if !ok {
		t.Fatalf("expected *MethodRefExpr, got %T", expr)
	}
	if ref.Object.Name != "t" || ref.Method != "m" {
		t.Errorf("expected t:m, got %s:%s", ref.Object.Name, ref.Method)
	}
}

func TestMethodReferenceInExpressions(t *testing.T) {
	t.Run("assignment source", func(t *testing.T) {
		stmts := parseProgram(t, "local f = t:m")
		local := stmts[0].(*LocalStmt)
		if _, ok := local.Value.(*MethodRefExpr); !ok {
			t.Errorf("expected method reference initializer, got %T", local.Value)
		}
	})

	t.Run("call argument", func(t *testing.T) {
		expr := parseExpr(t, "register(t:m)")
		call := expr.(*CallExpr)
		if _, ok := call.Args[0].(*MethodRefExpr); !ok {
			t.Errorf("expected method reference argument, got %T", call.Args[0])
		}
	})

	t.Run("comparison operand", func(t *testing.T) {
		expr := parseExpr(t, "t:m == t:m")
		bin, ok := expr.(*BinaryExpr)
		if !ok || bin.Operator != TOKEN_EQ {
			t.Fatalf("expected equality comparison, got %T", expr)
		}
		if _, ok := bin.Left.(*MethodRefExpr); !ok {
			t.Errorf("expected method reference on the left, got %T", bin.Left)
		}
		if _, ok := bin.Right.(*MethodRefExpr); !ok {
			t.Errorf("expected method reference on the right, got %T", bin.Right)
		}
	})

	t.Run("table constructor value", func(t *testing.T) {
		expr := parseExpr(t, "{handler = t:m}")
		tbl := expr.(*TableExpr)
		if _, ok := tbl.Entries[0].Value.(*MethodRefExpr); !ok {
			t.Errorf("expected method reference entry, got %T", tbl.Entries[0].Value)
		}
	})
}

func TestMethodReferenceTerminatesChain(t *testing.T) {
	// t:m(1) continues the chain; a reference does not, so parenthesize
	// to call the referenced value.
	expr := parseExpr(t, "(t:m)(x)")
	call, ok := expr.(*CallExpr)
	if !ok {
		t.Fatalf("expected *CallExpr, got %T", expr)
	}
	paren, ok := call.Callee.(*ParenExpr)
	if !ok {
		t.Fatalf("expected parenthesized callee, got %T", call.Callee)
	}
	if _, ok := paren.Expr.(*MethodRefExpr); !ok {
		t.Errorf("expected method reference inside parens, got %T", paren.Expr)
	}
}

func TestMethodReferenceRequiresBareIdentifier(t *testing.T) {
	// Only name:name is a reference. Longer prefixes keep the old
	// method-call-only error.
	invalid := []string{
		"a.b:c",
		"a[1]:c",
		"(a):c",
		"f():c",
	}
	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			p := NewParser(input)
			_, err := p.ParseExpression(PREC_LOWEST)
			if err == nil {
				t.Fatalf("expected parse error for %q", input)
			}
		})
	}

	// The same prefixes with arguments are still valid method calls
	valid := []string{
		"a.b:c(1)",
		"a[1]:c()",
		"(a):c()",
		`f():c "s"`,
	}
	for _, input := range valid {
		t.Run(input, func(t *testing.T) {
			expr := parseExpr(t, input)
			if _, ok := expr.(*MethodCallExpr); !ok {
				t.Errorf("expected *MethodCallExpr for %q, got %T", input, expr)
			}
		})
	}
}

func TestBareMethodReferenceStatementInvalid(t *testing.T) {
	// A statement must be a call or assignment, so writing t:m alone
	// is still a syntax error.
	p := NewParser("t:m")
	if _, err := p.ParseProgram(); err == nil {
		t.Error("expected syntax error for bare method reference statement")
	}
}

func TestChainedCallThenReference(t *testing.T) {
	// t:m(1):n parses the call, then fails the reference because the
	// base is no longer a bare identifier.
	p := NewParser("t:m(1):n")
	if _, err := p.ParseExpression(PREC_LOWEST); err == nil {
		t.Error("expected error for reference after a call chain")
	}

	// t:m(1):n(2) remains a valid chained method call
	expr := parseExpr(t, "t:m(1):n(2)")
	outer, ok := expr.(*MethodCallExpr)
	if !ok || outer.Method != "n" {
		t.Fatalf("expected chained method call :n, got %T", expr)
	}
	if inner, ok := outer.Object.(*MethodCallExpr); !ok || inner.Method != "m" {
		t.Errorf("expected inner method call :m, got %T", outer.Object)
	}
}
