package parser

import (
	"testing"

	"perch/types"
)

func parseExpr(t *testing.T, input string) Expr {
	t.Helper()
	p := NewParser(input)
	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		t.Fatalf("parse error for %q: %v", input, err)
	}
	return expr
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  types.Value
	}{
		{"nil", types.NewNil()},
		{"true", types.NewBool(true)},
		{"false", types.NewBool(false)},
		{"42", types.NewInt(42)},
		{"3.5", types.NewFloat(3.5)},
		{`"hello"`, types.NewStr("hello")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := parseExpr(t, tt.input)
			lit, ok := expr.(*LiteralExpr)
			if !ok {
				t.Fatalf("expected *LiteralExpr, got %T", expr)
			}
			if !lit.Value.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, lit.Value)
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 groups as 1 + (2 * 3)
	expr := parseExpr(t, "1 + 2 * 3")
	bin, ok := expr.(*BinaryExpr)
	if !ok || bin.Operator != TOKEN_PLUS {
		t.Fatalf("expected top-level +, got %T", expr)
	}
	right, ok := bin.Right.(*BinaryExpr)
	if !ok || right.Operator != TOKEN_STAR {
		t.Fatalf("expected * on the right, got %T", bin.Right)
	}
}

func TestParseConcatRightAssoc(t *testing.T) {
	// a .. b .. c groups as a .. (b .. c)
	expr := parseExpr(t, "a .. b .. c")
	bin, ok := expr.(*BinaryExpr)
	if !ok || bin.Operator != TOKEN_CONCAT {
		t.Fatalf("expected top-level .., got %T", expr)
	}
	if _, ok := bin.Left.(*IdentifierExpr); !ok {
		t.Errorf("expected identifier on the left, got %T", bin.Left)
	}
	if right, ok := bin.Right.(*BinaryExpr); !ok || right.Operator != TOKEN_CONCAT {
		t.Errorf("expected .. on the right, got %T", bin.Right)
	}
}

func TestParseComparisonBelowArith(t *testing.T) {
	// a + 1 < b * 2 groups as (a + 1) < (b * 2)
	expr := parseExpr(t, "a + 1 < b * 2")
	bin, ok := expr.(*BinaryExpr)
	if !ok || bin.Operator != TOKEN_LT {
		t.Fatalf("expected top-level <, got %T", expr)
	}
}

func TestParseLogicalPrecedence(t *testing.T) {
	// a or b and c groups as a or (b and c)
	expr := parseExpr(t, "a or b and c")
	bin, ok := expr.(*BinaryExpr)
	if !ok || bin.Operator != TOKEN_OR {
		t.Fatalf("expected top-level or, got %T", expr)
	}
	if right, ok := bin.Right.(*BinaryExpr); !ok || right.Operator != TOKEN_AND {
		t.Errorf("expected and on the right, got %T", bin.Right)
	}
}

func TestParseUnary(t *testing.T) {
	expr := parseExpr(t, "-x + 1")
	bin, ok := expr.(*BinaryExpr)
	if !ok || bin.Operator != TOKEN_PLUS {
		t.Fatalf("expected top-level +, got %T", expr)
	}
	un, ok := bin.Left.(*UnaryExpr)
	if !ok || un.Operator != TOKEN_MINUS {
		t.Fatalf("expected unary minus on the left, got %T", bin.Left)
	}

	expr = parseExpr(t, "not a == b")
	if bin, ok := expr.(*BinaryExpr); !ok || bin.Operator != TOKEN_EQ {
		t.Fatalf("expected (not a) == b, got %T", expr)
	}
}

func TestParseSuffixChain(t *testing.T) {
	// a.b[1].c(2) nests field, index, field, call
	expr := parseExpr(t, "a.b[1].c(2)")
	call, ok := expr.(*CallExpr)
	if !ok {
		t.Fatalf("expected *CallExpr, got %T", expr)
	}
	field, ok := call.Callee.(*FieldExpr)
	if !ok || field.Field != "c" {
		t.Fatalf("expected field access .c, got %T", call.Callee)
	}
	index, ok := field.Object.(*IndexExpr)
	if !ok {
		t.Fatalf("expected index expression, got %T", field.Object)
	}
	if inner, ok := index.Object.(*FieldExpr); !ok || inner.Field != "b" {
		t.Fatalf("expected field access .b, got %T", index.Object)
	}
}

func TestParseCallSugar(t *testing.T) {
	t.Run("string argument", func(t *testing.T) {
		expr := parseExpr(t, `print "hello"`)
		call, ok := expr.(*CallExpr)
		if !ok {
			t.Fatalf("expected *CallExpr, got %T", expr)
		}
		if len(call.Args) != 1 {
			t.Fatalf("expected 1 argument, got %d", len(call.Args))
		}
		lit, ok := call.Args[0].(*LiteralExpr)
		if !ok || !lit.Value.Equal(types.NewStr("hello")) {
			t.Errorf("expected string literal argument, got %v", call.Args[0])
		}
	})

	t.Run("table argument", func(t *testing.T) {
		expr := parseExpr(t, "setup {debug = true}")
		call, ok := expr.(*CallExpr)
		if !ok {
			t.Fatalf("expected *CallExpr, got %T", expr)
		}
		if len(call.Args) != 1 {
			t.Fatalf("expected 1 argument, got %d", len(call.Args))
		}
		if _, ok := call.Args[0].(*TableExpr); !ok {
			t.Errorf("expected table constructor argument, got %T", call.Args[0])
		}
	})
}

func TestParseTableConstructor(t *testing.T) {
	expr := parseExpr(t, `{x = 1, [2] = "two", 3; 4}`)
	tbl, ok := expr.(*TableExpr)
	if !ok {
		t.Fatalf("expected *TableExpr, got %T", expr)
	}
	if len(tbl.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(tbl.Entries))
	}
	if tbl.Entries[0].Key == nil || tbl.Entries[1].Key == nil {
		t.Errorf("expected keyed entries first")
	}
	if tbl.Entries[2].Key != nil || tbl.Entries[3].Key != nil {
		t.Errorf("expected positional entries last")
	}
}

func TestParseFunctionLiteral(t *testing.T) {
	expr := parseExpr(t, "function(a, b) return a + b end")
	fn, ok := expr.(*FunctionExpr)
	if !ok {
		t.Fatalf("expected *FunctionExpr, got %T", expr)
	}
	if len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
		t.Errorf("expected params [a b], got %v", fn.Params)
	}
	if len(fn.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(fn.Body))
	}
}

func TestParseLiteralsTakeNoSuffix(t *testing.T) {
	// "abc".x is not valid prefix syntax
	p := NewParser(`"abc".x`)
	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := expr.(*LiteralExpr); !ok {
		t.Fatalf("expected the literal alone, got %T", expr)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"1 +",
		"(a",
		"a[1",
		"a.",
		"{x = }",
		"~x",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			p := NewParser(input)
			if _, err := p.ParseExpression(PREC_LOWEST); err == nil {
				t.Errorf("expected parse error for %q", input)
			}
		})
	}
}
