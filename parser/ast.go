package parser

import "perch/types"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// LiteralExpr wraps a constant value (nil, bool, int, float, string)
type LiteralExpr struct {
	Pos   Position
	Value types.Value
}

func (e *LiteralExpr) Position() Position { return e.Pos }
func (e *LiteralExpr) exprNode()          {}

// IdentifierExpr represents a variable reference
type IdentifierExpr struct {
	Pos  Position
	Name string
}

func (e *IdentifierExpr) Position() Position { return e.Pos }
func (e *IdentifierExpr) exprNode()          {}

// UnaryExpr represents a unary operation
type UnaryExpr struct {
	Pos      Position
	Operator TokenType // TOKEN_MINUS or TOKEN_NOT
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	Pos  Position
	Expr Expr
}

func (e *ParenExpr) Position() Position { return e.Pos }
func (e *ParenExpr) exprNode()          {}

// IndexExpr represents indexing: expr[index]
type IndexExpr struct {
	Pos    Position
	Object Expr
	Index  Expr
}

func (e *IndexExpr) Position() Position { return e.Pos }
func (e *IndexExpr) exprNode()          {}

// FieldExpr represents field access: expr.name
type FieldExpr struct {
	Pos    Position
	Object Expr
	Field  string
}

func (e *FieldExpr) Position() Position { return e.Pos }
func (e *FieldExpr) exprNode()          {}

// CallExpr represents a call: expr(args), expr "str", expr {..}
type CallExpr struct {
	Pos    Position
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// MethodCallExpr represents a method call: expr:name(args)
type MethodCallExpr struct {
	Pos    Position
	Object Expr
	Method string
	Args   []Expr
}

func (e *MethodCallExpr) Position() Position { return e.Pos }
func (e *MethodCallExpr) exprNode()          {}

// MethodRefExpr represents a method reference: name:method used as a
// value rather than a call. Both operands are bare identifiers; typing
// Object as *IdentifierExpr makes the restriction structural, so no
// separate validation pass is needed.
type MethodRefExpr struct {
	Pos    Position
	Object *IdentifierExpr
	Method string
}

func (e *MethodRefExpr) Position() Position { return e.Pos }
func (e *MethodRefExpr) exprNode()          {}

// FunctionExpr represents a function literal: function(params) body end
type FunctionExpr struct {
	Pos    Position
	Name   string // set by declaration sugar, empty for anonymous literals
	Params []string
	Body   []Stmt
}

func (e *FunctionExpr) Position() Position { return e.Pos }
func (e *FunctionExpr) exprNode()          {}

// TableEntry is a single table-constructor entry. Key is nil for
// positional entries, which are assigned successive integer keys from 1.
type TableEntry struct {
	Key   Expr
	Value Expr
}

// TableExpr represents a table constructor: {a = 1, [k] = v, positional}
type TableExpr struct {
	Pos     Position
	Entries []TableEntry
}

func (e *TableExpr) Position() Position { return e.Pos }
func (e *TableExpr) exprNode()          {}

// Statement AST nodes

// ExprStmt represents a call expression used as a statement
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) stmtNode()          {}

// LocalStmt represents a local declaration: local name = expr
type LocalStmt struct {
	Pos   Position
	Name  string
	Value Expr // nil means declared without initializer
}

func (s *LocalStmt) Position() Position { return s.Pos }
func (s *LocalStmt) stmtNode()          {}

// AssignStmt represents assignment: target = expr
type AssignStmt struct {
	Pos    Position
	Target Expr // IdentifierExpr, IndexExpr, or FieldExpr
	Value  Expr
}

func (s *AssignStmt) Position() Position { return s.Pos }
func (s *AssignStmt) stmtNode()          {}

// IfStmt represents if/elseif/else/end
type IfStmt struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
	ElseIfs   []*ElseIfClause
	Else      []Stmt // can be nil
}

type ElseIfClause struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
}

func (s *IfStmt) Position() Position { return s.Pos }
func (s *IfStmt) stmtNode()          {}

// WhileStmt represents while loops
type WhileStmt struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
}

func (s *WhileStmt) Position() Position { return s.Pos }
func (s *WhileStmt) stmtNode()          {}

// ForStmt represents numeric for loops: for var = start, limit [, step] do
type ForStmt struct {
	Pos   Position
	Var   string
	Start Expr
	Limit Expr
	Step  Expr // nil means step 1
	Body  []Stmt
}

func (s *ForStmt) Position() Position { return s.Pos }
func (s *ForStmt) stmtNode()          {}

// FunctionStmt represents declaration sugar: function name(params) body end
type FunctionStmt struct {
	Pos  Position
	Name string
	Fn   *FunctionExpr
}

func (s *FunctionStmt) Position() Position { return s.Pos }
func (s *FunctionStmt) stmtNode()          {}

// ReturnStmt represents return statements
type ReturnStmt struct {
	Pos   Position
	Value Expr // can be nil (returns nil)
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}

// BreakStmt represents break statements
type BreakStmt struct {
	Pos Position
}

func (s *BreakStmt) Position() Position { return s.Pos }
func (s *BreakStmt) stmtNode()          {}
