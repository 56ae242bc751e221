// Package eval implements the tree-walking evaluator.
package eval

import (
	"fmt"

	"perch/builtins"
	"perch/parser"
	"perch/task"
	"perch/types"
)

// Evaluator executes parsed programs against an environment
type Evaluator struct {
	globals *Environment
}

// NewEvaluator creates an evaluator with builtins seeded into the
// global scope
func NewEvaluator(reg *builtins.Registry) *Evaluator {
	globals := NewEnvironment()
	for name, fn := range reg.All() {
		globals.Define(name, fn)
	}
	return &Evaluator{globals: globals}
}

// Globals exposes the global scope, mainly for tests and embedding
func (ev *Evaluator) Globals() *Environment {
	return ev.globals
}

// currentTask extracts the frame stack from the context
func currentTask(ctx *types.TaskContext) *task.Task {
	if t, ok := ctx.Task.(*task.Task); ok {
		return t
	}
	return nil
}

// RunChunk executes a whole program as the main chunk and returns the
// final result. Errors come back with a call stack snapshot attached.
func (ev *Evaluator) RunChunk(stmts []parser.Stmt, ctx *types.TaskContext) types.Result {
	if ctx.Task == nil {
		ctx.Task = task.NewTask()
	}
	t := currentTask(ctx)
	t.Push(task.Frame{})
	defer t.Pop()

	// Chunk-level locals live in their own scope above the globals
	scope := NewChildEnvironment(ev.globals)
	for _, stmt := range stmts {
		res := ev.evalStmt(stmt, scope, ctx)
		if res.IsError() {
			return res
		}
		if res.IsReturn() {
			return types.Ok(res.Val)
		}
	}
	return types.Ok(types.NewNil())
}

// visit consumes a tick and records the node's position before a node
// is evaluated. Returns false when the tick budget is exhausted.
func visit(node parser.Node, ctx *types.TaskContext) bool {
	line := node.Position().Line
	ctx.Line = line
	if t := currentTask(ctx); t != nil {
		t.SetLine(line)
	}
	return ctx.ConsumeTick()
}

// fail raises an error and attaches the stack snapshot if none is
// present yet, so the traceback reflects where the error originated.
func fail(ctx *types.TaskContext, res types.Result) types.Result {
	if res.IsError() && res.CallStack == nil {
		if t := currentTask(ctx); t != nil {
			res.CallStack = t.Snapshot()
		}
	}
	return res
}

func (ev *Evaluator) evalExpr(expr parser.Expr, env *Environment, ctx *types.TaskContext) types.Result {
	if !visit(expr, ctx) {
		return fail(ctx, types.Err(types.E_TICKS))
	}

	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return types.Ok(e.Value)

	case *parser.IdentifierExpr:
		v, ok := env.Get(e.Name)
		if !ok {
			return fail(ctx, types.ErrMsg(types.E_VARNF,
				fmt.Sprintf("undefined variable '%s'", e.Name)))
		}
		return types.Ok(v)

	case *parser.ParenExpr:
		return ev.evalExpr(e.Expr, env, ctx)

	case *parser.UnaryExpr:
		return ev.evalUnary(e, env, ctx)

	case *parser.BinaryExpr:
		return ev.evalBinary(e, env, ctx)

	case *parser.IndexExpr:
		obj := ev.evalExpr(e.Object, env, ctx)
		if !obj.IsNormal() {
			return obj
		}
		key := ev.evalExpr(e.Index, env, ctx)
		if !key.IsNormal() {
			return key
		}
		return ev.index(ctx, obj.Val, key.Val)

	case *parser.FieldExpr:
		obj := ev.evalExpr(e.Object, env, ctx)
		if !obj.IsNormal() {
			return obj
		}
		return ev.index(ctx, obj.Val, types.NewStr(e.Field))

	case *parser.CallExpr:
		return ev.evalCall(e, env, ctx)

	case *parser.MethodCallExpr:
		return ev.evalMethodCall(e, env, ctx)

	case *parser.MethodRefExpr:
		return ev.evalMethodRef(e, env, ctx)

	case *parser.FunctionExpr:
		return types.Ok(&Closure{
			Name:   e.Name,
			Params: e.Params,
			Body:   e.Body,
			Env:    env,
			Pos:    e.Pos,
		})

	case *parser.TableExpr:
		return ev.evalTable(e, env, ctx)

	default:
		return fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("cannot evaluate %T", expr)))
	}
}

func (ev *Evaluator) evalTable(e *parser.TableExpr, env *Environment, ctx *types.TaskContext) types.Result {
	tbl := types.NewTable()
	nextIndex := int64(1)

	for _, entry := range e.Entries {
		value := ev.evalExpr(entry.Value, env, ctx)
		if !value.IsNormal() {
			return value
		}

		if entry.Key == nil {
			tbl.Set(types.NewInt(nextIndex), value.Val)
			nextIndex++
			continue
		}

		key := ev.evalExpr(entry.Key, env, ctx)
		if !key.IsNormal() {
			return key
		}
		if types.IsNil(key.Val) {
			return fail(ctx, types.ErrMsg(types.E_TYPE, "table index is nil"))
		}
		tbl.Set(key.Val, value.Val)
	}
	return types.Ok(tbl)
}
