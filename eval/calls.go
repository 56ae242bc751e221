package eval

import (
	"fmt"
	"strings"

	"perch/parser"
	"perch/task"
	"perch/trace"
	"perch/types"
)

var metaCallKey = types.NewStr("__call")

func (ev *Evaluator) evalCall(e *parser.CallExpr, env *Environment, ctx *types.TaskContext) types.Result {
	callee := ev.evalExpr(e.Callee, env, ctx)
	if !callee.IsNormal() {
		return callee
	}

	args, res := ev.evalArgs(e.Args, env, ctx)
	if !res.IsNormal() {
		return res
	}

	what := ""
	if ident, ok := e.Callee.(*parser.IdentifierExpr); ok {
		kind := "global"
		if env.isLocal(ev.globals, ident.Name) {
			kind = "local"
		}
		what = fmt.Sprintf("%s '%s'", kind, ident.Name)
	}
	return ev.callValue(ctx, callee.Val, args, what, e.Pos.Line)
}

func (ev *Evaluator) evalMethodCall(e *parser.MethodCallExpr, env *Environment, ctx *types.TaskContext) types.Result {
	obj := ev.evalExpr(e.Object, env, ctx)
	if !obj.IsNormal() {
		return obj
	}

	method := ev.index(ctx, obj.Val, types.NewStr(e.Method))
	if !method.IsNormal() {
		return method
	}

	args, res := ev.evalArgs(e.Args, env, ctx)
	if !res.IsNormal() {
		return res
	}

	// The receiver rides along as the implicit first argument
	full := append([]types.Value{obj.Val}, args...)
	return ev.callValue(ctx, method.Val, full, fmt.Sprintf("method '%s'", e.Method), e.Pos.Line)
}

func (ev *Evaluator) evalArgs(exprs []parser.Expr, env *Environment, ctx *types.TaskContext) ([]types.Value, types.Result) {
	args := make([]types.Value, 0, len(exprs))
	for _, expr := range exprs {
		res := ev.evalExpr(expr, env, ctx)
		if !res.IsNormal() {
			return nil, res
		}
		args = append(args, res.Val)
	}
	return args, types.Ok(nil)
}

// callValue dispatches a call on any value. The what string names the
// call site for diagnostics ("method 'm'", "global 'f'") so a direct
// call and a bound invocation of the same method report identically.
func (ev *Evaluator) callValue(ctx *types.TaskContext, callee types.Value, args []types.Value, what string, line int) types.Result {
	switch fn := callee.(type) {
	case *Closure:
		return ev.callClosure(ctx, fn, args, what, line)

	case *types.BuiltinValue:
		if trace.IsEnabled() {
			trace.Call(fn.Name, traceArgs(args))
		}
		res := fn.Fn(ctx, args)
		if res.IsError() {
			if trace.IsEnabled() {
				trace.Exception(fn.Name, res.Error.String(), res.ErrorMessage())
			}
			return fail(ctx, res)
		}
		if trace.IsEnabled() && res.IsNormal() {
			trace.Return(fn.Name, res.Val.String())
		}
		return res

	case *types.BoundValue:
		return ev.callBound(ctx, fn, args, line)

	case *types.TableValue:
		// A table with a __call metamethod is callable; the table
		// itself becomes the first argument.
		if meta := fn.Meta(); meta != nil {
			handler := meta.Get(metaCallKey)
			if !types.IsNil(handler) {
				full := append([]types.Value{callee}, args...)
				return ev.callValue(ctx, handler, full, what, line)
			}
		}
		return fail(ctx, notCallable(callee, what))

	default:
		return fail(ctx, notCallable(callee, what))
	}
}

func notCallable(v types.Value, what string) types.Result {
	msg := fmt.Sprintf("attempt to call a %s value", v.Type())
	if what != "" {
		msg += " (" + what + ")"
	}
	return types.ErrMsg(types.E_NOTCALLABLE, msg)
}

func (ev *Evaluator) callClosure(ctx *types.TaskContext, fn *Closure, args []types.Value, what string, line int) types.Result {
	name := fn.frameName()
	if fn.Name == "" {
		// Anonymous closures take their traceback name from the call
		// site when one is available.
		if n := nameFromSite(what); n != "" {
			name = n
		}
	}

	t := currentTask(ctx)
	if t != nil {
		t.Push(task.Frame{Func: name, Line: line})
		defer t.Pop()
	}

	if trace.IsEnabled() {
		trace.Call(name, traceArgs(args))
	}

	scope := NewChildEnvironment(fn.Env)
	for i, param := range fn.Params {
		if i < len(args) {
			scope.Define(param, args[i])
		} else {
			scope.Define(param, types.NewNil())
		}
	}
	// extra arguments beyond the parameter list are dropped

	for _, stmt := range fn.Body {
		res := ev.evalStmt(stmt, scope, ctx)
		if res.IsError() {
			if trace.IsEnabled() {
				trace.Exception(name, res.Error.String(), res.ErrorMessage())
			}
			return res
		}
		if res.IsReturn() {
			if trace.IsEnabled() {
				trace.Return(name, res.Val.String())
			}
			return types.Ok(res.Val)
		}
		if res.IsBreak() {
			return fail(ctx, types.ErrMsg(types.E_TYPE, "break outside a loop"))
		}
	}

	if trace.IsEnabled() {
		trace.Return(name, "nil")
	}
	return types.Ok(types.NewNil())
}

// nameFromSite pulls the quoted name out of a call-site description
// like "method 'm'" or "global 'f'"
func nameFromSite(what string) string {
	open := strings.IndexByte(what, '\'')
	if open < 0 {
		return ""
	}
	rest := what[open+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// callBound invokes a bound method value: the method is looked up on
// the receiver at call time, the receiver is prepended, and the
// dispatch frame is elided so tracebacks match a direct call.
func (ev *Evaluator) callBound(ctx *types.TaskContext, b *types.BoundValue, args []types.Value, line int) types.Result {
	t := currentTask(ctx)
	if t != nil {
		t.Push(task.Frame{Func: b.Method(), Line: line, Elided: true})
		defer t.Pop()
	}

	method := ev.index(ctx, b.Receiver(), types.NewStr(b.Method()))
	if !method.IsNormal() {
		return method
	}

	full := append([]types.Value{b.Receiver()}, args...)
	return ev.callValue(ctx, method.Val, full, fmt.Sprintf("method '%s'", b.Method()), line)
}

func traceArgs(args []types.Value) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.String()
	}
	return out
}
