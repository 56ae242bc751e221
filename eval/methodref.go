package eval

import (
	"fmt"

	"perch/parser"
	"perch/trace"
	"perch/types"
)

// evalMethodRef evaluates obj:method used as a value. The receiver and
// the method slot are validated eagerly, so a bad reference fails where
// it is written rather than where it is eventually called. Callability
// is not checked here: a non-function slot only fails on invocation,
// matching direct call behavior.
func (ev *Evaluator) evalMethodRef(e *parser.MethodRefExpr, env *Environment, ctx *types.TaskContext) types.Result {
	obj := ev.evalExpr(e.Object, env, ctx)
	if !obj.IsNormal() {
		return obj
	}

	// Runs the full lookup, metatable handlers included, exactly once
	// per evaluation.
	method := ev.index(ctx, obj.Val, types.NewStr(e.Method))
	if !method.IsNormal() {
		return method
	}
	if types.IsNil(method.Val) {
		return fail(ctx, types.ErrMsg(types.E_NILMETHOD,
			fmt.Sprintf("method '%s' is nil", e.Method)))
	}

	recv := obj.Val.(*types.TableValue)
	bound, cached := recv.BoundMethod(e.Method)
	if trace.IsEnabled() {
		trace.Bind(e.Object.Name, e.Method, cached)
	}
	return types.Ok(bound)
}
