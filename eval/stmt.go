package eval

import (
	"fmt"

	"perch/parser"
	"perch/types"
)

func (ev *Evaluator) evalStmt(stmt parser.Stmt, env *Environment, ctx *types.TaskContext) types.Result {
	if !visit(stmt, ctx) {
		return fail(ctx, types.Err(types.E_TICKS))
	}

	switch s := stmt.(type) {
	case *parser.ExprStmt:
		res := ev.evalExpr(s.Expr, env, ctx)
		if !res.IsNormal() {
			return res
		}
		return types.Ok(types.NewNil())

	case *parser.LocalStmt:
		value := types.Value(types.NewNil())
		if s.Value != nil {
			res := ev.evalExpr(s.Value, env, ctx)
			if !res.IsNormal() {
				return res
			}
			value = res.Val
		}
		env.Define(s.Name, value)
		return types.Ok(types.NewNil())

	case *parser.AssignStmt:
		return ev.evalAssign(s, env, ctx)

	case *parser.IfStmt:
		return ev.evalIf(s, env, ctx)

	case *parser.WhileStmt:
		return ev.evalWhile(s, env, ctx)

	case *parser.ForStmt:
		return ev.evalFor(s, env, ctx)

	case *parser.FunctionStmt:
		env.Set(s.Name, &Closure{
			Name:   s.Name,
			Params: s.Fn.Params,
			Body:   s.Fn.Body,
			Env:    env,
			Pos:    s.Pos,
		})
		return types.Ok(types.NewNil())

	case *parser.ReturnStmt:
		if s.Value == nil {
			return types.Return(types.NewNil())
		}
		res := ev.evalExpr(s.Value, env, ctx)
		if !res.IsNormal() {
			return res
		}
		return types.Return(res.Val)

	case *parser.BreakStmt:
		return types.Break()

	default:
		return fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("cannot execute %T", stmt)))
	}
}

func (ev *Evaluator) evalAssign(s *parser.AssignStmt, env *Environment, ctx *types.TaskContext) types.Result {
	value := ev.evalExpr(s.Value, env, ctx)
	if !value.IsNormal() {
		return value
	}

	switch target := s.Target.(type) {
	case *parser.IdentifierExpr:
		env.Set(target.Name, value.Val)
		return types.Ok(types.NewNil())

	case *parser.FieldExpr:
		obj := ev.evalExpr(target.Object, env, ctx)
		if !obj.IsNormal() {
			return obj
		}
		return ev.setIndex(ctx, obj.Val, types.NewStr(target.Field), value.Val)

	case *parser.IndexExpr:
		obj := ev.evalExpr(target.Object, env, ctx)
		if !obj.IsNormal() {
			return obj
		}
		key := ev.evalExpr(target.Index, env, ctx)
		if !key.IsNormal() {
			return key
		}
		return ev.setIndex(ctx, obj.Val, key.Val, value.Val)

	default:
		return fail(ctx, types.ErrMsg(types.E_TYPE, "cannot assign to this expression"))
	}
}

func (ev *Evaluator) evalIf(s *parser.IfStmt, env *Environment, ctx *types.TaskContext) types.Result {
	cond := ev.evalExpr(s.Condition, env, ctx)
	if !cond.IsNormal() {
		return cond
	}
	if cond.Val.Truthy() {
		return ev.evalBlock(s.Body, env, ctx)
	}

	for _, clause := range s.ElseIfs {
		cond := ev.evalExpr(clause.Condition, env, ctx)
		if !cond.IsNormal() {
			return cond
		}
		if cond.Val.Truthy() {
			return ev.evalBlock(clause.Body, env, ctx)
		}
	}

	if s.Else != nil {
		return ev.evalBlock(s.Else, env, ctx)
	}
	return types.Ok(types.NewNil())
}

func (ev *Evaluator) evalWhile(s *parser.WhileStmt, env *Environment, ctx *types.TaskContext) types.Result {
	for {
		cond := ev.evalExpr(s.Condition, env, ctx)
		if !cond.IsNormal() {
			return cond
		}
		if !cond.Val.Truthy() {
			return types.Ok(types.NewNil())
		}

		res := ev.evalBlock(s.Body, env, ctx)
		if res.IsBreak() {
			return types.Ok(types.NewNil())
		}
		if !res.IsNormal() {
			return res
		}
	}
}

func (ev *Evaluator) evalFor(s *parser.ForStmt, env *Environment, ctx *types.TaskContext) types.Result {
	start, err := ev.evalNumeric(s.Start, env, ctx, "'for' initial value")
	if !err.IsNormal() {
		return err
	}
	limit, err := ev.evalNumeric(s.Limit, env, ctx, "'for' limit")
	if !err.IsNormal() {
		return err
	}
	step := float64(1)
	if s.Step != nil {
		step, err = ev.evalNumeric(s.Step, env, ctx, "'for' step")
		if !err.IsNormal() {
			return err
		}
	}
	if step == 0 {
		return fail(ctx, types.ErrMsg(types.E_ARGS, "'for' step is zero"))
	}

	for i := start; (step > 0 && i <= limit) || (step < 0 && i >= limit); i += step {
		scope := NewChildEnvironment(env)
		if i == float64(int64(i)) {
			scope.Define(s.Var, types.NewInt(int64(i)))
		} else {
			scope.Define(s.Var, types.NewFloat(i))
		}

		res := ev.evalBlock(s.Body, scope, ctx)
		if res.IsBreak() {
			return types.Ok(types.NewNil())
		}
		if !res.IsNormal() {
			return res
		}
	}
	return types.Ok(types.NewNil())
}

func (ev *Evaluator) evalNumeric(expr parser.Expr, env *Environment, ctx *types.TaskContext, what string) (float64, types.Result) {
	res := ev.evalExpr(expr, env, ctx)
	if !res.IsNormal() {
		return 0, res
	}
	switch v := res.Val.(type) {
	case types.IntValue:
		return float64(v.Val), types.Ok(nil)
	case types.FloatValue:
		return v.Val, types.Ok(nil)
	default:
		return 0, fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("%s must be a number", what)))
	}
}

// evalBlock runs statements in a fresh child scope
func (ev *Evaluator) evalBlock(stmts []parser.Stmt, env *Environment, ctx *types.TaskContext) types.Result {
	scope := NewChildEnvironment(env)
	for _, stmt := range stmts {
		res := ev.evalStmt(stmt, scope, ctx)
		if !res.IsNormal() {
			return res
		}
	}
	return types.Ok(types.NewNil())
}
