package eval

import (
	"fmt"
	"math"

	"perch/parser"
	"perch/types"
)

func (ev *Evaluator) evalUnary(e *parser.UnaryExpr, env *Environment, ctx *types.TaskContext) types.Result {
	operand := ev.evalExpr(e.Operand, env, ctx)
	if !operand.IsNormal() {
		return operand
	}

	switch e.Operator {
	case parser.TOKEN_NOT:
		return types.Ok(types.NewBool(!operand.Val.Truthy()))

	case parser.TOKEN_MINUS:
		switch v := operand.Val.(type) {
		case types.IntValue:
			return types.Ok(types.NewInt(-v.Val))
		case types.FloatValue:
			return types.Ok(types.NewFloat(-v.Val))
		default:
			return fail(ctx, types.ErrMsg(types.E_TYPE,
				fmt.Sprintf("attempt to perform arithmetic on a %s value", operand.Val.Type())))
		}

	default:
		return fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("unknown unary operator %s", e.Operator)))
	}
}

func (ev *Evaluator) evalBinary(e *parser.BinaryExpr, env *Environment, ctx *types.TaskContext) types.Result {
	// and/or short-circuit, so the right operand only evaluates on demand
	if e.Operator == parser.TOKEN_AND || e.Operator == parser.TOKEN_OR {
		return ev.evalLogical(e, env, ctx)
	}

	left := ev.evalExpr(e.Left, env, ctx)
	if !left.IsNormal() {
		return left
	}
	right := ev.evalExpr(e.Right, env, ctx)
	if !right.IsNormal() {
		return right
	}

	switch e.Operator {
	case parser.TOKEN_PLUS, parser.TOKEN_MINUS, parser.TOKEN_STAR, parser.TOKEN_SLASH, parser.TOKEN_PERCENT:
		return ev.arith(ctx, e.Operator, left.Val, right.Val)
	case parser.TOKEN_CONCAT:
		return ev.concat(ctx, left.Val, right.Val)
	case parser.TOKEN_EQ:
		return types.Ok(types.NewBool(left.Val.Equal(right.Val)))
	case parser.TOKEN_NE:
		return types.Ok(types.NewBool(!left.Val.Equal(right.Val)))
	case parser.TOKEN_LT, parser.TOKEN_LE, parser.TOKEN_GT, parser.TOKEN_GE:
		return ev.compare(ctx, e.Operator, left.Val, right.Val)
	default:
		return fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("unknown operator %s", e.Operator)))
	}
}

// evalLogical implements and/or, which return an operand rather than a
// boolean
func (ev *Evaluator) evalLogical(e *parser.BinaryExpr, env *Environment, ctx *types.TaskContext) types.Result {
	left := ev.evalExpr(e.Left, env, ctx)
	if !left.IsNormal() {
		return left
	}

	if e.Operator == parser.TOKEN_AND {
		if !left.Val.Truthy() {
			return left
		}
		return ev.evalExpr(e.Right, env, ctx)
	}

	// or
	if left.Val.Truthy() {
		return left
	}
	return ev.evalExpr(e.Right, env, ctx)
}

// numOperands extracts numeric operands, promoting to float when the
// two sides differ
func numOperands(a, b types.Value) (ai, bi int64, af, bf float64, isInt, ok bool) {
	switch x := a.(type) {
	case types.IntValue:
		switch y := b.(type) {
		case types.IntValue:
			return x.Val, y.Val, 0, 0, true, true
		case types.FloatValue:
			return 0, 0, float64(x.Val), y.Val, false, true
		}
	case types.FloatValue:
		switch y := b.(type) {
		case types.IntValue:
			return 0, 0, x.Val, float64(y.Val), false, true
		case types.FloatValue:
			return 0, 0, x.Val, y.Val, false, true
		}
	}
	return 0, 0, 0, 0, false, false
}

func (ev *Evaluator) arith(ctx *types.TaskContext, op parser.TokenType, a, b types.Value) types.Result {
	ai, bi, af, bf, isInt, ok := numOperands(a, b)
	if !ok {
		bad := a
		if _, isNum := numValue(a); isNum {
			bad = b
		}
		return fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("attempt to perform arithmetic on a %s value", bad.Type())))
	}

	if isInt {
		switch op {
		case parser.TOKEN_PLUS:
			return types.Ok(types.NewInt(ai + bi))
		case parser.TOKEN_MINUS:
			return types.Ok(types.NewInt(ai - bi))
		case parser.TOKEN_STAR:
			return types.Ok(types.NewInt(ai * bi))
		case parser.TOKEN_SLASH:
			if bi == 0 {
				return fail(ctx, types.Err(types.E_DIV))
			}
			return types.Ok(types.NewInt(ai / bi))
		case parser.TOKEN_PERCENT:
			if bi == 0 {
				return fail(ctx, types.Err(types.E_DIV))
			}
			// Result takes the sign of the divisor
			m := ai % bi
			if m != 0 && (m < 0) != (bi < 0) {
				m += bi
			}
			return types.Ok(types.NewInt(m))
		}
	}

	switch op {
	case parser.TOKEN_PLUS:
		return types.Ok(types.NewFloat(af + bf))
	case parser.TOKEN_MINUS:
		return types.Ok(types.NewFloat(af - bf))
	case parser.TOKEN_STAR:
		return types.Ok(types.NewFloat(af * bf))
	case parser.TOKEN_SLASH:
		return types.Ok(types.NewFloat(af / bf))
	case parser.TOKEN_PERCENT:
		m := math.Mod(af, bf)
		if m != 0 && (m < 0) != (bf < 0) {
			m += bf
		}
		return types.Ok(types.NewFloat(m))
	}
	return fail(ctx, types.ErrMsg(types.E_TYPE, "unknown arithmetic operator"))
}

func numValue(v types.Value) (float64, bool) {
	switch x := v.(type) {
	case types.IntValue:
		return float64(x.Val), true
	case types.FloatValue:
		return x.Val, true
	}
	return 0, false
}

// concat joins strings, coercing numbers the way string concatenation
// traditionally does
func (ev *Evaluator) concat(ctx *types.TaskContext, a, b types.Value) types.Result {
	as, aok := concatString(a)
	bs, bok := concatString(b)
	if !aok {
		return fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("attempt to concatenate a %s value", a.Type())))
	}
	if !bok {
		return fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("attempt to concatenate a %s value", b.Type())))
	}
	return types.Ok(types.NewStr(as + bs))
}

func concatString(v types.Value) (string, bool) {
	switch x := v.(type) {
	case types.StrValue:
		return x.Value(), true
	case types.IntValue, types.FloatValue:
		return x.String(), true
	}
	return "", false
}

func (ev *Evaluator) compare(ctx *types.TaskContext, op parser.TokenType, a, b types.Value) types.Result {
	var cmp int

	if af, aok := numValue(a); aok {
		bf, bok := numValue(b)
		if !bok {
			return fail(ctx, types.ErrMsg(types.E_TYPE,
				fmt.Sprintf("attempt to compare %s with %s", a.Type(), b.Type())))
		}
		switch {
		case af < bf:
			cmp = -1
		case af > bf:
			cmp = 1
		}
	} else if as, aok := a.(types.StrValue); aok {
		bs, bok := b.(types.StrValue)
		if !bok {
			return fail(ctx, types.ErrMsg(types.E_TYPE,
				fmt.Sprintf("attempt to compare %s with %s", a.Type(), b.Type())))
		}
		switch {
		case as.Value() < bs.Value():
			cmp = -1
		case as.Value() > bs.Value():
			cmp = 1
		}
	} else {
		return fail(ctx, types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("attempt to compare %s with %s", a.Type(), b.Type())))
	}

	switch op {
	case parser.TOKEN_LT:
		return types.Ok(types.NewBool(cmp < 0))
	case parser.TOKEN_LE:
		return types.Ok(types.NewBool(cmp <= 0))
	case parser.TOKEN_GT:
		return types.Ok(types.NewBool(cmp > 0))
	case parser.TOKEN_GE:
		return types.Ok(types.NewBool(cmp >= 0))
	}
	return fail(ctx, types.ErrMsg(types.E_TYPE, "unknown comparison operator"))
}
