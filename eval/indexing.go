package eval

import (
	"fmt"

	"perch/types"
)

// maxIndexChain bounds __index metatable recursion
const maxIndexChain = 100

var metaIndexKey = types.NewStr("__index")

// index reads recv[key], following the receiver's __index metatable
// entry when the slot is empty.
func (ev *Evaluator) index(ctx *types.TaskContext, recv, key types.Value) types.Result {
	return ev.indexDepth(ctx, recv, key, 0)
}

func (ev *Evaluator) indexDepth(ctx *types.TaskContext, recv, key types.Value, depth int) types.Result {
	if depth > maxIndexChain {
		return fail(ctx, types.ErrMsg(types.E_INDEX, "'__index' chain too long; possible loop"))
	}

	tbl, ok := recv.(*types.TableValue)
	if !ok {
		return fail(ctx, types.ErrMsg(types.E_INDEX,
			fmt.Sprintf("attempt to index a %s value", recv.Type())))
	}

	v := tbl.Get(key)
	if !types.IsNil(v) {
		return types.Ok(v)
	}

	meta := tbl.Meta()
	if meta == nil {
		return types.Ok(types.NewNil())
	}
	handler := meta.Get(metaIndexKey)
	if types.IsNil(handler) {
		return types.Ok(types.NewNil())
	}

	// A table handler redirects the lookup; a callable handler is
	// invoked with (receiver, key).
	if next, ok := handler.(*types.TableValue); ok {
		return ev.indexDepth(ctx, next, key, depth+1)
	}
	return ev.callValue(ctx, handler, []types.Value{recv, key}, "metamethod '__index'", ctx.Line)
}

// setIndex writes recv[key] without consulting the metatable
func (ev *Evaluator) setIndex(ctx *types.TaskContext, recv, key, value types.Value) types.Result {
	tbl, ok := recv.(*types.TableValue)
	if !ok {
		return fail(ctx, types.ErrMsg(types.E_INDEX,
			fmt.Sprintf("attempt to index a %s value", recv.Type())))
	}
	if types.IsNil(key) {
		return fail(ctx, types.ErrMsg(types.E_TYPE, "table index is nil"))
	}
	tbl.Set(key, value)
	return types.Ok(types.NewNil())
}
