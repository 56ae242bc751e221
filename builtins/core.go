package builtins

import (
	"fmt"
	"strings"

	"perch/types"
)

// display renders a value for print and tostring: strings appear raw,
// everything else uses its diagnostic form.
func display(v types.Value) string {
	if s, ok := v.(types.StrValue); ok {
		return s.Value()
	}
	return v.String()
}

func (r *Registry) registerCore() {
	r.Register("print", r.builtinPrint)
	r.Register("type", builtinType)
	r.Register("tostring", builtinTostring)
	r.Register("error", builtinError)
	r.Register("assert", builtinAssert)
	r.Register("setmetatable", builtinSetmetatable)
	r.Register("getmetatable", builtinGetmetatable)
	r.Register("rawget", builtinRawget)
	r.Register("rawequal", builtinRawequal)
	r.Register("rawlen", builtinRawlen)
}

func (r *Registry) builtinPrint(ctx *types.TaskContext, args []types.Value) types.Result {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = display(arg)
	}
	fmt.Fprintln(r.out, strings.Join(parts, "\t"))
	return types.Ok(types.NewNil())
}

func builtinType(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) != 1 {
		return types.ErrMsg(types.E_ARGS, "bad argument to 'type' (value expected)")
	}
	return types.Ok(types.NewStr(args[0].Type().String()))
}

func builtinTostring(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) != 1 {
		return types.ErrMsg(types.E_ARGS, "bad argument to 'tostring' (value expected)")
	}
	return types.Ok(types.NewStr(display(args[0])))
}

// builtinError raises a user error. The message carries no position
// prefix; the traceback renderer adds the location of the raising frame.
func builtinError(ctx *types.TaskContext, args []types.Value) types.Result {
	msg := "nil"
	if len(args) > 0 {
		msg = display(args[0])
	}
	return types.ErrMsg(types.E_USER, msg)
}

func builtinAssert(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) == 0 {
		return types.ErrMsg(types.E_ARGS, "bad argument to 'assert' (value expected)")
	}
	if !args[0].Truthy() {
		if len(args) > 1 {
			return types.ErrMsg(types.E_USER, display(args[1]))
		}
		return types.ErrMsg(types.E_USER, "assertion failed!")
	}
	return types.Ok(args[0])
}

func builtinSetmetatable(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) != 2 {
		return types.ErrMsg(types.E_ARGS, "bad arguments to 'setmetatable' (table and metatable expected)")
	}
	tbl, ok := args[0].(*types.TableValue)
	if !ok {
		return types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("bad argument #1 to 'setmetatable' (table expected, got %s)", args[0].Type()))
	}
	switch meta := args[1].(type) {
	case *types.TableValue:
		tbl.SetMeta(meta)
	case types.NilValue:
		tbl.SetMeta(nil)
	default:
		return types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("bad argument #2 to 'setmetatable' (nil or table expected, got %s)", args[1].Type()))
	}
	return types.Ok(tbl)
}

func builtinGetmetatable(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) != 1 {
		return types.ErrMsg(types.E_ARGS, "bad argument to 'getmetatable' (value expected)")
	}
	tbl, ok := args[0].(*types.TableValue)
	if !ok {
		return types.Ok(types.NewNil())
	}
	meta := tbl.Meta()
	if meta == nil {
		return types.Ok(types.NewNil())
	}
	return types.Ok(meta)
}

// builtinRawget reads a table slot without consulting the metatable
func builtinRawget(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) != 2 {
		return types.ErrMsg(types.E_ARGS, "bad arguments to 'rawget' (table and key expected)")
	}
	tbl, ok := args[0].(*types.TableValue)
	if !ok {
		return types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("bad argument #1 to 'rawget' (table expected, got %s)", args[0].Type()))
	}
	return types.Ok(tbl.Get(args[1]))
}

// builtinRawlen counts a table's entries without metatable involvement
func builtinRawlen(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) != 1 {
		return types.ErrMsg(types.E_ARGS, "bad argument to 'rawlen' (table expected)")
	}
	tbl, ok := args[0].(*types.TableValue)
	if !ok {
		return types.ErrMsg(types.E_TYPE,
			fmt.Sprintf("bad argument #1 to 'rawlen' (table expected, got %s)", args[0].Type()))
	}
	return types.Ok(types.NewInt(int64(tbl.Len())))
}

func builtinRawequal(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) != 2 {
		return types.ErrMsg(types.E_ARGS, "bad arguments to 'rawequal' (two values expected)")
	}
	return types.Ok(types.NewBool(args[0].Equal(args[1])))
}
