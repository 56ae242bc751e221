package eval

import (
	"testing"

	"perch/builtins"
	"perch/parser"
	"perch/types"
)

// runScript parses and executes a chunk, returning the final result
func runScript(t *testing.T, src string) types.Result {
	t.Helper()
	p := parser.NewParser(src)
	stmts, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	ev := NewEvaluator(builtins.NewRegistry())
	return ev.RunChunk(stmts, types.NewTaskContext())
}

// evalReturn runs a script and requires a normal result value
func evalReturn(t *testing.T, src string) types.Value {
	t.Helper()
	res := runScript(t, src)
	if !res.IsNormal() {
		t.Fatalf("script failed: %s: %s", res.Error, res.ErrorMessage())
	}
	return res.Val
}

// requireError runs a script and requires a specific error code
func requireError(t *testing.T, src string, code types.ErrorCode) types.Result {
	t.Helper()
	res := runScript(t, src)
	if !res.IsError() {
		t.Fatalf("expected %s, got normal result %v", code, res.Val)
	}
	if res.Error != code {
		t.Fatalf("expected %s, got %s: %s", code, res.Error, res.ErrorMessage())
	}
	return res
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want types.Value
	}{
		{"return 1 + 2", types.NewInt(3)},
		{"return 7 - 10", types.NewInt(-3)},
		{"return 3 * 4", types.NewInt(12)},
		{"return 7 / 2", types.NewInt(3)},
		{"return 7.0 / 2", types.NewFloat(3.5)},
		{"return 7 % 3", types.NewInt(1)},
		{"return -7 % 3", types.NewInt(2)},
		{"return 1 + 2.5", types.NewFloat(3.5)},
		{"return -(3)", types.NewInt(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := evalReturn(t, tt.src)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	requireError(t, "return 1 / 0", types.E_DIV)
	requireError(t, "return 1 % 0", types.E_DIV)
}

func TestArithmeticTypeError(t *testing.T) {
	res := requireError(t, `return 1 + "x"`, types.E_TYPE)
	if res.ErrorMessage() != "attempt to perform arithmetic on a str value" {
		t.Errorf("unexpected message: %q", res.ErrorMessage())
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`return "a" .. "b"`, "ab"},
		{`return "n=" .. 42`, "n=42"},
		{`return 1 .. 2`, "12"},
		{`return "pi=" .. 3.5`, "pi=3.5"},
	}
	for _, tt := range tests {
		got := evalReturn(t, tt.src)
		if !got.Equal(types.NewStr(tt.want)) {
			t.Errorf("%s: expected %q, got %v", tt.src, tt.want, got)
		}
	}
	requireError(t, `return "a" .. nil`, types.E_TYPE)
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"return 1 < 2", true},
		{"return 2 <= 2", true},
		{"return 3 > 4", false},
		{"return 1.5 >= 1", true},
		{`return "a" < "b"`, true},
		{"return 1 == 1.0", true},
		{"return nil == false", false},
		{`return "1" == 1`, false},
	}
	for _, tt := range tests {
		got := evalReturn(t, tt.src)
		if !got.Equal(types.NewBool(tt.want)) {
			t.Errorf("%s: expected %v, got %v", tt.src, tt.want, got)
		}
	}
	requireError(t, `return 1 < "a"`, types.E_TYPE)
}

func TestLogicalOperatorsReturnOperands(t *testing.T) {
	tests := []struct {
		src  string
		want types.Value
	}{
		{"return 1 and 2", types.NewInt(2)},
		{"return nil and 2", types.NewNil()},
		{"return false or 3", types.NewInt(3)},
		{"return 1 or 2", types.NewInt(1)},
		{`return nil or "default"`, types.NewStr("default")},
	}
	for _, tt := range tests {
		got := evalReturn(t, tt.src)
		if !got.Equal(tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.src, tt.want, got)
		}
	}
}

func TestShortCircuit(t *testing.T) {
	// The right side must not evaluate when the left decides
	got := evalReturn(t, `
local called = false
function boom() called = true end
local x = false and boom()
local y = true or boom()
return called`)
	if !got.Equal(types.NewBool(false)) {
		t.Error("short-circuit operand was evaluated")
	}
}

func TestUndefinedVariable(t *testing.T) {
	res := requireError(t, "return missing", types.E_VARNF)
	if res.ErrorMessage() != "undefined variable 'missing'" {
		t.Errorf("unexpected message: %q", res.ErrorMessage())
	}
}

func TestLocalScoping(t *testing.T) {
	got := evalReturn(t, `
local x = 1
if true then
  local x = 2
end
return x`)
	if !got.Equal(types.NewInt(1)) {
		t.Errorf("inner local leaked, got %v", got)
	}
}

func TestGlobalAssignment(t *testing.T) {
	got := evalReturn(t, `
function set() g = 7 end
set()
return g`)
	if !got.Equal(types.NewInt(7)) {
		t.Errorf("expected global assignment to stick, got %v", got)
	}
}

func TestTables(t *testing.T) {
	got := evalReturn(t, `
local t = {x = 1, [2] = "two", "first"}
return t.x`)
	if !got.Equal(types.NewInt(1)) {
		t.Errorf("expected 1, got %v", got)
	}

	got = evalReturn(t, `
local t = {"a", "b", "c"}
return t[2]`)
	if !got.Equal(types.NewStr("b")) {
		t.Errorf("expected positional entry, got %v", got)
	}

	got = evalReturn(t, `
local t = {}
t.k = 5
t.k = nil
return t.k`)
	if !types.IsNil(got) {
		t.Errorf("assigning nil should clear the slot, got %v", got)
	}
}

func TestIndexNonTable(t *testing.T) {
	res := requireError(t, "local x = 1\nreturn x.field", types.E_INDEX)
	if res.ErrorMessage() != "attempt to index a int value" {
		t.Errorf("unexpected message: %q", res.ErrorMessage())
	}
	requireError(t, "local s = \"str\"\nreturn s[1]", types.E_INDEX)
}

func TestMetatableIndex(t *testing.T) {
	got := evalReturn(t, `
local base = {greet = "hello"}
local t = setmetatable({}, {__index = base})
return t.greet`)
	if !got.Equal(types.NewStr("hello")) {
		t.Errorf("expected __index fallback, got %v", got)
	}

	// Function handler receives (receiver, key)
	got = evalReturn(t, `
local t = setmetatable({}, {__index = function(recv, key) return key .. "!" end})
return t.missing`)
	if !got.Equal(types.NewStr("missing!")) {
		t.Errorf("expected handler result, got %v", got)
	}
}

func TestCallableTable(t *testing.T) {
	got := evalReturn(t, `
local t = setmetatable({}, {__call = function(self, x) return x * 2 end})
return t(21)`)
	if !got.Equal(types.NewInt(42)) {
		t.Errorf("expected __call dispatch, got %v", got)
	}
}

func TestFunctions(t *testing.T) {
	got := evalReturn(t, `
function add(a, b) return a + b end
return add(2, 3)`)
	if !got.Equal(types.NewInt(5)) {
		t.Errorf("expected 5, got %v", got)
	}

	// Missing arguments become nil, extras are dropped
	got = evalReturn(t, `
function probe(a, b) return b end
return probe(1)`)
	if !types.IsNil(got) {
		t.Errorf("missing arg should be nil, got %v", got)
	}

	got = evalReturn(t, `
function one(a) return a end
return one(1, 2, 3)`)
	if !got.Equal(types.NewInt(1)) {
		t.Errorf("extra args should be dropped, got %v", got)
	}
}

func TestClosures(t *testing.T) {
	got := evalReturn(t, `
function counter()
  local n = 0
  return function()
    n = n + 1
    return n
  end
end
local c = counter()
c()
c()
return c()`)
	if !got.Equal(types.NewInt(3)) {
		t.Errorf("expected captured state 3, got %v", got)
	}
}

func TestCallNonFunction(t *testing.T) {
	res := requireError(t, "local x = 5\nreturn x()", types.E_NOTCALLABLE)
	if res.ErrorMessage() != "attempt to call a int value (local 'x')" {
		t.Errorf("unexpected message: %q", res.ErrorMessage())
	}
}

func TestControlFlow(t *testing.T) {
	got := evalReturn(t, `
local x = 15
if x < 10 then
  return "small"
elseif x < 20 then
  return "medium"
else
  return "large"
end`)
	if !got.Equal(types.NewStr("medium")) {
		t.Errorf("expected medium, got %v", got)
	}
}

func TestWhileLoop(t *testing.T) {
	got := evalReturn(t, `
local sum = 0
local i = 1
while i <= 10 do
  sum = sum + i
  i = i + 1
end
return sum`)
	if !got.Equal(types.NewInt(55)) {
		t.Errorf("expected 55, got %v", got)
	}
}

func TestForLoop(t *testing.T) {
	got := evalReturn(t, `
local sum = 0
for i = 1, 5 do sum = sum + i end
return sum`)
	if !got.Equal(types.NewInt(15)) {
		t.Errorf("expected 15, got %v", got)
	}

	got = evalReturn(t, `
local out = ""
for i = 3, 1, -1 do out = out .. i end
return out`)
	if !got.Equal(types.NewStr("321")) {
		t.Errorf("expected countdown, got %v", got)
	}

	requireError(t, "for i = 1, 5, 0 do end", types.E_ARGS)
}

func TestBreak(t *testing.T) {
	got := evalReturn(t, `
local n = 0
while true do
  n = n + 1
  if n == 4 then break end
end
return n`)
	if !got.Equal(types.NewInt(4)) {
		t.Errorf("expected break at 4, got %v", got)
	}
}

func TestTickBudget(t *testing.T) {
	p := parser.NewParser("while true do end")
	stmts, err := p.ParseProgram()
	if err != nil {
		t.Fatal(err)
	}
	ev := NewEvaluator(builtins.NewRegistry())
	ctx := types.NewTaskContext()
	ctx.TicksRemaining = 1000
	res := ev.RunChunk(stmts, ctx)
	if !res.IsError() || res.Error != types.E_TICKS {
		t.Fatalf("expected tick exhaustion, got %+v", res)
	}
}

func TestMethodCall(t *testing.T) {
	got := evalReturn(t, `
local account = {balance = 100}
account.deposit = function(self, amount)
  self.balance = self.balance + amount
  return self.balance
end
return account:deposit(50)`)
	if !got.Equal(types.NewInt(150)) {
		t.Errorf("expected 150, got %v", got)
	}
}
