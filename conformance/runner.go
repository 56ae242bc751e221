package conformance

import (
	"bytes"
	"fmt"
	"strings"

	"perch/builtins"
	"perch/eval"
	"perch/parser"
	"perch/task"
	"perch/types"
)

// Outcome is the observed result of one test case
type Outcome struct {
	Result    types.Result
	Output    string
	Traceback []string
	ParseErr  error
}

// Run executes a test case and returns the observed outcome
func Run(tc TestCase) Outcome {
	p := parser.NewParser(tc.Script)
	stmts, err := p.ParseProgram()
	if err != nil {
		return Outcome{ParseErr: err}
	}

	reg := builtins.NewRegistry()
	var buf bytes.Buffer
	reg.SetOutput(&buf)

	ev := eval.NewEvaluator(reg)
	ctx := types.NewTaskContext()
	res := ev.RunChunk(stmts, ctx)

	out := Outcome{Result: res, Output: buf.String()}
	if res.IsError() {
		if stack, ok := res.CallStack.([]task.Frame); ok {
			out.Traceback = task.FormatTraceback(ctx.Chunk, res.ErrorMessage(), stack)
		}
	}
	return out
}

// Check compares the observed outcome against the case's expectation,
// returning a list of discrepancies
func Check(tc TestCase, got Outcome) []string {
	var problems []string

	if tc.Expect.Error == "" {
		if got.ParseErr != nil {
			return []string{fmt.Sprintf("unexpected parse error: %v", got.ParseErr)}
		}
		if got.Result.IsError() {
			return []string{fmt.Sprintf("unexpected runtime error %s: %s",
				got.Result.Error, got.Result.ErrorMessage())}
		}
		if tc.Expect.Value != nil {
			want := expectedValue(tc.Expect.Value)
			if !got.Result.Val.Equal(want) {
				problems = append(problems, fmt.Sprintf("expected value %v, got %v",
					want, got.Result.Val))
			}
		}
	} else if tc.Expect.Error == "SyntaxError" {
		if got.ParseErr == nil {
			problems = append(problems, "expected a syntax error, script parsed")
		} else if tc.Expect.Message != "" && !strings.Contains(got.ParseErr.Error(), tc.Expect.Message) {
			problems = append(problems, fmt.Sprintf("expected parse error containing %q, got %q",
				tc.Expect.Message, got.ParseErr.Error()))
		}
	} else {
		if got.ParseErr != nil {
			return []string{fmt.Sprintf("unexpected parse error: %v", got.ParseErr)}
		}
		code, ok := types.ErrorFromString(tc.Expect.Error)
		if !ok {
			return []string{fmt.Sprintf("unknown error code %q in expectation", tc.Expect.Error)}
		}
		if !got.Result.IsError() {
			problems = append(problems, fmt.Sprintf("expected %s, script succeeded with %v",
				code, got.Result.Val))
		} else {
			if got.Result.Error != code {
				problems = append(problems, fmt.Sprintf("expected %s, got %s",
					code, got.Result.Error))
			}
			if tc.Expect.Message != "" && got.Result.ErrorMessage() != tc.Expect.Message {
				problems = append(problems, fmt.Sprintf("expected message %q, got %q",
					tc.Expect.Message, got.Result.ErrorMessage()))
			}
			if len(tc.Expect.Traceback) > 0 {
				want := strings.Join(tc.Expect.Traceback, "\n")
				have := strings.Join(got.Traceback, "\n")
				if want != have {
					problems = append(problems, fmt.Sprintf("traceback mismatch:\n%s\n--- want ---\n%s",
						have, want))
				}
			}
		}
	}

	if tc.Expect.Output != "" && got.Output != tc.Expect.Output {
		problems = append(problems, fmt.Sprintf("expected output %q, got %q",
			tc.Expect.Output, got.Output))
	}
	return problems
}

// expectedValue converts a yaml scalar into the equivalent script value
func expectedValue(v any) types.Value {
	switch x := v.(type) {
	case bool:
		return types.NewBool(x)
	case int:
		return types.NewInt(int64(x))
	case int64:
		return types.NewInt(x)
	case float64:
		return types.NewFloat(x)
	case string:
		return types.NewStr(x)
	default:
		return types.NewNil()
	}
}
