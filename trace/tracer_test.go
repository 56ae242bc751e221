package trace

import (
	"bytes"
	"strings"
	"testing"
)

func TestTracerDisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	Init(false, nil, &buf)
	defer Init(false, nil, nil)

	Call("f", []string{"1"})
	Return("f", "2")
	if buf.Len() != 0 {
		t.Errorf("disabled tracer should emit nothing, got %q", buf.String())
	}
}

func TestTracerEmitsEvents(t *testing.T) {
	var buf bytes.Buffer
	Init(true, nil, &buf)
	defer Init(false, nil, nil)

	Call("greet", []string{`"hi"`})
	Return("greet", "nil")
	Exception("greet", "E_TYPE", "attempt to call a nil value")
	Bind("t", "m", false)
	Bind("t", "m", true)

	out := buf.String()
	for _, want := range []string{
		`call greet("hi")`,
		"return greet -> nil",
		"raise greet E_TYPE",
		"bind t:m (new)",
		"bind t:m (cached)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTracerFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(true, []string{"handle_*"}, &buf)
	defer Init(false, nil, nil)

	Call("handle_login", nil)
	Call("other", nil)

	out := buf.String()
	if !strings.Contains(out, "handle_login") {
		t.Error("expected matching call to be traced")
	}
	if strings.Contains(out, "other") {
		t.Error("expected non-matching call to be filtered out")
	}
}
