package task

import (
	"fmt"
	"strings"
)

// FormatTraceback renders an error with its stack, newest frame first.
// The header line uses the position of the topmost visible frame, so
// elided frames never shift the reported location.
func FormatTraceback(chunk, msg string, stack []Frame) []string {
	visible := make([]Frame, 0, len(stack))
	for _, f := range stack {
		if !f.Elided {
			visible = append(visible, f)
		}
	}

	if len(visible) == 0 {
		return []string{fmt.Sprintf("%s: %s", chunk, msg), "stack traceback:", "\t(no stack)"}
	}

	top := visible[len(visible)-1]
	lines := []string{
		fmt.Sprintf("%s:%d: %s", chunk, top.Line, msg),
		"stack traceback:",
	}

	for i := len(visible) - 1; i >= 0; i-- {
		f := visible[i]
		if f.Func == "" {
			lines = append(lines, fmt.Sprintf("\t%s:%d: in main chunk", chunk, f.Line))
		} else {
			lines = append(lines, fmt.Sprintf("\t%s:%d: in function '%s'", chunk, f.Line, f.Func))
		}
	}
	return lines
}

// FormatTracebackString joins the traceback lines for display
func FormatTracebackString(chunk, msg string, stack []Frame) string {
	return strings.Join(FormatTraceback(chunk, msg, stack), "\n")
}
