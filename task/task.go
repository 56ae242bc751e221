// Package task tracks the call stack of a running script and renders
// tracebacks from it.
package task

// Frame is one activation record on the call stack. Elided frames are
// bookkeeping entries that never appear in rendered tracebacks.
type Frame struct {
	Func   string // function name, empty for the main chunk
	Line   int    // current line within this activation
	Elided bool
}

// Task holds the call stack for one script execution
type Task struct {
	frames []Frame
}

// NewTask creates an empty task
func NewTask() *Task {
	return &Task{}
}

// Push adds a frame to the top of the stack
func (t *Task) Push(f Frame) {
	t.frames = append(t.frames, f)
}

// Pop removes the topmost frame
func (t *Task) Pop() {
	if len(t.frames) > 0 {
		t.frames = t.frames[:len(t.frames)-1]
	}
}

// Depth returns the number of frames, elided ones included
func (t *Task) Depth() int {
	return len(t.frames)
}

// VisibleDepth returns the number of frames a traceback would show
func (t *Task) VisibleDepth() int {
	n := 0
	for _, f := range t.frames {
		if !f.Elided {
			n++
		}
	}
	return n
}

// SetLine records the current line in the topmost frame
func (t *Task) SetLine(line int) {
	if len(t.frames) > 0 {
		t.frames[len(t.frames)-1].Line = line
	}
}

// Snapshot returns a copy of the stack, oldest frame first
func (t *Task) Snapshot() []Frame {
	out := make([]Frame, len(t.frames))
	copy(out, t.frames)
	return out
}
