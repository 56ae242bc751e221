package types

// TaskContext holds the execution context for a running script.
// It is passed through all evaluator methods to track:
// - the tick budget (runaway loop protection, the call-abort mechanism)
// - the chunk name and current line (diagnostics)
// - the call stack (as an opaque reference, asserted by the evaluator)
type TaskContext struct {
	TicksRemaining int64  // runaway execution protection
	Chunk          string // chunk name used in error positions and tracebacks
	Line           int    // line currently executing

	// Task is the *task.Task tracking activation frames.
	// Typed as any to avoid a types->task import cycle.
	Task any
}

// DefaultTicks is the tick budget for a fresh context
const DefaultTicks = 500000

// NewTaskContext creates a new task context with default values
func NewTaskContext() *TaskContext {
	return &TaskContext{
		TicksRemaining: DefaultTicks,
		Chunk:          "script",
	}
}

// ConsumeTick decrements the tick budget and reports whether ticks remain
func (ctx *TaskContext) ConsumeTick() bool {
	ctx.TicksRemaining--
	return ctx.TicksRemaining > 0
}
