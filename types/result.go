package types

// ControlFlow represents the control flow state of evaluation
type ControlFlow int

const (
	FlowNormal    ControlFlow = iota // Normal execution
	FlowReturn                       // Return statement
	FlowBreak                        // Break statement
	FlowException                    // runtime error being raised
)

// Result represents the outcome of evaluating an expression or statement.
// It unifies normal values, control flow (return/break), and errors so
// every evaluator method has a single propagation channel.
type Result struct {
	Val     Value       // The value (if Flow == FlowNormal or FlowReturn)
	Flow    ControlFlow // Control flow state
	Error   ErrorCode   // Only set when Flow == FlowException
	Message string      // Optional detail; empty means Error.Message()

	// CallStack holds a []task.Frame snapshot taken when the exception was
	// raised. Typed as any to avoid a types->task import cycle.
	CallStack any
}

// Ok creates a Result for normal execution with a value
func Ok(v Value) Result {
	return Result{Val: v, Flow: FlowNormal}
}

// Return creates a Result for a return statement
func Return(v Value) Result {
	return Result{Val: v, Flow: FlowReturn}
}

// Break creates a Result for a break statement
func Break() Result {
	return Result{Flow: FlowBreak}
}

// Err creates a Result for an error with the code's default message
func Err(code ErrorCode) Result {
	return Result{Flow: FlowException, Error: code}
}

// ErrMsg creates a Result for an error with a specific message
func ErrMsg(code ErrorCode, msg string) Result {
	return Result{Flow: FlowException, Error: code, Message: msg}
}

// IsNormal returns true if this is normal execution
func (r Result) IsNormal() bool {
	return r.Flow == FlowNormal
}

// IsError returns true if this is an exception
func (r Result) IsError() bool {
	return r.Flow == FlowException
}

// IsReturn returns true if this is a return statement
func (r Result) IsReturn() bool {
	return r.Flow == FlowReturn
}

// IsBreak returns true if this is a break statement
func (r Result) IsBreak() bool {
	return r.Flow == FlowBreak
}

// ErrorMessage returns the message to report for an exception
func (r Result) ErrorMessage() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error.Message()
}
