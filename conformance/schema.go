// Package conformance runs yaml-defined script suites against the
// evaluator, checking results, error codes, and tracebacks.
package conformance

// Suite is one yaml file of test cases
type Suite struct {
	Name  string     `yaml:"name"`
	Tests []TestCase `yaml:"tests"`
}

// TestCase is a single script with its expected outcome
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Script      string      `yaml:"script"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation describes what running the script should produce.
// Exactly one of Value or Error applies; Traceback optionally pins the
// rendered traceback of an expected error.
type Expectation struct {
	Value     any      `yaml:"value,omitempty"`
	Error     string   `yaml:"error,omitempty"`
	Message   string   `yaml:"message,omitempty"`
	Output    string   `yaml:"output,omitempty"`
	Traceback []string `yaml:"traceback,omitempty"`
}
