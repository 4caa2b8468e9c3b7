// Package calc implements the calculator core: the button state machine,
// the two-operand evaluator and the display formatter.
package calc

// NotANumber is the in-band value that replaces a result after a division by
// zero. Only a reset-triggering press leaves it.
const NotANumber = "Not a number"

// Operator is a pending binary operator.
type Operator string

// Supported operators. OpNone means no operator is pending.
const (
	OpNone Operator = ""
	OpAdd  Operator = "+"
	OpSub  Operator = "-"
	OpMul  Operator = "×"
	OpDiv  Operator = "÷"
)

// State is the complete calculator state. It is a value: every transition
// returns a new State and never mutates its input.
type State struct {
	// Current is the operand being edited or shown, or NotANumber.
	Current string
	// Previous is the left operand captured by an operator press. Empty means
	// no operand is pending.
	Previous string
	// Operator is the pending operator, OpNone when Previous is empty.
	Operator Operator
	// Overwrite makes the next digit replace Current instead of appending.
	Overwrite bool
}

// Default returns the initial state.
func Default() State {
	return State{Current: "0"}
}

// IsError reports whether Current holds NotANumber.
func (s State) IsError() bool {
	return s.Current == NotANumber
}

// Pending reports whether a left operand is waiting for an operator result.
func (s State) Pending() bool {
	return s.Previous != ""
}
