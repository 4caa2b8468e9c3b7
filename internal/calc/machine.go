package calc

import (
	"fmt"
	"strings"
)

// Apply returns the state that follows s when b is pressed.
func Apply(s State, b Button) State {
	switch b.Kind {
	case KindDigit:
		return pressDigit(s, b.Digit)
	case KindDecimal:
		return pressDecimal(s)
	case KindClear:
		return Default()
	case KindToggleSign:
		return pressToggleSign(s)
	case KindPercent:
		return pressPercent(s)
	case KindEquals:
		return pressEquals(s)
	case KindOperator:
		return pressOperator(s, b.Op)
	default:
		return s
	}
}

// Press parses label and applies it to s.
func Press(s State, label string) (State, error) {
	b, err := ParseButton(label)
	if err != nil {
		return s, err
	}
	return Apply(s, b), nil
}

// Run presses labels in order starting from the default state.
func Run(labels ...string) (State, error) {
	s := Default()
	for i, label := range labels {
		next, err := Press(s, label)
		if err != nil {
			return s, fmt.Errorf("press %d: %w", i+1, err)
		}
		s = next
	}
	return s, nil
}

func pressDigit(s State, d byte) State {
	digit := string(d)
	switch {
	case s.IsError():
		s = Default()
		s.Current = digit
	case s.Overwrite:
		s.Current = digit
		s.Overwrite = false
	case s.Current == "0":
		s.Current = digit
	default:
		s.Current += digit
	}
	return s
}

func pressDecimal(s State) State {
	switch {
	case s.IsError():
		s = Default()
		s.Current = "0."
	case strings.Contains(s.Current, "."):
		// one decimal point per operand
	case s.Overwrite:
		s.Current = "0."
		s.Overwrite = false
	default:
		s.Current += "."
	}
	return s
}

func pressToggleSign(s State) State {
	if s.Current == "0" || s.IsError() {
		return s
	}
	if rest, ok := strings.CutPrefix(s.Current, "-"); ok {
		s.Current = rest
	} else {
		s.Current = "-" + s.Current
	}
	return s
}

func pressPercent(s State) State {
	if s.IsError() {
		return s
	}
	s.Current = percentOf(s.Current)
	return s
}

func pressEquals(s State) State {
	if s.IsError() {
		return Default()
	}
	return State{
		Current:   Evaluate(s.Previous, s.Current, s.Operator),
		Overwrite: true,
	}
}

func pressOperator(s State, op Operator) State {
	if s.IsError() {
		return Default()
	}
	if !s.Pending() {
		return State{
			Current:   "0",
			Previous:  s.Current,
			Operator:  op,
			Overwrite: true,
		}
	}
	result := Evaluate(s.Previous, s.Current, s.Operator)
	if result == NotANumber {
		return State{Current: NotANumber, Overwrite: true}
	}
	return State{
		Current:   "0",
		Previous:  result,
		Operator:  op,
		Overwrite: true,
	}
}
