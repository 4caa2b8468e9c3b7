package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownButton is returned for labels that are not on the keypad.
var ErrUnknownButton = errors.New("unknown button")

// Kind classifies a button press.
type Kind int

// Button kinds.
const (
	KindDigit Kind = iota + 1
	KindDecimal
	KindClear
	KindToggleSign
	KindPercent
	KindEquals
	KindOperator
)

// Button is a single keypad press. Digit is set for KindDigit and Op for
// KindOperator.
type Button struct {
	Kind  Kind
	Digit byte
	Op    Operator
}

// Fixed buttons.
var (
	Decimal    = Button{Kind: KindDecimal}
	Clear      = Button{Kind: KindClear}
	ToggleSign = Button{Kind: KindToggleSign}
	Percent    = Button{Kind: KindPercent}
	Equals     = Button{Kind: KindEquals}
)

// Digit returns the button for the decimal digit d ('0'..'9').
func Digit(d byte) Button {
	return Button{Kind: KindDigit, Digit: d}
}

// Op returns the button for a binary operator.
func Op(op Operator) Button {
	return Button{Kind: KindOperator, Op: op}
}

// Label returns the keypad label of the button.
func (b Button) Label() string {
	switch b.Kind {
	case KindDigit:
		return string(b.Digit)
	case KindDecimal:
		return "."
	case KindClear:
		return "AC"
	case KindToggleSign:
		return "+/-"
	case KindPercent:
		return "%"
	case KindEquals:
		return "="
	case KindOperator:
		return string(b.Op)
	default:
		return ""
	}
}

// Keypad returns the 19 buttons in keypad order, four per row.
func Keypad() []Button {
	return []Button{
		Clear, ToggleSign, Percent, Op(OpDiv),
		Digit('7'), Digit('8'), Digit('9'), Op(OpMul),
		Digit('4'), Digit('5'), Digit('6'), Op(OpSub),
		Digit('1'), Digit('2'), Digit('3'), Op(OpAdd),
		Digit('0'), Decimal, Equals,
	}
}

// ParseButton maps a keypad label to its button. Besides the keypad labels it
// accepts "*" and "x" for × and "/" for ÷, which are easier to type in shell
// scripts.
func ParseButton(label string) (Button, error) {
	label = strings.TrimSpace(label)
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return Digit(label[0]), nil
	}
	switch strings.ToUpper(label) {
	case ".":
		return Decimal, nil
	case "AC":
		return Clear, nil
	case "+/-":
		return ToggleSign, nil
	case "%":
		return Percent, nil
	case "=":
		return Equals, nil
	}
	op, err := ParseOperator(label)
	if err != nil || op == OpNone {
		return Button{}, fmt.Errorf("%w: %q", ErrUnknownButton, label)
	}
	return Op(op), nil
}

// ParseOperator maps an operator label (or its ASCII alias) to an Operator.
// An empty label yields OpNone.
func ParseOperator(label string) (Operator, error) {
	switch strings.TrimSpace(label) {
	case "":
		return OpNone, nil
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "×", "*", "x", "X":
		return OpMul, nil
	case "÷", "/":
		return OpDiv, nil
	default:
		return OpNone, fmt.Errorf("unknown operator %q", label)
	}
}
