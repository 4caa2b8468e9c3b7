package calc

import (
	"errors"
	"math"
	"strconv"
)

// significantDigits bounds floating point noise such as 0.1+0.2.
const significantDigits = 12

// Evaluate applies op to previous and current. With no pending operand or
// operator it returns current unchanged. Division by zero, and any result
// that is not a finite number, yields NotANumber.
func Evaluate(previous, current string, op Operator) string {
	if previous == "" || op == OpNone {
		return current
	}
	prev := parseOperand(previous)
	curr := parseOperand(current)

	var result float64
	switch op {
	case OpAdd:
		result = prev + curr
	case OpSub:
		result = prev - curr
	case OpMul:
		result = prev * curr
	case OpDiv:
		if curr == 0 {
			return NotANumber
		}
		result = prev / curr
	default:
		return current
	}
	return roundResult(result)
}

func roundResult(result float64) string {
	if !isFinite(result) {
		return NotANumber
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(result, 'g', significantDigits, 64), 64)
	if err != nil || !isFinite(rounded) {
		return NotANumber
	}
	return plainDecimal(rounded)
}

// percentOf divides a numeral by 100 without rounding.
func percentOf(value string) string {
	result := parseOperand(value) / 100
	if !isFinite(result) {
		return NotANumber
	}
	return plainDecimal(result)
}

// parseOperand parses a numeral. Overflowing numerals parse to ±Inf and
// anything unparsable to NaN.
func parseOperand(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// plainDecimal renders f in its shortest form without exponent notation.
// Negative zero renders as "0".
func plainDecimal(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
