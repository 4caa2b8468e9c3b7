package calc

import (
	"errors"
	"regexp"
	"testing"
)

var numeral = regexp.MustCompile(`^-?[0-9]+(\.[0-9]*)?$`)

func mustRun(t *testing.T, labels ...string) State {
	t.Helper()
	s, err := Run(labels...)
	if err != nil {
		t.Fatalf("Run(%v): %v", labels, err)
	}
	return s
}

func pressAll(t *testing.T, s State, labels ...string) State {
	t.Helper()
	for _, label := range labels {
		next, err := Press(s, label)
		if err != nil {
			t.Fatalf("Press(%q): %v", label, err)
		}
		s = next
	}
	return s
}

func TestAdditionScenario(t *testing.T) {
	s := mustRun(t, "7", "+")
	want := State{Current: "0", Previous: "7", Operator: OpAdd, Overwrite: true}
	if s != want {
		t.Fatalf("after +: got %+v, want %+v", s, want)
	}
	s = pressAll(t, s, "3")
	if s.Current != "3" || s.Overwrite {
		t.Fatalf("after 3: got %+v", s)
	}
	s = pressAll(t, s, "=")
	want = State{Current: "10", Overwrite: true}
	if s != want {
		t.Fatalf("after =: got %+v, want %+v", s, want)
	}
	if got := s.Screen().Value; got != "10" {
		t.Fatalf("expected display 10, got %q", got)
	}
}

func TestDivisionByZeroScenario(t *testing.T) {
	s := mustRun(t, "5", "÷", "0", "=")
	if s.Current != NotANumber {
		t.Fatalf("expected %q, got %+v", NotANumber, s)
	}
	if got := s.Screen().Value; got != NotANumber {
		t.Fatalf("expected display %q, got %q", NotANumber, got)
	}
	s = pressAll(t, s, "AC")
	if s != Default() {
		t.Fatalf("expected default state after AC, got %+v", s)
	}
	if got := s.Screen().Value; got != "0" {
		t.Fatalf("expected display 0, got %q", got)
	}
}

func TestToggleSignScenario(t *testing.T) {
	s := mustRun(t, "1", "2", "+/-")
	if s.Current != "-12" {
		t.Fatalf("expected -12, got %q", s.Current)
	}
	s = pressAll(t, s, "+/-")
	if s.Current != "12" {
		t.Fatalf("expected 12, got %q", s.Current)
	}
}

func TestChainedOperatorsScenario(t *testing.T) {
	s := mustRun(t, "4", "+", "5", "+")
	want := State{Current: "0", Previous: "9", Operator: OpAdd, Overwrite: true}
	if s != want {
		t.Fatalf("after second +: got %+v, want %+v", s, want)
	}
	s = pressAll(t, s, "6", "=")
	if s.Current != "15" {
		t.Fatalf("expected 15, got %q", s.Current)
	}
}

func TestDigitEntry(t *testing.T) {
	cases := []struct {
		labels []string
		want   string
	}{
		{[]string{"0", "0", "7"}, "7"},
		{[]string{"1", "2", "3"}, "123"},
		{[]string{".", "5"}, "0.5"},
		{[]string{"1", ".", ".", "5", "."}, "1.5"},
		{[]string{"9", "=", "4"}, "4"},
		{[]string{"9", "=", "."}, "0."},
		{[]string{"+/-"}, "0"},
		{[]string{"0", ".", "+/-", "5"}, "-0.5"},
		{[]string{"5", "0", "%"}, "0.5"},
		{[]string{"2", "+", "3", "%"}, "0.03"},
	}
	for _, tc := range cases {
		if got := mustRun(t, tc.labels...).Current; got != tc.want {
			t.Fatalf("%v: got %q, want %q", tc.labels, got, tc.want)
		}
	}
}

func TestEqualsWithoutOperatorKeepsValue(t *testing.T) {
	s := mustRun(t, "4", "2", "=")
	want := State{Current: "42", Overwrite: true}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestSecondOperatorCommitsAgainstZero(t *testing.T) {
	s := mustRun(t, "5", "+", "-")
	if s.Previous != "5" || s.Operator != OpSub {
		t.Fatalf("expected previous 5 with -, got %+v", s)
	}
	s = mustRun(t, "5", "×", "-")
	if s.Previous != "0" || s.Operator != OpSub {
		t.Fatalf("expected previous 0 with -, got %+v", s)
	}
	s = mustRun(t, "5", "÷", "-")
	if !s.IsError() {
		t.Fatalf("expected division by zero, got %+v", s)
	}
}

func TestNotANumberIsSticky(t *testing.T) {
	errState := mustRun(t, "5", "÷", "0", "=")

	for _, label := range []string{"+/-", "%"} {
		if next := pressAll(t, errState, label); next != errState {
			t.Fatalf("%s should not change %+v, got %+v", label, errState, next)
		}
	}
	for _, label := range []string{"=", "AC", "+", "-", "×", "÷"} {
		if next := pressAll(t, errState, label); next != Default() {
			t.Fatalf("%s should reset to default, got %+v", label, next)
		}
	}
	if next := pressAll(t, errState, "8"); next != (State{Current: "8"}) {
		t.Fatalf("digit should start fresh, got %+v", next)
	}
	if next := pressAll(t, errState, "."); next != (State{Current: "0."}) {
		t.Fatalf("decimal should start fresh, got %+v", next)
	}
}

func TestChainIntoDivisionByZero(t *testing.T) {
	s := mustRun(t, "8", "÷", "0", "+")
	want := State{Current: NotANumber, Overwrite: true}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestRunRejectsUnknownLabel(t *testing.T) {
	s, err := Run("1", "sqrt", "2")
	if !errors.Is(err, ErrUnknownButton) {
		t.Fatalf("expected ErrUnknownButton, got %v", err)
	}
	if s.Current != "1" {
		t.Fatalf("expected state before the bad press, got %+v", s)
	}
}

// Every reachable state keeps the data invariants, and AC always yields the
// default state.
func TestReachableStates(t *testing.T) {
	keypad := Keypad()
	var walk func(s State, depth int)
	walk = func(s State, depth int) {
		if s.Current != NotANumber && !numeral.MatchString(s.Current) {
			t.Fatalf("invalid current %q in %+v", s.Current, s)
		}
		if s.Operator != OpNone && !s.Pending() {
			t.Fatalf("operator without previous: %+v", s)
		}
		if s.Pending() && !numeral.MatchString(s.Previous) {
			t.Fatalf("invalid previous %q in %+v", s.Previous, s)
		}
		if cleared := Apply(s, Clear); cleared != Default() {
			t.Fatalf("AC from %+v gave %+v", s, cleared)
		}
		if depth == 0 {
			return
		}
		for _, b := range keypad {
			walk(Apply(s, b), depth-1)
		}
	}
	walk(Default(), 4)
}

func TestLargeResultDisplaysShortestDigits(t *testing.T) {
	labels := []string{"1"}
	for i := 0; i < 12; i++ {
		labels = append(labels, "0")
	}
	labels = append(labels, "×", "1")
	for i := 0; i < 12; i++ {
		labels = append(labels, "0")
	}
	labels = append(labels, "=")
	s := mustRun(t, labels...)
	if s.Current != "1000000000000000000000000" {
		t.Fatalf("expected 10^24, got %q", s.Current)
	}
	if got := s.Screen().Value; got != "1,000,000,000,000,000,000,000,000" {
		t.Fatalf("unexpected display %q", got)
	}
}
