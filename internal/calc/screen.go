package calc

// Placeholder is shown for an absent previous operand or operator.
const Placeholder = "--"

// Screen is what a front end displays for a state.
type Screen struct {
	Value     string `json:"value"`
	Previous  string `json:"previous"`
	Operator  string `json:"operator"`
	Overwrite bool   `json:"overwrite"`
}

// Screen derives the display values of s.
func (s State) Screen() Screen {
	scr := Screen{
		Value:     Format(s.Current),
		Previous:  Placeholder,
		Operator:  Placeholder,
		Overwrite: s.Overwrite,
	}
	if s.Pending() {
		scr.Previous = Format(s.Previous)
	}
	if s.Operator != OpNone {
		scr.Operator = string(s.Operator)
	}
	return scr
}
