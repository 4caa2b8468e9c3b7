package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lumicalc/internal/calc"
)

const (
	keypadColumns = 4
	cellWidth     = 7
	columnGap     = 1
	// Each button row is one line followed by a blank spacer line.
	rowStride = 2

	keypadWidth = keypadColumns*cellWidth + (keypadColumns-1)*columnGap
)

type variant int

const (
	variantPlain variant = iota
	variantGhost
	variantAccent
	variantPrimary
)

type padButton struct {
	button  calc.Button
	variant variant
	row     int
	col     int
	span    int
}

func (b padButton) x() int {
	return b.col * (cellWidth + columnGap)
}

func (b padButton) width() int {
	return b.span*cellWidth + (b.span-1)*columnGap
}

type position struct {
	row int
	col int
}

// keypad lays the calculator buttons out on a fixed grid. grid[row][col]
// holds the index of the button covering that cell, or -1.
type keypad struct {
	buttons []padButton
	grid    [][]int
}

func newKeypad() keypad {
	var k keypad
	row, col := 0, 0
	for _, b := range calc.Keypad() {
		v := variantOf(b)
		span := 1
		if v == variantPrimary {
			span = 2
		}
		if col+span > keypadColumns {
			row++
			col = 0
		}
		for len(k.grid) <= row {
			cells := make([]int, keypadColumns)
			for i := range cells {
				cells[i] = -1
			}
			k.grid = append(k.grid, cells)
		}
		idx := len(k.buttons)
		k.buttons = append(k.buttons, padButton{button: b, variant: v, row: row, col: col, span: span})
		for c := col; c < col+span; c++ {
			k.grid[row][c] = idx
		}
		col += span
	}
	return k
}

func variantOf(b calc.Button) variant {
	switch b.Kind {
	case calc.KindClear, calc.KindToggleSign, calc.KindPercent, calc.KindDecimal:
		return variantGhost
	case calc.KindOperator, calc.KindEquals:
		return variantAccent
	case calc.KindDigit:
		if b.Digit == '0' {
			return variantPrimary
		}
	}
	return variantPlain
}

func (k keypad) indexOf(b calc.Button) int {
	for i, pb := range k.buttons {
		if pb.button == b {
			return i
		}
	}
	return -1
}

func (k keypad) indexAt(p position) int {
	if p.row < 0 || p.row >= len(k.grid) || p.col < 0 || p.col >= keypadColumns {
		return -1
	}
	return k.grid[p.row][p.col]
}

func (k keypad) positionOf(idx int) position {
	if idx < 0 || idx >= len(k.buttons) {
		return position{}
	}
	return position{row: k.buttons[idx].row, col: k.buttons[idx].col}
}

// move steps from p in the given direction until it reaches a different
// button. At the edge of the grid p is returned unchanged.
func (k keypad) move(p position, dRow, dCol int) position {
	current := k.indexAt(p)
	next := p
	for {
		next.row += dRow
		next.col += dCol
		if next.row < 0 || next.row >= len(k.grid) || next.col < 0 || next.col >= keypadColumns {
			return p
		}
		if idx := k.indexAt(next); idx >= 0 && idx != current {
			return next
		}
	}
}

// buttonAt hit-tests a point relative to the keypad's top-left corner.
func (k keypad) buttonAt(x, y int) (int, bool) {
	if x < 0 || y < 0 || y%rowStride != 0 {
		return -1, false
	}
	row := y / rowStride
	for i, pb := range k.buttons {
		if pb.row != row {
			continue
		}
		if x >= pb.x() && x < pb.x()+pb.width() {
			return i, true
		}
	}
	return -1, false
}

func (k keypad) render(focused int) string {
	lines := make([]string, 0, len(k.grid)*rowStride)
	gap := strings.Repeat(" ", columnGap)
	for row := range k.grid {
		cells := make([]string, 0, keypadColumns)
		for i, pb := range k.buttons {
			if pb.row != row {
				continue
			}
			style := variantStyles[pb.variant]
			if i == focused {
				style = focusedStyle
			}
			cells = append(cells, style.Render(centerText(pb.button.Label(), pb.width())))
		}
		if row > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Join(cells, gap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
