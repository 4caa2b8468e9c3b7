// Package trace records a press-by-press history of a calculator run and
// renders it as an aligned table.
package trace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/lumicalc/internal/calc"
)

// Step is the state reached after pressing Label.
type Step struct {
	Label string
	State calc.State
}

// Record presses labels from the default state and keeps every intermediate
// state. On an unknown label it returns the steps taken so far.
func Record(labels []string) ([]Step, error) {
	steps := make([]Step, 0, len(labels))
	s := calc.Default()
	for i, label := range labels {
		next, err := calc.Press(s, label)
		if err != nil {
			return steps, fmt.Errorf("press %d: %w", i+1, err)
		}
		s = next
		steps = append(steps, Step{Label: label, State: s})
	}
	return steps, nil
}

// column describes one field of the trace table.
type column struct {
	header string
	right  bool
	cell   func(n int, step Step) string
}

var columns = []column{
	{header: "#", right: true, cell: func(n int, _ Step) string { return strconv.Itoa(n) }},
	{header: "Button", cell: func(_ int, step Step) string { return step.Label }},
	{header: "Display", right: true, cell: func(_ int, step Step) string { return step.State.Screen().Value }},
	{header: "Prev", right: true, cell: func(_ int, step Step) string { return step.State.Screen().Previous }},
	{header: "Op", cell: func(_ int, step Step) string { return step.State.Screen().Operator }},
	{header: "Overwrite", cell: func(_ int, step Step) string { return strconv.FormatBool(step.State.Overwrite) }},
}

// Lines renders steps as a table with a header row. Columns are separated by
// two spaces and sized by terminal cell width, so × and ÷ line up.
func Lines(steps []Step) []string {
	cells := make([][]string, 0, len(steps)+1)
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.header
	}
	cells = append(cells, header)
	for n, step := range steps {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.cell(n+1, step)
		}
		cells = append(cells, row)
	}

	widths := make([]int, len(columns))
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(cells))
	for _, row := range cells {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
			if columns[i].right {
				b.WriteString(pad + cell)
			} else {
				b.WriteString(cell + pad)
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}
