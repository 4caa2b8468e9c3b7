package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

func centerText(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// fitRight right-aligns s in width cells. Overlong values lose their leading
// characters so the least significant digits stay visible.
func fitRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w <= width {
		return strings.Repeat(" ", width-w) + s
	}
	return truncateLeft(s, width)
}

func truncateLeft(s string, width int) string {
	budget := width - runewidth.StringWidth(ellipsis)
	if budget < 0 {
		return ""
	}
	runes := []rune(s)
	start := len(runes)
	used := 0
	for start > 0 {
		rw := runewidth.RuneWidth(runes[start-1])
		if used+rw > budget {
			break
		}
		used += rw
		start--
	}
	return strings.Repeat(" ", budget-used) + ellipsis + string(runes[start:])
}

// spread places left and right at the edges of width cells. Styled input is
// measured without its escape sequences.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// spreadFit is spread for plain text that must stay within width; the left
// side is shortened first.
func spreadFit(left, right string, width int) string {
	room := width - runewidth.StringWidth(right) - 1
	if runewidth.StringWidth(left) > room {
		left = runewidth.Truncate(left, room, ellipsis)
	}
	return spread(left, right, width)
}
