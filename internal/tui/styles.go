package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorMidnight = lipgloss.Color("#0F172A")
	colorOrchid   = lipgloss.Color("#A855F7")
	colorMint     = lipgloss.Color("#5EEAD4")
	colorSlate50  = lipgloss.Color("#F8FAFC")
	colorSlate100 = lipgloss.Color("#F1F5F9")
	colorSlate400 = lipgloss.Color("#94A3B8")
	colorSlate500 = lipgloss.Color("#64748B")
	colorSlate700 = lipgloss.Color("#334155")
	colorSlate800 = lipgloss.Color("#1E293B")
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorSlate100)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSlate400)
	badgeStyle    = lipgloss.NewStyle().Foreground(colorMint)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOrchid).
			Padding(0, 1)
	captionStyle = lipgloss.NewStyle().Foreground(colorSlate400)
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSlate50)
	metaStyle    = lipgloss.NewStyle().Foreground(colorSlate500)

	variantStyles = map[variant]lipgloss.Style{
		variantPlain:   lipgloss.NewStyle().Background(colorSlate800).Foreground(colorSlate50),
		variantGhost:   lipgloss.NewStyle().Background(colorSlate800).Foreground(colorSlate100),
		variantAccent:  lipgloss.NewStyle().Background(colorOrchid).Foreground(colorSlate50).Bold(true),
		variantPrimary: lipgloss.NewStyle().Background(colorSlate700).Foreground(colorSlate50),
	}
	focusedStyle = lipgloss.NewStyle().Background(colorMint).Foreground(colorMidnight).Bold(true)
)

// displayInnerWidth is the text width inside the display border and padding.
const displayInnerWidth = keypadWidth - 4
