// Package tui provides the Bubble Tea calculator keypad.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/lumicalc/internal/calc"
	"github.com/verte-zerg/lumicalc/internal/i18n"
)

// Model implements the Bubble Tea keypad UI. It owns the only calculator
// state of the session and replaces it on every press.
type Model struct {
	state  calc.State
	keypad keypad
	focus  position

	keys keyMap
	help help.Model
	loc  *i18n.Localizer
	log  *log.Logger

	width  int
	height int
}

// NewModel constructs a keypad model in the default calculator state.
func NewModel(loc *i18n.Localizer, logger *log.Logger) *Model {
	k := newKeypad()
	return &Model{
		state:  calc.Default(),
		keypad: k,
		focus:  k.positionOf(k.indexOf(calc.Equals)),
		keys:   newKeyMap(loc),
		help:   help.New(),
		loc:    loc,
		log:    logger,
	}
}

// State returns the current calculator state.
func (m *Model) State() calc.State {
	return m.state
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.renderHeader(),
		"",
		m.renderDisplay(),
		"",
		m.keypad.render(m.keypad.indexAt(m.focus)),
		"",
		m.help.View(m.keys),
	}
	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.focus = m.keypad.move(m.focus, -1, 0)
	case key.Matches(msg, m.keys.Down):
		m.focus = m.keypad.move(m.focus, 1, 0)
	case key.Matches(msg, m.keys.Left):
		m.focus = m.keypad.move(m.focus, 0, -1)
	case key.Matches(msg, m.keys.Right):
		m.focus = m.keypad.move(m.focus, 0, 1)
	case key.Matches(msg, m.keys.Press):
		m.press(m.keypad.indexAt(m.focus))
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	x, y := m.keypadOrigin()
	idx, ok := m.keypad.buttonAt(msg.X-x, msg.Y-y)
	if !ok {
		return
	}
	m.focus = m.keypad.positionOf(idx)
	m.press(idx)
}

func (m *Model) press(idx int) {
	if idx < 0 || idx >= len(m.keypad.buttons) {
		return
	}
	b := m.keypad.buttons[idx].button
	before := m.state
	m.state = calc.Apply(before, b)
	m.log.Debug("button pressed",
		"label", b.Label(),
		"current", m.state.Current,
		"previous", m.state.Previous,
		"operator", string(m.state.Operator),
		"overwrite", m.state.Overwrite,
	)
	if m.state.IsError() && !before.IsError() {
		m.log.Info("calculation failed", "previous", before.Previous, "operator", string(before.Operator), "current", before.Current)
	}
}

// keypadOrigin is the screen cell of the keypad's top-left corner in View.
func (m *Model) keypadOrigin() (int, int) {
	top, _, _, left := appStyle.GetPadding()
	y := top + lipgloss.Height(m.renderHeader()) + 1 + lipgloss.Height(m.renderDisplay()) + 1
	return left, y
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(m.loc.T("title"))
	badge := badgeStyle.Render("● " + m.loc.T("status_ready"))
	subtitle := subtitleStyle.Render(strings.ToUpper(m.loc.T("subtitle")))
	return spread(title, badge, keypadWidth) + "\n" + subtitle
}

func (m *Model) renderDisplay() string {
	scr := m.state.Screen()
	caption := captionStyle.Render(fitRight(strings.ToUpper(m.loc.T("result")), displayInnerWidth))
	value := valueStyle.Render(fitRight(scr.Value, displayInnerWidth))
	meta := metaStyle.Render(spreadFit(
		m.loc.T("prev")+": "+scr.Previous,
		m.loc.T("op")+": "+scr.Operator,
		displayInnerWidth,
	))
	return displayStyle.Render(strings.Join([]string{caption, value, meta}, "\n"))
}
