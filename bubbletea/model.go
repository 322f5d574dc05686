// Package bubbletea implements the interactive terminal viewer for card
// documents: a dual-pane layout with lockstep scrolling, hide/reverse
// toggles and an adjustable horizontal split.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/fwojciec/cardview"
	theme "github.com/fwojciec/cardview/lipgloss"
)

// Input steps. Keyboard scrolling moves line by line; the wheel and the
// split adjustment move in larger increments.
const (
	keyScrollStep   = 1
	wheelScrollStep = 5
	ratioStep       = 5
)

// Model is the Bubble Tea model for the dual-pane card viewer.
type Model struct {
	view     cardview.ViewState
	keymap   KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	theme    theme.Theme
	filename string

	width, height int
	ready         bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRenderer sets the lipgloss renderer used for styling.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithTheme sets the color theme.
func WithTheme(t theme.Theme) ModelOption {
	return func(m *Model) {
		m.theme = t
	}
}

// WithFilename sets the name shown in the status bar.
func WithFilename(name string) ModelOption {
	return func(m *Model) {
		m.filename = name
	}
}

// WithRatio sets the initial left-pane share, clamped to [0, 100].
func WithRatio(pct int) ModelOption {
	return func(m *Model) {
		m.view = m.view.SetRatio(pct)
	}
}

// NewModel creates a viewer model for the given document.
func NewModel(doc *cardview.Document, opts ...ModelOption) Model {
	m := Model{
		view:     cardview.NewViewState(doc),
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		renderer: lipgloss.DefaultRenderer(),
		theme:    theme.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ViewState returns the current session state.
func (m Model) ViewState() cardview.ViewState {
	return m.view
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Once the session is exiting, events already
// queued behind the exit key are dropped rather than applied.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.view.Exiting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.view = m.view.Exit()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ScrollDown):
		m.view = m.view.ScrollDown(keyScrollStep)

	case key.Matches(msg, m.keymap.ScrollUp):
		m.view = m.view.ScrollUp(keyScrollStep)

	case key.Matches(msg, m.keymap.ToggleHidden):
		m.view = m.view.ToggleHidden()

	case key.Matches(msg, m.keymap.ToggleReverse):
		m.view = m.view.ToggleReverse()

	case key.Matches(msg, m.keymap.Narrow):
		m.view = m.view.AdjustRatio(-ratioStep)

	case key.Matches(msg, m.keymap.Widen):
		m.view = m.view.AdjustRatio(ratioStep)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.view = m.view.ScrollUp(wheelScrollStep)
	case tea.MouseButtonWheelDown:
		m.view = m.view.ScrollDown(wheelScrollStep)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready || m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	plan := m.view.Plan()
	if m.height == 1 {
		return m.renderPanes(plan, m.width, 1)
	}
	return m.renderPanes(plan, m.width, m.height-1) + "\n" + m.statusBar()
}

// renderPanes lays the plan's panes out side by side. Colors follow the
// content: the prompt view keeps its color wherever reverse puts it.
func (m Model) renderPanes(plan cardview.RenderPlan, width, height int) string {
	leftWidth := width * plan.LeftWidthPct / 100
	rightWidth := width - leftWidth

	leftStyle := m.renderer.NewStyle().Foreground(m.theme.Prompt)
	rightStyle := m.renderer.NewStyle().Foreground(m.theme.Detail)
	if m.view.Reverse {
		leftStyle, rightStyle = rightStyle, leftStyle
	}

	left := m.renderPane(plan.Left, leftWidth, height, leftStyle)
	if plan.Right == nil {
		// One pane suppressed: the survivor keeps its region, the rest of
		// the row stays blank.
		return left
	}
	right := m.renderPane(plan.Right, rightWidth, height, rightStyle)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderPane(spec *cardview.PaneSpec, width, height int, style lipgloss.Style) string {
	if spec == nil || width <= 0 {
		return ""
	}
	lines := visibleLines(spec.Text, spec.Offset, height)
	for i, line := range lines {
		lines[i] = truncate.String(ExpandTabs(line), uint(width))
	}
	return style.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// visibleLines returns up to max lines of text starting at offset. The
// text's trailing terminator does not count as an extra line.
func visibleLines(text string, offset, max int) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if offset < 0 || offset >= len(lines) {
		return nil
	}
	lines = lines[offset:]
	if len(lines) > max {
		lines = lines[:max]
	}
	return lines
}

func (m Model) statusBar() string {
	parts := []string{
		m.view.Mode().String(),
		m.scrollPosition(),
		fmt.Sprintf("%d:%d", m.view.Ratio, 100-m.view.Ratio),
	}
	if m.filename != "" {
		parts = append([]string{m.filename}, parts...)
	}
	info := " " + strings.Join(parts, " │ ") + " "

	bar := info
	hints := m.help.View(m.keymap)
	if gap := m.width - DisplayWidth(info) - DisplayWidth(hints) - 1; gap >= 1 {
		bar = info + strings.Repeat(" ", gap) + hints + " "
	}

	return m.renderer.NewStyle().
		Foreground(m.theme.StatusFg).
		Background(m.theme.StatusBg).
		Width(m.width).
		Render(truncate.String(bar, uint(m.width)))
}

// scrollPosition reports where the shared offset sits within the document:
// Top, Bot, or a percentage of the scrollable range.
func (m Model) scrollPosition() string {
	max := m.view.Doc.MaxOffset()
	switch {
	case m.view.Offset <= 0:
		return "Top"
	case m.view.Offset >= max:
		return "Bot"
	default:
		return fmt.Sprintf("%d%%", m.view.Offset*100/max)
	}
}
