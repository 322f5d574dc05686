// Package lipgloss provides color themes for the terminal viewer.
package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the colors used by the viewer. Styles are built from these at
// render time so they follow whichever renderer the model was given.
type Theme struct {
	Prompt   lipgloss.TerminalColor // prompt view text
	Detail   lipgloss.TerminalColor // detail view text
	StatusFg lipgloss.TerminalColor
	StatusBg lipgloss.TerminalColor
}

// DefaultTheme returns the standard viewer colors.
func DefaultTheme() Theme {
	return Theme{
		Prompt:   lipgloss.Color("#73daca"),
		Detail:   lipgloss.Color("#c0caf5"),
		StatusFg: lipgloss.Color("#c0caf5"),
		StatusBg: blend("#000000", "#7aa2f7", 0.25),
	}
}

// TestTheme returns primary colors whose blends are easy to assert against:
// the status background blends #00ff00 with #000000 at 35%, i.e. RGB(0, 89, 0).
func TestTheme() Theme {
	return Theme{
		Prompt:   lipgloss.Color("#00ff00"),
		Detail:   lipgloss.Color("#0000ff"),
		StatusFg: lipgloss.Color("#ffffff"),
		StatusBg: blend("#000000", "#00ff00", 0.35),
	}
}

// blend mixes amount of tint into base in RGB space.
func blend(base, tint string, amount float64) lipgloss.Color {
	b, _ := colorful.Hex(base)
	t, _ := colorful.Hex(tint)
	return lipgloss.Color(b.BlendRgb(t, amount).Hex())
}
