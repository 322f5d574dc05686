package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the standard terminal tab stop interval.
const tabWidth = 8

// ExpandTabs replaces each tab with spaces up to the next 8-column stop, so
// truncation and padding see the true display width. Deck detail lines are
// commonly tab-indented.
func ExpandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + tabWidth)
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			// Tab advances to the next tab stop (multiple of tabWidth).
			next := (col/tabWidth + 1) * tabWidth
			b.WriteString(strings.Repeat(" ", next-col))
			col = next
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col += lipgloss.Width(string(r))
		}
	}
	return b.String()
}

// DisplayWidth calculates the display width of a string, correctly handling
// tab characters which expand to the next 8-column boundary.
// This fixes the issue where lipgloss.Width returns 0 for tabs.
func DisplayWidth(s string) int {
	return lipgloss.Width(ExpandTabs(s))
}
