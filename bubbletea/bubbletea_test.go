package bubbletea_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/cardview"
	"github.com/fwojciec/cardview/bubbletea"
	"github.com/fwojciec/cardview/deck"
)

// sampleDeck is a minimal kanji entry: two prompt lines, two detail lines.
const sampleDeck = "日:\n day, sun\n-\nニチ\n"

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// asciiRenderer creates a renderer with styling disabled so tests can assert
// on plain text layout.
func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// extractLastLine returns the last non-empty line from the output.
func extractLastLine(s string) string {
	lines := bytes.Split([]byte(s), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSpace(lines[i])
		if len(line) > 0 {
			return string(lines[i])
		}
	}
	return ""
}

// mustParse runs content through the real deck parser.
func mustParse(t *testing.T, content string) *cardview.Document {
	t.Helper()
	doc, err := deck.NewParser().Parse(strings.NewReader(content))
	require.NoError(t, err)
	return doc
}

// sized applies a terminal size so View renders content.
func sized(t *testing.T, m bubbletea.Model, width, height int) bubbletea.Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(bubbletea.Model)
}

// apply routes a message through Update, discarding the command.
func apply(t *testing.T, m bubbletea.Model, msg tea.Msg) bubbletea.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(bubbletea.Model)
}

// runeKey builds the key message for a plain character press.
func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
