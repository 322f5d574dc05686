package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/cardview"
)

var _ cardview.Viewer = (*Viewer)(nil)

// Viewer runs the interactive program for a document.
type Viewer struct {
	// Filename is shown in the status bar.
	Filename string
	// Ratio is the initial left-pane percentage.
	Ratio int
	// NoAltScreen renders inline instead of switching to the alternate
	// screen buffer.
	NoAltScreen bool
}

// View implements cardview.Viewer. The program owns the terminal for the
// duration of the session: raw mode, mouse capture and (by default) the
// alternate screen are acquired on entry and restored on every exit path,
// including failures, before View returns.
func (v *Viewer) View(ctx context.Context, doc *cardview.Document) error {
	m := NewModel(doc,
		WithFilename(v.Filename),
		WithRatio(v.Ratio),
	)

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
	}
	if !v.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
