// Command cardview displays a flashcard deck file in a dual-pane terminal
// viewer: prompt lines on one side, detail lines on the other, scrolled in
// lockstep. One side can be hidden and the split adjusted, all via keyboard
// or mouse.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/cardview"
	"github.com/fwojciec/cardview/bubbletea"
	"github.com/fwojciec/cardview/deck"
	"github.com/fwojciec/cardview/fs"
)

// ErrNoInput is returned when the App has neither a file path nor a reader
// to load the deck from.
var ErrNoInput = errors.New("no deck input provided")

// App wires the parser and viewer together. Fields are exported so tests can
// inject readers and fakes.
type App struct {
	// FilePath is the deck file to load. Ignored when Input is set.
	FilePath string
	// Input overrides FilePath as the deck source.
	Input io.Reader
	// Parser splits deck content into the two views.
	Parser cardview.Parser
	// Viewer runs the interactive session.
	Viewer cardview.Viewer
}

// Run loads and parses the deck, then hands the document to the viewer and
// blocks until the session ends. The parsed document is returned so callers
// can inspect what was shown.
func (a *App) Run(ctx context.Context) (*cardview.Document, error) {
	input := a.Input
	if input == nil {
		if a.FilePath == "" {
			return nil, ErrNoInput
		}
		f, err := fs.Open(a.FilePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		input = f
	}

	doc, err := a.Parser.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	if err := a.Viewer.View(ctx, doc); err != nil {
		return nil, fmt.Errorf("view deck: %w", err)
	}

	return doc, nil
}

func main() {
	ratio := flag.Int("ratio", cardview.DefaultRatio, "initial percentage of width given to the left pane")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("usage: cardview [flags] <file>")
		os.Exit(0)
	}

	path := flag.Arg(0)
	app := &App{
		FilePath: path,
		Parser:   deck.NewParser(),
		Viewer: &bubbletea.Viewer{
			Filename:    filepath.Base(path),
			Ratio:       *ratio,
			NoAltScreen: *noAltScreen,
		},
	}

	// The viewer restores the terminal before Run returns, so the
	// diagnostic always lands on a normal screen.
	if _, err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "cardview:", err)
		os.Exit(1)
	}
}
