// Package mock provides test doubles for the cardview interfaces.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/cardview"
)

var (
	_ cardview.Parser = (*Parser)(nil)
	_ cardview.Viewer = (*Viewer)(nil)
)

// Parser implements cardview.Parser for testing.
type Parser struct {
	ParseFn func(r io.Reader) (*cardview.Document, error)
}

func (p *Parser) Parse(r io.Reader) (*cardview.Document, error) {
	return p.ParseFn(r)
}

// Viewer implements cardview.Viewer for testing.
type Viewer struct {
	ViewFn func(ctx context.Context, doc *cardview.Document) error
}

func (v *Viewer) View(ctx context.Context, doc *cardview.Document) error {
	return v.ViewFn(ctx, doc)
}
