package cardview

import "io"

// Parser splits deck content into domain types.
type Parser interface {
	// Parse reads deck content and returns the split result.
	Parse(r io.Reader) (*Document, error)
}
