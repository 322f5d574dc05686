package cardview

import "context"

// Viewer displays a document to the user.
type Viewer interface {
	// View displays the document and blocks until the user exits.
	View(ctx context.Context, doc *Document) error
}
