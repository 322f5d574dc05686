// Package cardview provides domain types for splitting and viewing flashcard
// decks: plain text files whose lines divide into prompts and details.
package cardview

import "strings"

// IsPromptLine reports whether a source line belongs to the prompt view.
// A line is a prompt iff it contains a colon or is exactly a single dash;
// everything else, blank lines included, is detail.
func IsPromptLine(line string) bool {
	return strings.ContainsRune(line, ':') || line == "-"
}

// Document is one deck file split into two complementary views.
// Both texts hold the same number of lines as the source: prompt lines appear
// verbatim in PromptText and as empty lines in DetailText, and vice versa.
// Every line, including the last, is terminated by a newline.
type Document struct {
	PromptText string
	DetailText string
	LineCount  int
}

// MaxOffset returns the largest valid scroll offset for the document.
// It is zero for an empty document.
func (d *Document) MaxOffset() int {
	if d == nil || d.LineCount == 0 {
		return 0
	}
	return d.LineCount - 1
}
