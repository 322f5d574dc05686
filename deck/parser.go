// Package deck parses flashcard deck files: plain text whose lines are
// classified line-locally into prompts and details.
package deck

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/cardview"
)

// ErrInvalidUTF8 is returned when deck content cannot be decoded as text.
var ErrInvalidUTF8 = errors.New("deck content is not valid UTF-8")

// maxLineBytes caps a single deck line so the scanner doesn't fail on
// generated content (default scanner buffer is 64KB).
const maxLineBytes = 10 * 1024 * 1024

// Parser implements cardview.Parser for deck files.
type Parser struct{}

var _ cardview.Parser = (*Parser)(nil)

// NewParser creates a deck parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the full content and splits every line into exactly one of the
// two views, preserving vertical position with blank placeholders. Both
// output texts terminate every line, including the last.
func (p *Parser) Parse(r io.Reader) (*cardview.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	var prompt, detail strings.Builder
	count := 0

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		if cardview.IsPromptLine(line) {
			prompt.WriteString(line)
		} else {
			detail.WriteString(line)
		}
		prompt.WriteByte('\n')
		detail.WriteByte('\n')
		count++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan deck: %w", err)
	}

	return &cardview.Document{
		PromptText: prompt.String(),
		DetailText: detail.String(),
		LineCount:  count,
	}, nil
}
