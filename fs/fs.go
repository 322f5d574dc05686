// Package fs provides deck file access.
package fs

import (
	"fmt"
	"os"
)

// Open opens the deck file at path for reading. Paths that do not resolve to
// a regular file are rejected up front.
func Open(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("open deck: %s is not a regular file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	return f, nil
}
