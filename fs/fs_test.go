package fs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cardview/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("opens a regular file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "kanji.txt")
		require.NoError(t, os.WriteFile(path, []byte("日:\n day\n"), 0o644))

		f, err := fs.Open(path)
		require.NoError(t, err)
		defer f.Close()

		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "日:\n day\n", string(content))
	})

	t.Run("rejects a directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.Open(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a regular file")
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()

		_, err := fs.Open(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no such file")
	})
}
