package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlconv"
	"github.com/fwojciec/htmlconv/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content and creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "gen", "output_html.go")

		err := fs.NewWriter().WriteFile(path, "package main\n")

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "package main\n", string(data))
	})

	t.Run("replaces existing file and leaves no temp file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "output_html.go")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, fs.NewWriter().WriteFile(path, "new"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("returns error when parent is a file", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		blocker := filepath.Join(base, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		err := fs.NewWriter().WriteFile(filepath.Join(blocker, "out.go"), "x")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "blocker")
		assert.Equal(t, htmlconv.EINTERNAL, htmlconv.ErrorCode(err))
	})
}
