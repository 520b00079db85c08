package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir string) string {
	t.Helper()
	src := filepath.Join(dir, "movies.csv")
	require.NoError(t, os.WriteFile(src, []byte("title\nA\n"), 0644))
	return src
}

func TestArchiveCreatesDirAndMovesFile(t *testing.T) {
	root := t.TempDir()
	src := writeSource(t, root)
	archiveDir := filepath.Join(root, "archive", "2026")

	dst, err := Archive(src, archiveDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(archiveDir, "movies.csv"), dst)
	assert.NoFileExists(t, src)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "title\nA\n", string(data))
}

func TestArchiveCollisionKeepsSource(t *testing.T) {
	root := t.TempDir()
	archiveDir := filepath.Join(root, "archive")
	require.NoError(t, os.MkdirAll(archiveDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(archiveDir, "movies.csv"), []byte("old"), 0644))
	src := writeSource(t, root)

	_, err := Archive(src, archiveDir)
	require.ErrorIs(t, err, ErrArchiveExists)

	assert.FileExists(t, src)
	data, err := os.ReadFile(filepath.Join(archiveDir, "movies.csv"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestArchiveMissingSource(t *testing.T) {
	_, err := Archive(filepath.Join(t.TempDir(), "gone.csv"), t.TempDir())
	require.Error(t, err)
}

func TestCopyFile(t *testing.T) {
	root := t.TempDir()
	src := writeSource(t, root)
	dst := filepath.Join(root, "copy.csv")

	require.NoError(t, copyFile(src, dst))
	assert.FileExists(t, src)
	assert.FileExists(t, dst)
	assert.Error(t, copyFile(src, dst), "existing destination must not be overwritten")
}
