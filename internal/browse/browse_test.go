package browse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestGPXFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.gpx"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "alps", "a.GPX"))
	touch(t, filepath.Join(dir, "alps", "deeper", "c.gpx"))
	touch(t, filepath.Join(dir, "alps", "splits.json"))

	files, err := GPXFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "alps", "a.GPX"),
		filepath.Join(dir, "b.gpx"),
	}, files)
}

func TestGPXFilesMissingDir(t *testing.T) {
	_, err := GPXFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
