package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.csv", "c.kml", "d.TXT", "e.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "f.csv"), 0o755))

	items, err := listFiles(dir, "*.{csv,json,txt}")
	require.NoError(t, err)

	var names []string
	for _, it := range items {
		names = append(names, it.Title())
	}
	assert.Equal(t, []string{"a.csv", "b.json", "e.txt"}, names)
	assert.Equal(t, ".json", items[1].Description())
	assert.Equal(t, filepath.Join(dir, "a.csv"), items[0].path)
}

func TestListFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), nil, 0o644))

	_, err := listFiles(dir, "[a-")
	assert.ErrorContains(t, err, "files.pattern")

	_, err = listFiles(filepath.Join(dir, "nope"), "*")
	assert.Error(t, err)
}
