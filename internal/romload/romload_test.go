package romload

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.gb")
	require.NoError(t, os.WriteFile(path, []byte("rom bytes"), 0o644))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("rom bytes"), data)
}

func TestLoadGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.gb.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte("rom bytes"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("rom bytes"), data)
}

func TestLoadZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.zip")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	entry, err := zw.Create("game.gb")
	require.NoError(t, err)
	_, err = entry.Write([]byte("rom bytes"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("rom bytes"), data)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.gb"))
	assert.Error(t, err)
}
