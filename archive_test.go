package tokenvars

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeZip writes a zip named name under dir containing the given entries
// and returns its path.
func makeZip(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	for entry, content := range entries {
		w, err := zw.Create(entry)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	return path
}

func TestExtractArchive(t *testing.T) {
	dir := t.TempDir()
	archive := makeZip(t, dir, "tokens.zip", map[string]string{
		"core.inp.json":              `{"a": {"$value": 1}}`,
		"nested/dark.theme.inp.json": `{"b": {"$value": 2}}`,
	})

	scratch, err := ExtractArchive(archive)
	require.NoError(t, err)
	defer Cleanup(scratch)

	data, err := os.ReadFile(filepath.Join(scratch, "core.inp.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"$value": 1}}`, string(data))

	_, err = os.Stat(filepath.Join(scratch, "nested", "dark.theme.inp.json"))
	assert.NoError(t, err)
}

func TestExtractArchiveMissing(t *testing.T) {
	_, err := ExtractArchive(filepath.Join(t.TempDir(), "absent.zip"))
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}

func TestExtractArchiveNotAFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "folder.zip")
	require.NoError(t, os.Mkdir(sub, 0o755))

	_, err := ExtractArchive(sub)
	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestExtractArchiveWrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.tar")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	_, err := ExtractArchive(path)
	assert.ErrorIs(t, err, ErrNotZip)
}

func TestExtractArchiveExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	archive := makeZip(t, dir, "TOKENS.ZIP", map[string]string{"a.inp.json": "{}"})

	scratch, err := ExtractArchive(archive)
	require.NoError(t, err)
	defer Cleanup(scratch)
}

func TestExtractArchiveEmpty(t *testing.T) {
	dir := t.TempDir()
	archive := makeZip(t, dir, "empty.zip", nil)

	_, err := ExtractArchive(archive)
	assert.ErrorIs(t, err, ErrEmptyArchive)
}

func TestExtractArchiveCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.zip")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a zip"), 0o644))

	_, err := ExtractArchive(path)
	require.Error(t, err)
}

func TestCleanup(t *testing.T) {
	dir := t.TempDir()
	scratch := filepath.Join(dir, "scratch")
	require.NoError(t, os.MkdirAll(filepath.Join(scratch, "sub"), 0o755))

	require.NoError(t, Cleanup(scratch))
	_, err := os.Stat(scratch)
	assert.True(t, os.IsNotExist(err))

	// Removing an already-removed directory is success.
	require.NoError(t, Cleanup(scratch))
	require.NoError(t, Cleanup(""))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "Downloads"), ExpandHome("~/Downloads"))
	assert.Equal(t, "/tmp/out", ExpandHome("/tmp/out"))
	assert.Equal(t, "relative/out", ExpandHome("relative/out"))
}
