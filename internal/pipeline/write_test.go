package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/wordcollect/internal/collection"
)

func TestWriteFile_NewFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words_collection.json")
	coll, _ := collection.Build(sampleWords)

	require.NoError(t, WriteFile(path, coll))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), fi.Mode().Perm())
}

func TestWriteFile_KeepsExistingMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words_collection.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))
	coll, _ := collection.Build(sampleWords)

	require.NoError(t, WriteFile(path, coll))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, string(got))
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	coll, _ := collection.Build(sampleWords)

	require.NoError(t, WriteFile(filepath.Join(dir, "out.yaml"), coll))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.yaml", entries[0].Name())
}
