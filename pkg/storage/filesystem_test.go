package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpen(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save("student_1/report.pdf", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "student_1/report.pdf", stored)

	file, err := store.Open(stored)
	require.NoError(t, err)
	defer file.Close()

	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestSaveStream(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	require.NoError(t, err)

	stored, err := store.SaveStream("tutor_3/solution_answer.txt", strings.NewReader("solution"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(base, stored))
	require.NoError(t, err)
	assert.Equal(t, "solution", string(data))
}

func TestSaveCreatesNestedDirectories(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	require.NoError(t, err)

	_, err = store.Save("a/b/c/file.txt", []byte("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, "a", "b", "c", "file.txt"))
	require.NoError(t, err)
}

func TestDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save("file.txt", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(stored))
	_, err = store.Open(stored)
	require.Error(t, err)

	// Deleting a missing file is not an error.
	require.NoError(t, store.Delete("missing.txt"))
}

func TestDirAndPath(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	require.NoError(t, err)

	assert.Equal(t, base, store.Dir())
	assert.Equal(t, filepath.Join(base, "f.txt"), store.Path("f.txt"))
}
