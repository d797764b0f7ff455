package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSnapshotRoundTrip(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Kids"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "IT", "Programming", "Python"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Kids", "Stories_for_kids.epub"), []byte("once upon a time"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "IT", "Programming", "Python", "Python_Crash_Course.pdf"), []byte("chapter one"), 0o644))

	snapshot := filepath.Join(t.TempDir(), "library.tar.lz4")
	require.NoError(t, WriteSnapshot(snapshot, root))

	names, err := ListSnapshot(snapshot)
	require.NoError(t, err)
	assert.Contains(t, names, "Kids/")
	assert.Contains(t, names, "Kids/Stories_for_kids.epub")
	assert.Contains(t, names, "IT/Programming/Python/Python_Crash_Course.pdf")
}

func TestWriteSnapshotEmptyTree(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "empty.tar.lz4")
	require.NoError(t, WriteSnapshot(snapshot, t.TempDir()))

	names, err := ListSnapshot(snapshot)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListSnapshotMissingFile(t *testing.T) {
	_, err := ListSnapshot(filepath.Join(t.TempDir(), "missing.tar.lz4"))
	require.Error(t, err)
}
