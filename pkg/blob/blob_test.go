package blob_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openshelf/library-service/pkg/blob"
)

func TestFileStore_SaveDelete(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store, err := blob.NewFileStore(dir)
	require.NoError(t, err)

	ref, err := store.Save([]byte("png-bytes"), ".png")
	require.NoError(t, err)
	require.Equal(t, ".png", filepath.Ext(ref))

	data, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Delete(ref))
	_, err = os.Stat(filepath.Join(dir, ref))
	require.True(t, os.IsNotExist(err))
}

func TestFileStore_DeleteMissing(t *testing.T) {
	t.Parallel()
	store, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Delete("gone.png"))
}

func TestFileStore_DeleteRejectsPaths(t *testing.T) {
	t.Parallel()
	store, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.Error(t, store.Delete("../etc/passwd"))
	require.Error(t, store.Delete("a/b.png"))
}
