package photos

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "photos")
	store, err := NewStore(dir, "/static/photos")
	require.NoError(t, err)

	assert.False(t, store.Exists("7_1.jpg"))

	url, err := store.Save(context.Background(), "7_1.jpg", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/static/photos/7_1.jpg", url)
	assert.True(t, store.Exists("7_1.jpg"))

	data, err := os.ReadFile(filepath.Join(dir, "7_1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStore_RejectsTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/static/photos")
	require.NoError(t, err)

	for _, name := range []string{"", "../x.jpg", "a/b.jpg", ".hidden"} {
		_, err := store.Save(context.Background(), name, []byte("x"))
		assert.Error(t, err, name)
		assert.False(t, store.Exists(name))
	}
}

func TestStore_CancelledContext(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/static/photos")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Save(ctx, "1_1.jpg", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_EmptyFileIsNotPresent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "/static/photos")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "1_1.jpg"), nil, 0o644))
	assert.False(t, store.Exists("1_1.jpg"))
}
