package api

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	store, err := NewFileTokenStore(t.TempDir())
	require.NoError(t, err)

	// no token yet: empty string, no error
	token, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.Save("access-123"))

	token, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "access-123", token)

	// overwrite
	require.NoError(t, store.Save("access-456"))
	token, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "access-456", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestFileTokenStore_ClearIsIdempotent(t *testing.T) {
	store, err := NewFileTokenStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestFileTokenStore_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	store, err := NewFileTokenStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("tok"))
	token, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "tok", token)
}
