package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunerlab/pandora-cli/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "pandora/listener/password", "hunter2"))

	value, err := store.Get(ctx, "pandora/listener/password")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", value)

	require.NoError(t, store.Delete(ctx, "pandora/listener/password"))

	_, err = store.Get(ctx, "pandora/listener/password")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStorePutEnforcesFileMode(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "pandora/listener/password", "hunter2"))

	info, err := os.Stat(filepath.Join(root, "pandora", "listener", "password"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreRejectsEscapingKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"", "  ", ".", "../outside", "/etc/passwd"} {
		assert.Error(t, store.Put(ctx, key, "value"), "key %q", key)
	}
}

func TestStoreDeleteMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	assert.NoError(t, store.Delete(context.Background(), "pandora/never/stored"))
}

func TestStoreCanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "k", "v"), context.Canceled)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
