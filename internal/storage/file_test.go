package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramiyazhr/kampusskill-app2/internal/storage"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = fs.Get(ctx, "users")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, fs.Set(ctx, "users", []byte(`[{"id":"u1"}]`)))
	got, err := fs.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"u1"}]`, string(got))

	// overwrite
	require.NoError(t, fs.Set(ctx, "users", []byte(`[]`)))
	got, err = fs.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, fs.Delete(ctx, "users"))
	_, err = fs.Get(ctx, "users")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// delete key yang tidak ada bukan error
	assert.NoError(t, fs.Delete(ctx, "users"))
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Set(ctx, "services", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "services.json", entries[0].Name())
	assert.Equal(t, filepath.Ext(entries[0].Name()), ".json")
}

func TestMemoryStoreIsolation(t *testing.T) {
	ms := storage.NewMemoryStore()
	ctx := context.Background()

	val := []byte(`abc`)
	require.NoError(t, ms.Set(ctx, "k", val))
	val[0] = 'x' // mutasi caller tidak boleh bocor ke store

	got, err := ms.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	require.NoError(t, ms.Delete(ctx, "k"))
	_, err = ms.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}
