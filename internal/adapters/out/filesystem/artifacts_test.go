package filesystem

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

func testLogger() zerowrap.Logger {
	return zerowrap.Default()
}

func TestArtifactStore_PutAndGet(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	payload := []byte("gzip-bytes")
	size, err := store.Put(context.Background(), "run-1", "linux-amd64.tar.gz", bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), size)

	rc, err := store.Get(context.Background(), "run-1", "linux-amd64.tar.gz")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestArtifactStore_GetMissing(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "run-1", "linux-amd64.tar.gz")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestArtifactStore_ListIsRunScoped(t *testing.T) {
	root := t.TempDir()
	store, err := NewArtifactStore(root, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Put(ctx, "run-1", "linux-arm64.tar.gz", bytes.NewReader([]byte("bb")))
	require.NoError(t, err)
	_, err = store.Put(ctx, "run-1", "linux-amd64.tar.gz", bytes.NewReader([]byte("a")))
	require.NoError(t, err)
	_, err = store.Put(ctx, "run-2", "linux-amd64.tar.gz", bytes.NewReader([]byte("c")))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "run-1", "partial.tar.gz.tmp"), []byte("x"), 0o600))

	infos, err := store.List(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []out.ArtifactInfo{
		{Name: "linux-amd64.tar.gz", Size: 1},
		{Name: "linux-arm64.tar.gz", Size: 2},
	}, infos)

	empty, err := store.List(ctx, "run-404")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestArtifactStore_Purge(t *testing.T) {
	root := t.TempDir()
	store, err := NewArtifactStore(root, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Put(ctx, "run-1", "linux-amd64.tar.gz", bytes.NewReader([]byte("a")))
	require.NoError(t, err)
	_, err = store.Put(ctx, "run-2", "linux-amd64.tar.gz", bytes.NewReader([]byte("b")))
	require.NoError(t, err)

	require.NoError(t, store.Purge(ctx, "run-1"))

	_, err = os.Stat(filepath.Join(root, "run-1"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "run-2", "linux-amd64.tar.gz"))
	assert.NoError(t, err)
}

func TestArtifactStore_SanitizesTraversal(t *testing.T) {
	root := t.TempDir()
	store, err := NewArtifactStore(filepath.Join(root, "artifacts"), testLogger())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../escape", "../../x.tar.gz", bytes.NewReader([]byte("a")))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "x.tar.gz"))
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, store.Purge(context.Background(), ".."))
	_, err = os.Stat(filepath.Join(root, "artifacts"))
	assert.NoError(t, err)
}
