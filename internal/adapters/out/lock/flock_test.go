package lock

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoist/internal/domain"
)

func testCtx() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func newTestLocker(t *testing.T) *FileLocker {
	t.Helper()
	l, err := NewFileLocker(filepath.Join(t.TempDir(), "locks"))
	require.NoError(t, err)
	l.retryDelay = 10 * time.Millisecond
	return l
}

func TestNewFileLocker_RequiresDir(t *testing.T) {
	_, err := NewFileLocker("")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestFileLocker_AcquireRelease(t *testing.T) {
	l := newTestLocker(t)

	release, err := l.Acquire(testCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)
	require.NoError(t, release())

	// Released locks can be taken again.
	release, err = l.Acquire(testCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)
	require.NoError(t, release())
}

func TestFileLocker_SecondAcquireWaits(t *testing.T) {
	l := newTestLocker(t)

	release, err := l.Acquire(testCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)

	var acquired atomic.Bool
	done := make(chan error, 1)
	go func() {
		rel, err := l.Acquire(testCtx(), "ghcr.io/acme/app")
		if err == nil {
			acquired.Store(true)
			err = rel()
		}
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, acquired.Load(), "second run must queue behind the holder")

	require.NoError(t, release())
	select {
	case err := <-done:
		require.NoError(t, err)
		assert.True(t, acquired.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("waiter never acquired the lock")
	}
}

func TestFileLocker_CancelledWhileWaiting(t *testing.T) {
	l := newTestLocker(t)

	release, err := l.Acquire(testCtx(), "app")
	require.NoError(t, err)
	defer func() { _ = release() }()

	ctx, cancel := context.WithTimeout(testCtx(), 50*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "app")
	assert.Error(t, err)
}

func TestFileLocker_DistinctNamesDoNotContend(t *testing.T) {
	l := newTestLocker(t)

	relA, err := l.Acquire(testCtx(), "ghcr.io/acme/a")
	require.NoError(t, err)
	defer func() { _ = relA() }()

	ctx, cancel := context.WithTimeout(testCtx(), time.Second)
	defer cancel()
	relB, err := l.Acquire(ctx, "ghcr.io/acme/b")
	require.NoError(t, err)
	require.NoError(t, relB())
}

func TestFileLocker_PathIsSanitized(t *testing.T) {
	l := newTestLocker(t)

	assert.Equal(t, filepath.Join(l.dir, "ghcr.io_acme_app.lock"), l.path("ghcr.io/acme/app"))
	assert.Equal(t, filepath.Join(l.dir, "default.lock"), l.path("../.."))
	assert.Equal(t, filepath.Join(l.dir, "localhost_5000_app.lock"), l.path("localhost:5000/app"))
}
