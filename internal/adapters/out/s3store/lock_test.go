package s3store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoist/internal/domain"
)

const lockKey = "ci/locks/ghcr.io_acme_app.lock"

func lockCtx() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func newTestS3Locker(api API) *Locker {
	l := NewLocker(api, "artifacts", "/ci/", time.Hour)
	l.retryDelay = 10 * time.Millisecond
	return l
}

func TestLocker_AcquireRelease(t *testing.T) {
	api := newFakeS3()
	l := newTestS3Locker(api)

	release, err := l.Acquire(lockCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)
	assert.True(t, api.has(lockKey))
	require.Len(t, api.puts, 1)
	assert.Equal(t, "*", aws.ToString(api.puts[0].IfNoneMatch))
	assert.Equal(t, "artifacts", aws.ToString(api.puts[0].Bucket))

	require.NoError(t, release())
	assert.False(t, api.has(lockKey))

	// Released locks can be taken again.
	release, err = l.Acquire(lockCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)
	require.NoError(t, release())
}

func TestLocker_SecondAcquireWaits(t *testing.T) {
	api := newFakeS3()
	first := newTestS3Locker(api)
	second := newTestS3Locker(api)

	release, err := first.Acquire(lockCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)

	var acquired atomic.Bool
	done := make(chan error, 1)
	go func() {
		rel, err := second.Acquire(lockCtx(), "ghcr.io/acme/app")
		if err == nil {
			acquired.Store(true)
			err = rel()
		}
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, acquired.Load(), "second runner must wait for the holder")

	require.NoError(t, release())

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.True(t, acquired.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("second runner never acquired the lock")
	}
}

func TestLocker_DistinctNamesDoNotBlock(t *testing.T) {
	api := newFakeS3()
	l := newTestS3Locker(api)

	relA, err := l.Acquire(lockCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)
	relB, err := l.Acquire(lockCtx(), "ghcr.io/acme/other")
	require.NoError(t, err)

	require.NoError(t, relB())
	require.NoError(t, relA())
}

func TestLocker_ContextCancelWhileWaiting(t *testing.T) {
	api := newFakeS3()
	l := newTestS3Locker(api)

	release, err := l.Acquire(lockCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)
	defer func() { _ = release() }()

	ctx, cancel := context.WithTimeout(lockCtx(), 50*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "ghcr.io/acme/app")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, api.has(lockKey), "waiter must not remove the holder's lock")
}

func TestLocker_BreaksStaleLock(t *testing.T) {
	api := newFakeS3()
	l := newTestS3Locker(api)

	// A crashed runner never released its lock.
	_, err := l.Acquire(lockCtx(), "ghcr.io/acme/app")
	require.NoError(t, err)
	api.age(lockKey, 2*time.Hour)

	ctx, cancel := context.WithTimeout(lockCtx(), 2*time.Second)
	defer cancel()

	release, err := l.Acquire(ctx, "ghcr.io/acme/app")
	require.NoError(t, err)
	assert.Contains(t, api.deletes, lockKey)
	require.NoError(t, release())
}

type failingPutS3 struct {
	*fakeS3
	err error
}

func (f *failingPutS3) PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return nil, f.err
}

func TestLocker_PutErrorFailsFast(t *testing.T) {
	api := &failingPutS3{fakeS3: newFakeS3(), err: errors.New("access denied")}
	l := newTestS3Locker(api)

	_, err := l.Acquire(lockCtx(), "ghcr.io/acme/app")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLockFailed)
}
