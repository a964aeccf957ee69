// Package lock implements cross-process named locks with lock files.
package lock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/gofrs/flock"

	"github.com/bnema/hoist/internal/domain"
)

const defaultRetryDelay = 500 * time.Millisecond

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileLocker implements out.Locker with one flock(2) file per lock name.
// Waiters poll every retryDelay until the holder unlocks, so acquisition order
// among them is not FIFO. A holder is never preempted.
type FileLocker struct {
	dir        string
	retryDelay time.Duration
}

// NewFileLocker creates a locker that keeps its lock files under dir.
func NewFileLocker(dir string) (*FileLocker, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: lock directory is required", domain.ErrInvalidConfig)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	return &FileLocker{dir: dir, retryDelay: defaultRetryDelay}, nil
}

// Acquire blocks until the named lock is held or ctx is done.
func (l *FileLocker) Acquire(ctx context.Context, name string) (func() error, error) {
	path := l.path(name)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "flock",
		zerowrap.FieldAction:  "Acquire",
		zerowrap.FieldPath:    path,
		"lock":                name,
	})
	log := zerowrap.FromCtx(ctx)

	start := time.Now()
	fl := flock.New(path)
	locked, err := fl.TryLockContext(ctx, l.retryDelay)
	if err != nil {
		return nil, log.WrapErr(err, "failed to acquire lock")
	}
	if !locked {
		return nil, log.WrapErr(fmt.Errorf("lock %s is held elsewhere", name), "lock not acquired")
	}

	log.Debug().Dur(zerowrap.FieldDuration, time.Since(start)).Msg("lock acquired")

	return func() error {
		if err := fl.Unlock(); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", name, err)
		}
		log.Debug().Msg("lock released")
		return nil
	}, nil
}

func (l *FileLocker) path(name string) string {
	safe := strings.Trim(unsafeChars.ReplaceAllString(name, "_"), "._")
	if safe == "" {
		safe = "default"
	}
	return filepath.Join(l.dir, safe+".lock")
}
