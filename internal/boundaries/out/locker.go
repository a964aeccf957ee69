package out

import "context"

// Locker provides named mutual exclusion across processes.
type Locker interface {
	// Acquire blocks until the lock is held or ctx is done.
	Acquire(ctx context.Context, name string) (release func() error, err error)
}
