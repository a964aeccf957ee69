package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/bnema/zerowrap"
	"github.com/google/uuid"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

const (
	defaultLockRetryDelay = 2 * time.Second
	// DefaultLockStaleAfter bounds how long a crashed holder blocks others.
	DefaultLockStaleAfter = time.Hour
)

var _ out.Locker = (*Locker)(nil)

// Locker implements out.Locker with one object per lock name, created with a
// conditional put so only one writer can hold it. Waiters poll; acquisition
// order between them is not guaranteed.
type Locker struct {
	api        API
	bucket     string
	prefix     string
	owner      string
	retryDelay time.Duration
	staleAfter time.Duration
	now        func() time.Time
}

// NewLocker creates a locker keeping its objects under <prefix>/locks/.
// A lock older than staleAfter is considered abandoned and broken.
func NewLocker(api API, bucket, prefix string, staleAfter time.Duration) *Locker {
	if staleAfter <= 0 {
		staleAfter = DefaultLockStaleAfter
	}
	host, _ := os.Hostname()
	return &Locker{
		api:        api,
		bucket:     bucket,
		prefix:     strings.Trim(prefix, "/"),
		owner:      host + "/" + uuid.NewString(),
		retryDelay: defaultLockRetryDelay,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// NewLockerFromConfig creates a locker on the bucket described by cfg.
func NewLockerFromConfig(ctx context.Context, cfg Config, staleAfter time.Duration) (*Locker, error) {
	client, err := newClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewLocker(client, cfg.Bucket, cfg.Prefix, staleAfter), nil
}

// Acquire blocks until the named lock object is created by this process or ctx is done.
func (l *Locker) Acquire(ctx context.Context, name string) (func() error, error) {
	key := l.key(name)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "s3lock",
		zerowrap.FieldAction:  "Acquire",
		"bucket":              l.bucket,
		"key":                 key,
		"lock":                name,
	})
	log := zerowrap.FromCtx(ctx)

	start := time.Now()
	for {
		created, err := l.tryCreate(ctx, key)
		if err != nil {
			return nil, log.WrapErr(err, "failed to acquire lock")
		}
		if created {
			break
		}

		if err := l.breakIfStale(ctx, key); err != nil {
			log.Warn().Err(err).Msg("failed to inspect lock holder")
		}

		select {
		case <-ctx.Done():
			return nil, log.WrapErr(ctx.Err(), "gave up waiting for lock")
		case <-time.After(l.retryDelay):
		}
	}

	log.Debug().Dur(zerowrap.FieldDuration, time.Since(start)).Msg("lock acquired")

	return func() error {
		_, err := l.api.DeleteObject(context.WithoutCancel(ctx), &s3.DeleteObjectInput{
			Bucket: aws.String(l.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return fmt.Errorf("failed to release lock %s: %w", name, err)
		}
		log.Debug().Msg("lock released")
		return nil
	}, nil
}

// tryCreate reports false when another holder owns the object.
func (l *Locker) tryCreate(ctx context.Context, key string) (bool, error) {
	body := []byte(l.owner)
	_, err := l.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(l.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		IfNoneMatch:   aws.String("*"),
	})
	if err == nil {
		return true, nil
	}
	if isConditionFailure(err) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %w", domain.ErrLockFailed, err)
}

func (l *Locker) breakIfStale(ctx context.Context, key string) error {
	head, err := l.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}

	age := l.now().Sub(aws.ToTime(head.LastModified))
	if head.LastModified == nil || age < l.staleAfter {
		return nil
	}

	log := zerowrap.FromCtx(ctx)
	log.Warn().Dur("age", age).Msg("breaking abandoned lock")
	_, err = l.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (l *Locker) key(name string) string {
	return path.Join(l.prefix, "locks", lockFileName(name))
}

var unsafeLockChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func lockFileName(name string) string {
	safe := strings.Trim(unsafeLockChars.ReplaceAllString(name, "_"), "._")
	if safe == "" {
		safe = "default"
	}
	return safe + ".lock"
}

func isConditionFailure(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "PreconditionFailed", "ConditionalRequestConflict":
		return true
	}
	return false
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NotFound", "NoSuchKey":
		return true
	}
	return false
}
