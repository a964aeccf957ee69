package out

import (
	"context"

	"github.com/bnema/hoist/internal/domain"
)

// BuildInvocation is one builder call for a single platform.
type BuildInvocation struct {
	Job domain.BuildJob
	// CacheFrom is the layer cache directory to import, empty on a cold cache.
	CacheFrom string
	// CacheTo is the directory the refreshed cache is exported to.
	CacheTo string
}

// ImageBuilder builds a single-platform image and loads it into the local image store.
type ImageBuilder interface {
	Build(ctx context.Context, inv BuildInvocation) error
}

// CacheStore manages per-platform build-layer cache fragments.
type CacheStore interface {
	// Restore returns the directory of the best fragment for key:
	// the exact primary key first, then the newest fragment matching a restore prefix.
	Restore(ctx context.Context, key domain.CacheKey) (dir string, found bool, err error)
	// Target returns the directory a fresh fragment for key is written to.
	Target(ctx context.Context, key domain.CacheKey) (string, error)
	// Prune removes fragments sharing key's restore prefix, except the primary.
	Prune(ctx context.Context, key domain.CacheKey) (int, error)
}
