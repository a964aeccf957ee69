package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/hoist/internal/domain"
)

const dayLayout = "20060102"

// CacheStore keeps buildx local cache fragments as <root>/<cache-key> directories.
type CacheStore struct {
	rootDir string
	log     zerowrap.Logger
}

// NewCacheStore creates a new filesystem cache store.
func NewCacheStore(rootDir string, log zerowrap.Logger) (*CacheStore, error) {
	rootDir = expandTilde(rootDir)

	if err := os.MkdirAll(rootDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &CacheStore{rootDir: rootDir, log: log}, nil
}

// Restore returns the primary fragment when present, else the newest
// fragment matching the first restore prefix that has any.
func (s *CacheStore) Restore(_ context.Context, key domain.CacheKey) (string, bool, error) {
	primary := filepath.Join(s.rootDir, key.Primary)
	if info, err := os.Stat(primary); err == nil && info.IsDir() {
		return primary, true, nil
	}

	for _, prefix := range key.RestoreKeys {
		matches, err := s.fragments(prefix)
		if err != nil {
			return "", false, err
		}
		if len(matches) > 0 {
			return filepath.Join(s.rootDir, matches[0]), true, nil
		}
	}

	return "", false, nil
}

// Target returns the directory the primary fragment is exported to.
func (s *CacheStore) Target(_ context.Context, key domain.CacheKey) (string, error) {
	if key.Primary == "" || strings.ContainsAny(key.Primary, `/\`) {
		return "", fmt.Errorf("invalid cache key %q", key.Primary)
	}
	return filepath.Join(s.rootDir, key.Primary), nil
}

// Prune removes every fragment sharing a restore prefix except the primary.
func (s *CacheStore) Prune(_ context.Context, key domain.CacheKey) (int, error) {
	removed := 0
	for _, prefix := range key.RestoreKeys {
		matches, err := s.fragments(prefix)
		if err != nil {
			return removed, err
		}
		for _, name := range matches {
			if name == key.Primary {
				continue
			}
			if err := os.RemoveAll(filepath.Join(s.rootDir, name)); err != nil {
				return removed, err
			}
			s.log.Debug().Str("fragment", name).Msg("cache fragment removed")
			removed++
		}
	}
	return removed, nil
}

// isFragment matches <prefix><YYYYMMDD> only, so linux-arm never picks up linux-arm-v7.
func isFragment(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || len(rest) != len(dayLayout) {
		return false
	}
	_, err := time.Parse(dayLayout, rest)
	return err == nil
}

// fragments returns fragment directories starting with prefix, newest first.
// Keys end in a YYYYMMDD date, so name order is age order.
func (s *CacheStore) fragments(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && isFragment(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
