// Package filesystem implements artifact and cache storage on the local filesystem.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

const tmpSuffix = ".tmp"

// ArtifactStore keeps run artifacts under <root>/<run-id>/<name>.
type ArtifactStore struct {
	rootDir string
	log     zerowrap.Logger
}

// NewArtifactStore creates a new filesystem artifact store.
func NewArtifactStore(rootDir string, log zerowrap.Logger) (*ArtifactStore, error) {
	rootDir = expandTilde(rootDir)

	if err := os.MkdirAll(rootDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}

	return &ArtifactStore{rootDir: rootDir, log: log}, nil
}

// Put writes an artifact atomically and returns its size.
func (s *ArtifactStore) Put(_ context.Context, runID, name string, data io.Reader) (int64, error) {
	runDir := s.runDir(runID)
	if err := os.MkdirAll(runDir, 0750); err != nil {
		return 0, fmt.Errorf("failed to create run directory: %w", err)
	}

	finalPath := filepath.Join(runDir, sanitizePathComponent(name))
	tmpPath := finalPath + tmpSuffix

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return 0, fmt.Errorf("failed to create temp artifact file: %w", err)
	}

	size, err := io.Copy(f, data)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to write artifact data: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to close temp artifact file: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to finalize artifact file: %w", err)
	}

	s.log.Debug().Str(zerowrap.FieldPath, finalPath).Int64("size", size).Msg("artifact stored")
	return size, nil
}

// Get opens an artifact.
func (s *ArtifactStore) Get(_ context.Context, runID, name string) (io.ReadCloser, error) {
	path := filepath.Join(s.runDir(runID), sanitizePathComponent(name))
	if !pathWithinRoot(s.rootDir, path) {
		return nil, fmt.Errorf("artifact path escapes storage root")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrArtifactNotFound, runID, name)
		}
		return nil, err
	}
	return f, nil
}

// List returns the finished artifacts of a run, sorted by name.
func (s *ArtifactStore) List(_ context.Context, runID string) ([]out.ArtifactInfo, error) {
	entries, err := os.ReadDir(s.runDir(runID))
	if err != nil {
		if os.IsNotExist(err) {
			return []out.ArtifactInfo{}, nil
		}
		return nil, err
	}

	infos := make([]out.ArtifactInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), tmpSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, out.ArtifactInfo{Name: e.Name(), Size: info.Size()})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Purge removes the run directory.
func (s *ArtifactStore) Purge(_ context.Context, runID string) error {
	dir := s.runDir(runID)
	if !pathWithinRoot(s.rootDir, dir) || filepath.Clean(dir) == filepath.Clean(s.rootDir) {
		return fmt.Errorf("run path escapes storage root")
	}
	return os.RemoveAll(dir)
}

func (s *ArtifactStore) runDir(runID string) string {
	return filepath.Join(s.rootDir, sanitizePathComponent(runID))
}

// expandTilde replaces a leading "~/" with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path[2:])
	}
	return path
}

func sanitizePathComponent(input string) string {
	clean := strings.TrimSpace(input)
	if strings.Trim(clean, ".") == "" {
		return "unknown"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	return replacer.Replace(clean)
}

func pathWithinRoot(root, path string) bool {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	pathAbs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	rootClean := filepath.Clean(rootAbs)
	pathClean := filepath.Clean(pathAbs)
	rel, err := filepath.Rel(rootClean, pathClean)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
