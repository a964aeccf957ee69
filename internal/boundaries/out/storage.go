package out

import (
	"context"
	"io"
)

// ArtifactInfo describes one stored artifact.
type ArtifactInfo struct {
	Name string
	Size int64
}

// ArtifactStore keeps run-scoped artifacts, addressed by run ID and name.
type ArtifactStore interface {
	Put(ctx context.Context, runID, name string, data io.Reader) (int64, error)
	// Get returns domain.ErrArtifactNotFound when the artifact does not exist.
	Get(ctx context.Context, runID, name string) (io.ReadCloser, error)
	List(ctx context.Context, runID string) ([]ArtifactInfo, error)
	Purge(ctx context.Context, runID string) error
}
