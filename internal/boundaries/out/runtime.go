// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, buildx, registries, artifact storage, etc.).
package out

import (
	"context"
	"io"

	"github.com/bnema/hoist/internal/domain"
)

// ImageRuntime defines the contract for local image store operations.
// This interface abstracts the underlying container engine.
type ImageRuntime interface {
	// SaveImage streams an uncompressed image archive for ref.
	SaveImage(ctx context.Context, ref string) (io.ReadCloser, error)
	// LoadImage imports an image archive and returns the tags it carried.
	LoadImage(ctx context.Context, archive io.Reader) ([]string, error)
	TagImage(ctx context.Context, sourceRef, targetRef string) error
	PushImage(ctx context.Context, ref string, cred domain.RegistryCredential) error
	RemoveImage(ctx context.Context, ref string) error
}
