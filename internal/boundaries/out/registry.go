package out

import (
	"context"

	"github.com/bnema/hoist/internal/domain"
)

// ManifestRegistry reads and writes manifests in a remote registry.
type ManifestRegistry interface {
	// Resolve returns the descriptor of the manifest behind ref.
	Resolve(ctx context.Context, ref string) (domain.ManifestDescriptor, error)
	// PushIndex writes a manifest list at ref, fully replacing any previous one.
	PushIndex(ctx context.Context, ref string, members []domain.ManifestMember) (domain.ManifestDescriptor, error)
}

// CredentialStore provides registry credentials for the duration of a publish.
type CredentialStore interface {
	Get(ctx context.Context, registry string) (domain.RegistryCredential, error)
	// Clear removes every credential. Later Get calls fail.
	Clear(ctx context.Context) error
}
