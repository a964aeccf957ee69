// Package ociregistry implements the manifest registry adapter using oras-go.
package ociregistry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/zerowrap"
	"github.com/opencontainers/go-digest"
	"github.com/opencontainers/image-spec/specs-go"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/registry"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/retry"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

// Docker distribution media types. The engine pushes schema2 manifests, and
// registries expect those to be grouped by a docker manifest list.
const (
	MediaTypeDockerManifest     = "application/vnd.docker.distribution.manifest.v2+json"
	MediaTypeDockerManifestList = "application/vnd.docker.distribution.manifest.list.v2+json"
)

// Config holds registry connection options.
type Config struct {
	// PlainHTTP talks to the registry without TLS. Only for local registries.
	PlainHTTP bool
}

// Registry implements out.ManifestRegistry against an OCI distribution registry.
type Registry struct {
	creds  out.CredentialStore
	config Config
	client *auth.Client
}

// New creates a registry adapter. Credentials are looked up per host on demand;
// a nil store means anonymous access.
func New(creds out.CredentialStore, config Config) *Registry {
	r := &Registry{
		creds:  creds,
		config: config,
	}
	r.client = &auth.Client{
		Client:     retry.DefaultClient,
		Cache:      auth.NewCache(),
		Credential: r.credential,
	}
	r.client.SetUserAgent("hoist")
	return r
}

func (r *Registry) credential(ctx context.Context, hostport string) (auth.Credential, error) {
	if r.creds == nil {
		return auth.EmptyCredential, nil
	}
	cred, err := r.creds.Get(ctx, hostport)
	if errors.Is(err, domain.ErrCredentialsNotFound) {
		return auth.EmptyCredential, nil
	}
	if err != nil {
		return auth.EmptyCredential, err
	}
	return auth.Credential{Username: cred.Username, Password: cred.Password}, nil
}

func (r *Registry) repository(ref string) (*remote.Repository, string, error) {
	parsed, err := registry.ParseReference(ref)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", domain.ErrInvalidReference, ref, err)
	}
	if parsed.Reference == "" {
		return nil, "", fmt.Errorf("%w: %s: missing tag", domain.ErrInvalidReference, ref)
	}

	repo, err := remote.NewRepository(parsed.Registry + "/" + parsed.Repository)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create repository: %w", err)
	}
	repo.PlainHTTP = r.config.PlainHTTP
	repo.Client = r.client
	return repo, parsed.Reference, nil
}

// Resolve returns the descriptor of the manifest behind ref.
func (r *Registry) Resolve(ctx context.Context, ref string) (domain.ManifestDescriptor, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "oras",
		zerowrap.FieldAction:  "Resolve",
		"ref":                 ref,
	})
	log := zerowrap.FromCtx(ctx)

	repo, tag, err := r.repository(ref)
	if err != nil {
		return domain.ManifestDescriptor{}, log.WrapErr(err, "invalid reference")
	}

	desc, err := repo.Resolve(ctx, tag)
	if err != nil {
		return domain.ManifestDescriptor{}, log.WrapErr(err, "failed to resolve manifest")
	}

	log.Debug().Str("digest", desc.Digest.String()).Str("media_type", desc.MediaType).Msg("manifest resolved")
	return fromOCI(desc), nil
}

// PushIndex writes a manifest list at ref binding every member.
// The previous list under the same tag is replaced as a whole.
func (r *Registry) PushIndex(ctx context.Context, ref string, members []domain.ManifestMember) (domain.ManifestDescriptor, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "oras",
		zerowrap.FieldAction:  "PushIndex",
		zerowrap.FieldCount:   len(members),
		"ref":                 ref,
	})
	log := zerowrap.FromCtx(ctx)

	if len(members) == 0 {
		return domain.ManifestDescriptor{}, log.WrapErr(domain.ErrNoPlatforms, "refusing to push empty manifest list")
	}

	repo, tag, err := r.repository(ref)
	if err != nil {
		return domain.ManifestDescriptor{}, log.WrapErr(err, "invalid reference")
	}

	index, err := buildIndex(members)
	if err != nil {
		return domain.ManifestDescriptor{}, log.WrapErr(err, "failed to build manifest list")
	}

	data, err := json.Marshal(index)
	if err != nil {
		return domain.ManifestDescriptor{}, log.WrapErr(err, "failed to encode manifest list")
	}

	desc := content.NewDescriptorFromBytes(index.MediaType, data)
	if err := repo.PushReference(ctx, desc, bytes.NewReader(data), tag); err != nil {
		return domain.ManifestDescriptor{}, log.WrapErr(err, "failed to push manifest list")
	}

	log.Info().Str("digest", desc.Digest.String()).Msg("manifest list pushed")
	return fromOCI(desc), nil
}

// buildIndex groups members into an OCI index, or a docker manifest list when
// every member is a docker schema2 manifest.
func buildIndex(members []domain.ManifestMember) (ocispec.Index, error) {
	mediaType := MediaTypeDockerManifestList
	manifests := make([]ocispec.Descriptor, 0, len(members))
	for _, m := range members {
		dgst, err := digest.Parse(m.Descriptor.Digest)
		if err != nil {
			return ocispec.Index{}, fmt.Errorf("member %s: %w", m.Ref, err)
		}
		if m.Descriptor.MediaType != MediaTypeDockerManifest {
			mediaType = ocispec.MediaTypeImageIndex
		}
		manifests = append(manifests, ocispec.Descriptor{
			MediaType: m.Descriptor.MediaType,
			Digest:    dgst,
			Size:      m.Descriptor.Size,
			Platform: &ocispec.Platform{
				OS:           m.Platform.OS,
				Architecture: m.Platform.Architecture,
				Variant:      m.Platform.Variant,
			},
		})
	}

	return ocispec.Index{
		Versioned: specs.Versioned{SchemaVersion: 2},
		MediaType: mediaType,
		Manifests: manifests,
	}, nil
}

func fromOCI(desc ocispec.Descriptor) domain.ManifestDescriptor {
	return domain.ManifestDescriptor{
		MediaType: desc.MediaType,
		Digest:    desc.Digest.String(),
		Size:      desc.Size,
	}
}
