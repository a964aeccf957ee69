// Package publish implements the manifest publisher use case.
package publish

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

// Recoverer loads an archived image back into the local image store.
type Recoverer interface {
	Recover(ctx context.Context, runID string, archive domain.ImageArchive) (domain.RecoveredImage, error)
}

// Service publishes a run's images as multi-architecture manifest lists.
type Service struct {
	locker    out.Locker
	recoverer Recoverer
	runtime   out.ImageRuntime
	registry  out.ManifestRegistry
	creds     out.CredentialStore
}

// NewService creates a new publish service.
func NewService(
	locker out.Locker,
	recoverer Recoverer,
	runtime out.ImageRuntime,
	registry out.ManifestRegistry,
	creds out.CredentialStore,
) *Service {
	return &Service{
		locker:    locker,
		recoverer: recoverer,
		runtime:   runtime,
		registry:  registry,
		creds:     creds,
	}
}

// Publish pushes every archived image under each tag's architecture-qualified
// reference, then binds each tag to a manifest list. No manifest list is
// written unless every qualified push succeeded. Credentials are cleared on
// every exit path.
func (s *Service) Publish(ctx context.Context, req domain.PublishRequest) (domain.PublishResult, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Publish",
		"run_id":              req.RunID,
		"repository":          req.Target.Repository(),
	})
	log := zerowrap.FromCtx(ctx)

	defer func() {
		if err := s.creds.Clear(context.WithoutCancel(ctx)); err != nil {
			log.Error().Err(err).Msg("failed to clear registry credentials")
		}
	}()

	var result domain.PublishResult
	if len(req.Tags) == 0 {
		log.Info().Msg("no publish tags, nothing to push")
		return result, nil
	}
	if len(req.Archives) == 0 {
		return result, log.WrapErr(domain.ErrNoPlatforms, "no archives to publish")
	}
	if err := domain.ValidateTags(req.Tags, req.Archives.Platforms()); err != nil {
		return result, log.WrapErr(err, "refusing to publish")
	}

	log.Info().Str("lock", req.Target.LockName()).Msg("waiting for release lock")
	release, err := s.locker.Acquire(ctx, req.Target.LockName())
	if err != nil {
		return result, log.WrapErr(fmt.Errorf("%w: %w", domain.ErrLockFailed, err), "failed to acquire release lock")
	}
	defer func() {
		if err := release(); err != nil {
			log.Warn().Err(err).Msg("failed to release lock")
		}
	}()

	cred, err := s.creds.Get(ctx, req.Target.Registry)
	if err != nil {
		return result, log.WrapErr(err, "failed to load registry credentials")
	}

	images := make([]domain.RecoveredImage, 0, len(req.Archives))
	for _, p := range req.Archives.Platforms() {
		img, err := s.recoverer.Recover(ctx, req.RunID, req.Archives[p])
		if err != nil {
			return result, log.WrapErr(err, "failed to recover archive")
		}
		images = append(images, img)
	}

	if err := checkDistinct(images); err != nil {
		return result, log.WrapErr(err, "archives do not map to distinct platforms")
	}
	if err := checkExpected(req.Expected, images); err != nil {
		return result, log.WrapErr(err, "recovered platforms differ from the configured set")
	}

	for _, tag := range req.Tags {
		for _, img := range images {
			ref := req.Target.QualifiedRef(tag, img.Platform)
			if err := s.push(ctx, img.LocalRef, ref, cred); err != nil {
				return result, log.WrapErr(err, "aborting before manifest lists")
			}
			result.Pushed = append(result.Pushed, ref)
		}
	}

	lists, err := s.resolveLists(ctx, req, images)
	if err != nil {
		return result, log.WrapErr(err, "failed to resolve manifest members")
	}

	for _, list := range lists {
		desc, err := s.registry.PushIndex(ctx, list.Ref, list.Members)
		if err != nil {
			return result, log.WrapErr(fmt.Errorf("%w: %s: %w", domain.ErrManifestFailed, list.Ref, err), "failed to push manifest list")
		}
		list.Descriptor = desc
		result.Manifests = append(result.Manifests, list)
		log.Info().Str("ref", list.Ref).Str("digest", desc.Digest).Int(zerowrap.FieldCount, len(list.Members)).Msg("manifest list pushed")
	}

	s.untag(ctx, result.Pushed)
	return result, nil
}

// untag drops the local qualified tags once they live in the registry.
func (s *Service) untag(ctx context.Context, refs []string) {
	log := zerowrap.FromCtx(ctx)
	for _, ref := range refs {
		if err := s.runtime.RemoveImage(ctx, ref); err != nil {
			log.Warn().Err(err).Str("ref", ref).Msg("failed to remove local tag")
		}
	}
}

func (s *Service) push(ctx context.Context, localRef, ref string, cred domain.RegistryCredential) error {
	log := zerowrap.FromCtx(ctx)

	if err := s.runtime.TagImage(ctx, localRef, ref); err != nil {
		return fmt.Errorf("%w: tag %s: %w", domain.ErrPushFailed, ref, err)
	}
	if err := s.runtime.PushImage(ctx, ref, cred); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrPushFailed, ref, err)
	}

	log.Info().Str("ref", ref).Msg("image pushed")
	return nil
}

// resolveLists looks up every qualified image before any list is written.
func (s *Service) resolveLists(ctx context.Context, req domain.PublishRequest, images []domain.RecoveredImage) ([]domain.ManifestList, error) {
	lists := make([]domain.ManifestList, 0, len(req.Tags))
	for _, tag := range req.Tags {
		list := domain.ManifestList{Tag: tag, Ref: req.Target.Ref(string(tag))}
		for _, img := range images {
			ref := req.Target.QualifiedRef(tag, img.Platform)
			desc, err := s.registry.Resolve(ctx, ref)
			if err != nil {
				return nil, fmt.Errorf("%w: resolve %s: %w", domain.ErrManifestFailed, ref, err)
			}
			list.Members = append(list.Members, domain.ManifestMember{
				Platform:   img.Platform,
				Ref:        ref,
				Descriptor: desc,
			})
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func checkDistinct(images []domain.RecoveredImage) error {
	seen := make(map[domain.Platform]string, len(images))
	for _, img := range images {
		if other, dup := seen[img.Platform]; dup {
			return fmt.Errorf("%w: %s and %s both carry %s", domain.ErrPlatformMismatch, other, img.Archive.Name, img.Platform)
		}
		seen[img.Platform] = img.Archive.Name
	}
	return nil
}

// checkExpected requires the recovered platforms to equal the expected set.
func checkExpected(expected []domain.Platform, images []domain.RecoveredImage) error {
	if expected == nil {
		return nil
	}
	recovered := make(map[domain.Platform]struct{}, len(images))
	for _, img := range images {
		recovered[img.Platform] = struct{}{}
	}

	var missing, extra []string
	want := make(map[domain.Platform]struct{}, len(expected))
	for _, p := range expected {
		want[p] = struct{}{}
		if _, ok := recovered[p]; !ok {
			missing = append(missing, p.String())
		}
	}
	for _, img := range images {
		if _, ok := want[img.Platform]; !ok {
			extra = append(extra, img.Platform.String())
		}
	}

	switch {
	case len(missing) > 0:
		return fmt.Errorf("%w: no archive for %s", domain.ErrPlatformMismatch, strings.Join(missing, ", "))
	case len(extra) > 0:
		return fmt.Errorf("%w: unexpected archive for %s", domain.ErrPlatformMismatch, strings.Join(extra, ", "))
	}
	return nil
}
