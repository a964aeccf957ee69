// Package archive implements the image hand-off between isolated build and publish contexts.
package archive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/zerowrap"
	"github.com/klauspost/compress/gzip"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

// Service saves images into run artifacts and loads them back.
type Service struct {
	runtime out.ImageRuntime
	store   out.ArtifactStore
}

// NewService creates a new archive service.
func NewService(runtime out.ImageRuntime, store out.ArtifactStore) *Service {
	return &Service{
		runtime: runtime,
		store:   store,
	}
}

// Archive serializes the image tagged localRef, compresses it and stores it
// as <platform-slug>.tar.gz under the run. The saved image always carries the
// <repository>:<platform-slug> tag; localRef is re-tagged when it lacks it.
func (s *Service) Archive(ctx context.Context, runID string, p domain.Platform, localRef string) (domain.ImageArchive, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Archive",
		"run_id":              runID,
		"platform":            p.String(),
	})
	log := zerowrap.FromCtx(ctx)

	platformRef := platformTaggedRef(localRef, p)
	if platformRef != localRef {
		if err := s.runtime.TagImage(ctx, localRef, platformRef); err != nil {
			return domain.ImageArchive{}, log.WrapErr(fmt.Errorf("%w: tag %s: %w", domain.ErrArchiveFailed, platformRef, err), "failed to embed platform tag")
		}
		log.Debug().Str("source", localRef).Str("image", platformRef).Msg("platform tag added")
		localRef = platformRef
	}

	image, err := s.runtime.SaveImage(ctx, localRef)
	if err != nil {
		return domain.ImageArchive{}, log.WrapErr(fmt.Errorf("%w: save %s: %w", domain.ErrArchiveFailed, localRef, err), "failed to save image")
	}
	defer image.Close()

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(compress(pw, image))
	}()

	name := p.ArchiveName()
	size, err := s.store.Put(ctx, runID, name, pr)
	// Unblock the compressor if the store stopped reading early.
	pr.CloseWithError(io.ErrClosedPipe)
	if err != nil {
		return domain.ImageArchive{}, log.WrapErr(fmt.Errorf("%w: store %s: %w", domain.ErrArchiveFailed, name, err), "failed to store archive")
	}

	log.Info().Str("artifact", name).Int64("size", size).Msg("image archived")

	return domain.ImageArchive{
		Platform: p,
		Name:     name,
		LocalRef: localRef,
		Size:     size,
	}, nil
}

// Recover loads an archived image into the local image store.
// The tag embedded in the archive is authoritative for the platform; a
// disagreeing file name is logged and ignored.
func (s *Service) Recover(ctx context.Context, runID string, archive domain.ImageArchive) (domain.RecoveredImage, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Recover",
		"run_id":              runID,
		"artifact":            archive.Name,
	})
	log := zerowrap.FromCtx(ctx)

	rc, err := s.store.Get(ctx, runID, archive.Name)
	if err != nil {
		return domain.RecoveredImage{}, log.WrapErr(err, "failed to open archive")
	}
	defer rc.Close()

	zr, err := gzip.NewReader(rc)
	if err != nil {
		return domain.RecoveredImage{}, log.WrapErr(fmt.Errorf("%w: %s: %w", domain.ErrArchiveFailed, archive.Name, err), "archive is not gzip")
	}
	defer zr.Close()

	loaded, err := s.runtime.LoadImage(ctx, zr)
	if err != nil {
		return domain.RecoveredImage{}, log.WrapErr(fmt.Errorf("%w: load %s: %w", domain.ErrArchiveFailed, archive.Name, err), "failed to load image")
	}

	localRef, platform, ok := platformFromLoaded(loaded)
	if !ok {
		return domain.RecoveredImage{}, log.WrapErr(
			fmt.Errorf("%w: %s carries no platform tag (loaded %v)", domain.ErrPlatformMismatch, archive.Name, loaded),
			"failed to identify archived image",
		)
	}

	if fromName, err := domain.PlatformFromArchiveName(archive.Name); err != nil || fromName != platform {
		log.Warn().
			Str("archive_platform", platform.String()).
			Str("file", archive.Name).
			Msg("archive name disagrees with embedded tag, using embedded tag")
	}

	archive.Platform = platform
	archive.LocalRef = localRef

	log.Info().Str("image", localRef).Msg("image recovered")

	return domain.RecoveredImage{
		Platform: platform,
		LocalRef: localRef,
		Archive:  archive,
	}, nil
}

// List rebuilds the archive set of a run from its stored artifacts.
func (s *Service) List(ctx context.Context, runID string) (domain.ArchiveSet, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListArchives",
		"run_id":              runID,
	})
	log := zerowrap.FromCtx(ctx)

	artifacts, err := s.store.List(ctx, runID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list artifacts")
	}

	set := make(domain.ArchiveSet, len(artifacts))
	for _, a := range artifacts {
		p, err := domain.PlatformFromArchiveName(a.Name)
		if err != nil {
			log.Debug().Str("artifact", a.Name).Msg("skipping non-image artifact")
			continue
		}
		set[p] = domain.ImageArchive{
			Platform: p,
			Name:     a.Name,
			Size:     a.Size,
		}
	}

	log.Debug().Int(zerowrap.FieldCount, len(set)).Msg("archives listed")
	return set, nil
}

// Purge removes every artifact of a run.
func (s *Service) Purge(ctx context.Context, runID string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "PurgeArchives",
		"run_id":              runID,
	})
	log := zerowrap.FromCtx(ctx)

	if err := s.store.Purge(ctx, runID); err != nil {
		return log.WrapErr(err, "failed to purge artifacts")
	}
	log.Info().Msg("run artifacts purged")
	return nil
}

func compress(w io.Writer, r io.Reader) error {
	zw := gzip.NewWriter(w)
	if _, err := io.Copy(zw, r); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// platformFromLoaded picks the first loaded tag whose tag part is a platform slug.
func platformFromLoaded(refs []string) (string, domain.Platform, bool) {
	for _, ref := range refs {
		i := strings.LastIndex(ref, ":")
		if i < 0 || strings.Contains(ref[i+1:], "/") {
			continue
		}
		p, err := domain.PlatformFromSlug(ref[i+1:])
		if err != nil {
			continue
		}
		return ref, p, true
	}
	return "", domain.Platform{}, false
}

// platformTaggedRef returns ref's repository tagged with the platform slug.
func platformTaggedRef(ref string, p domain.Platform) string {
	repo, _, _ := strings.Cut(ref, "@")
	if i := strings.LastIndex(repo, ":"); i > strings.LastIndex(repo, "/") {
		repo = repo[:i]
	}
	return domain.LocalImageRef(repo, p)
}
