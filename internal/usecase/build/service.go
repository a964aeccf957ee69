// Package build implements the per-platform build matrix use case.
package build

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

// Archiver stores a freshly built image as a run artifact.
type Archiver interface {
	Archive(ctx context.Context, runID string, p domain.Platform, localRef string) (domain.ImageArchive, error)
}

// Config holds build coordinator settings.
type Config struct {
	// Concurrency bounds parallel builds. Zero or less means unbounded.
	Concurrency int
}

// Service coordinates isolated builds, one per platform.
type Service struct {
	builder  out.ImageBuilder
	cache    out.CacheStore
	archiver Archiver
	config   Config
	now      func() time.Time
}

// NewService creates a new build service.
func NewService(builder out.ImageBuilder, cache out.CacheStore, archiver Archiver, config Config) *Service {
	return &Service{
		builder:  builder,
		cache:    cache,
		archiver: archiver,
		config:   config,
		now:      time.Now,
	}
}

// BuildAll builds and archives every platform of the request. A failing
// platform never stops the others; every result is returned, and the error
// wraps domain.ErrBuildFailed when any platform failed.
func (s *Service) BuildAll(ctx context.Context, req domain.BuildRequest) ([]domain.BuildResult, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "BuildAll",
		"run_id":              req.RunID,
	})
	log := zerowrap.FromCtx(ctx)

	if len(req.Platforms) == 0 {
		return nil, log.WrapErr(domain.ErrNoPlatforms, "nothing to build")
	}
	if req.Day.IsZero() {
		req.Day = s.now()
	}

	results := make([]domain.BuildResult, len(req.Platforms))
	g := new(errgroup.Group)
	if s.config.Concurrency > 0 {
		g.SetLimit(s.config.Concurrency)
	}

	for i, p := range req.Platforms {
		g.Go(func() error {
			results[i] = s.Build(ctx, req, p)
			return nil
		})
	}
	_ = g.Wait()

	var failed []string
	for _, r := range results {
		if !r.Succeeded() {
			failed = append(failed, r.Platform.String())
		}
	}

	if len(failed) > 0 {
		err := fmt.Errorf("%w: %s", domain.ErrBuildFailed, strings.Join(failed, ", "))
		log.Error().Err(err).Int(zerowrap.FieldCount, len(failed)).Msg("build matrix failed")
		return results, err
	}

	log.Info().Int(zerowrap.FieldCount, len(results)).Msg("build matrix succeeded")
	return results, nil
}

// Build runs a single matrix entry: restore cache, build, archive, prune cache.
// Failures are recorded in the result rather than returned.
func (s *Service) Build(ctx context.Context, req domain.BuildRequest, p domain.Platform) domain.BuildResult {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Build",
		"platform":            p.String(),
	})
	log := zerowrap.FromCtx(ctx)

	start := s.now()
	day := req.Day
	if day.IsZero() {
		day = start
	}

	job := domain.BuildJob{
		Platform: p,
		LocalRef: domain.LocalImageRef(req.ImageName, p),
		CacheKey: domain.NewCacheKey(req.RunnerOS, p, day),
		Spec:     req.Spec,
	}
	result := domain.BuildResult{Platform: p, LocalRef: job.LocalRef, Status: domain.BuildFailed}

	inv := out.BuildInvocation{Job: job}
	if dir, found, err := s.cache.Restore(ctx, job.CacheKey); err != nil {
		log.Warn().Err(err).Msg("cache restore failed, building cold")
	} else if found {
		inv.CacheFrom = dir
		log.Debug().Str(zerowrap.FieldPath, dir).Msg("cache fragment restored")
	}
	if dir, err := s.cache.Target(ctx, job.CacheKey); err != nil {
		log.Warn().Err(err).Msg("cache export disabled")
	} else {
		inv.CacheTo = dir
	}

	if err := s.builder.Build(ctx, inv); err != nil {
		result.Err = fmt.Errorf("%w: %s: %w", domain.ErrBuildFailed, p, err)
		result.Duration = s.now().Sub(start)
		log.Error().Err(err).Msg("build failed")
		return result
	}

	archive, err := s.archiver.Archive(ctx, req.RunID, p, job.LocalRef)
	if err != nil {
		result.Err = err
		result.Duration = s.now().Sub(start)
		log.Error().Err(err).Msg("archive failed")
		return result
	}

	if inv.CacheTo != "" {
		if removed, err := s.cache.Prune(ctx, job.CacheKey); err != nil {
			log.Warn().Err(err).Msg("cache prune failed")
		} else if removed > 0 {
			log.Debug().Int(zerowrap.FieldCount, removed).Msg("stale cache fragments pruned")
		}
	}

	result.Status = domain.BuildSucceeded
	result.Archive = &archive
	result.Duration = s.now().Sub(start)

	log.Info().Dur(zerowrap.FieldDuration, result.Duration).Msg("platform built")
	return result
}
