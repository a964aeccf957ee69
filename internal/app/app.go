package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/zerowrap"

	// Adapters - Output
	"github.com/bnema/hoist/internal/adapters/out/buildx"
	"github.com/bnema/hoist/internal/adapters/out/credentials"
	"github.com/bnema/hoist/internal/adapters/out/docker"
	"github.com/bnema/hoist/internal/adapters/out/filesystem"
	"github.com/bnema/hoist/internal/adapters/out/gaterunner"
	"github.com/bnema/hoist/internal/adapters/out/gitref"
	"github.com/bnema/hoist/internal/adapters/out/lock"
	"github.com/bnema/hoist/internal/adapters/out/ociregistry"
	"github.com/bnema/hoist/internal/adapters/out/report"
	"github.com/bnema/hoist/internal/adapters/out/s3store"

	// Boundaries
	"github.com/bnema/hoist/internal/boundaries/out"

	// Domain
	"github.com/bnema/hoist/internal/domain"

	// Use cases
	"github.com/bnema/hoist/internal/usecase/archive"
	"github.com/bnema/hoist/internal/usecase/build"
	"github.com/bnema/hoist/internal/usecase/gate"
	"github.com/bnema/hoist/internal/usecase/pipeline"
	"github.com/bnema/hoist/internal/usecase/publish"
)

// App holds the wired services for one invocation.
type App struct {
	Config Config
	Log    zerowrap.Logger

	Archives *archive.Service
	Builds   *build.Service
	Gates    *gate.Service
	Publish  *publish.Service
	Pipeline *pipeline.Service
	Source   out.ReferenceSource

	closers []func() error
}

// Options tunes wiring for the current process.
type Options struct {
	// Output receives build and gate subprocess output. Defaults to os.Stderr.
	Output io.Writer
	// WorkDir is where gates run and where the repository is discovered.
	WorkDir string
}

// New wires every adapter and use case from cfg.
func New(ctx context.Context, cfg Config, log zerowrap.Logger, opts Options) (*App, error) {
	ctx = zerowrap.WithCtx(ctx, log)
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}

	a := &App{Config: cfg, Log: log}

	platforms, err := cfg.Platforms()
	if err != nil {
		return nil, err
	}

	store, err := createArtifactStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	cache, err := filesystem.NewCacheStore(cfg.Build.CacheDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create build cache: %w", err)
	}

	locker, err := createLocker(ctx, cfg)
	if err != nil {
		return nil, err
	}

	runtime, err := docker.NewRuntime()
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, runtime.Close)

	creds := credentials.NewStore(credentials.Config{
		File:       cfg.Registry.CredentialsFile,
		RemoveFile: cfg.Registry.RemoveCredentialsFile,
	})
	registry := ociregistry.New(creds, ociregistry.Config{PlainHTTP: cfg.Registry.PlainHTTP})

	a.Archives = archive.NewService(runtime, store)
	a.Builds = build.NewService(
		buildx.NewBuilder(cfg.Build.BuilderBinary, opts.Output, opts.Output),
		cache,
		a.Archives,
		build.Config{Concurrency: cfg.Build.Concurrency},
	)
	a.Gates = gate.NewService(gaterunner.NewRunner(opts.WorkDir, opts.Output, opts.Output), cfg.PublishPolicy())
	a.Publish = publish.NewService(locker, a.Archives, runtime, registry, creds)
	a.Source = gitref.NewSource(opts.WorkDir)

	var reports out.ReportWriter
	if cfg.Report.Path != "" {
		reports = report.NewYAMLWriter(cfg.Report.Path)
	}

	a.Pipeline = pipeline.NewService(a.Gates, a.Builds, a.Publish, a.Archives, reports, pipeline.Config{
		Target:         cfg.Target(),
		ImageName:      cfg.LocalImageName(),
		Platforms:      platforms,
		Spec:           cfg.BuildSpec(),
		RunnerOS:       cfg.Build.RunnerOS,
		Gates:          cfg.GateSpecs(),
		TagPolicy:      cfg.TagPolicy(),
		PurgeArtifacts: cfg.Artifacts.Purge,
	})

	log.Debug().
		Str("backend", cfg.Artifacts.Backend).
		Int(zerowrap.FieldCount, len(platforms)).
		Msg("application wired")
	return a, nil
}

// BuildRequest returns the build matrix request for a run.
func (a *App) BuildRequest(runID string) (domain.BuildRequest, error) {
	platforms, err := a.Config.Platforms()
	if err != nil {
		return domain.BuildRequest{}, err
	}
	return domain.BuildRequest{
		RunID:     runID,
		ImageName: a.Config.LocalImageName(),
		Platforms: platforms,
		Spec:      a.Config.BuildSpec(),
		RunnerOS:  a.Config.Build.RunnerOS,
	}, nil
}

// Close releases adapter resources.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func createArtifactStore(ctx context.Context, cfg Config, log zerowrap.Logger) (out.ArtifactStore, error) {
	switch cfg.Artifacts.Backend {
	case BackendS3:
		store, err := s3store.New(ctx, cfg.s3Config())
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 artifact store: %w", err)
		}
		return store, nil
	default:
		store, err := filesystem.NewArtifactStore(cfg.Artifacts.Dir, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create artifact store: %w", err)
		}
		return store, nil
	}
}

// createLocker keeps the publish lock next to the artifacts so every runner
// sharing a bucket serializes on the same object.
func createLocker(ctx context.Context, cfg Config) (out.Locker, error) {
	if cfg.Artifacts.Backend == BackendS3 {
		locker, err := s3store.NewLockerFromConfig(ctx, cfg.s3Config(), cfg.Lock.StaleAfter)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 locker: %w", err)
		}
		return locker, nil
	}

	locker, err := lock.NewFileLocker(cfg.Lock.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	return locker, nil
}

func (c Config) s3Config() s3store.Config {
	return s3store.Config{
		Bucket:    c.Artifacts.Bucket,
		Prefix:    c.Artifacts.Prefix,
		Region:    c.Artifacts.Region,
		Endpoint:  c.Artifacts.Endpoint,
		PathStyle: c.Artifacts.PathStyle,
	}
}
