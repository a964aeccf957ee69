// Package in defines input ports (interfaces) for use cases.
package in

import (
	"context"

	"github.com/bnema/hoist/internal/domain"
)

// BuildService coordinates the per-platform build matrix.
type BuildService interface {
	// BuildAll builds every platform independently and returns every result.
	// It returns domain.ErrBuildFailed when at least one platform failed.
	BuildAll(ctx context.Context, req domain.BuildRequest) ([]domain.BuildResult, error)
	Build(ctx context.Context, req domain.BuildRequest, p domain.Platform) domain.BuildResult
}

// ArchiveService moves images between the local store and run artifacts.
type ArchiveService interface {
	Archive(ctx context.Context, runID string, p domain.Platform, localRef string) (domain.ImageArchive, error)
	Recover(ctx context.Context, runID string, archive domain.ImageArchive) (domain.RecoveredImage, error)
	List(ctx context.Context, runID string) (domain.ArchiveSet, error)
	Purge(ctx context.Context, runID string) error
}

// GateService aggregates verification steps and publish policy.
type GateService interface {
	RunGates(ctx context.Context, gates []domain.GateSpec) domain.GateReport
	EvaluatePolicy(ctx context.Context, trigger domain.Trigger) domain.PolicyDecision
}

// PublishService pushes a run's images and manifest lists.
type PublishService interface {
	Publish(ctx context.Context, req domain.PublishRequest) (domain.PublishResult, error)
}

// PipelineService runs a complete release in one process.
type PipelineService interface {
	Run(ctx context.Context, req domain.RunRequest) (domain.RunReport, error)
}
