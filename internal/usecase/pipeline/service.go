// Package pipeline runs a complete release in a single process.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/hoist/internal/boundaries/in"
	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

// Purger removes a run's artifacts.
type Purger interface {
	Purge(ctx context.Context, runID string) error
}

// Config describes what a run builds and where it publishes.
type Config struct {
	Target    domain.ImageTarget
	ImageName string
	Platforms []domain.Platform
	Spec      domain.BuildSpec
	RunnerOS  string
	Gates     []domain.GateSpec
	TagPolicy domain.TagPolicy
	// PurgeArtifacts removes the run's archives once the run ends.
	PurgeArtifacts bool
}

// Service orchestrates gates and builds, then policy, then publishing.
type Service struct {
	gates     in.GateService
	builds    in.BuildService
	publisher in.PublishService
	purger    Purger
	reports   out.ReportWriter
	config    Config
}

// NewService creates a new pipeline service. reports may be nil.
func NewService(
	gates in.GateService,
	builds in.BuildService,
	publisher in.PublishService,
	purger Purger,
	reports out.ReportWriter,
	config Config,
) *Service {
	return &Service{
		gates:     gates,
		builds:    builds,
		publisher: publisher,
		purger:    purger,
		reports:   reports,
		config:    config,
	}
}

// Run executes one release. The returned error is non-nil only when the
// outcome is failed; a policy skip is a successful run.
func (s *Service) Run(ctx context.Context, req domain.RunRequest) (domain.RunReport, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Run",
		"run_id":              req.RunID,
		"ref":                 req.Trigger.Ref.String(),
	})
	log := zerowrap.FromCtx(ctx)

	report := domain.RunReport{
		RunID: req.RunID,
		Ref:   req.Trigger.Ref.String(),
		Tags:  domain.DeriveTags(req.Trigger.Ref, s.config.TagPolicy),
	}
	log.Info().Strs("tags", tagStrings(report.Tags)).Msg("release run started")

	defer s.finish(ctx, &report)

	if err := domain.ValidateTags(report.Tags, s.config.Platforms); err != nil {
		return fail(&report, err)
	}

	var buildErr error
	var g errgroup.Group
	g.Go(func() error {
		report.Gates = s.gates.RunGates(ctx, s.config.Gates)
		return nil
	})
	g.Go(func() error {
		report.Builds, buildErr = s.builds.BuildAll(ctx, domain.BuildRequest{
			RunID:     req.RunID,
			ImageName: s.config.ImageName,
			Platforms: s.config.Platforms,
			Spec:      s.config.Spec,
			RunnerOS:  s.config.RunnerOS,
		})
		return nil
	})
	_ = g.Wait()

	report.Gates.Results = append(report.Gates.Results, req.External...)

	if !report.Gates.Passed() {
		return fail(&report, fmt.Errorf("%w: %s", domain.ErrGateFailed, strings.Join(report.Gates.Failed(), ", ")))
	}
	if buildErr != nil {
		return fail(&report, buildErr)
	}

	decision := s.gates.EvaluatePolicy(ctx, req.Trigger)
	if !decision.Allowed {
		return skip(&report, decision.Reason), nil
	}
	if len(report.Tags) == 0 {
		log.Info().Msg("reference maps to no publish tags")
		return skip(&report, domain.SkipNoTags), nil
	}

	result, err := s.publisher.Publish(ctx, domain.PublishRequest{
		RunID:    req.RunID,
		Target:   s.config.Target,
		Tags:     report.Tags,
		Archives: domain.ArchivesFromResults(report.Builds),
		Expected: s.config.Platforms,
	})
	report.Manifests = result.Manifests
	if err != nil {
		return fail(&report, err)
	}

	report.Outcome = domain.OutcomePublished
	return report, nil
}

func (s *Service) finish(ctx context.Context, report *domain.RunReport) {
	log := zerowrap.FromCtx(ctx)
	ctx = context.WithoutCancel(ctx)

	if s.config.PurgeArtifacts && s.purger != nil {
		if err := s.purger.Purge(ctx, report.RunID); err != nil {
			log.Warn().Err(err).Msg("failed to purge run artifacts")
		}
	}

	if s.reports != nil {
		if err := s.reports.WriteReport(ctx, *report); err != nil {
			log.Warn().Err(err).Msg("failed to write run report")
		}
	}

	event := log.Info()
	if report.Outcome == domain.OutcomeFailed {
		event = log.Error().Err(report.Err)
	}
	event.Str("outcome", string(report.Outcome)).Str("skip_reason", string(report.SkipReason)).Msg("release run finished")
}

func fail(report *domain.RunReport, err error) (domain.RunReport, error) {
	report.Outcome = domain.OutcomeFailed
	report.Err = err
	return *report, err
}

func skip(report *domain.RunReport, reason domain.SkipReason) domain.RunReport {
	report.Outcome = domain.OutcomeSkipped
	report.SkipReason = reason
	return *report
}

func tagStrings(tags []domain.PublishTag) []string {
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = string(t)
	}
	return s
}
