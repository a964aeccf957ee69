package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoist/internal/boundaries/out/mocks"
	"github.com/bnema/hoist/internal/domain"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

var amd64 = domain.Platform{OS: "linux", Architecture: "amd64"}

type fakeGates struct {
	failing []string
	policy  domain.PublishPolicy
}

func (f *fakeGates) RunGates(_ context.Context, gates []domain.GateSpec) domain.GateReport {
	var report domain.GateReport
	for _, g := range gates {
		passed := true
		for _, name := range f.failing {
			if name == g.Name {
				passed = false
			}
		}
		report.Results = append(report.Results, domain.GateResult{Name: g.Name, Passed: passed})
	}
	return report
}

func (f *fakeGates) EvaluatePolicy(_ context.Context, t domain.Trigger) domain.PolicyDecision {
	return f.policy.Evaluate(t)
}

type fakeBuilds struct {
	err error
}

func (f *fakeBuilds) BuildAll(_ context.Context, req domain.BuildRequest) ([]domain.BuildResult, error) {
	var results []domain.BuildResult
	for _, p := range req.Platforms {
		r := domain.BuildResult{Platform: p, Status: domain.BuildSucceeded, Archive: &domain.ImageArchive{Platform: p, Name: p.ArchiveName()}}
		if f.err != nil {
			r = domain.BuildResult{Platform: p, Status: domain.BuildFailed, Err: f.err}
		}
		results = append(results, r)
	}
	return results, f.err
}

func (f *fakeBuilds) Build(ctx context.Context, req domain.BuildRequest, p domain.Platform) domain.BuildResult {
	req.Platforms = []domain.Platform{p}
	results, _ := f.BuildAll(ctx, req)
	return results[0]
}

type fakePublisher struct {
	calls []domain.PublishRequest
	err   error
}

func (f *fakePublisher) Publish(_ context.Context, req domain.PublishRequest) (domain.PublishResult, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return domain.PublishResult{}, f.err
	}
	var result domain.PublishResult
	for _, tag := range req.Tags {
		result.Manifests = append(result.Manifests, domain.ManifestList{Tag: tag, Ref: req.Target.Ref(string(tag))})
	}
	return result, nil
}

type fakePurger struct {
	purged []string
}

func (f *fakePurger) Purge(_ context.Context, runID string) error {
	f.purged = append(f.purged, runID)
	return nil
}

func testConfig() Config {
	return Config{
		Target:         domain.ImageTarget{Registry: "ghcr.io", Name: "acme/app"},
		ImageName:      "app",
		Platforms:      []domain.Platform{amd64},
		Gates:          []domain.GateSpec{{Name: "lint"}, {Name: "test"}},
		TagPolicy:      domain.DefaultTagPolicy(),
		PurgeArtifacts: true,
	}
}

func trigger(ref string, event domain.EventKind) domain.Trigger {
	return domain.Trigger{Ref: domain.ParseReference(ref), Actor: "alice", Event: event}
}

func TestService_Run_PublishesVersionTag(t *testing.T) {
	publisher := &fakePublisher{}
	purger := &fakePurger{}
	reports := mocks.NewMockReportWriter(t)
	reports.EXPECT().WriteReport(mock.Anything, mock.MatchedBy(func(r domain.RunReport) bool {
		return r.Outcome == domain.OutcomePublished
	})).Return(nil).Once()

	svc := NewService(&fakeGates{}, &fakeBuilds{}, publisher, purger, reports, testConfig())
	report, err := svc.Run(testContext(), domain.RunRequest{RunID: "run-1", Trigger: trigger("refs/tags/v1.2.3", domain.EventPush)})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePublished, report.Outcome)
	assert.Equal(t, []domain.PublishTag{"v1.2.3", "latest"}, report.Tags)
	require.Len(t, publisher.calls, 1)
	assert.Equal(t, []domain.Platform{amd64}, publisher.calls[0].Archives.Platforms())
	assert.Equal(t, []domain.Platform{amd64}, publisher.calls[0].Expected)
	assert.Len(t, report.Manifests, 2)
	assert.Equal(t, []string{"run-1"}, purger.purged)
}

func TestService_Run_PullRequestNeverPublishes(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewService(&fakeGates{}, &fakeBuilds{}, publisher, &fakePurger{}, nil, testConfig())

	report, err := svc.Run(testContext(), domain.RunRequest{RunID: "run-1", Trigger: trigger("refs/heads/main", domain.EventPullRequest)})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, report.Outcome)
	assert.Equal(t, domain.SkipPullRequest, report.SkipReason)
	assert.Empty(t, publisher.calls)
	assert.Len(t, report.Builds, 1, "builds still run for pull requests")
}

func TestService_Run_GateFailureBlocksPublish(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewService(&fakeGates{failing: []string{"test"}}, &fakeBuilds{}, publisher, &fakePurger{}, nil, testConfig())

	report, err := svc.Run(testContext(), domain.RunRequest{RunID: "run-1", Trigger: trigger("refs/heads/main", domain.EventPush)})

	require.ErrorIs(t, err, domain.ErrGateFailed)
	assert.Equal(t, domain.OutcomeFailed, report.Outcome)
	assert.Empty(t, publisher.calls)
}

func TestService_Run_ExternalGateFailure(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewService(&fakeGates{}, &fakeBuilds{}, publisher, &fakePurger{}, nil, testConfig())

	_, err := svc.Run(testContext(), domain.RunRequest{
		RunID:    "run-1",
		Trigger:  trigger("refs/heads/main", domain.EventPush),
		External: []domain.GateResult{{Name: "coverage", ExitCode: 1}},
	})

	require.ErrorIs(t, err, domain.ErrGateFailed)
	assert.Contains(t, err.Error(), "coverage")
	assert.Empty(t, publisher.calls)
}

func TestService_Run_BuildFailureBlocksPublish(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewService(&fakeGates{}, &fakeBuilds{err: domain.ErrBuildFailed}, publisher, &fakePurger{}, nil, testConfig())

	report, err := svc.Run(testContext(), domain.RunRequest{RunID: "run-1", Trigger: trigger("refs/heads/main", domain.EventPush)})

	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Equal(t, domain.OutcomeFailed, report.Outcome)
	assert.Empty(t, publisher.calls)
}

func TestService_Run_SkipsRefsWithoutTags(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewService(&fakeGates{}, &fakeBuilds{}, publisher, &fakePurger{}, nil, testConfig())

	report, err := svc.Run(testContext(), domain.RunRequest{RunID: "run-1", Trigger: trigger("refs/pull/3/merge", domain.EventPush)})

	require.NoError(t, err)
	assert.Equal(t, domain.SkipNoTags, report.SkipReason)
	assert.Empty(t, publisher.calls)
}

func TestService_Run_BotActorSkips(t *testing.T) {
	publisher := &fakePublisher{}
	gates := &fakeGates{policy: domain.PublishPolicy{BotActors: domain.DefaultBotActors}}
	svc := NewService(gates, &fakeBuilds{}, publisher, &fakePurger{}, nil, testConfig())

	tr := trigger("refs/heads/main", domain.EventPush)
	tr.Actor = "dependabot[bot]"
	report, err := svc.Run(testContext(), domain.RunRequest{RunID: "run-1", Trigger: tr})

	require.NoError(t, err)
	assert.Equal(t, domain.SkipBotActor, report.SkipReason)
	assert.Empty(t, publisher.calls)
}

func TestService_Run_PublishFailure(t *testing.T) {
	publisher := &fakePublisher{err: domain.ErrPushFailed}
	reports := mocks.NewMockReportWriter(t)
	reports.EXPECT().WriteReport(mock.Anything, mock.MatchedBy(func(r domain.RunReport) bool {
		return r.Outcome == domain.OutcomeFailed && errors.Is(r.Err, domain.ErrPushFailed)
	})).Return(nil).Once()

	svc := NewService(&fakeGates{}, &fakeBuilds{}, publisher, &fakePurger{}, reports, testConfig())
	_, err := svc.Run(testContext(), domain.RunRequest{RunID: "run-1", Trigger: trigger("refs/heads/main", domain.EventPush)})

	assert.ErrorIs(t, err, domain.ErrPushFailed)
}

func TestService_Run_InvalidTagFailsBeforeWork(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewService(&fakeGates{}, &fakeBuilds{}, publisher, nil, nil, testConfig())

	report, err := svc.Run(testContext(), domain.RunRequest{RunID: "run-1", Trigger: trigger("refs/heads/fix#12", domain.EventPush)})

	require.ErrorIs(t, err, domain.ErrInvalidTag)
	assert.Equal(t, domain.OutcomeFailed, report.Outcome)
	assert.Empty(t, report.Gates.Results)
	assert.Empty(t, report.Builds)
	assert.Empty(t, publisher.calls)
}
