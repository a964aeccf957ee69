package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/hoist/internal/domain"
)

func TestPublishPolicy_Evaluate(t *testing.T) {
	policy := domain.PublishPolicy{
		BotActors:    domain.DefaultBotActors,
		SkipBranches: []string{"template"},
	}

	tests := []struct {
		name    string
		trigger domain.Trigger
		want    domain.PolicyDecision
	}{
		{
			name:    "push to main",
			trigger: domain.Trigger{Ref: domain.ParseReference("refs/heads/main"), Actor: "alice", Event: domain.EventPush},
			want:    domain.PolicyDecision{Allowed: true},
		},
		{
			name:    "version tag",
			trigger: domain.Trigger{Ref: domain.ParseReference("refs/tags/v1.2.3"), Actor: "alice", Event: domain.EventPush},
			want:    domain.PolicyDecision{Allowed: true},
		},
		{
			name:    "pull request",
			trigger: domain.Trigger{Ref: domain.ParseReference("refs/heads/main"), Actor: "alice", Event: domain.EventPullRequest},
			want:    domain.PolicyDecision{Reason: domain.SkipPullRequest},
		},
		{
			name:    "dependabot",
			trigger: domain.Trigger{Ref: domain.ParseReference("refs/heads/main"), Actor: "Dependabot[bot]", Event: domain.EventPush},
			want:    domain.PolicyDecision{Reason: domain.SkipBotActor},
		},
		{
			name:    "template branch",
			trigger: domain.Trigger{Ref: domain.ParseReference("refs/heads/template"), Actor: "alice", Event: domain.EventPush},
			want:    domain.PolicyDecision{Reason: domain.SkipBranch},
		},
		{
			name:    "tag named like skip branch",
			trigger: domain.Trigger{Ref: domain.ParseReference("refs/tags/vtemplate"), Actor: "alice", Event: domain.EventPush},
			want:    domain.PolicyDecision{Allowed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Evaluate(tt.trigger))
		})
	}
}

func TestGateReport(t *testing.T) {
	report := domain.GateReport{Results: []domain.GateResult{
		{Name: "lint", Passed: true},
		{Name: "test", Passed: false, ExitCode: 1},
		{Name: "typecheck", Passed: true},
	}}

	assert.False(t, report.Passed())
	assert.Equal(t, []string{"test"}, report.Failed())
	assert.True(t, domain.GateReport{}.Passed())
}
