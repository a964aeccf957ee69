package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/hoist/internal/domain"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		raw      string
		kind     domain.RefKind
		name     string
		version  string
		isBranch bool
	}{
		{"refs/heads/main", domain.RefKindBranch, "main", "", true},
		{"refs/heads/feature/x", domain.RefKindBranch, "feature/x", "", true},
		{"refs/tags/v1.2.3", domain.RefKindVersionTag, "v1.2.3", "1.2.3", false},
		{"  refs/tags/v0.1.0\n", domain.RefKindVersionTag, "v0.1.0", "0.1.0", false},
		{"refs/tags/release-1", domain.RefKindOther, "release-1", "", false},
		{"refs/pull/7/merge", domain.RefKindOther, "refs/pull/7/merge", "", false},
		{"", domain.RefKindOther, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ref := domain.ParseReference(tt.raw)
			assert.Equal(t, tt.kind, ref.Kind)
			assert.Equal(t, tt.name, ref.Name())
			assert.Equal(t, tt.version, ref.Version())
			assert.Equal(t, tt.isBranch, ref.IsBranch())
			assert.Equal(t, tt.kind == domain.RefKindVersionTag, ref.IsVersionTag())
		})
	}
}

func TestParseEventKind(t *testing.T) {
	for _, s := range []string{"", "push", "PUSH", "tag", "workflow_dispatch"} {
		kind, err := domain.ParseEventKind(s)
		assert.NoError(t, err, s)
		assert.Equal(t, domain.EventPush, kind, s)
	}

	for _, s := range []string{"pull_request", "pull_request_target", "merge_request"} {
		kind, err := domain.ParseEventKind(s)
		assert.NoError(t, err, s)
		assert.Equal(t, domain.EventPullRequest, kind, s)
	}

	_, err := domain.ParseEventKind("schedule-ish")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
