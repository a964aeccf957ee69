package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/hoist/internal/domain"
)

func TestDeriveTags(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		policy domain.TagPolicy
		want   []domain.PublishTag
	}{
		// Version tags always carry latest under the default policy.
		{"semver tag", "refs/tags/v1.2.3", domain.DefaultTagPolicy(), []domain.PublishTag{"v1.2.3", "latest"}},
		{"major only", "refs/tags/v2", domain.DefaultTagPolicy(), []domain.PublishTag{"v2", "latest"}},
		{"non semver version", "refs/tags/vnext", domain.DefaultTagPolicy(), []domain.PublishTag{"vnext", "latest"}},
		{"prerelease default policy", "refs/tags/v1.0.0-rc1", domain.DefaultTagPolicy(), []domain.PublishTag{"v1.0.0-rc1", "latest"}},
		{"prerelease without latest", "refs/tags/v1.0.0-rc1", domain.TagPolicy{}, []domain.PublishTag{"v1.0.0-rc1"}},
		{"release without latest policy", "refs/tags/v1.0.0", domain.TagPolicy{}, []domain.PublishTag{"v1.0.0", "latest"}},
		{"tag with slash", "refs/tags/v1.0/hotfix", domain.DefaultTagPolicy(), []domain.PublishTag{"v1.0-hotfix", "latest"}},

		// Branches publish only their sanitized name.
		{"main branch", "refs/heads/main", domain.DefaultTagPolicy(), []domain.PublishTag{"main"}},
		{"nested branch", "refs/heads/feature/new-ui", domain.DefaultTagPolicy(), []domain.PublishTag{"feature-new-ui"}},
		{"deep branch", "refs/heads/a/b/c", domain.DefaultTagPolicy(), []domain.PublishTag{"a-b-c"}},
		{"branch named latest", "refs/heads/latest", domain.DefaultTagPolicy(), []domain.PublishTag{"latest"}},
		{"branch named like version", "refs/heads/v1.2.3", domain.DefaultTagPolicy(), []domain.PublishTag{"v1.2.3"}},

		// Everything else publishes nothing.
		{"tag without v", "refs/tags/1.2.3", domain.DefaultTagPolicy(), nil},
		{"bare v tag", "refs/tags/v", domain.DefaultTagPolicy(), nil},
		{"empty tag", "refs/tags/", domain.DefaultTagPolicy(), nil},
		{"empty branch", "refs/heads/", domain.DefaultTagPolicy(), nil},
		{"pull request ref", "refs/pull/42/merge", domain.DefaultTagPolicy(), nil},
		{"remote branch", "refs/remotes/origin/main", domain.DefaultTagPolicy(), nil},
		{"short branch name", "main", domain.DefaultTagPolicy(), nil},
		{"short tag name", "v1.2.3", domain.DefaultTagPolicy(), nil},
		{"commit sha", "3f1c2a9d", domain.DefaultTagPolicy(), nil},
		{"empty", "", domain.DefaultTagPolicy(), nil},
		{"uppercase prefix", "REFS/TAGS/v1.0.0", domain.DefaultTagPolicy(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeriveTags(domain.ParseReference(tt.ref), tt.policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveTags_NeverLatestForBranches(t *testing.T) {
	branches := []string{"main", "develop", "release/1.0", "dependabot/npm/foo", "v1"}
	for _, b := range branches {
		tags := domain.DeriveTags(domain.ParseReference("refs/heads/"+b), domain.DefaultTagPolicy())
		assert.NotContains(t, tags, domain.LatestTag, "branch %s must not publish latest", b)
		assert.Len(t, tags, 1)
	}
}

func TestDeriveTags_NoSlashesOrDuplicates(t *testing.T) {
	refs := []string{"refs/tags/v1/2/3", "refs/heads/x/y", "refs/tags/vlatest", "refs/heads/latest"}
	for _, r := range refs {
		tags := domain.DeriveTags(domain.ParseReference(r), domain.DefaultTagPolicy())
		seen := map[domain.PublishTag]bool{}
		for _, tag := range tags {
			assert.NotContains(t, string(tag), "/")
			assert.False(t, seen[tag], "duplicate tag %s for %s", tag, r)
			seen[tag] = true
		}
	}
}

func TestPublishTag_Qualified(t *testing.T) {
	p := domain.Platform{OS: "linux", Architecture: "arm", Variant: "v7"}
	assert.Equal(t, "v1.2.3-linux-arm-v7", domain.PublishTag("v1.2.3").Qualified(p))
}

func TestIsPrerelease(t *testing.T) {
	assert.True(t, domain.IsPrerelease("1.0.0-rc1"))
	assert.True(t, domain.IsPrerelease("2.0.0-beta.2"))
	assert.False(t, domain.IsPrerelease("1.0.0"))
	assert.False(t, domain.IsPrerelease("1.0.0+build.5"))
	assert.False(t, domain.IsPrerelease("next"))
}

func TestValidateTags(t *testing.T) {
	amd64 := domain.Platform{OS: "linux", Architecture: "amd64"}
	armv7 := domain.Platform{OS: "linux", Architecture: "arm", Variant: "v7"}
	platforms := []domain.Platform{amd64, armv7}

	tests := []struct {
		name    string
		ref     string
		wantErr bool
	}{
		{"version tag", "refs/tags/v1.2.3", false},
		{"prerelease", "refs/tags/v1.0.0-rc.1", false},
		{"nested branch", "refs/heads/feature/login", false},
		{"build metadata", "refs/tags/v1.0.0+build.5", true},
		{"hash in branch", "refs/heads/fix#12", true},
		{"leading dot", "refs/heads/.hidden", true},
		{"qualified form too long", "refs/heads/" + strings.Repeat("a", 120), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := domain.DeriveTags(domain.ParseReference(tt.ref), domain.DefaultTagPolicy())
			err := domain.ValidateTags(tags, platforms)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTag)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTags_Empty(t *testing.T) {
	assert.NoError(t, domain.ValidateTags(nil, nil))
}
