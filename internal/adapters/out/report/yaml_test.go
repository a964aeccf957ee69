package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bnema/hoist/internal/domain"
)

func testCtx() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func TestYAMLWriter_WritesPublishedRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	w := NewYAMLWriter(path)
	w.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	amd := domain.Platform{OS: "linux", Architecture: "amd64"}
	report := domain.RunReport{
		RunID:   "42",
		Ref:     "refs/tags/v1.2.3",
		Tags:    []domain.PublishTag{"v1.2.3", "latest"},
		Outcome: domain.OutcomePublished,
		Gates: domain.GateReport{Results: []domain.GateResult{
			{Name: "test", Passed: true, Duration: 2 * time.Second},
		}},
		Builds: []domain.BuildResult{{
			Platform: amd,
			Status:   domain.BuildSucceeded,
			LocalRef: "app:linux-amd64",
			Archive:  &domain.ImageArchive{Platform: amd, Name: "linux-amd64.tar.gz", Size: 1024},
			Duration: time.Minute,
		}},
		Manifests: []domain.ManifestList{{
			Tag:        "v1.2.3",
			Ref:        "ghcr.io/acme/app:v1.2.3",
			Descriptor: domain.ManifestDescriptor{Digest: "sha256:abc"},
			Members:    []domain.ManifestMember{{Platform: amd, Ref: "ghcr.io/acme/app:v1.2.3-linux-amd64"}},
		}},
	}

	require.NoError(t, w.WriteReport(testCtx(), report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc runDoc
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "42", doc.RunID)
	assert.Equal(t, "published", doc.Outcome)
	assert.Equal(t, []string{"v1.2.3", "latest"}, doc.Tags)
	require.Len(t, doc.Builds, 1)
	assert.Equal(t, "linux/amd64", doc.Builds[0].Platform)
	assert.Equal(t, "linux-amd64.tar.gz", doc.Builds[0].Archive)
	assert.Equal(t, int64(1024), doc.Builds[0].Size)
	require.Len(t, doc.Manifests, 1)
	assert.Equal(t, []string{"ghcr.io/acme/app:v1.2.3-linux-amd64"}, doc.Manifests[0].Members)
	assert.Equal(t, "2s", doc.Gates[0].Duration)
	assert.Contains(t, string(data), "written_at: 2026-01-02T03:04:05Z")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestYAMLWriter_SkippedAndFailedRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	w := NewYAMLWriter(path)

	require.NoError(t, w.WriteReport(testCtx(), domain.RunReport{
		RunID:      "1",
		Ref:        "refs/pull/7/merge",
		Outcome:    domain.OutcomeSkipped,
		SkipReason: domain.SkipPullRequest,
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "skip_reason: pull-request")
	assert.NotContains(t, string(data), "error:")

	require.NoError(t, w.WriteReport(testCtx(), domain.RunReport{
		RunID:   "2",
		Outcome: domain.OutcomeFailed,
		Err:     errors.Join(domain.ErrGateFailed, errors.New("lint")),
	}))
	data, err = os.ReadFile(path)
	require.NoError(t, err)

	var doc runDoc
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "2", doc.RunID)
	assert.Equal(t, "failed", doc.Outcome)
	assert.Contains(t, doc.Error, "quality gate failed")
}
