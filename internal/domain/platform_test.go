package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoist/internal/domain"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input    string
		want     domain.Platform
		wantSlug string
		wantErr  bool
	}{
		{"linux/amd64", domain.Platform{OS: "linux", Architecture: "amd64"}, "linux-amd64", false},
		{"linux/arm64", domain.Platform{OS: "linux", Architecture: "arm64"}, "linux-arm64", false},
		{"linux/arm/v7", domain.Platform{OS: "linux", Architecture: "arm", Variant: "v7"}, "linux-arm-v7", false},
		{" linux/386 ", domain.Platform{OS: "linux", Architecture: "386"}, "linux-386", false},
		{"linux", domain.Platform{}, "", true},
		{"linux/", domain.Platform{}, "", true},
		{"/amd64", domain.Platform{}, "", true},
		{"linux/arm/v7/extra", domain.Platform{}, "", true},
		{"Linux/AMD64", domain.Platform{}, "", true},
		{"linux/amd-64", domain.Platform{}, "", true},
		{"", domain.Platform{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParsePlatform(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSlug, got.Slug())
			assert.Equal(t, tt.wantSlug+".tar.gz", got.ArchiveName())
		})
	}
}

func TestPlatformSlugRoundTrip(t *testing.T) {
	for _, s := range []string{"linux/amd64", "linux/arm/v7", "windows/amd64", "linux/s390x"} {
		p, err := domain.ParsePlatform(s)
		require.NoError(t, err)

		back, err := domain.PlatformFromSlug(p.Slug())
		require.NoError(t, err)
		assert.Equal(t, p, back)

		fromName, err := domain.PlatformFromArchiveName(p.ArchiveName())
		require.NoError(t, err)
		assert.Equal(t, p, fromName)
		assert.Equal(t, s, back.String())
	}
}

func TestPlatformFromArchiveName_RejectsOtherFiles(t *testing.T) {
	_, err := domain.PlatformFromArchiveName("linux-amd64.tar")
	assert.ErrorIs(t, err, domain.ErrInvalidPlatform)

	_, err = domain.PlatformFromArchiveName("coverage.tar.gz")
	assert.ErrorIs(t, err, domain.ErrInvalidPlatform)
}

func TestParsePlatforms_RejectsDuplicates(t *testing.T) {
	_, err := domain.ParsePlatforms([]string{"linux/amd64", "linux/arm64", "linux/amd64"})
	assert.ErrorIs(t, err, domain.ErrInvalidPlatform)

	platforms, err := domain.ParsePlatforms([]string{"linux/amd64", "linux/arm64"})
	require.NoError(t, err)
	assert.Len(t, platforms, 2)
}

func TestArchiveSet_PlatformsSorted(t *testing.T) {
	set := domain.ArchiveSet{
		{OS: "linux", Architecture: "arm64"}: {},
		{OS: "linux", Architecture: "amd64"}: {},
		{OS: "linux", Architecture: "arm", Variant: "v7"}: {},
	}

	got := set.Platforms()

	require.Len(t, got, 3)
	assert.Equal(t, "linux/amd64", got[0].String())
	assert.Equal(t, "linux/arm/v7", got[1].String())
	assert.Equal(t, "linux/arm64", got[2].String())
}
