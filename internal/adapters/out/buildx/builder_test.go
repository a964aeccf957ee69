package buildx

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

func invocation() out.BuildInvocation {
	p := domain.Platform{OS: "linux", Architecture: "arm", Variant: "v7"}
	return out.BuildInvocation{
		Job: domain.BuildJob{
			Platform: p,
			LocalRef: "myapp:linux-arm-v7",
			Spec: domain.BuildSpec{
				Dockerfile: "docker/Dockerfile",
				Context:    "src",
				BuildArgs:  []string{"VERSION=v1.2.3"},
			},
		},
		CacheFrom: "/cache/buildx-Linux-linux-arm-v7-20260101",
		CacheTo:   "/cache/buildx-Linux-linux-arm-v7-20260102",
	}
}

func TestBuildImageArgs(t *testing.T) {
	args := buildImageArgs(invocation())

	assert.Equal(t, []string{
		"buildx", "build",
		"--platform", "linux/arm/v7",
		"-f", "docker/Dockerfile",
		"-t", "myapp:linux-arm-v7",
		"--build-arg", "VERSION=v1.2.3",
		"--cache-from", "type=local,src=/cache/buildx-Linux-linux-arm-v7-20260101",
		"--cache-to", "type=local,dest=/cache/buildx-Linux-linux-arm-v7-20260102,mode=max",
		"--load", "src",
	}, args)
}

func TestBuildImageArgs_ColdCacheAndDefaults(t *testing.T) {
	inv := out.BuildInvocation{Job: domain.BuildJob{
		Platform: domain.Platform{OS: "linux", Architecture: "amd64"},
		LocalRef: "myapp:linux-amd64",
	}}

	args := buildImageArgs(inv)

	assert.Equal(t, []string{
		"buildx", "build",
		"--platform", "linux/amd64",
		"-f", "Dockerfile",
		"-t", "myapp:linux-amd64",
		"--load", ".",
	}, args)
}

func TestValidateBuildArg(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{"valid simple", "FOO=bar", false},
		{"valid with underscore key", "_FOO=bar", false},
		{"valid empty value", "FOO=", false},
		{"invalid no equals", "FOO", true},
		{"invalid starts with number", "1FOO=bar", true},
		{"invalid special chars in key", "FOO-BAR=baz", true},
		{"invalid equals only", "=value", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBuildArg(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuilder_Build_RunsBinary(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "docker")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$@\"\n"), 0o755))

	var stdout bytes.Buffer
	b := NewBuilder(script, &stdout, &stdout)

	err := b.Build(zerowrap.WithCtx(context.Background(), zerowrap.Default()), invocation())

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "buildx build --platform linux/arm/v7")
	assert.Contains(t, stdout.String(), "--load src")
}

func TestBuilder_Build_Failure(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "docker")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755))

	b := NewBuilder(script, &bytes.Buffer{}, &bytes.Buffer{})

	err := b.Build(context.Background(), invocation())

	assert.Error(t, err)
}

func TestBuilder_Build_RejectsBadBuildArg(t *testing.T) {
	inv := invocation()
	inv.Job.Spec.BuildArgs = []string{"not-an-arg"}

	b := NewBuilder("/nonexistent/docker", nil, nil)
	err := b.Build(context.Background(), inv)

	assert.ErrorContains(t, err, "invalid build arg")
}
