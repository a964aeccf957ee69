// Package buildx implements the image builder adapter on top of "docker buildx".
package buildx

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"

	"github.com/bnema/zerowrap"

	"github.com/bnema/hoist/internal/boundaries/out"
)

// buildArgPattern matches KEY=VALUE where KEY starts with a letter or underscore.
var buildArgPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*=.*$`)

// Builder runs one buildx invocation per platform.
type Builder struct {
	binary string
	stdout io.Writer
	stderr io.Writer
}

// NewBuilder creates a builder that runs binary (usually "docker").
// Build output goes to stdout and stderr; nil writers default to os.Stderr.
func NewBuilder(binary string, stdout, stderr io.Writer) *Builder {
	if binary == "" {
		binary = "docker"
	}
	if stdout == nil {
		stdout = os.Stderr
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Builder{binary: binary, stdout: stdout, stderr: stderr}
}

// Build builds a single-platform image and loads it into the local daemon
// under inv.Job.LocalRef.
func (b *Builder) Build(ctx context.Context, inv out.BuildInvocation) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "buildx",
		zerowrap.FieldAction:  "Build",
		"platform":            inv.Job.Platform.String(),
		"image":               inv.Job.LocalRef,
	})
	log := zerowrap.FromCtx(ctx)

	for _, ba := range inv.Job.Spec.BuildArgs {
		if err := validateBuildArg(ba); err != nil {
			return log.WrapErr(err, "invalid build arg")
		}
	}

	args := buildImageArgs(inv)
	log.Debug().Strs("args", args).Msg("running buildx")

	cmd := exec.CommandContext(ctx, b.binary, args...) // #nosec G204
	cmd.Stdout = b.stdout
	cmd.Stderr = b.stderr
	if err := cmd.Run(); err != nil {
		return log.WrapErr(err, "docker buildx build failed")
	}

	log.Info().Msg("image built and loaded")
	return nil
}

// buildImageArgs constructs the docker buildx build arguments.
// Uses --load so the single-platform image lands in the local daemon,
// where it is archived for the publishing job.
func buildImageArgs(inv out.BuildInvocation) []string {
	spec := inv.Job.Spec

	dockerfile := spec.Dockerfile
	if dockerfile == "" {
		dockerfile = "Dockerfile"
	}
	buildContext := spec.Context
	if buildContext == "" {
		buildContext = "."
	}

	args := []string{
		"buildx", "build",
		"--platform", inv.Job.Platform.String(),
		"-f", dockerfile,
		"-t", inv.Job.LocalRef,
	}
	for _, ba := range spec.BuildArgs {
		args = append(args, "--build-arg", ba)
	}
	if inv.CacheFrom != "" {
		args = append(args, "--cache-from", "type=local,src="+inv.CacheFrom)
	}
	if inv.CacheTo != "" {
		args = append(args, "--cache-to", "type=local,dest="+inv.CacheTo+",mode=max")
	}
	args = append(args, "--load", buildContext)
	return args
}

func validateBuildArg(arg string) error {
	if !buildArgPattern.MatchString(arg) {
		return fmt.Errorf("invalid build arg %q: must be KEY=VALUE", arg)
	}
	return nil
}
