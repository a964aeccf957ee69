// Package gaterunner runs quality gates as subprocesses.
package gaterunner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/hoist/internal/domain"
)

// Runner implements out.GateRunner. Only the exit code of a gate matters.
type Runner struct {
	dir    string
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a runner that starts gates in dir.
// Gate output goes to stdout and stderr; nil writers default to os.Stderr.
func NewRunner(dir string, stdout, stderr io.Writer) *Runner {
	if stdout == nil {
		stdout = os.Stderr
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Runner{dir: dir, stdout: stdout, stderr: stderr}
}

// Run executes the gate command with no arguments.
func (r *Runner) Run(ctx context.Context, gate domain.GateSpec) domain.GateResult {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "gaterunner",
		zerowrap.FieldAction:  "Run",
		"gate":                gate.Name,
	})
	log := zerowrap.FromCtx(ctx)

	result := domain.GateResult{Name: gate.Name, ExitCode: -1}
	start := time.Now()

	cmd := exec.CommandContext(ctx, gate.Command) // #nosec G204
	cmd.Dir = r.dir
	cmd.Env = mergeEnv(os.Environ(), gate.Env)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	result.Duration = time.Since(start)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
		result.Passed = true
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		result.Err = err
	}

	event := log.Info()
	if !result.Passed {
		event = log.Warn().AnErr("error", result.Err)
	}
	event.Int("exit_code", result.ExitCode).
		Dur(zerowrap.FieldDuration, result.Duration).
		Bool("passed", result.Passed).
		Msg("gate finished")

	return result
}

// mergeEnv appends extra as KEY=VALUE pairs in key order. Later entries win
// for duplicate keys.
func mergeEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(extra))
	env = append(env, base...)
	for _, k := range keys {
		env = append(env, k+"="+extra[k])
	}
	return env
}
