package gaterunner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoist/internal/domain"
)

func testCtx() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestRunner_Passes(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "lint", "exit 0")

	res := NewRunner(dir, nil, nil).Run(testCtx(), domain.GateSpec{Name: "lint", Command: script})

	assert.True(t, res.Passed)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "lint", res.Name)
	assert.NoError(t, res.Err)
}

func TestRunner_NonZeroExitFails(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "test", "exit 3")

	res := NewRunner(dir, nil, nil).Run(testCtx(), domain.GateSpec{Name: "test", Command: script})

	assert.False(t, res.Passed)
	assert.Equal(t, 3, res.ExitCode)
	assert.NoError(t, res.Err)
}

func TestRunner_MissingCommandFailsWithoutPanicking(t *testing.T) {
	res := NewRunner(t.TempDir(), nil, nil).Run(testCtx(), domain.GateSpec{
		Name:    "ghost",
		Command: "/nonexistent/gate",
	})

	assert.False(t, res.Passed)
	assert.Equal(t, -1, res.ExitCode)
	assert.Error(t, res.Err)
}

func TestRunner_PassesConfiguredEnvAndDir(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "env", `echo "$GATE_MODE:$(basename "$PWD")"`)
	var stdout bytes.Buffer

	res := NewRunner(dir, &stdout, nil).Run(testCtx(), domain.GateSpec{
		Name:    "env",
		Command: script,
		Env:     map[string]string{"GATE_MODE": "strict"},
	})

	require.True(t, res.Passed)
	assert.Equal(t, "strict:"+filepath.Base(dir)+"\n", stdout.String())
}

func TestRunner_CancelledContextFails(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "slow", "sleep 5")
	ctx, cancel := context.WithCancel(testCtx())
	cancel()

	res := NewRunner(dir, nil, nil).Run(ctx, domain.GateSpec{Name: "slow", Command: script})

	assert.False(t, res.Passed)
}

func TestMergeEnv(t *testing.T) {
	base := []string{"PATH=/bin", "MODE=loose"}

	assert.Equal(t, base, mergeEnv(base, nil))
	assert.Equal(t,
		[]string{"PATH=/bin", "MODE=loose", "A=1", "MODE=strict"},
		mergeEnv(base, map[string]string{"MODE": "strict", "A": "1"}),
	)
}
