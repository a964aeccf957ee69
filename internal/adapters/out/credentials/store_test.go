package credentials

import (
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

func envFrom(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func newTestStore(config Config, env map[string]string) *Store {
	s := NewStore(config)
	s.getenv = envFrom(env)
	return s
}

func writeCredFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStore_GetFromEnv(t *testing.T) {
	s := newTestStore(Config{}, map[string]string{
		EnvUsername: "ci",
		EnvPassword: "token",
	})

	cred, err := s.Get(testCtx(), "ghcr.io")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistryCredential{Registry: "ghcr.io", Username: "ci", Password: "token"}, cred)
}

func TestStore_GetFromFile(t *testing.T) {
	path := writeCredFile(t, "HOIST_REGISTRY_USERNAME=bot\nHOIST_REGISTRY_PASSWORD=\"p@ss word\"\n")
	s := newTestStore(Config{File: path}, nil)

	cred, err := s.Get(testCtx(), "registry.example.com")

	require.NoError(t, err)
	assert.Equal(t, "bot", cred.Username)
	assert.Equal(t, "p@ss word", cred.Password)
}

func TestStore_EnvWinsOverFile(t *testing.T) {
	path := writeCredFile(t, "HOIST_REGISTRY_USERNAME=file\nHOIST_REGISTRY_PASSWORD=file\n")
	s := newTestStore(Config{File: path}, map[string]string{EnvUsername: "env", EnvPassword: "env"})

	cred, err := s.Get(testCtx(), "ghcr.io")

	require.NoError(t, err)
	assert.Equal(t, "env", cred.Username)
}

func TestStore_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		config func(t *testing.T) Config
	}{
		{"no env no file", func(t *testing.T) Config { return Config{} }},
		{"missing file", func(t *testing.T) Config { return Config{File: filepath.Join(t.TempDir(), "nope.env")} }},
		{"file without password", func(t *testing.T) Config {
			return Config{File: writeCredFile(t, "HOIST_REGISTRY_USERNAME=bot\n")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(tt.config(t), nil)
			_, err := s.Get(testCtx(), "ghcr.io")
			assert.ErrorIs(t, err, domain.ErrCredentialsNotFound)
		})
	}
}

func TestStore_CachesUntilCleared(t *testing.T) {
	env := map[string]string{EnvUsername: "ci", EnvPassword: "first"}
	s := newTestStore(Config{}, env)

	_, err := s.Get(testCtx(), "ghcr.io")
	require.NoError(t, err)

	env[EnvPassword] = "second"
	cred, err := s.Get(testCtx(), "ghcr.io")
	require.NoError(t, err)
	assert.Equal(t, "first", cred.Password)

	require.NoError(t, s.Clear(testCtx()))

	_, err = s.Get(testCtx(), "ghcr.io")
	assert.ErrorIs(t, err, domain.ErrCredentialsNotFound)
}

func TestStore_ClearRemovesFileWhenConfigured(t *testing.T) {
	path := writeCredFile(t, "HOIST_REGISTRY_PASSWORD=x\n")
	s := newTestStore(Config{File: path, RemoveFile: true}, nil)

	_, err := s.Get(testCtx(), "ghcr.io")
	require.NoError(t, err)
	require.NoError(t, s.Clear(testCtx()))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is harmless.
	assert.NoError(t, s.Clear(testCtx()))
}

func TestStore_ClearKeepsFileByDefault(t *testing.T) {
	path := writeCredFile(t, "HOIST_REGISTRY_PASSWORD=x\n")
	s := newTestStore(Config{File: path}, nil)

	require.NoError(t, s.Clear(testCtx()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
