// Package credentials provides registry credentials from the environment or a
// dotenv file written by the secret store.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/zerowrap"
	"github.com/joho/godotenv"
	"oras.land/oras-go/v2/registry/remote/auth"
	orascreds "oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/bnema/hoist/internal/domain"
)

// Variables read from the environment and from the credentials file.
const (
	EnvUsername = "HOIST_REGISTRY_USERNAME"
	EnvPassword = "HOIST_REGISTRY_PASSWORD"
)

// Config controls where credentials come from.
type Config struct {
	// File is an optional dotenv file holding the same variables.
	File string
	// RemoveFile deletes File when credentials are cleared.
	RemoveFile bool
}

// Store implements out.CredentialStore. Loaded credentials are held in an
// in-memory oras store until Clear.
type Store struct {
	config Config
	getenv func(string) string

	mu      sync.Mutex
	memory  orascreds.Store
	hosts   map[string]struct{}
	cleared bool
}

// NewStore creates a credential store reading the process environment.
func NewStore(config Config) *Store {
	return &Store{
		config: config,
		getenv: os.Getenv,
		memory: orascreds.NewMemoryStore(),
		hosts:  make(map[string]struct{}),
	}
}

// Get returns the credential for registry. The environment takes precedence
// over the credentials file.
func (s *Store) Get(ctx context.Context, registry string) (domain.RegistryCredential, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "credentials",
		zerowrap.FieldAction:  "Get",
		"registry":            registry,
	})
	log := zerowrap.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cleared {
		return domain.RegistryCredential{}, fmt.Errorf("%w: credentials were cleared", domain.ErrCredentialsNotFound)
	}

	cached, err := s.memory.Get(ctx, registry)
	if err != nil {
		return domain.RegistryCredential{}, log.WrapErr(err, "failed to read cached credentials")
	}
	if cached != auth.EmptyCredential {
		return toDomain(registry, cached), nil
	}

	cred, source, err := s.load()
	if err != nil {
		return domain.RegistryCredential{}, log.WrapErr(err, "failed to load credentials")
	}
	if err := s.memory.Put(ctx, registry, cred); err != nil {
		return domain.RegistryCredential{}, log.WrapErr(err, "failed to cache credentials")
	}
	s.hosts[registry] = struct{}{}

	log.Debug().Str("source", source).Str("username", cred.Username).Msg("registry credentials loaded")
	return toDomain(registry, cred), nil
}

// Clear forgets every loaded credential and, when configured, removes the
// credentials file. Later Get calls fail.
func (s *Store) Clear(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "credentials",
		zerowrap.FieldAction:  "Clear",
	})
	log := zerowrap.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for host := range s.hosts {
		if err := s.memory.Delete(ctx, host); err != nil {
			errs = append(errs, err)
		}
	}
	s.hosts = make(map[string]struct{})
	s.cleared = true

	if s.config.RemoveFile && s.config.File != "" {
		if err := os.Remove(s.config.File); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		} else {
			log.Debug().Str(zerowrap.FieldPath, s.config.File).Msg("credentials file removed")
		}
	}

	if err := errors.Join(errs...); err != nil {
		return log.WrapErr(err, "failed to clear credentials")
	}
	return nil
}

func (s *Store) load() (auth.Credential, string, error) {
	cred := auth.Credential{
		Username: s.getenv(EnvUsername),
		Password: s.getenv(EnvPassword),
	}
	if cred.Password != "" {
		return cred, "env", nil
	}

	if s.config.File == "" {
		return auth.EmptyCredential, "", domain.ErrCredentialsNotFound
	}

	values, err := godotenv.Read(s.config.File)
	if errors.Is(err, os.ErrNotExist) {
		return auth.EmptyCredential, "", fmt.Errorf("%w: %s does not exist", domain.ErrCredentialsNotFound, s.config.File)
	}
	if err != nil {
		return auth.EmptyCredential, "", fmt.Errorf("failed to parse %s: %w", s.config.File, err)
	}

	cred = auth.Credential{
		Username: values[EnvUsername],
		Password: values[EnvPassword],
	}
	if cred.Password == "" {
		return auth.EmptyCredential, "", fmt.Errorf("%w: %s has no %s", domain.ErrCredentialsNotFound, s.config.File, EnvPassword)
	}
	return cred, "file", nil
}

func toDomain(registry string, cred auth.Credential) domain.RegistryCredential {
	return domain.RegistryCredential{
		Registry: registry,
		Username: cred.Username,
		Password: cred.Password,
	}
}
