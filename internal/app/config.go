// Package app provides the application initialization and wiring.
package app

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/hoist/internal/domain"
)

// Artifact storage backends.
const (
	BackendFilesystem = "filesystem"
	BackendS3         = "s3"
)

// GateConfig is one configured quality gate.
type GateConfig struct {
	Name    string            `mapstructure:"name"`
	Command string            `mapstructure:"command"`
	Env     map[string]string `mapstructure:"env"`
}

// Config holds the application configuration.
type Config struct {
	Image struct {
		Registry   string   `mapstructure:"registry"`
		Name       string   `mapstructure:"name"`
		Dockerfile string   `mapstructure:"dockerfile"`
		Context    string   `mapstructure:"context"`
		BuildArgs  []string `mapstructure:"build_args"`
	} `mapstructure:"image"`

	Build struct {
		Platforms     []string `mapstructure:"platforms"`
		Concurrency   int      `mapstructure:"concurrency"`
		CacheDir      string   `mapstructure:"cache_dir"`
		RunnerOS      string   `mapstructure:"runner_os"`
		BuilderBinary string   `mapstructure:"builder_binary"`
	} `mapstructure:"build"`

	Artifacts struct {
		Backend   string `mapstructure:"backend"` // "filesystem" or "s3"
		Dir       string `mapstructure:"dir"`
		Bucket    string `mapstructure:"bucket"`
		Prefix    string `mapstructure:"prefix"`
		Region    string `mapstructure:"region"`
		Endpoint  string `mapstructure:"endpoint"`
		PathStyle bool   `mapstructure:"path_style"`
		Purge     bool   `mapstructure:"purge"`
	} `mapstructure:"artifacts"`

	Registry struct {
		PlainHTTP             bool   `mapstructure:"plain_http"`
		CredentialsFile       string `mapstructure:"credentials_file"`
		RemoveCredentialsFile bool   `mapstructure:"remove_credentials_file"`
	} `mapstructure:"registry"`

	Gates []GateConfig `mapstructure:"gates"`

	Policy struct {
		BotActors          []string `mapstructure:"bot_actors"`
		SkipBranches       []string `mapstructure:"skip_branches"`
		LatestOnPrerelease bool     `mapstructure:"latest_on_prerelease"`
	} `mapstructure:"policy"`

	Lock struct {
		Dir string `mapstructure:"dir"`
		// StaleAfter applies to the s3 backend, where a crashed holder leaves its object behind.
		StaleAfter time.Duration `mapstructure:"stale_after"`
	} `mapstructure:"lock"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Report struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"report"`
}

// LoadConfig loads configuration from file, environment and defaults.
func LoadConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, Config{}, err
	}
	return v, cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	dataDir := DefaultDataDir()

	// Every key needs a default so HOIST_* variables reach Unmarshal.
	v.SetDefault("image.registry", "docker.io")
	v.SetDefault("image.name", "")
	v.SetDefault("image.build_args", []string{})
	v.SetDefault("image.dockerfile", "Dockerfile")
	v.SetDefault("image.context", ".")
	v.SetDefault("build.platforms", []string{"linux/amd64"})
	v.SetDefault("build.concurrency", 0) // unlimited
	v.SetDefault("build.cache_dir", filepath.Join(dataDir, "cache"))
	v.SetDefault("build.runner_os", defaultRunnerOS())
	v.SetDefault("build.builder_binary", "docker")
	v.SetDefault("artifacts.backend", BackendFilesystem)
	v.SetDefault("artifacts.dir", filepath.Join(dataDir, "artifacts"))
	v.SetDefault("artifacts.bucket", "")
	v.SetDefault("artifacts.prefix", "hoist")
	v.SetDefault("artifacts.region", "")
	v.SetDefault("artifacts.endpoint", "")
	v.SetDefault("artifacts.path_style", false)
	v.SetDefault("artifacts.purge", false)
	v.SetDefault("registry.plain_http", false)
	v.SetDefault("registry.credentials_file", "")
	v.SetDefault("registry.remove_credentials_file", false)
	v.SetDefault("policy.bot_actors", domain.DefaultBotActors)
	v.SetDefault("policy.skip_branches", []string{})
	v.SetDefault("policy.latest_on_prerelease", domain.DefaultTagPolicy().LatestOnPrerelease)
	v.SetDefault("lock.dir", filepath.Join(dataDir, "locks"))
	v.SetDefault("lock.stale_after", "1h")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("report.path", "")

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("HOIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// Validate checks the settings every command depends on.
func (c Config) Validate() error {
	if c.Image.Name == "" {
		return fmt.Errorf("%w: image.name is required", domain.ErrInvalidConfig)
	}
	if _, err := c.Platforms(); err != nil {
		return err
	}
	switch c.Artifacts.Backend {
	case BackendFilesystem:
		if c.Artifacts.Dir == "" {
			return fmt.Errorf("%w: artifacts.dir is required", domain.ErrInvalidConfig)
		}
	case BackendS3:
		if c.Artifacts.Bucket == "" {
			return fmt.Errorf("%w: artifacts.bucket is required for the s3 backend", domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown artifacts.backend %q", domain.ErrInvalidConfig, c.Artifacts.Backend)
	}
	if c.Build.Concurrency < 0 {
		return fmt.Errorf("%w: build.concurrency must not be negative", domain.ErrInvalidConfig)
	}
	for i, g := range c.Gates {
		if g.Name == "" || g.Command == "" {
			return fmt.Errorf("%w: gates[%d] needs a name and a command", domain.ErrInvalidConfig, i)
		}
	}
	return nil
}

// Platforms parses the configured build platforms.
func (c Config) Platforms() ([]domain.Platform, error) {
	if len(c.Build.Platforms) == 0 {
		return nil, domain.ErrNoPlatforms
	}
	return domain.ParsePlatforms(c.Build.Platforms)
}

// Target returns the registry repository releases are published to.
func (c Config) Target() domain.ImageTarget {
	return domain.ImageTarget{Registry: c.Image.Registry, Name: c.Image.Name}
}

// BuildSpec returns how the project is built.
func (c Config) BuildSpec() domain.BuildSpec {
	return domain.BuildSpec{
		Dockerfile: c.Image.Dockerfile,
		Context:    c.Image.Context,
		BuildArgs:  c.Image.BuildArgs,
	}
}

// LocalImageName is the repository name given to locally built images.
// Only the last path component is used so it never collides with the target.
func (c Config) LocalImageName() string {
	name := c.Image.Name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return "hoist-local/" + name
}

// TagPolicy returns the tag derivation policy.
func (c Config) TagPolicy() domain.TagPolicy {
	return domain.TagPolicy{LatestOnPrerelease: c.Policy.LatestOnPrerelease}
}

// PublishPolicy returns the authorization rules applied before publishing.
func (c Config) PublishPolicy() domain.PublishPolicy {
	return domain.PublishPolicy{
		BotActors:    c.Policy.BotActors,
		SkipBranches: c.Policy.SkipBranches,
	}
}

// GateSpecs returns the configured gates. Viper lowercases map keys, so
// environment variable names are upper-cased here.
func (c Config) GateSpecs() []domain.GateSpec {
	specs := make([]domain.GateSpec, 0, len(c.Gates))
	for _, g := range c.Gates {
		var env map[string]string
		if len(g.Env) > 0 {
			env = make(map[string]string, len(g.Env))
			for k, v := range g.Env {
				env[strings.ToUpper(k)] = v
			}
		}
		specs = append(specs, domain.GateSpec{Name: g.Name, Command: g.Command, Env: env})
	}
	return specs
}

// defaultRunnerOS mirrors the capitalized OS names CI runners report.
func defaultRunnerOS() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	default:
		return runtime.GOOS
	}
}
