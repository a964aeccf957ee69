package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDataDir returns the default data directory path.
// Uses ~/.hoist for user installations, /var/lib/hoist as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".hoist")
	}
	return "/var/lib/hoist"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: hoist.toml
// Search paths (in order): current directory, ~/.config/hoist
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("hoist")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "hoist"))
	}
}
