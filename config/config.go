// Package config reads the optional application configuration file. The
// program takes no command-line arguments, so the config file is the only
// tuning surface; a missing file yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// CatalogPath is the food catalog file to load (default "foods").
	CatalogPath string `yaml:"catalog_path,omitempty"`

	// Sound enables the submission feedback chimes.
	Sound bool `yaml:"sound"`

	// LogLevel is one of debug, info, warn, error. Empty disables logging.
	LogLevel string `yaml:"log_level,omitempty"`

	// LogFile overrides the default log file location.
	LogFile string `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		CatalogPath: "foods",
		Sound:       true,
		LogLevel:    "info",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "macrolog", "config.yaml"), nil
}

// Load reads the config from the default location.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file is not an error and
// yields Default(); a file that exists but does not parse is.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = Default().CatalogPath
	}
	return cfg, nil
}
