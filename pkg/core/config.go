// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPrefix is the install prefix used when neither the config file
// nor MYSQLPROBE_PREFIX name one.
const DefaultPrefix = "/usr/local"

// Config holds mysqlprobe configuration
type Config struct {
	// Prefix plays the role of the build system's install prefix: the
	// base directory when no --mysql-dir is given.
	Prefix string `yaml:"prefix"`

	// CC is the C compiler used for the version probe. Empty means $CC,
	// then the first of cc, gcc, clang found on PATH.
	CC string `yaml:"cc"`

	// MySQL holds defaults for the probe options. Command line flags win
	// over anything set here.
	MySQL Options `yaml:"mysql"`

	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Prefix: getDefaultPrefix(),
	}
}

// DefaultConfigPath returns $HOME/.config/mysqlprobe/config.yaml, or an
// empty string when the home directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mysqlprobe", "config.yaml")
}

// LoadConfig loads configuration from file. A missing file is not an
// error; the defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Prefix == "" {
		cfg.Prefix = getDefaultPrefix()
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return fmt.Errorf("no config path given and home directory unknown")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultPrefix() string {
	if prefix := os.Getenv("MYSQLPROBE_PREFIX"); prefix != "" {
		return prefix
	}
	return DefaultPrefix
}
