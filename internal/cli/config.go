package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the application configuration, read from atlaskit.toml.
type Config struct {
	// Catalog locates the layer catalog document.
	Catalog CatalogConfig `toml:"catalog"`

	// Serve configures the HTTP API.
	Serve ServeConfig `toml:"serve"`
}

// CatalogConfig locates the layer catalog.
type CatalogConfig struct {
	// URL of the remote catalog document. Empty means built-in defaults.
	URL string `toml:"url"`

	// File is a local catalog path, taking precedence over URL when set.
	File string `toml:"file"`
}

// ServeConfig configures the serve command.
type ServeConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// RedisAddr enables the shared Redis catalog cache when non-empty.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI enables the MongoDB share store when non-empty; otherwise
	// shares are stored on disk under ShareDir.
	MongoURI string `toml:"mongo_uri"`

	// ShareDir is the file share-store directory ("" = default).
	ShareDir string `toml:"share_dir"`
}

// DefaultConfig returns the configuration used when no atlaskit.toml is
// found.
func DefaultConfig() *Config {
	return &Config{
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads atlaskit.toml from path. When path is empty it searches
// the working directory, then the XDG config directory; a missing file is
// not an error and yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var ok bool
		path, ok = findConfig()
		if !ok {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":8080"
	}

	return cfg, nil
}

func findConfig() (string, bool) {
	if _, err := os.Stat("atlaskit.toml"); err == nil {
		return "atlaskit.toml", true
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		configHome = filepath.Join(home, ".config")
	}

	path := filepath.Join(configHome, appName, "atlaskit.toml")
	if _, err := os.Stat(path); err == nil {
		return path, true
	}

	return "", false
}
