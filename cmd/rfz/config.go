package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/rfz"
	"github.com/pelletier/go-toml/v2"
)

// Config holds defaults read from the optional TOML configuration file.
// Command-line flags and environment variables take precedence over it.
type Config struct {
	Dir             string     `toml:"dir"`
	Jobs            int        `toml:"jobs"`
	DuplicatePolicy string     `toml:"duplicate_policy"`
	Delimiter       string     `toml:"delimiter"`
	Sync            SyncConfig `toml:"sync"`
}

// SyncConfig is the [sync] table of the configuration file.
type SyncConfig struct {
	Remote  string   `toml:"remote"`
	Command string   `toml:"command"`
	Include []string `toml:"include"`
}

// LoadConfig reads the configuration file at path. A missing file yields an
// empty configuration unless required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return nil, rfz.Errorf(rfz.EINVALID, "config file %q does not exist", path)
	} else if err != nil {
		return nil, rfz.Errorf(rfz.EINVALID, "cannot read config file %q: %v", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, rfz.Errorf(rfz.EINVALID, "invalid config file %q: %v", path, err)
	}
	if cfg.Jobs < 0 {
		return nil, rfz.Errorf(rfz.EINVALID, "invalid config file %q: jobs must not be negative", path)
	}
	return cfg, nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/rfz/config.toml, falling back to
// ~/.config/rfz/config.toml.
func defaultConfigPath(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rfz", "config.toml")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "rfz", "config.toml")
	}
	return ""
}

// defaultDataDir returns $XDG_DATA_HOME/rfz, falling back to
// ~/.local/share/rfz.
func defaultDataDir(getenv func(string) string) string {
	if dir := getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "rfz")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share", "rfz")
	}
	return "rfz"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
