// Package config loads the optional medialens configuration file.
//
// The file lives at ~/.config/medialens/config.toml (overridable via the
// --config flag) and supplies defaults for flags that are tedious to repeat:
// the data file path, server address, and storage backends. Precedence is
// flags > config file > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all file-configurable settings.
type Config struct {
	// Data is the default CSV path used when a command gets no file argument.
	Data string `toml:"data"`

	Server   Server   `toml:"server"`
	Redis    Redis    `toml:"redis"`
	Mongo    Mongo    `toml:"mongo"`
	Snapshot Snapshot `toml:"snapshot"`
}

// Server configures the HTTP view API.
type Server struct {
	Addr string `toml:"addr"` // listen address, e.g. ":8080"
}

// Redis configures the optional shared session store.
type Redis struct {
	Addr     string `toml:"addr"` // empty disables Redis, sessions stay in memory
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Mongo configures the optional shared snapshot store.
type Mongo struct {
	URI        string `toml:"uri"` // empty selects the file-backed store
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Snapshot configures the file-backed snapshot store.
type Snapshot struct {
	Dir string `toml:"dir"` // empty uses ~/.config/medialens/snapshots
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{Addr: ":8080"},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "medialens", "config.toml"), nil
}

// Load reads the config file at path, merged over the defaults. A missing
// file is not an error when path is empty or the default location; it just
// yields the defaults. An explicitly requested file that does not exist is
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
