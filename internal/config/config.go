// Package config loads the optional YAML configuration file that points
// CarryVault at its database and export directory.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool's file locations.
type Config struct {
	// Database is the path to the SQLite database file.
	Database string `yaml:"database"`

	// ExportDir is where export documents are written.
	ExportDir string `yaml:"export_dir"`
}

// DefaultPath returns the default config file location:
// ~/.carryvault/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".carryvault", "config.yaml"), nil
}

// Default returns the configuration used when no config file exists:
// everything under ~/.carryvault/.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	base := filepath.Join(home, ".carryvault")
	return Config{
		Database:  filepath.Join(base, "carryvault.db"),
		ExportDir: filepath.Join(base, "exports"),
	}, nil
}

// Load reads the config file at path. An empty path means the default
// location, where a missing file silently yields the defaults; an explicit
// path that does not exist is an error.
//
// Decoding is strict: unknown keys are rejected so a typo in the config
// file fails loudly instead of being ignored.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default()
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	defaults, err := Default()
	if err != nil {
		return Config{}, err
	}

	cfg := defaults
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Partial files inherit the defaults for anything left unset.
	if cfg.Database == "" {
		cfg.Database = defaults.Database
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = defaults.ExportDir
	}
	return cfg, nil
}
