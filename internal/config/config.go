// Package config handles loading the tdo config.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the ~/.config/tdo/config.toml file.
type Config struct {
	// DefaultFile is the todo file used when the current directory has
	// no .todo.md of its own.
	DefaultFile string `toml:"default-file"`

	// Editor overrides $EDITOR for the editor command.
	Editor string `toml:"editor"`
}

// Load reads the global config file. A missing file is not an error;
// it yields an empty config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return loadConfigFile(path)
}

// Path returns the location of the global config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tdo", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.DefaultFile = strings.TrimSpace(cfg.DefaultFile)
	cfg.Editor = strings.TrimSpace(cfg.Editor)
	return &cfg, nil
}
