// Package config loads optional defaults from the user's config file.
//
// Flags always win; the file only supplies defaults for the few
// settings worth persisting between runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the bump configuration.
type Config struct {
	SearchRoot  string `toml:"search_root"`  // default discovery root
	Draft       bool   `toml:"draft"`        // open PRs as drafts by default
	PlainPrompt bool   `toml:"plain_prompt"` // always use the line-read prompt
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// Path returns the config file location (~/.config/bump/config.toml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "bump", "config.toml"), nil
}

// Load reads the config file. A missing file is not an error and
// returns the defaults.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}
