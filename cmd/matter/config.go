package main

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the matter CLI configuration loaded from TOML.
type Config struct {
	Fmt FmtConfig `toml:"fmt"`
}

// FmtConfig holds defaults for the fmt subcommand.
type FmtConfig struct {
	// To is the default target format when --to is not given.
	// Empty means "keep each file's own format".
	To string `toml:"to"`
}

// defaultConfigPath returns ~/.config/matter/config.toml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".config", "matter", "config.toml"), nil
}

// LoadConfig reads a TOML configuration file. If path is empty, the
// default path (~/.config/matter/config.toml) is used. Returns a
// zero-value Config without error when the file does not exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Fmt.To != "" {
		switch cfg.Fmt.To {
		case "yaml", "toml", "json":
		default:
			return nil, fmt.Errorf("config %s: unknown format %q", path, cfg.Fmt.To)
		}
	}
	return &cfg, nil
}
