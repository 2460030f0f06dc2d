package config

import (
	"errors"
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault resolves a config for a directory: an explicit path wins,
// then an upward search, then the built-in defaults. A missing config file
// is not an error; a present but broken one is.
func LoadOrDefault(explicitPath, startDir string) (Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	path, err := FindConfigPath(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return Load(path)
}
