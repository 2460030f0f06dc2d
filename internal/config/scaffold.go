package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigYAML = `version: 1

# Lab deadline, RFC3339 with a fixed UTC offset.
deadline: "2025-10-15T23:59:59+05:00"

submission:
  max: 20
  late_score: 10

source:
  filename: "index.html"
  exclude_dirs:
    - ".git"
    - "node_modules"
    - "vendor"

output:
  dir: ".labgrade"
  record: "grade.csv"
  feedback: "FEEDBACK.md"
  history_db: "history.duckdb"
`

// Scaffold writes the default config file, refusing to overwrite an
// existing one.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
