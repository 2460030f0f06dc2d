// Package config defines the grader's configuration: the submission
// deadline, timeliness weights, source discovery rules, and output paths.
// Everything has a built-in default so the grader runs with no config file
// at all; a .labgrade/config.yml overrides the constants without touching
// the scoring logic.
package config

import "time"

// Config is the full grader configuration.
type Config struct {
	Version    int              `yaml:"version"`
	Deadline   string           `yaml:"deadline"`
	Submission SubmissionConfig `yaml:"submission"`
	Source     SourceConfig     `yaml:"source"`
	Output     OutputConfig     `yaml:"output"`
}

// SubmissionConfig holds the timeliness weights.
type SubmissionConfig struct {
	Max       float64 `yaml:"max"`
	LateScore float64 `yaml:"late_score"`
}

// SourceConfig controls how the submitted markup file is located.
type SourceConfig struct {
	Filename    string   `yaml:"filename"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// OutputConfig names the files a grading run writes.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Record    string `yaml:"record"`
	Feedback  string `yaml:"feedback"`
	HistoryDB string `yaml:"history_db"`
}

// Defaults reproducing the lab's fixed constants.
const (
	DefaultDeadline  = "2025-10-15T23:59:59+05:00"
	DefaultFilename  = "index.html"
	DefaultOutputDir = ".labgrade"
)

// Default returns the built-in configuration used when no config file is
// present.
func Default() Config {
	return Config{
		Version:  1,
		Deadline: DefaultDeadline,
		Submission: SubmissionConfig{
			Max:       20,
			LateScore: 10,
		},
		Source: SourceConfig{
			Filename:    DefaultFilename,
			ExcludeDirs: []string{".git", "node_modules", "vendor"},
		},
		Output: OutputConfig{
			Dir:       DefaultOutputDir,
			Record:    "grade.csv",
			Feedback:  "FEEDBACK.md",
			HistoryDB: "history.duckdb",
		},
	}
}

// DeadlineTime parses the configured deadline. Validated configs always
// parse; the error return covers direct construction in tests.
func (c Config) DeadlineTime() (time.Time, error) {
	return time.Parse(time.RFC3339, c.Deadline)
}
