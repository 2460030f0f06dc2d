package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"labgrade/internal/rubric"
)

// Issue captures one validation problem in a config.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize fills unset fields with their defaults.
func Normalize(cfg *Config) {
	defaults := Default()
	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	if strings.TrimSpace(cfg.Deadline) == "" {
		cfg.Deadline = defaults.Deadline
	}
	if cfg.Submission.Max == 0 {
		cfg.Submission.Max = defaults.Submission.Max
	}
	if cfg.Submission.LateScore == 0 {
		cfg.Submission.LateScore = defaults.Submission.LateScore
	}
	if strings.TrimSpace(cfg.Source.Filename) == "" {
		cfg.Source.Filename = defaults.Source.Filename
	}
	if len(cfg.Source.ExcludeDirs) == 0 {
		cfg.Source.ExcludeDirs = defaults.Source.ExcludeDirs
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		cfg.Output.Dir = defaults.Output.Dir
	}
	if strings.TrimSpace(cfg.Output.Record) == "" {
		cfg.Output.Record = defaults.Output.Record
	}
	if strings.TrimSpace(cfg.Output.Feedback) == "" {
		cfg.Output.Feedback = defaults.Output.Feedback
	}
}

// Validate checks a normalized config, including the marks invariant: step
// maxima plus the submission maximum must equal 100.
func Validate(cfg *Config) error {
	collector := &issueCollector{}
	if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if _, err := cfg.DeadlineTime(); err != nil {
		collector.add("deadline", fmt.Sprintf("must be RFC3339 with a fixed UTC offset: %v", err))
	}
	if cfg.Submission.Max <= 0 {
		collector.add("submission.max", "must be positive")
	}
	if cfg.Submission.LateScore < 0 {
		collector.add("submission.late_score", "must not be negative")
	}
	if cfg.Submission.LateScore > cfg.Submission.Max {
		collector.add("submission.late_score", "must not exceed submission.max")
	}
	stepTotal := rubric.TotalMax(rubric.DefaultSteps())
	if stepTotal+cfg.Submission.Max != 100 {
		collector.add("submission.max",
			fmt.Sprintf("step maxima (%.0f) plus submission max must equal 100", stepTotal))
	}
	if strings.TrimSpace(cfg.Source.Filename) == "" {
		collector.add("source.filename", "is required")
	} else if filepath.Ext(cfg.Source.Filename) == "" {
		collector.add("source.filename", "must include a file extension")
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		collector.add("output.dir", "is required")
	}
	return collector.result()
}
