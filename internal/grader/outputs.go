package grader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// stepSummaryEnv names the externally-provided CI summary sink.
const stepSummaryEnv = "GITHUB_STEP_SUMMARY"

// OutputPaths describes filesystem locations for one run's outputs.
type OutputPaths struct {
	Dir          string
	Record       string
	Feedback     string
	FeedbackHTML string
	Results      string
}

// NewOutputPaths derives output file locations from the configured names.
func NewOutputPaths(dir, outputDir, record, feedback string) OutputPaths {
	root := outputDir
	if !filepath.IsAbs(root) {
		root = filepath.Join(dir, outputDir)
	}
	htmlName := strings.TrimSuffix(feedback, filepath.Ext(feedback)) + ".html"
	return OutputPaths{
		Dir:          root,
		Record:       filepath.Join(root, record),
		Feedback:     filepath.Join(root, feedback),
		FeedbackHTML: filepath.Join(root, htmlName),
		Results:      filepath.Join(root, "results.json"),
	}
}

// writeFileAtomic writes fully-computed content via a temp file and rename,
// so a failure never leaves a partial output behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

// appendStepSummary appends the CI summary to the sink file named by the
// environment, when present. Absence of the sink is not an error.
func appendStepSummary(summary string) error {
	sink := os.Getenv(stepSummaryEnv)
	if strings.TrimSpace(sink) == "" {
		return nil
	}
	file, err := os.OpenFile(sink, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open step summary sink: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(summary); err != nil {
		return fmt.Errorf("append step summary: %w", err)
	}
	return nil
}
