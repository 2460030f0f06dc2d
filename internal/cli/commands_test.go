package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitCommandScaffoldsConfig verifies init writes a config file that
// validate then accepts.
func TestInitCommandScaffoldsConfig(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--dir", dir}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	path := filepath.Join(dir, ".labgrade", "config.yml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected scaffolded config: %v", err)
	}
	if !strings.Contains(stdout.String(), path) {
		t.Fatalf("expected written path in output, got %q", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	code = Run([]string{"validate", "--config", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("scaffolded config should validate, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "is valid") {
		t.Fatalf("expected valid message, got %q", stdout.String())
	}
}

// TestInitCommandRefusesOverwrite verifies init does not clobber an
// existing config file.
func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"init", "--dir", dir}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("first init failed: %d", code)
	}
	code := Run([]string{"init", "--dir", dir}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit on overwrite, got %d", code)
	}
}

// TestValidateCommandReportsIssues verifies validation issues are listed
// per field.
func TestValidateCommandReportsIssues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	broken := "version: 2\ndeadline: not-a-time\n"
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	for _, want := range []string{"version", "deadline"} {
		if !strings.Contains(stderr.String(), want) {
			t.Fatalf("expected issue for %q, got %q", want, stderr.String())
		}
	}
}

// TestValidateCommandNoConfigFound verifies defaults apply when no config
// file exists anywhere above the working directory.
func TestValidateCommandNoConfigFound(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "defaults apply") {
		t.Fatalf("expected defaults message, got %q", stdout.String())
	}
}

// TestHistoryCommandEmpty verifies history before any grading pass.
func TestHistoryCommandEmpty(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Run([]string{"history", "--dir", dir}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "No grade history recorded yet.") {
		t.Fatalf("expected empty history message, got %q", stdout.String())
	}
}

// TestHistoryCommandListsRuns verifies grading passes show up in the
// history listing, newest first.
func TestHistoryCommandListsRuns(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(samplePage), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"grade", "--dir", dir, "--no-color"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("grade failed: %d (stderr: %s)", code, stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	code := Run([]string{"history", "--dir", dir}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "/100") {
		t.Fatalf("expected a listed run, got %q", stdout.String())
	}
}
