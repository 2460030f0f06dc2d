package vcs

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

// fakeRunner maps joined git args to canned output.
type fakeRunner struct {
	outputs map[string]string
	err     error
}

func (f fakeRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	key := strings.Join(args, " ")
	out, ok := f.outputs[key]
	if !ok {
		return "", fmt.Errorf("unexpected git args %q", key)
	}
	return out, nil
}

// TestLastChangeTime verifies the commit epoch is parsed into UTC time.
func TestLastChangeTime(t *testing.T) {
	client := NewClient(fakeRunner{outputs: map[string]string{
		"log -1 --format=%ct": "1760500000",
	}})
	got, err := client.LastChangeTime(context.Background(), ".")
	if err != nil {
		t.Fatalf("last change time: %v", err)
	}
	want := time.Unix(1760500000, 0).UTC()
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestLastChangeTimeBadOutput verifies non-numeric git output is an error.
func TestLastChangeTimeBadOutput(t *testing.T) {
	client := NewClient(fakeRunner{outputs: map[string]string{
		"log -1 --format=%ct": "not-a-timestamp",
	}})
	if _, err := client.LastChangeTime(context.Background(), "."); err == nil {
		t.Fatalf("expected parse error")
	}
}

// TestLastChangeTimeGitUnavailable verifies git failures surface as errors
// for the caller's fail-safe fallback.
func TestLastChangeTimeGitUnavailable(t *testing.T) {
	client := NewClient(fakeRunner{err: fmt.Errorf("git not installed")})
	if _, err := client.LastChangeTime(context.Background(), "."); err == nil {
		t.Fatalf("expected error when git is unavailable")
	}
}

// TestMetadata verifies repository metadata assembly including dirty state.
func TestMetadata(t *testing.T) {
	client := NewClient(fakeRunner{outputs: map[string]string{
		"rev-parse --show-toplevel": "/work/student-lab",
		"rev-parse HEAD":            "abc123",
		"rev-parse --abbrev-ref HEAD": "main",
		"status --porcelain":        " M index.html",
	}})
	meta, err := client.Metadata(context.Background(), ".")
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if meta.Name != "student-lab" || meta.Commit != "abc123" || meta.Branch != "main" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if !meta.Dirty {
		t.Fatalf("expected dirty worktree")
	}
}
