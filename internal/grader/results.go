package grader

import (
	"encoding/json"
	"fmt"
	"time"

	"labgrade/internal/report"
	"labgrade/internal/vcs"
)

// Results is the machine-readable record of one grading run.
type Results struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Repo        RepoMetadata       `json:"repo"`
	Grade       report.GradeReport `json:"grade"`
}

// RepoMetadata mirrors the graded repository's identity in the record.
type RepoMetadata struct {
	Name   string `json:"name"`
	Commit string `json:"commit"`
	Branch string `json:"branch"`
	Dirty  bool   `json:"dirty"`
}

func repoMetadata(meta vcs.Metadata) RepoMetadata {
	return RepoMetadata{
		Name:   meta.Name,
		Commit: meta.Commit,
		Branch: meta.Branch,
		Dirty:  meta.Dirty,
	}
}

// marshalResults renders the run record as pretty JSON.
func marshalResults(results Results) ([]byte, error) {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal results: %w", err)
	}
	return append(payload, '\n'), nil
}
