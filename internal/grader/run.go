// Package grader orchestrates one grading run: locate the submission, run
// the rubric, score timeliness, and write every report output. A run that
// starts always produces a complete report; missing or unreadable input is
// graded as zero, never surfaced as a process failure.
package grader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"labgrade/internal/config"
	"labgrade/internal/history"
	"labgrade/internal/markup"
	"labgrade/internal/report"
	"labgrade/internal/rubric"
	"labgrade/internal/submission"
	"labgrade/internal/vcs"
)

// Params configures one grading run.
type Params struct {
	// Dir is the working tree to grade; empty means the current directory.
	Dir    string
	Config config.Config
	// Git reads submission timestamps; construct with vcs.NewClient.
	Git vcs.Client
	// Now is a clock seam for the late fallback; nil means time.Now.
	Now func() time.Time
	// Stderr receives non-fatal warnings; nil discards them.
	Stderr io.Writer
}

// RunResult carries everything a caller needs to present the run.
type RunResult struct {
	RunID string
	Grade report.GradeReport
	Repo  vcs.Metadata
	Paths OutputPaths
}

// Run executes a full grading pass and writes all outputs. The returned
// error covers only output plumbing; grading-content problems (missing
// file, unreadable markup, no git history) degrade scores instead.
func Run(ctx context.Context, params Params) (RunResult, error) {
	dir := params.Dir
	if dir == "" {
		dir = "."
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return RunResult{}, fmt.Errorf("resolve working directory: %w", err)
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	stderr := params.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	cfg := params.Config
	steps := rubric.DefaultSteps()

	source, stepResults := evaluateSource(absDir, cfg, steps, stderr)
	timerResult := scoreTimeliness(ctx, params.Git, absDir, cfg, now, stderr)
	grade := report.New(source, stepResults, timerResult)

	repoMeta, err := params.Git.Metadata(ctx, absDir)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: repository metadata unavailable: %v\n", err)
		repoMeta = vcs.Metadata{}
	}

	runID := uuid.NewString()
	paths := NewOutputPaths(absDir, cfg.Output.Dir, cfg.Output.Record, cfg.Output.Feedback)
	if err := writeOutputs(runID, grade, repoMeta, paths, now()); err != nil {
		return RunResult{}, err
	}
	if err := appendStepSummary(report.RenderSummary(grade)); err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	recordHistory(ctx, runID, grade, repoMeta, cfg, paths, now, stderr)

	return RunResult{RunID: runID, Grade: grade, Repo: repoMeta, Paths: paths}, nil
}

// evaluateSource locates and reads the submission, then evaluates the
// rubric. Any failure force-scores every step to zero with one note.
func evaluateSource(dir string, cfg config.Config, steps []rubric.Step, stderr io.Writer) (string, []rubric.StepResult) {
	path, err := DiscoverSource(dir, cfg.Source, cfg.Output.Dir)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: no markup file found under %s\n", dir)
		return "", rubric.EvaluateMissing(steps, "submission file not found")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: cannot read %s: %v\n", path, err)
		return "", rubric.EvaluateMissing(steps, fmt.Sprintf("submission file unreadable: %s", filepath.Base(path)))
	}
	display := path
	if rel, relErr := filepath.Rel(dir, path); relErr == nil {
		display = rel
	}
	return display, rubric.Evaluate(markup.NewDocument(string(raw)), steps)
}

// scoreTimeliness reads the last change time from git, falling back to the
// current wall clock with the unverified (late) marker when git is
// unavailable.
func scoreTimeliness(ctx context.Context, git vcs.Client, dir string, cfg config.Config, now func() time.Time, stderr io.Writer) submission.Result {
	deadline, err := cfg.DeadlineTime()
	if err != nil {
		// Validated configs cannot reach this; fall back to defaults.
		deadline, _ = config.Default().DeadlineTime()
	}
	timer := submission.Timer{
		Deadline:  deadline,
		Max:       cfg.Submission.Max,
		LateScore: cfg.Submission.LateScore,
	}
	submittedAt, err := git.LastChangeTime(ctx, dir)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: submission time unavailable, treating as late: %v\n", err)
		return timer.Score(now(), false)
	}
	return timer.Score(submittedAt, true)
}

// writeOutputs writes each output file independently and atomically from
// fully-computed content.
func writeOutputs(runID string, grade report.GradeReport, repoMeta vcs.Metadata, paths OutputPaths, generatedAt time.Time) error {
	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	record, err := report.RenderRecord(grade)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(paths.Record, record); err != nil {
		return err
	}
	if err := writeFileAtomic(paths.Feedback, []byte(report.RenderFeedback(grade))); err != nil {
		return err
	}
	page, err := report.RenderFeedbackHTML(grade)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(paths.FeedbackHTML, page); err != nil {
		return err
	}
	results, err := marshalResults(Results{
		RunID:       runID,
		GeneratedAt: generatedAt.UTC(),
		Repo:        repoMetadata(repoMeta),
		Grade:       grade,
	})
	if err != nil {
		return err
	}
	return writeFileAtomic(paths.Results, results)
}

// recordHistory appends the run to the DuckDB history when configured.
func recordHistory(ctx context.Context, runID string, grade report.GradeReport, repoMeta vcs.Metadata, cfg config.Config, paths OutputPaths, now func() time.Time, stderr io.Writer) {
	if cfg.Output.HistoryDB == "" {
		return
	}
	db, err := history.Open(filepath.Join(paths.Dir, cfg.Output.HistoryDB))
	if err != nil {
		fmt.Fprintf(stderr, "Warning: grade history unavailable: %v\n", err)
		return
	}
	defer db.Close()
	if _, err := history.Record(ctx, db, history.Entry{
		RunID:      runID,
		RecordedAt: now().UTC(),
		Commit:     repoMeta.Commit,
	}, grade); err != nil {
		fmt.Fprintf(stderr, "Warning: recording grade history failed: %v\n", err)
	}
}
