// Package history appends grade records to a local DuckDB file so past runs
// can be compared. History is best-effort: failures here never fail a
// grading run.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"labgrade/internal/report"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the grade history schema definition.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing history databases.
func SchemaDDL() string {
	return schemaDDL
}

// Entry is one recorded grading run.
type Entry struct {
	RunID           string
	RecordedAt      time.Time
	Commit          string
	Source          string
	StepsTotal      float64
	SubmissionScore float64
	Total           float64
	Max             float64
}

// Open opens (creating if needed) the history database and applies the
// schema.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("history: path is empty")
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return db, nil
}

// Record appends one grading run to the history. The run ID is generated
// when empty.
func Record(ctx context.Context, db *sql.DB, entry Entry, grade report.GradeReport) (string, error) {
	if db == nil {
		return "", errors.New("history: db is nil")
	}
	runID := entry.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	steps, err := json.Marshal(grade.Steps)
	if err != nil {
		return "", fmt.Errorf("marshal step results: %w", err)
	}
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO grade_runs
		   (run_id, recorded_at, commit_id, source, steps_total, submission_score, total, max_score, steps)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		entry.RecordedAt,
		entry.Commit,
		grade.Source,
		grade.StepsTotal,
		grade.Submission.Score,
		grade.Total,
		grade.Max,
		string(steps),
	); err != nil {
		return "", fmt.Errorf("record grade run: %w", err)
	}
	return runID, nil
}

// List returns the most recent entries, newest first.
func List(ctx context.Context, db *sql.DB, limit int) ([]Entry, error) {
	if db == nil {
		return nil, errors.New("history: db is nil")
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(
		ctx,
		`SELECT run_id, recorded_at, commit_id, source, steps_total, submission_score, total, max_score
		   FROM grade_runs
		  ORDER BY recorded_at DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list grade runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.RunID,
			&entry.RecordedAt,
			&entry.Commit,
			&entry.Source,
			&entry.StepsTotal,
			&entry.SubmissionScore,
			&entry.Total,
			&entry.Max,
		); err != nil {
			return nil, fmt.Errorf("scan grade run: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grade runs: %w", err)
	}
	return entries, nil
}
