package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// RenderRecord renders the machine-readable score record: a header row and
// exactly one data row for the whole class.
func RenderRecord(report GradeReport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	rows := [][]string{
		{"student", "score", "max_score"},
		{"all_students", formatMarks(report.Total), formatMarks(report.Max)},
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write score record: %w", err)
	}
	return buf.Bytes(), nil
}
