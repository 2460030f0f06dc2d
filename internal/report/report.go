// Package report renders grading results. No scoring logic lives here: it
// formats values other packages computed.
package report

import (
	"math"
	"strconv"

	"labgrade/internal/rubric"
	"labgrade/internal/submission"
)

// GradeReport aggregates per-step results and the timeliness score for one
// grading run.
type GradeReport struct {
	Source     string              `json:"source"`
	Steps      []rubric.StepResult `json:"steps"`
	Submission submission.Result   `json:"submission"`
	StepsTotal float64             `json:"steps_total"`
	Total      float64             `json:"total"`
	Max        float64             `json:"max"`
}

// New aggregates step results and the submission score into a report.
// Source is the graded file path, empty when no file was found.
func New(source string, steps []rubric.StepResult, sub submission.Result) GradeReport {
	report := GradeReport{
		Source:     source,
		Steps:      steps,
		Submission: sub,
	}
	for _, step := range steps {
		report.StepsTotal += step.Awarded
		report.Max += step.Max
	}
	report.StepsTotal = round2(report.StepsTotal)
	report.Total = round2(report.StepsTotal + sub.Score)
	report.Max += sub.Max
	return report
}

// formatMarks renders a mark value without trailing zeros.
func formatMarks(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
