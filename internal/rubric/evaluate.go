package rubric

import (
	"fmt"
	"math"

	"labgrade/internal/markup"
)

// Evaluate runs every step's checks against the document and scores each
// step by uniform proportional deduction: all checks in a step weigh the
// same, and the awarded score never drops below zero.
func Evaluate(doc markup.Document, steps []Step) []StepResult {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		results = append(results, evaluateStep(doc, step))
	}
	return results
}

// EvaluateMissing force-scores every step to zero with a single explanatory
// deduction note, used when the submission file cannot be read at all.
func EvaluateMissing(steps []Step, note string) []StepResult {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		results = append(results, StepResult{
			ID:         step.ID,
			Name:       step.Name,
			Max:        step.Max,
			Awarded:    0,
			Deductions: []string{note},
		})
	}
	return results
}

func evaluateStep(doc markup.Document, step Step) StepResult {
	result := StepResult{
		ID:     step.ID,
		Name:   step.Name,
		Max:    step.Max,
		Checks: make([]Check, 0, len(step.Checks)),
	}
	missing := 0
	for _, check := range step.Checks {
		passed := check.Test(doc)
		if !passed {
			missing++
		}
		result.Checks = append(result.Checks, Check{Label: check.Label, Passed: passed})
	}
	result.Awarded = Score(step.Max, len(step.Checks), missing)
	if missing > 0 {
		deducted := round2(step.Max - result.Awarded)
		result.Deductions = append(result.Deductions,
			fmt.Sprintf("missing %d of %d checks: -%.2f marks", missing, len(step.Checks), deducted))
	}
	return result
}

// Score applies the proportional deduction rule:
// max(0, round2(stepMax - (stepMax/totalChecks)*missing)).
func Score(stepMax float64, totalChecks, missing int) float64 {
	if totalChecks <= 0 {
		return 0
	}
	awarded := round2(stepMax - (stepMax/float64(totalChecks))*float64(missing))
	return math.Max(0, awarded)
}

// round2 rounds to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
