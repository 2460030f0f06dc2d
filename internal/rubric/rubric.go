// Package rubric defines the lab's graded steps and the proportional
// deduction scoring rule. Step definitions are data: an ordered list of
// named boolean checks over a markup document, so the scoring math can be
// exercised independently of any particular check.
package rubric

import "labgrade/internal/markup"

// Check records the outcome of one named boolean requirement.
type Check struct {
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
}

// StepCheck names a predicate evaluated against the submission.
type StepCheck struct {
	Label string
	Test  func(markup.Document) bool
}

// Step is the static definition of one graded rubric step.
type Step struct {
	ID     string
	Name   string
	Max    float64
	Checks []StepCheck
}

// StepResult is the immutable outcome of evaluating one step.
type StepResult struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Max        float64  `json:"max"`
	Awarded    float64  `json:"awarded"`
	Checks     []Check  `json:"checks"`
	Deductions []string `json:"deductions,omitempty"`
}

// TotalMax sums the maximum marks across steps.
func TotalMax(steps []Step) float64 {
	total := 0.0
	for _, step := range steps {
		total += step.Max
	}
	return total
}
