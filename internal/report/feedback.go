package report

import (
	"fmt"
	"strings"
)

// RenderFeedback renders the fuller narrative feedback document written for
// the student.
func RenderFeedback(report GradeReport) string {
	var builder strings.Builder
	builder.WriteString("# Lab feedback\n\n")
	fmt.Fprintf(&builder, "Final grade: **%s/%s** (steps %s/80, submission %s/%s).\n\n",
		formatMarks(report.Total), formatMarks(report.Max),
		formatMarks(report.StepsTotal),
		formatMarks(report.Submission.Score), formatMarks(report.Submission.Max))

	if report.Source == "" {
		builder.WriteString("No submitted markup file could be found, so every step scored zero. ")
		builder.WriteString("Make sure your page is committed as `index.html` (or another `.html` file) at the top of your repository.\n\n")
	} else {
		fmt.Fprintf(&builder, "Graded file: `%s`.\n\n", escape(report.Source))
	}

	for _, step := range report.Steps {
		fmt.Fprintf(&builder, "## %s (%s/%s)\n\n",
			escape(step.Name), formatMarks(step.Awarded), formatMarks(step.Max))
		found, missing := splitChecks(step.Checks)
		switch {
		case len(step.Checks) == 0 && len(step.Deductions) > 0:
			fmt.Fprintf(&builder, "Not graded: %s.\n\n", escape(step.Deductions[0]))
			continue
		case len(missing) == 0:
			builder.WriteString("Everything required for this step was found. Nice work.\n\n")
			continue
		}
		if len(found) > 0 {
			fmt.Fprintf(&builder, "You got %d of %d requirements:\n\n", len(found), len(step.Checks))
			for _, label := range found {
				fmt.Fprintf(&builder, "- %s\n", escape(label))
			}
			builder.WriteString("\n")
		}
		builder.WriteString("Still missing:\n\n")
		for _, label := range missing {
			fmt.Fprintf(&builder, "- %s\n", escape(label))
		}
		builder.WriteString("\n")
		for _, note := range step.Deductions {
			fmt.Fprintf(&builder, "_%s_\n\n", escape(note))
		}
	}

	builder.WriteString("## Submission timing\n\n")
	switch {
	case report.Submission.OnTime:
		fmt.Fprintf(&builder, "Submitted on time: full %s marks.\n",
			formatMarks(report.Submission.Max))
	case report.Submission.Verified:
		fmt.Fprintf(&builder, "Submitted after the deadline: %s of %s marks.\n",
			formatMarks(report.Submission.Score), formatMarks(report.Submission.Max))
	default:
		fmt.Fprintf(&builder, "Submission time could not be verified and was treated as late: %s of %s marks.\n",
			formatMarks(report.Submission.Score), formatMarks(report.Submission.Max))
	}
	return builder.String()
}
