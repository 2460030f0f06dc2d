package report

import (
	"fmt"
	"strings"

	"labgrade/internal/rubric"
)

// RenderSummary renders the condensed CI step summary: a score table
// followed by collapsible per-step detail.
func RenderSummary(report GradeReport) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "## Lab grade: %s/%s\n\n", formatMarks(report.Total), formatMarks(report.Max))
	if report.Source != "" {
		fmt.Fprintf(&builder, "Graded file: `%s`\n\n", escape(report.Source))
	} else {
		builder.WriteString("Graded file: none found\n\n")
	}

	builder.WriteString("| Step | Score | Max |\n")
	builder.WriteString("| --- | ---: | ---: |\n")
	for _, step := range report.Steps {
		fmt.Fprintf(&builder, "| %s | %s | %s |\n",
			escape(step.Name), formatMarks(step.Awarded), formatMarks(step.Max))
	}
	fmt.Fprintf(&builder, "| Submission timeliness | %s | %s |\n",
		formatMarks(report.Submission.Score), formatMarks(report.Submission.Max))
	fmt.Fprintf(&builder, "| **Total** | **%s** | **%s** |\n\n",
		formatMarks(report.Total), formatMarks(report.Max))

	for _, step := range report.Steps {
		fmt.Fprintf(&builder, "<details><summary>%s — %s/%s</summary>\n\n",
			escape(step.Name), formatMarks(step.Awarded), formatMarks(step.Max))
		found, missing := splitChecks(step.Checks)
		if len(found) > 0 {
			builder.WriteString("Found:\n")
			for _, label := range found {
				fmt.Fprintf(&builder, "- %s\n", escape(label))
			}
			builder.WriteString("\n")
		}
		if len(missing) > 0 {
			builder.WriteString("Missing:\n")
			for _, label := range missing {
				fmt.Fprintf(&builder, "- %s\n", escape(label))
			}
			builder.WriteString("\n")
		}
		if len(step.Deductions) > 0 {
			builder.WriteString("Notes:\n")
			for _, note := range step.Deductions {
				fmt.Fprintf(&builder, "- %s\n", escape(note))
			}
			builder.WriteString("\n")
		}
		builder.WriteString("</details>\n\n")
	}
	return builder.String()
}

func splitChecks(checks []rubric.Check) (found, missing []string) {
	for _, check := range checks {
		if check.Passed {
			found = append(found, check.Label)
		} else {
			missing = append(missing, check.Label)
		}
	}
	return found, missing
}
