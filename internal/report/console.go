package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderConsoleLine renders the one-line console summary of a run.
func RenderConsoleLine(report GradeReport, noColor bool) string {
	line := fmt.Sprintf("Total: %s/%s | Submission: %s/%s | Steps: %s/%s",
		formatMarks(report.Total), formatMarks(report.Max),
		formatMarks(report.Submission.Score), formatMarks(report.Submission.Max),
		formatMarks(report.StepsTotal), formatMarks(report.Max-report.Submission.Max))
	return stylize(line, noColor, consoleColor(report))
}

// consoleColor picks a color by overall outcome.
func consoleColor(report GradeReport) lipgloss.Color {
	switch {
	case report.Max > 0 && report.Total >= report.Max*0.8:
		return lipgloss.Color("34")
	case report.Max > 0 && report.Total >= report.Max*0.5:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("196")
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
