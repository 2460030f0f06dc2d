package report

import "strings"

var markdownEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"|", "\\|",
	"`", "\\`",
)

// escape sanitizes interpolated text (check labels, file paths) so it cannot
// corrupt the markdown or embedded HTML structure of a report.
func escape(text string) string {
	return markdownEscaper.Replace(text)
}
