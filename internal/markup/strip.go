package markup

import (
	"regexp"
	"strings"
)

var commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// StripComments removes comment-delimited regions from markup so that
// example code inside comments never satisfies a check. Matching is
// non-greedy and spans lines. An unterminated opener consumes the rest of
// the input; known limitation, kept as-is.
func StripComments(text string) string {
	stripped := commentPattern.ReplaceAllString(text, "")
	if idx := strings.Index(stripped, "<!--"); idx >= 0 {
		stripped = stripped[:idx]
	}
	return stripped
}
