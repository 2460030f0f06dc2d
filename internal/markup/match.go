// Package markup answers presence, count, and attribute queries against raw
// HTML text using surface pattern matching. It is deliberately not a parser:
// nothing here understands nesting, so structural checks are approximations
// with a documented false-positive tolerance.
package markup

import (
	"fmt"
	"regexp"
	"sync"
)

// Document wraps comment-stripped markup text for pattern queries.
type Document struct {
	text string
}

// NewDocument strips comments from raw markup and wraps the result.
func NewDocument(raw string) Document {
	return Document{text: StripComments(raw)}
}

// Text returns the comment-stripped markup.
func (d Document) Text() string {
	return d.text
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// pattern compiles and caches a case-insensitive regexp.
func pattern(expr string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[expr]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)` + expr)
	patternCache[expr] = re
	return re
}

// openTagExpr matches an opening tag for the given element name.
func openTagExpr(tag string) string {
	return fmt.Sprintf(`<%s(\s[^>]*)?/?>`, regexp.QuoteMeta(tag))
}

// HasTag reports whether an opening tag for the element is present.
func (d Document) HasTag(tag string) bool {
	return pattern(openTagExpr(tag)).MatchString(d.text)
}

// TagCount returns the number of opening tags for the element.
func (d Document) TagCount(tag string) int {
	return len(pattern(openTagExpr(tag)).FindAllString(d.text, -1))
}

// TagHasAttr reports whether any opening tag for the element carries the
// attribute, with or without a value.
func (d Document) TagHasAttr(tag, attr string) bool {
	expr := fmt.Sprintf(`<%s\s[^>]*\b%s\b`, regexp.QuoteMeta(tag), regexp.QuoteMeta(attr))
	return pattern(expr).MatchString(d.text)
}

// TagAttrEquals reports whether any opening tag for the element sets the
// attribute to the given value. Quoting is optional in the source.
func (d Document) TagAttrEquals(tag, attr, value string) bool {
	expr := fmt.Sprintf(`<%s\s[^>]*\b%s\s*=\s*["']?%s["'\s/>]`,
		regexp.QuoteMeta(tag), regexp.QuoteMeta(attr), regexp.QuoteMeta(value))
	return pattern(expr).MatchString(d.text)
}

// TagBefore reports whether an opening tag for first appears anywhere
// textually before a later opening tag for second. This approximates
// "first contains second" and can false-positive across unrelated
// siblings; accepted behavior, not a bug.
func (d Document) TagBefore(first, second string) bool {
	firstLoc := pattern(openTagExpr(first)).FindStringIndex(d.text)
	if firstLoc == nil {
		return false
	}
	secondLoc := pattern(openTagExpr(second)).FindStringIndex(d.text[firstLoc[1]:])
	return secondLoc != nil
}

// attrValues collects values of attr across opening tags of the elements.
func (d Document) attrValues(attr string, tags []string) map[string]struct{} {
	values := map[string]struct{}{}
	for _, tag := range tags {
		expr := fmt.Sprintf(`<%s\s[^>]*\b%s\s*=\s*["']?([^"'\s/>]+)`,
			regexp.QuoteMeta(tag), regexp.QuoteMeta(attr))
		for _, match := range pattern(expr).FindAllStringSubmatch(d.text, -1) {
			if len(match) > 1 && match[1] != "" {
				values[match[1]] = struct{}{}
			}
		}
	}
	return values
}
