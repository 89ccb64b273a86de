// Package slug derives unique URL-safe identifiers from titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// Make converts a title to its base slug: lowercased, punctuation
// stripped, whitespace runs joined with single hyphens.
func Make(title string) string {
	s := invalidChars.ReplaceAllString(strings.ToLower(title), "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithSuffix appends a numeric collision suffix to a base slug.
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
