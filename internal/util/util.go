// Package util holds small shared helpers with no domain dependencies.
package util

import (
	"strings"
	"unicode"
)

// Slugify lowers a human-entered value into a URL-safe slug: lower-cased,
// spaces collapsed into single hyphens, everything but letters, digits and
// hyphens dropped. Used for city slugs before equality filtering.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// ContainsFold reports whether substr occurs in s, case-insensitively.
// This is the catalog's free-text matching rule.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
