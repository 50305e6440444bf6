// internal/util/util.go
package util

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// CollapseWhitespace flattens newlines and runs of whitespace into single
// spaces so multi-line narratives fit on one console line.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
