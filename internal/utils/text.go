package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes cuts s to at most max runes. A non-positive max leaves s alone.
func TruncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// CleanText trims surrounding whitespace and caps the result at max runes.
// The second return is false when nothing is left after trimming.
func CleanText(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return TruncateRunes(s, max), true
}
