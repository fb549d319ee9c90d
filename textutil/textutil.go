// Package textutil provides word-oriented string manipulation helpers:
// greedy line wrapping, bounded abbreviation, initials extraction, and case
// transforms. All functions operate on Unicode code points, never mutate
// their inputs, and are safe for concurrent use.
package textutil

import (
	"runtime"
	"unicode"
)

// lineSeparator returns the platform line terminator.
func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// isDelimiter reports whether ch separates words. A nil delimiter set means
// whitespace separates words; otherwise only the listed runes do, and
// whitespace gets no special treatment.
func isDelimiter(ch rune, delimiters []rune) bool {
	if delimiters == nil {
		return unicode.IsSpace(ch)
	}
	for _, d := range delimiters {
		if ch == d {
			return true
		}
	}
	return false
}

// indexOfRune returns the index of the first occurrence of ch in runes at or
// after start, or -1 if there is none.
func indexOfRune(runes []rune, ch rune, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(runes); i++ {
		if runes[i] == ch {
			return i
		}
	}
	return -1
}
