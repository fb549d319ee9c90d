package textutil

import "strings"

// Initials returns the first code point of each word in str, in order and
// with case unchanged. Words are separated by the given delimiters; when none
// are passed, whitespace separates words. An explicit empty delimiter slice
// yields an empty string.
func Initials(str string, delimiters ...rune) string {
	if str == "" {
		return str
	}
	if delimiters != nil && len(delimiters) == 0 {
		return ""
	}
	var buf strings.Builder
	lastWasGap := true
	for _, ch := range str {
		if isDelimiter(ch, delimiters) {
			lastWasGap = true
		} else if lastWasGap {
			buf.WriteRune(ch)
			lastWasGap = false
		}
	}
	return buf.String()
}
