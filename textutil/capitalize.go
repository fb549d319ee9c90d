package textutil

import (
	"strings"
	"unicode"
)

// Capitalize title-cases the first code point of each word in str, leaving
// the rest of each word untouched. Words are separated by the given
// delimiters; when none are passed, whitespace separates words. An explicit
// empty delimiter slice returns str unchanged.
func Capitalize(str string, delimiters ...rune) string {
	if str == "" || (delimiters != nil && len(delimiters) == 0) {
		return str
	}
	buffer := []rune(str)
	capitalizeNext := true
	for i, ch := range buffer {
		if isDelimiter(ch, delimiters) {
			capitalizeNext = true
		} else if capitalizeNext {
			buffer[i] = unicode.ToTitle(ch)
			capitalizeNext = false
		}
	}
	return string(buffer)
}

// CapitalizeFully lower-cases str and then capitalizes it, so each word comes
// out as a title-case code point followed by lower case. Delimiter semantics
// match Capitalize.
func CapitalizeFully(str string, delimiters ...rune) string {
	if str == "" || (delimiters != nil && len(delimiters) == 0) {
		return str
	}
	return Capitalize(strings.ToLower(str), delimiters...)
}

// Uncapitalize lower-cases the first code point of each word in str, leaving
// the rest of each word untouched. Delimiter semantics match Capitalize.
func Uncapitalize(str string, delimiters ...rune) string {
	if str == "" || (delimiters != nil && len(delimiters) == 0) {
		return str
	}
	buffer := []rune(str)
	uncapitalizeNext := true
	for i, ch := range buffer {
		if isDelimiter(ch, delimiters) {
			uncapitalizeNext = true
		} else if uncapitalizeNext {
			buffer[i] = unicode.ToLower(ch)
			uncapitalizeNext = false
		}
	}
	return string(buffer)
}
