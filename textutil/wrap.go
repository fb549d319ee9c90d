package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// defaultBreakPattern is the break-point pattern used when none is given: a
// single literal space.
const defaultBreakPattern = " "

// Wrap wraps a single line of text at wrapLength code points, breaking at
// spaces. Words longer than wrapLength are not split, so a line containing
// one may exceed the limit. Lines are separated by the platform line
// terminator.
func Wrap(str string, wrapLength int) string {
	return WrapCustom(str, wrapLength, "", false, "")
}

// WrapCustom wraps a single line of text at wrapLength code points, breaking
// at the last match of the wrapOn pattern within each line. An empty
// newLineStr selects the platform line terminator, wrapLength below 1 is
// treated as 1, and a blank wrapOn means a single space. If wrapLongWords is
// true, words longer than wrapLength are split at the limit; otherwise the
// scan continues past the limit to the next break and the line runs long.
//
// wrapOn is a regular expression. WrapCustom never fails: a wrapOn that does
// not compile falls back to the default space pattern. Leading break matches
// at the start of a line are consumed without emitting an empty line, and the
// final line never receives a trailing separator.
func WrapCustom(str string, wrapLength int, newLineStr string, wrapLongWords bool, wrapOn string) string {
	if str == "" {
		return str
	}
	if newLineStr == "" {
		newLineStr = lineSeparator()
	}
	if wrapLength < 1 {
		wrapLength = 1
	}
	if strings.TrimSpace(wrapOn) == "" {
		wrapOn = defaultBreakPattern
	}
	pattern, err := regexp.Compile(wrapOn)
	if err != nil {
		pattern = regexp.MustCompile(defaultBreakPattern)
	}

	runes := []rune(str)
	inputLen := len(runes)
	offset := 0
	var wrapped strings.Builder
	wrapped.Grow(len(str) + 32)

	// matcherSize is the width in runes of the last break consumed at a
	// window start. Zero marks a zero-width match whose cursor advance must
	// be paid back before the next emit.
	matcherSize := -1

	for offset < inputLen {
		spaceToWrapAt := -1

		windowEnd := offset + wrapLength + 1
		if windowEnd > inputLen {
			windowEnd = inputLen
		}
		window := string(runes[offset:windowEnd])
		matches := pattern.FindAllStringIndex(window, -1)
		if len(matches) > 0 {
			first := matches[0]
			if first[0] == 0 {
				matcherSize = utf8.RuneCountInString(window[:first[1]])
				if matcherSize != 0 {
					// Leading delimiter run: consume without
					// emitting an empty line.
					offset += matcherSize
					continue
				}
				offset++
			}
			spaceToWrapAt = utf8.RuneCountInString(window[:first[0]]) + offset
		}

		// The remainder fits on the final line as-is.
		if inputLen-offset <= wrapLength {
			break
		}

		// Break at the last match in the window, not the first.
		if len(matches) > 1 {
			last := matches[len(matches)-1]
			spaceToWrapAt = utf8.RuneCountInString(window[:last[0]]) + offset
		}

		switch {
		case spaceToWrapAt >= offset:
			wrapped.WriteString(string(runes[offset:spaceToWrapAt]))
			wrapped.WriteString(newLineStr)
			offset = spaceToWrapAt + 1

		case wrapLongWords:
			if matcherSize == 0 {
				offset--
			}
			wrapped.WriteString(string(runes[offset : offset+wrapLength]))
			wrapped.WriteString(newLineStr)
			offset += wrapLength
			matcherSize = -1

		default:
			// Long words are not split: scan past the limit for the
			// next break, even if the line runs long.
			rest := string(runes[offset+wrapLength:])
			if loc := pattern.FindStringIndex(rest); loc != nil {
				matcherSize = utf8.RuneCountInString(rest[loc[0]:loc[1]])
				spaceToWrapAt = utf8.RuneCountInString(rest[:loc[0]]) + offset + wrapLength
			}
			if spaceToWrapAt >= 0 {
				if matcherSize == 0 && offset != 0 {
					offset--
				}
				wrapped.WriteString(string(runes[offset:spaceToWrapAt]))
				wrapped.WriteString(newLineStr)
				offset = spaceToWrapAt + 1
			} else {
				if matcherSize == 0 && offset != 0 {
					offset--
				}
				wrapped.WriteString(string(runes[offset:]))
				offset = inputLen
				matcherSize = -1
			}
		}
	}

	if matcherSize == 0 && offset < inputLen {
		offset--
	}
	if offset < inputLen {
		wrapped.WriteString(string(runes[offset:]))
	}

	return wrapped.String()
}
