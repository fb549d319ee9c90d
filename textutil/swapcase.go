package textutil

import "unicode"

// SwapCase inverts the case of each letter in str. Upper and title case
// become lower case; lower case becomes upper case, except that a lower-case
// letter starting a word becomes title case, so word-leading letters come out
// capitalized. Whitespace per unicode.IsSpace starts a word. The result has
// the same number of code points as the input.
func SwapCase(str string) string {
	if str == "" {
		return str
	}
	buffer := []rune(str)
	whitespace := true
	for i, ch := range buffer {
		switch {
		case unicode.IsUpper(ch) || unicode.IsTitle(ch):
			buffer[i] = unicode.ToLower(ch)
			whitespace = false
		case unicode.IsLower(ch):
			if whitespace {
				buffer[i] = unicode.ToTitle(ch)
				whitespace = false
			} else {
				buffer[i] = unicode.ToUpper(ch)
			}
		default:
			whitespace = unicode.IsSpace(ch)
		}
	}
	return string(buffer)
}
