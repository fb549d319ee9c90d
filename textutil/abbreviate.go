package textutil

import "fmt"

// Abbreviate shortens str to at most upper code points, preferring to cut at
// the first space at or after position lower. appendToEnd is appended
// whenever the cut landed on a space, or when plain truncation dropped
// characters. An upper of -1 means no upper bound. Bounds exceeding the text
// length are clamped to it; an empty str is returned unchanged.
//
// Abbreviate fails when upper is below -1, or when upper is below lower and
// not -1.
func Abbreviate(str string, lower, upper int, appendToEnd string) (string, error) {
	if upper < -1 {
		return "", fmt.Errorf("upper value cannot be less than -1")
	}
	if upper < lower && upper != -1 {
		return "", fmt.Errorf("upper value is less than lower value")
	}
	if str == "" {
		return str, nil
	}

	runes := []rune(str)
	if lower > len(runes) {
		lower = len(runes)
	}
	if upper == -1 || upper > len(runes) {
		upper = len(runes)
	}

	index := indexOfRune(runes, ' ', lower)
	if index == -1 {
		// No word break after lower: plain truncation, suffix only when
		// characters were actually dropped.
		if upper == len(runes) {
			return string(runes[:upper]), nil
		}
		return string(runes[:upper]) + appendToEnd, nil
	}

	end := index
	if upper < end {
		end = upper
	}
	return string(runes[:end]) + appendToEnd, nil
}
