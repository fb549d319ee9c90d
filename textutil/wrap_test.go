package textutil

import (
	"strings"
	"testing"
)

func TestWrapCustom(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wrapLength    int
		newline       string
		wrapLongWords bool
		wrapOn        string
		expect        string
	}{
		{
			name:       "empty string",
			input:      "",
			wrapLength: 20,
			newline:    "\n",
			expect:     "",
		},
		{
			name:       "shorter than limit",
			input:      "foo",
			wrapLength: 20,
			newline:    "\n",
			expect:     "foo",
		},
		{
			name:       "breaks at spaces",
			input:      "Here is one line of text that is going to be wrapped after 20 columns.",
			wrapLength: 20,
			newline:    "\n",
			expect:     "Here is one line of\ntext that is going\nto be wrapped after\n20 columns.",
		},
		{
			name:          "long word split at limit",
			input:         "abcdefghij",
			wrapLength:    3,
			newline:       "\n",
			wrapLongWords: true,
			expect:        "abc\ndef\nghi\nj",
		},
		{
			name:       "long word left intact",
			input:      "abcdefghij",
			wrapLength: 3,
			newline:    "\n",
			expect:     "abcdefghij",
		},
		{
			name:       "long URL extends past limit",
			input:      "Click here to jump to the commons website - https://commons.apache.org",
			wrapLength: 20,
			newline:    "\n",
			expect:     "Click here to jump\nto the commons\nwebsite -\nhttps://commons.apache.org",
		},
		{
			name:          "mid-word split after a normal break",
			input:         "ab cdefgh",
			wrapLength:    4,
			newline:       "\n",
			wrapLongWords: true,
			expect:        "ab\ncdef\ngh",
		},
		{
			name:       "custom break pattern",
			input:      "flammable/inflammable",
			wrapLength: 20,
			newline:    "\n",
			wrapOn:     "/",
			expect:     "flammable\ninflammable",
		},
		{
			name:       "leading spaces consumed",
			input:      "  leading",
			wrapLength: 5,
			newline:    "\n",
			expect:     "leading",
		},
		{
			name:       "wrap length below one clamped",
			input:      "ab cd",
			wrapLength: 0,
			newline:    "\n",
			expect:     "ab\ncd",
		},
		{
			name:       "multi-byte runes counted as single columns",
			input:      "ααα βββ",
			wrapLength: 3,
			newline:    "\n",
			expect:     "ααα\nβββ",
		},
		{
			name:       "pattern matching everything consumes the text",
			input:      "abcde",
			wrapLength: 2,
			newline:    "\n",
			wrapOn:     ".",
			expect:     "",
		},
		{
			name:          "zero-width break pattern",
			input:         "aa bb",
			wrapLength:    2,
			newline:       "\n",
			wrapLongWords: true,
			wrapOn:        `\b`,
			expect:        "a \n",
		},
		{
			name:       "invalid pattern falls back to space",
			input:      "one two three",
			wrapLength: 7,
			newline:    "\n",
			wrapOn:     "(",
			expect:     "one two\nthree",
		},
		{
			name:       "custom newline string",
			input:      "one two three",
			wrapLength: 7,
			newline:    "<br>",
			expect:     "one two<br>three",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapCustom(tc.input, tc.wrapLength, tc.newline, tc.wrapLongWords, tc.wrapOn)
			if got != tc.expect {
				t.Errorf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestWrapDefaults(t *testing.T) {
	got := Wrap("one two three", 7)
	expect := "one two" + lineSeparator() + "three"
	if got != expect {
		t.Errorf("expected %q, got %q", expect, got)
	}
}

func TestWrapLineLimit(t *testing.T) {
	const limit = 20
	got := WrapCustom("Here is one line of text that is going to be wrapped after 20 columns.", limit, "\n", false, "")

	for _, line := range strings.Split(got, "\n") {
		if n := len([]rune(line)); n > limit {
			t.Errorf("line %q has %d runes, limit is %d", line, n, limit)
		}
	}
}

// A word longer than the limit is emitted on a line of its own rather than
// split, so that line exceeds the limit.
func TestWrapLongWordExceedsLimit(t *testing.T) {
	got := WrapCustom("aaa bbbbbb cc", 4, "\n", false, "")
	expect := "aaa\nbbbbbb\ncc"
	if got != expect {
		t.Errorf("expected %q, got %q", expect, got)
	}

	lines := strings.Split(got, "\n")
	if len([]rune(lines[1])) <= 4 {
		t.Errorf("expected middle line %q to exceed the wrap length", lines[1])
	}
}

func TestWrapRoundTrip(t *testing.T) {
	input := "Here is one line of text that is going to be wrapped after 20 columns."
	got := WrapCustom(input, 20, "\n", false, "")

	// Each inserted newline replaced exactly one consumed space.
	if restored := strings.ReplaceAll(got, "\n", " "); restored != input {
		t.Errorf("round trip mismatch: expected %q, got %q", input, restored)
	}
}
