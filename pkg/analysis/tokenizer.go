package analysis

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r belongs to a word: letters, numbers and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokens returns the lowercase word tokens of text.
// The sequence is lazy and can be ranged over any number of times.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		lower := strings.ToLower(text)
		start := -1
		for i := 0; i < len(lower); {
			r, size := utf8.DecodeRuneInString(lower[i:])
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
			} else if start >= 0 {
				if !yield(lower[start:i]) {
					return
				}
				start = -1
			}
			i += size
		}
		if start >= 0 {
			yield(lower[start:])
		}
	}
}

// Tokenize collects Tokens into a slice.
func Tokenize(text string) []string {
	var out []string
	for tok := range Tokens(text) {
		out = append(out, tok)
	}
	return out
}
