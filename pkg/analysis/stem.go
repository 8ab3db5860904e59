package analysis

import "strings"

// suffixes are tried in order; only the first match is stripped.
var suffixes = [...]string{"ing", "ly", "ed", "es", "s"}

// Stem strips at most one suffix from token.
// This is a plain suffix stripper, not a morphological stemmer:
// "running" -> "runn", "flies" -> "fli", "cats" -> "cat".
func Stem(token string) string {
	for _, suffix := range suffixes {
		if strings.HasSuffix(token, suffix) {
			return token[:len(token)-len(suffix)]
		}
	}
	return token
}
