// Package analysis turns raw text into the normalized token sequences used
// for relevance scoring: tokenize, drop stop words, strip suffixes.
package analysis

import "strings"

// Analyzer normalizes documents and queries.
// The zero value applies only the fixed stopword table.
type Analyzer struct {
	// ExtraStopWords are removed in addition to StopWords.
	ExtraStopWords map[string]bool
}

// NewAnalyzer creates an analyzer with optional extra stop words
func NewAnalyzer(extra ...string) *Analyzer {
	a := &Analyzer{}
	if len(extra) > 0 {
		a.ExtraStopWords = make(map[string]bool, len(extra))
		for _, w := range extra {
			a.ExtraStopWords[strings.ToLower(w)] = true
		}
	}
	return a
}

// Normalize runs Tokens -> stopword filter -> Stem over text.
// A token that stems to the empty string ("ing", "es") is dropped.
func (a *Analyzer) Normalize(text string) []string {
	var out []string
	for tok := range FilterStopWords(Tokens(text)) {
		if a != nil && a.ExtraStopWords[tok] {
			continue
		}
		stemmed := Stem(tok)
		if stemmed == "" {
			continue
		}
		out = append(out, stemmed)
	}
	return out
}

// NormalizeAll normalizes each text, keeping positions.
func (a *Analyzer) NormalizeAll(texts []string) [][]string {
	docs := make([][]string, len(texts))
	for i, text := range texts {
		docs[i] = a.Normalize(text)
	}
	return docs
}
