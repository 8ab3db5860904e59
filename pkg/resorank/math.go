package resorank

import (
	"math"
)

// CalculateIDF computes Inverse Document Frequency
// Formula: ln((N - df + 0.5) / (df + 0.5) + 1)
func CalculateIDF(totalDocs float64, docFreq int) float64 {
	if docFreq == 0 {
		return 0.0
	}
	df := float64(docFreq)
	ratio := (totalDocs - df + 0.5) / (df + 0.5)
	if ratio < 0 {
		ratio = 0
	}
	return math.Log(ratio + 1.0)
}

// TermFrequencies returns count/len for every term of doc.
// An empty document yields an empty map.
func TermFrequencies(doc []string) WeightMap {
	tf := make(WeightMap)
	if len(doc) == 0 {
		return tf
	}
	for _, term := range doc {
		tf[term]++
	}
	total := float64(len(doc))
	for term, count := range tf {
		tf[term] = count / total
	}
	return tf
}

// BM25Term scores one term of one document.
// tf is the length-normalized frequency (count/docLen), not the raw count:
//
//	idf * tf*(k1+1) / (tf + k1*(1 - b + b*docLen/avgDocLen))
func BM25Term(tf, idf float64, docLen int, avgDocLen, k1, b float64) float64 {
	if tf <= 0 || avgDocLen <= 0 {
		return 0.0
	}
	denom := tf + k1*(1.0-b+b*float64(docLen)/avgDocLen)
	if denom <= 0 {
		return 0.0
	}
	return idf * (tf * (k1 + 1.0)) / denom
}
