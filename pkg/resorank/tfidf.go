package resorank

// TFIDFScores weighs every term of every document by tf * idf.
// The result is parallel to corpus.
func TFIDFScores(corpus Corpus, stats *CorpusStatistics) []WeightMap {
	scores := make([]WeightMap, len(corpus))
	for i, doc := range corpus {
		tf := TermFrequencies(doc)
		weights := make(WeightMap, len(tf))
		for term, tfVal := range tf {
			weights[term] = tfVal * stats.IDF.Get(term)
		}
		scores[i] = weights
	}
	return scores
}
