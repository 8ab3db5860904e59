package resorank

// BM25Scores weighs every term of every document with BM25Term, using the
// corpus-wide average length. The result is parallel to corpus.
func BM25Scores(corpus Corpus, stats *CorpusStatistics, k1, b float64) []WeightMap {
	scores := make([]WeightMap, len(corpus))
	for i, doc := range corpus {
		tf := TermFrequencies(doc)
		weights := make(WeightMap, len(tf))
		for term, tfVal := range tf {
			weights[term] = BM25Term(tfVal, stats.IDF.Get(term), len(doc), stats.AverageDocLength, k1, b)
		}
		scores[i] = weights
	}
	return scores
}
