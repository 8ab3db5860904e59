package resorank

// ComputeStatistics builds DF, IDF, document lengths and the average
// document length for corpus. Each document counts at most once per term.
func ComputeStatistics(corpus Corpus) (*CorpusStatistics, error) {
	n := len(corpus)
	if n == 0 {
		return nil, ErrEmptyCorpus
	}

	stats := &CorpusStatistics{
		TotalDocuments: n,
		DocFreq:        make(map[string]int),
		IDF:            make(WeightMap),
		DocLengths:     make([]int, n),
	}

	totalLen := 0
	seen := make(map[string]struct{})
	for i, doc := range corpus {
		stats.DocLengths[i] = len(doc)
		totalLen += len(doc)

		clear(seen)
		for _, term := range doc {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			stats.DocFreq[term]++
		}
	}
	stats.AverageDocLength = float64(totalLen) / float64(n)

	for term, df := range stats.DocFreq {
		stats.IDF[term] = CalculateIDF(float64(n), df)
	}
	return stats, nil
}
