package resorank

import (
	"fmt"
	"sort"

	"github.com/kittclouds/newsrank/pkg/analysis"
)

// Scorer ranks documents against a query with a weighted TF-IDF + BM25 mix.
// It keeps no per-request state and is safe for concurrent use.
type Scorer struct {
	Config   ResoRankConfig
	Analyzer *analysis.Analyzer
}

// NewScorer creates a new scorer
func NewScorer(config ResoRankConfig) *Scorer {
	return NewScorerWithAnalyzer(config, analysis.NewAnalyzer())
}

// NewScorerWithAnalyzer creates a scorer that normalizes text with a.
func NewScorerWithAnalyzer(config ResoRankConfig, a *analysis.Analyzer) *Scorer {
	return &Scorer{Config: config, Analyzer: a}
}

// Rank normalizes texts and query and returns the ranked documents.
func (s *Scorer) Rank(texts []string, query string) ([]Result, error) {
	if err := s.checkCorpus(len(texts)); err != nil {
		return nil, err
	}
	corpus := Corpus(s.Analyzer.NormalizeAll(texts))
	return s.RankTokens(corpus, s.Analyzer.Normalize(query))
}

// RankTokens ranks an already normalized corpus against normalized query terms.
func (s *Scorer) RankTokens(corpus Corpus, query []string) ([]Result, error) {
	if err := s.checkCorpus(len(corpus)); err != nil {
		return nil, err
	}

	stats, err := ComputeStatistics(corpus)
	if err != nil {
		return nil, err
	}

	// Both scorers read the same IDF map.
	tfidf := TFIDFScores(corpus, stats)
	bm25 := BM25Scores(corpus, stats, s.Config.K1, s.Config.B)

	return Combine(tfidf, bm25, query, s.Config), nil
}

func (s *Scorer) checkCorpus(n int) error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	if n == 0 {
		return ErrEmptyCorpus
	}
	if s.Config.MaxDocuments > 0 && n > s.Config.MaxDocuments {
		return fmt.Errorf("%w: %d documents, limit %d", ErrCorpusTooLarge, n, s.Config.MaxDocuments)
	}
	return nil
}

// Combine sums each document's TF-IDF and BM25 weights over the query terms
// (repeated terms count each time), mixes them with the configured weights
// and sorts by combined score descending. Equal scores keep corpus order.
func Combine(tfidf, bm25 []WeightMap, query []string, cfg ResoRankConfig) []Result {
	results := make([]Result, len(tfidf))
	for i := range tfidf {
		t := tfidf[i].SumOver(query)
		b := 0.0
		if i < len(bm25) {
			b = bm25[i].SumOver(query)
		}
		results[i] = Result{
			DocIndex:      i,
			TFIDFScore:    t,
			BM25Score:     b,
			CombinedScore: cfg.TFIDFWeight*t + cfg.BM25Weight*b,
		}
	}

	// Sort DESC
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CombinedScore > results[j].CombinedScore
	})

	if cfg.Limit > 0 && len(results) > cfg.Limit {
		results = results[:cfg.Limit]
	}
	return results
}
