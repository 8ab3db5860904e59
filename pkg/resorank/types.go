package resorank

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned when statistics are requested over zero documents.
	ErrEmptyCorpus = errors.New("resorank: corpus has no documents")
	// ErrCorpusTooLarge is returned when a corpus exceeds Config.MaxDocuments.
	ErrCorpusTooLarge = errors.New("resorank: corpus exceeds document limit")
	// ErrInvalidConfig wraps every Config.Validate failure.
	ErrInvalidConfig = errors.New("resorank: invalid config")
)

// ResoRankConfig holds scoring parameters
type ResoRankConfig struct {
	K1          float64 `json:"k1" yaml:"k1"`
	B           float64 `json:"b" yaml:"b"`
	TFIDFWeight float64 `json:"tfidfWeight" yaml:"tfidfWeight"`
	BM25Weight  float64 `json:"bm25Weight" yaml:"bm25Weight"`

	// Limit caps the number of results; 0 returns every document.
	Limit int `json:"limit" yaml:"limit"`
	// MaxDocuments bounds the corpus size; 0 disables the bound.
	MaxDocuments int `json:"maxDocuments" yaml:"maxDocuments"`
}

// Config is the short name used by callers.
type Config = ResoRankConfig

func DefaultConfig() ResoRankConfig {
	return ResoRankConfig{
		K1:           1.5,
		B:            0.75,
		TFIDFWeight:  0.7,
		BM25Weight:   0.3,
		Limit:        50,
		MaxDocuments: 1000,
	}
}

// Validate checks parameter ranges.
func (c ResoRankConfig) Validate() error {
	switch {
	case c.K1 < 0:
		return fmt.Errorf("%w: k1 must be >= 0, got %g", ErrInvalidConfig, c.K1)
	case c.B < 0 || c.B > 1:
		return fmt.Errorf("%w: b must be in [0, 1], got %g", ErrInvalidConfig, c.B)
	case c.TFIDFWeight < 0 || c.BM25Weight < 0:
		return fmt.Errorf("%w: weights must be >= 0", ErrInvalidConfig)
	case c.Limit < 0:
		return fmt.Errorf("%w: limit must be >= 0, got %d", ErrInvalidConfig, c.Limit)
	case c.MaxDocuments < 0:
		return fmt.Errorf("%w: maxDocuments must be >= 0, got %d", ErrInvalidConfig, c.MaxDocuments)
	}
	return nil
}

// WeightMap maps a term to a weight. Absent terms weigh 0.
type WeightMap map[string]float64

// Get returns the weight of term, or 0 if absent.
func (m WeightMap) Get(term string) float64 {
	return m[term]
}

// SumOver adds Get(term) for every entry of terms, repeats included.
func (m WeightMap) SumOver(terms []string) float64 {
	total := 0.0
	for _, term := range terms {
		total += m.Get(term)
	}
	return total
}

// Corpus is an ordered list of normalized documents.
// A document is identified by its index.
type Corpus [][]string

// CorpusStatistics tracks global stats
type CorpusStatistics struct {
	TotalDocuments   int            `json:"totalDocuments"`
	DocFreq          map[string]int `json:"docFreq"`
	IDF              WeightMap      `json:"idf"`
	DocLengths       []int          `json:"docLengths"`
	AverageDocLength float64        `json:"averageDocumentLength"`
}

// Result is one ranked document.
type Result struct {
	DocIndex      int     `json:"document_index"`
	TFIDFScore    float64 `json:"tfidf_score"`
	BM25Score     float64 `json:"bm25_score"`
	CombinedScore float64 `json:"combined_score"`
}
