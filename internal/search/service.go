// Package search wires the article library to the ranker: it loads the
// candidate articles, ranks their text against a query and maps the results
// back to article metadata.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kittclouds/newsrank/internal/store"
	"github.com/kittclouds/newsrank/pkg/resorank"
)

var (
	// ErrQueryRequired is returned for a blank query.
	ErrQueryRequired = errors.New("query parameter is required")
	// ErrNoArticles is returned when the library has nothing to rank.
	ErrNoArticles = errors.New("no articles found for the given query")
)

// Hit is one ranked article.
type Hit struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	URL           string  `json:"url"`
	TFIDFScore    float64 `json:"tfidf_score"`
	BM25Score     float64 `json:"bm25_score"`
	CombinedScore float64 `json:"combined_score"`
}

// Response is the result of a search request.
type Response struct {
	Query   string `json:"query"`
	Results []Hit  `json:"results"`
}

// Service answers search requests. Every call builds its own corpus.
type Service struct {
	store  store.Storer
	scorer *resorank.Scorer
	logger *slog.Logger
}

// NewService creates a search service. A nil logger uses slog.Default().
func NewService(s store.Storer, scorer *resorank.Scorer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, scorer: scorer, logger: logger}
}

// Search ranks the stored articles against query.
func (s *Service) Search(ctx context.Context, query string) (*Response, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}

	log := s.logger.With("request_id", uuid.NewString(), "query", query)
	start := time.Now()

	articles, err := s.store.ListArticles(s.scorer.Config.MaxDocuments)
	if err != nil {
		log.Error("failed to load articles", "error", err)
		return nil, fmt.Errorf("load articles: %w", err)
	}
	if len(articles) == 0 {
		log.Warn("no articles to rank")
		return nil, ErrNoArticles
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	texts := make([]string, len(articles))
	for i, a := range articles {
		texts[i] = a.Text()
	}

	results, err := s.scorer.Rank(texts, query)
	if err != nil {
		log.Error("ranking failed", "documents", len(texts), "error", err)
		return nil, fmt.Errorf("rank: %w", err)
	}

	resp := &Response{Query: query, Results: make([]Hit, 0, len(results))}
	for _, r := range results {
		a := articles[r.DocIndex]
		resp.Results = append(resp.Results, Hit{
			Title:         a.Title,
			Description:   a.Description,
			URL:           a.URL,
			TFIDFScore:    r.TFIDFScore,
			BM25Score:     r.BM25Score,
			CombinedScore: r.CombinedScore,
		})
	}

	log.Info("search complete",
		"documents", len(texts),
		"results", len(resp.Results),
		"elapsed", time.Since(start))
	return resp, nil
}
