// This file contains the interface and in-memory implementation for testing.

package store

import (
	"sort"
	"sync"
)

// Storer defines the interface for article persistence.
// This allows swapping between MemStore (testing, wasm) and SQLiteStore (CLI).
type Storer interface {
	UpsertArticle(article *Article) error
	GetArticle(id string) (*Article, error)
	DeleteArticle(id string) error
	// ListArticles returns newest first; limit <= 0 returns everything.
	ListArticles(limit int) ([]*Article, error)
	CountArticles() (int, error)

	// Lifecycle
	Close() error
}

// MemStore is an in-memory implementation of Storer.
type MemStore struct {
	mu       sync.RWMutex
	articles map[string]*Article
}

// NewMemStore creates a new in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		articles: make(map[string]*Article),
	}
}

// Close is a no-op for MemStore.
func (s *MemStore) Close() error {
	return nil
}

func (s *MemStore) UpsertArticle(article *Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy := *article
	if existing, ok := s.articles[article.ID]; ok && existing.CreatedAt != 0 {
		copy.CreatedAt = existing.CreatedAt
	}
	s.articles[article.ID] = &copy
	return nil
}

func (s *MemStore) GetArticle(id string) (*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if article, ok := s.articles[id]; ok {
		copy := *article
		return &copy, nil
	}
	return nil, nil
}

func (s *MemStore) DeleteArticle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.articles, id)
	return nil
}

func (s *MemStore) ListArticles(limit int) ([]*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Article, 0, len(s.articles))
	for _, article := range s.articles {
		copy := *article
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].PublishedAt != result[j].PublishedAt {
			return result[i].PublishedAt > result[j].PublishedAt
		}
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *MemStore) CountArticles() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles), nil
}
