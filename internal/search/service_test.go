package search

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/newsrank/internal/store"
	"github.com/kittclouds/newsrank/pkg/resorank"
)

func seededStore(t *testing.T) store.Storer {
	t.Helper()
	s := store.NewMemStore()
	articles := []*store.Article{
		{ID: "1", Title: "Football final tonight", Description: "Teams meet", Content: "The football final kicks off", URL: "u1", PublishedAt: 3},
		{ID: "2", Title: "Markets rally", Description: "Stocks up", Content: "Investors cheered", URL: "u2", PublishedAt: 2},
		{ID: "3", Title: "Football transfer news", Description: "", Content: "", URL: "u3", PublishedAt: 1},
	}
	for _, a := range articles {
		require.NoError(t, s.UpsertArticle(a))
	}
	return s
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestSearch(t *testing.T) {
	var logs bytes.Buffer
	svc := NewService(seededStore(t), resorank.NewScorer(resorank.DefaultConfig()), quietLogger(&logs))

	resp, err := svc.Search(context.Background(), "football")
	require.NoError(t, err)

	assert.Equal(t, "football", resp.Query)
	require.Len(t, resp.Results, 3)

	urls := make([]string, len(resp.Results))
	for i, hit := range resp.Results {
		urls[i] = hit.URL
	}
	// the short title-only article has the higher term frequency
	assert.Equal(t, []string{"u3", "u1", "u2"}, urls)

	top := resp.Results[0]
	assert.Equal(t, "Football transfer news", top.Title)
	assert.Greater(t, top.CombinedScore, 0.0)
	assert.InDelta(t, 0.7*top.TFIDFScore+0.3*top.BM25Score, top.CombinedScore, 1e-12)

	last := resp.Results[2]
	assert.Equal(t, "u2", last.URL)
	assert.Equal(t, 0.0, last.CombinedScore)

	assert.Contains(t, logs.String(), "search complete")
	assert.Contains(t, logs.String(), "request_id=")
}

func TestSearch_RequiresQuery(t *testing.T) {
	svc := NewService(seededStore(t), resorank.NewScorer(resorank.DefaultConfig()), nil)

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrQueryRequired)
}

func TestSearch_NoArticles(t *testing.T) {
	var logs bytes.Buffer
	svc := NewService(store.NewMemStore(), resorank.NewScorer(resorank.DefaultConfig()), quietLogger(&logs))

	_, err := svc.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoArticles)
}

func TestSearch_Limit(t *testing.T) {
	cfg := resorank.DefaultConfig()
	cfg.Limit = 1
	svc := NewService(seededStore(t), resorank.NewScorer(cfg), nil)

	resp, err := svc.Search(context.Background(), "markets")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "u2", resp.Results[0].URL)
}

func TestSearch_InvalidConfig(t *testing.T) {
	cfg := resorank.DefaultConfig()
	cfg.K1 = -1
	svc := NewService(seededStore(t), resorank.NewScorer(cfg), quietLogger(&bytes.Buffer{}))

	_, err := svc.Search(context.Background(), "football")
	assert.ErrorIs(t, err, resorank.ErrInvalidConfig)
}

type failingStore struct{ store.Storer }

func (failingStore) ListArticles(int) ([]*store.Article, error) {
	return nil, errors.New("disk on fire")
}

func TestSearch_StoreError(t *testing.T) {
	svc := NewService(failingStore{store.NewMemStore()}, resorank.NewScorer(resorank.DefaultConfig()), quietLogger(&bytes.Buffer{}))

	_, err := svc.Search(context.Background(), "football")
	assert.ErrorContains(t, err, "disk on fire")
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(seededStore(t), resorank.NewScorer(resorank.DefaultConfig()), nil)
	_, err := svc.Search(ctx, "football")
	assert.ErrorIs(t, err, context.Canceled)
}
