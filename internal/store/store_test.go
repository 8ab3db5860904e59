package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Store Factory for Testing Both Implementations
// =============================================================================

// storeFactory creates a store for testing.
// We test both MemStore and SQLiteStore with the same test suite.
type storeFactory func() (Storer, error)

func memStoreFactory() (Storer, error) {
	return NewMemStore(), nil
}

// storeFactories is extended by sqlite_store_test.go on platforms with SQLite.
var storeFactories = map[string]storeFactory{
	"MemStore": memStoreFactory,
}

// runTestsForAllStores runs a test function against every store implementation.
func runTestsForAllStores(t *testing.T, testName string, testFn func(t *testing.T, store Storer)) {
	for name, factory := range storeFactories {
		t.Run(name+"/"+testName, func(t *testing.T) {
			store, err := factory()
			require.NoError(t, err, "Failed to create store")
			defer store.Close()
			testFn(t, store)
		})
	}
}

func newArticle(id, title string, published int64) *Article {
	now := time.Now().UnixMilli()
	return &Article{
		ID:          id,
		Source:      "Wire",
		Title:       title,
		Description: "desc " + id,
		Content:     "content " + id,
		URL:         "https://example.com/" + id,
		PublishedAt: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestStoreCreation(t *testing.T) {
	runTestsForAllStores(t, "Creation", func(t *testing.T, store Storer) {
		require.NotNil(t, store, "Store should not be nil")
		count, err := store.CountArticles()
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestArticleUpsertAndGet(t *testing.T) {
	runTestsForAllStores(t, "UpsertAndGet", func(t *testing.T, store Storer) {
		article := newArticle("a1", "Markets rally", 1000)
		require.NoError(t, store.UpsertArticle(article))

		got, err := store.GetArticle("a1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *article, *got)

		// Mutating the returned copy does not touch the store
		got.Title = "changed"
		again, err := store.GetArticle("a1")
		require.NoError(t, err)
		assert.Equal(t, "Markets rally", again.Title)
	})
}

func TestArticleUpsertKeepsCreatedAt(t *testing.T) {
	runTestsForAllStores(t, "KeepsCreatedAt", func(t *testing.T, store Storer) {
		article := newArticle("a1", "v1", 1000)
		article.CreatedAt = 111
		require.NoError(t, store.UpsertArticle(article))

		update := newArticle("a1", "v2", 2000)
		update.CreatedAt = 999
		require.NoError(t, store.UpsertArticle(update))

		got, err := store.GetArticle("a1")
		require.NoError(t, err)
		assert.Equal(t, "v2", got.Title)
		assert.Equal(t, int64(2000), got.PublishedAt)
		assert.Equal(t, int64(111), got.CreatedAt)

		count, err := store.CountArticles()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestArticleGetMissing(t *testing.T) {
	runTestsForAllStores(t, "GetMissing", func(t *testing.T, store Storer) {
		got, err := store.GetArticle("nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestArticleDelete(t *testing.T) {
	runTestsForAllStores(t, "Delete", func(t *testing.T, store Storer) {
		require.NoError(t, store.UpsertArticle(newArticle("a1", "one", 1)))
		require.NoError(t, store.DeleteArticle("a1"))

		got, err := store.GetArticle("a1")
		require.NoError(t, err)
		assert.Nil(t, got)

		// deleting twice is fine
		require.NoError(t, store.DeleteArticle("a1"))
	})
}

func TestArticleListOrderAndLimit(t *testing.T) {
	runTestsForAllStores(t, "ListOrder", func(t *testing.T, store Storer) {
		require.NoError(t, store.UpsertArticle(newArticle("b", "old", 100)))
		require.NoError(t, store.UpsertArticle(newArticle("c", "new", 300)))
		require.NoError(t, store.UpsertArticle(newArticle("a", "mid", 200)))
		require.NoError(t, store.UpsertArticle(newArticle("d", "mid too", 200)))

		all, err := store.ListArticles(0)
		require.NoError(t, err)
		ids := make([]string, len(all))
		for i, a := range all {
			ids[i] = a.ID
		}
		assert.Equal(t, []string{"c", "a", "d", "b"}, ids)

		top, err := store.ListArticles(2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "c", top[0].ID)
		assert.Equal(t, "a", top[1].ID)
	})
}

func TestArticleText(t *testing.T) {
	a := &Article{Title: "Title", Description: "Desc", Content: "Body"}
	assert.Equal(t, "Title Desc Body", a.Text())

	empty := &Article{Title: "Only"}
	assert.Equal(t, "Only  ", empty.Text())
}
