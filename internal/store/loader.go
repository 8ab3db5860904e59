package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hack-pad/hackpadfs"
)

// rawArticle mirrors the article objects of news search APIs.
type rawArticle struct {
	ID     string `json:"id"`
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

type rawDump struct {
	Articles []rawArticle `json:"articles"`
}

// LoadArticles reads a JSON article dump from fsys. The file holds either
// {"articles": [...]} or a bare array of articles.
func LoadArticles(fsys hackpadfs.FS, name string) ([]*Article, error) {
	content, err := hackpadfs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return ParseArticles(content)
}

// ParseArticles decodes a JSON article dump.
func ParseArticles(content []byte) ([]*Article, error) {
	var raws []rawArticle
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("failed to decode article array: %w", err)
		}
	} else {
		var dump rawDump
		if err := json.Unmarshal(trimmed, &dump); err != nil {
			return nil, fmt.Errorf("failed to decode article dump: %w", err)
		}
		raws = dump.Articles
	}

	articles := make([]*Article, 0, len(raws))
	for i, raw := range raws {
		article := &Article{
			ID:          raw.ID,
			Source:      raw.Source.Name,
			Author:      raw.Author,
			Title:       raw.Title,
			Description: raw.Description,
			Content:     raw.Content,
			URL:         raw.URL,
		}
		if raw.PublishedAt != "" {
			ts, err := time.Parse(time.RFC3339, raw.PublishedAt)
			if err != nil {
				return nil, fmt.Errorf("article %d: invalid publishedAt %q: %w", i, raw.PublishedAt, err)
			}
			article.PublishedAt = ts.UnixMilli()
		}
		if article.ID == "" {
			article.ID = ArticleID(article)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// ArticleID derives a stable ID: the URL when present, otherwise a
// name-based UUID of the title.
func ArticleID(a *Article) string {
	if a.URL != "" {
		return a.URL
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(a.Title)).String()
}

// ImportArticles upserts articles into s and returns how many were written.
func ImportArticles(ctx context.Context, s Storer, articles []*Article) (int, error) {
	now := time.Now().UnixMilli()
	for i, article := range articles {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if article.ID == "" {
			article.ID = ArticleID(article)
		}
		if article.CreatedAt == 0 {
			article.CreatedAt = now
		}
		article.UpdatedAt = now
		if err := s.UpsertArticle(article); err != nil {
			return i, err
		}
	}
	return len(articles), nil
}
