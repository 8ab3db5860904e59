// Package store provides the article library that supplies documents for ranking.
package store

import "strings"

// Article is a news article as supplied by a search provider or an import dump.
type Article struct {
	ID          string `json:"id"`
	Source      string `json:"source,omitempty"`
	Author      string `json:"author,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt int64  `json:"publishedAt"` // unix millis
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// Text is the raw document text handed to the ranker: title, description
// and content joined by single spaces.
func (a *Article) Text() string {
	return strings.Join([]string{a.Title, a.Description, a.Content}, " ")
}
