package model

import (
	"time"

	"github.com/nikbrunner/marq/internal/urlutil"
)

// Bookmark represents a saved URL with metadata.
type Bookmark struct {
	ID         string    `json:"id"`
	Hash       string    `json:"hash"`
	URL        string    `json:"url"`
	Collection string    `json:"collection"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	URL        string
	Collection string
	Title      string
}

// NewBookmark creates a Bookmark with generated UUID, content hash and
// timestamp. The hash is derived from the URL's normalized form, so it
// doubles as the dedup key.
func NewBookmark(params NewBookmarkParams) (Bookmark, error) {
	hash, err := urlutil.Hash(params.URL)
	if err != nil {
		return Bookmark{}, err
	}

	return Bookmark{
		ID:         generateUUID(),
		Hash:       hash,
		URL:        params.URL,
		Collection: params.Collection,
		Title:      params.Title,
		CreatedAt:  time.Now(),
	}, nil
}
