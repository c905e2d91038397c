package model

import "github.com/nikbrunner/marq/internal/urlutil"

// Store holds all bookmarks. It serializes as a single "items" key so the
// persisted file stays a flat list of records.
type Store struct {
	Bookmarks []Bookmark `json:"items"`
}

// NewStore creates an empty Store with an initialized slice.
func NewStore() *Store {
	return &Store{Bookmarks: []Bookmark{}}
}

// GetBookmark finds a bookmark whose hash matches the normalized form of
// url, or nil if none is stored. Two URL spellings that normalize
// identically resolve to the same bookmark.
func (s *Store) GetBookmark(url string) *Bookmark {
	hash, err := urlutil.Hash(url)
	if err != nil {
		return nil
	}
	for i := range s.Bookmarks {
		if s.Bookmarks[i].Hash == hash {
			return &s.Bookmarks[i]
		}
	}
	return nil
}

// GetBookmarkByID finds a bookmark by ID, returns nil if not found.
func (s *Store) GetBookmarkByID(id string) *Bookmark {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return &s.Bookmarks[i]
		}
	}
	return nil
}

// AddBookmark appends a bookmark to the store.
func (s *Store) AddBookmark(b Bookmark) {
	s.Bookmarks = append(s.Bookmarks, b)
}

// RemoveBookmark deletes every bookmark whose URL equals b's URL.
func (s *Store) RemoveBookmark(b Bookmark) {
	kept := s.Bookmarks[:0]
	for _, existing := range s.Bookmarks {
		if existing.URL != b.URL {
			kept = append(kept, existing)
		}
	}
	s.Bookmarks = kept
}

// Collections returns the distinct collection labels across all bookmarks,
// in first-seen order.
func (s *Store) Collections() []string {
	seen := make(map[string]bool)
	var result []string
	for _, b := range s.Bookmarks {
		if !seen[b.Collection] {
			seen[b.Collection] = true
			result = append(result, b.Collection)
		}
	}
	return result
}

// CollectionBookmarks returns the bookmarks in the given collection, in
// stored order.
func (s *Store) CollectionBookmarks(collection string) []Bookmark {
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if b.Collection == collection {
			result = append(result, b)
		}
	}
	return result
}
