package search

import (
	"github.com/nikbrunner/marq/internal/model"
	"github.com/sahilm/fuzzy"
)

// CollectionResult represents a fuzzy search match against a collection label.
type CollectionResult struct {
	Name           string
	MatchedIndexes []int
	Score          int
}

// FuzzySearchCollections searches collection labels using fuzzy matching.
// An empty query returns every collection unfiltered; otherwise results are
// sorted by match score (best first).
func FuzzySearchCollections(store *model.Store, query string) []CollectionResult {
	collections := store.Collections()
	return FuzzyFilterCollections(collections, query)
}

// FuzzyFilterCollections applies the same matching to an explicit label list.
// The selector uses it to re-rank as the user types.
func FuzzyFilterCollections(collections []string, query string) []CollectionResult {
	if query == "" {
		results := make([]CollectionResult, len(collections))
		for i, name := range collections {
			results[i] = CollectionResult{Name: name}
		}
		return results
	}

	matches := fuzzy.Find(query, collections)

	results := make([]CollectionResult, len(matches))
	for i, m := range matches {
		results[i] = CollectionResult{
			Name:           collections[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// bookmarkTitles implements fuzzy.Source for a bookmark slice.
type bookmarkTitles []*model.Bookmark

func (bt bookmarkTitles) String(i int) string {
	return bt[i].Title
}

func (bt bookmarkTitles) Len() int {
	return len(bt)
}

// BookmarkResult represents a fuzzy search match against a bookmark title.
type BookmarkResult struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// FuzzySearchBookmarks searches all bookmarks by title using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchBookmarks(store *model.Store, query string) []BookmarkResult {
	if query == "" {
		return nil
	}

	bookmarks := make(bookmarkTitles, len(store.Bookmarks))
	for i := range store.Bookmarks {
		bookmarks[i] = &store.Bookmarks[i]
	}

	matches := fuzzy.FindFrom(query, bookmarks)

	results := make([]BookmarkResult, len(matches))
	for i, m := range matches {
		results[i] = BookmarkResult{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
