// Package ops implements the bookmark commands on top of the storage and
// selector abstractions. Nothing here touches cobra or the terminal
// directly, so every flow can be driven by a scripted provider in tests.
package ops

import (
	"io"

	"github.com/nikbrunner/marq/internal/cli"
	"github.com/nikbrunner/marq/internal/meta"
	"github.com/nikbrunner/marq/internal/model"
	"github.com/nikbrunner/marq/internal/selector"
	"github.com/nikbrunner/marq/internal/storage"
	"github.com/nikbrunner/marq/internal/urlutil"
)

// MetaFetcher retrieves page metadata for a URL.
type MetaFetcher interface {
	Fetch(url string) meta.Metadata
}

// AddParams holds the collaborators and input for Add.
type AddParams struct {
	Storage  storage.Storage
	Provider selector.Provider
	Fetcher  MetaFetcher
	Config   *storage.Config

	// URL is the command argument; when empty the provider prompts for one.
	URL string
}

// Add stores a new bookmark. The collection prompt and the metadata fetch
// run concurrently and are joined before the bookmark is built; the user
// confirms or edits the scraped title before anything is persisted.
func Add(params AddParams) (*model.Bookmark, error) {
	url := params.URL
	if url == "" {
		answered, err := params.Provider.InputURL()
		if err != nil {
			return nil, err
		}
		url = answered
	}

	if !urlutil.IsValid(url) {
		return nil, &InvalidURLError{URL: url}
	}

	store, err := params.Storage.Load()
	if err != nil {
		return nil, err
	}

	if existing := store.GetBookmark(url); existing != nil {
		return nil, &DuplicateError{URL: url, Collection: existing.Collection}
	}

	// Fetch metadata while the user picks a collection. The channel is
	// buffered so an abandoned fetch cannot leak its goroutine.
	metaCh := make(chan meta.Metadata, 1)
	go func() {
		metaCh <- params.Fetcher.Fetch(url)
	}()

	collections := store.Collections()
	if len(collections) == 0 && params.Config != nil && params.Config.DefaultCollection != "" {
		collections = []string{params.Config.DefaultCollection}
	}

	collection, err := params.Provider.SelectCollection(collections, true)
	if err != nil {
		return nil, err
	}

	md := <-metaCh

	title, err := params.Provider.InputTitle(md.Title)
	if err != nil {
		return nil, err
	}

	bookmark, err := model.NewBookmark(model.NewBookmarkParams{
		URL:        url,
		Collection: collection,
		Title:      title,
	})
	if err != nil {
		return nil, err
	}

	store.AddBookmark(bookmark)
	if err := params.Storage.Save(store); err != nil {
		return nil, err
	}

	return &bookmark, nil
}

// selectStored walks the shared collection → bookmark selection used by
// Remove and Open.
func selectStored(st storage.Storage, provider selector.Provider) (*model.Store, *model.Bookmark, error) {
	store, err := st.Load()
	if err != nil {
		return nil, nil, err
	}

	collections := store.Collections()
	if len(collections) == 0 {
		return nil, nil, ErrNoBookmarks
	}

	collection, err := provider.SelectCollection(collections, false)
	if err != nil {
		return nil, nil, err
	}

	bookmark, err := provider.SelectBookmark(store.CollectionBookmarks(collection))
	if err != nil {
		return nil, nil, err
	}

	return store, bookmark, nil
}

// Remove interactively deletes one bookmark and persists the rest.
func Remove(st storage.Storage, provider selector.Provider) (*model.Bookmark, error) {
	store, bookmark, err := selectStored(st, provider)
	if err != nil {
		return nil, err
	}

	removed := *bookmark
	store.RemoveBookmark(removed)
	if err := st.Save(store); err != nil {
		return nil, err
	}

	return &removed, nil
}

// Open interactively picks a bookmark and hands its URL to openURL, which
// launches the default handler.
func Open(st storage.Storage, provider selector.Provider, openURL func(string) error) (*model.Bookmark, error) {
	_, bookmark, err := selectStored(st, provider)
	if err != nil {
		return nil, err
	}

	if err := openURL(bookmark.URL); err != nil {
		return nil, err
	}

	return bookmark, nil
}

// List renders all bookmarks grouped by collection as a tree.
func List(st storage.Storage, w io.Writer, opts cli.TreeOptions) error {
	store, err := st.Load()
	if err != nil {
		return err
	}

	cli.RenderTree(w, store, opts)
	return nil
}
