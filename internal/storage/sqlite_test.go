package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nikbrunner/marq/internal/model"
	"github.com/nikbrunner/marq/internal/storage"
)

func newSQLiteStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	tmpDir := t.TempDir()
	s, err := storage.NewSQLiteStorage(filepath.Join(tmpDir, "bookmarks.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_SaveAndLoad(t *testing.T) {
	s := newSQLiteStorage(t)

	store := &model.Store{
		Bookmarks: []model.Bookmark{
			{
				ID:         "b1",
				Hash:       "h1",
				URL:        "https://example.com",
				Collection: "work",
				Title:      "Example",
				CreatedAt:  time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:         "b2",
				Hash:       "h2",
				URL:        "https://go.dev",
				Collection: "fun",
				Title:      "Go",
				CreatedAt:  time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
			},
		},
	}

	if err := s.Save(store); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if len(loaded.Bookmarks) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(loaded.Bookmarks))
	}

	b := loaded.Bookmarks[0]
	if b.ID != "b1" || b.Hash != "h1" || b.Collection != "work" {
		t.Errorf("first bookmark mismatch: %+v", b)
	}
	if !b.CreatedAt.Equal(store.Bookmarks[0].CreatedAt) {
		t.Errorf("CreatedAt mismatch: got %v, want %v", b.CreatedAt, store.Bookmarks[0].CreatedAt)
	}
}

func TestSQLiteStorage_LoadEmpty(t *testing.T) {
	s := newSQLiteStorage(t)

	store, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(store.Bookmarks) != 0 {
		t.Errorf("expected empty store, got %d bookmarks", len(store.Bookmarks))
	}
}

func TestSQLiteStorage_SaveReplacesAll(t *testing.T) {
	s := newSQLiteStorage(t)

	first := &model.Store{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Hash: "h1", URL: "https://example.com/1", Collection: "work", CreatedAt: time.Now()},
			{ID: "b2", Hash: "h2", URL: "https://example.com/2", Collection: "work", CreatedAt: time.Now()},
		},
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	// Whole-list semantics: a second save fully replaces the first
	second := &model.Store{
		Bookmarks: []model.Bookmark{
			{ID: "b3", Hash: "h3", URL: "https://example.com/3", Collection: "fun", CreatedAt: time.Now()},
		},
	}
	if err := s.Save(second); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(loaded.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark after replace, got %d", len(loaded.Bookmarks))
	}
	if loaded.Bookmarks[0].ID != "b3" {
		t.Errorf("expected b3, got %s", loaded.Bookmarks[0].ID)
	}
}

func TestSQLiteStorage_Reopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "bookmarks.db")

	s, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	store := &model.Store{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Hash: "h1", URL: "https://example.com", Collection: "work", CreatedAt: time.Now()},
		},
	}
	if err := s.Save(store); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	s.Close()

	// Reopen and verify migration is idempotent and data survives
	s2, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer s2.Close()

	loaded, err := s2.Load()
	if err != nil {
		t.Fatalf("failed to load after reopen: %v", err)
	}
	if len(loaded.Bookmarks) != 1 {
		t.Errorf("expected 1 bookmark after reopen, got %d", len(loaded.Bookmarks))
	}
}
