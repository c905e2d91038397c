package selector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/marq/internal/model"
)

func testBookmarks() []model.Bookmark {
	return []model.Bookmark{
		{ID: "b1", Title: "GitHub", URL: "https://github.com", Collection: "work"},
		{ID: "b2", Title: "GitLab", URL: "https://gitlab.com", Collection: "work"},
	}
}

func TestBookmarkPicker_InitialState(t *testing.T) {
	p := NewBookmarkPicker(testBookmarks())

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestBookmarkPicker_Navigate(t *testing.T) {
	p := NewBookmarkPicker(testBookmarks())

	newModel, _ := p.Update(keyRunes("j"))
	p = newModel.(BookmarkPicker)
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after j, got %d", p.cursor)
	}

	newModel, _ = p.Update(keyRunes("k"))
	p = newModel.(BookmarkPicker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after k, got %d", p.cursor)
	}

	// Bounds: k at the top stays put
	newModel, _ = p.Update(keyRunes("k"))
	p = newModel.(BookmarkPicker)
	if p.cursor != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", p.cursor)
	}
}

func TestBookmarkPicker_Select(t *testing.T) {
	p := NewBookmarkPicker(testBookmarks())

	newModel, _ := p.Update(keyRunes("j"))
	p = newModel.(BookmarkPicker)
	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(BookmarkPicker)

	selected := p.Selected()
	if selected == nil {
		t.Fatal("expected a selection")
	}
	if selected.ID != "b2" {
		t.Errorf("expected b2, got %s", selected.ID)
	}
}

func TestBookmarkPicker_FirstPositionalMatchForDuplicateTitles(t *testing.T) {
	bookmarks := []model.Bookmark{
		{ID: "b1", Title: "Docs", URL: "https://example.com/a"},
		{ID: "b2", Title: "Docs", URL: "https://example.com/b"},
	}
	p := NewBookmarkPicker(bookmarks)

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(BookmarkPicker)

	selected := p.Selected()
	if selected == nil {
		t.Fatal("expected a selection")
	}
	if selected.ID != "b1" {
		t.Errorf("expected the first positional match, got %s", selected.ID)
	}
}

func TestBookmarkPicker_Cancel(t *testing.T) {
	p := NewBookmarkPicker(testBookmarks())

	newModel, _ := p.Update(keyRunes("q"))
	p = newModel.(BookmarkPicker)

	if !p.Cancelled() {
		t.Error("expected cancellation on q")
	}
	if p.Selected() != nil {
		t.Error("expected nil selection after cancel")
	}
}

func TestBookmarkPicker_EnterOnEmptyListRejected(t *testing.T) {
	p := NewBookmarkPicker(nil)

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(BookmarkPicker)

	if p.Selected() != nil {
		t.Error("expected no selection from an empty list")
	}
}
