package selector

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/marq/internal/model"
	"github.com/nikbrunner/marq/internal/urlutil"
)

// TUI implements Provider by running a bubbletea program per prompt.
type TUI struct{}

// NewTUI creates the terminal-backed provider.
func NewTUI() *TUI {
	return &TUI{}
}

// SelectCollection implements Provider.
func (t *TUI) SelectCollection(collections []string, createNew bool) (string, error) {
	picker := NewCollectionPicker(collections, createNew)
	final, err := tea.NewProgram(picker).Run()
	if err != nil {
		return "", err
	}

	result := final.(CollectionPicker)
	if result.Cancelled() || result.Selection() == "" {
		return "", ErrCancelled
	}
	return result.Selection(), nil
}

// SelectBookmark implements Provider.
func (t *TUI) SelectBookmark(bookmarks []model.Bookmark) (*model.Bookmark, error) {
	picker := NewBookmarkPicker(bookmarks)
	final, err := tea.NewProgram(picker).Run()
	if err != nil {
		return nil, err
	}

	result := final.(BookmarkPicker)
	selected := result.Selected()
	if selected == nil {
		return nil, ErrCancelled
	}
	return selected, nil
}

// InputTitle implements Provider.
func (t *TUI) InputTitle(suggested string) (string, error) {
	prompt := NewTextPrompt("Title", suggested, func(value string) string {
		if value == "" {
			return "title cannot be empty"
		}
		return ""
	})
	return t.runPrompt(prompt)
}

// InputURL implements Provider.
func (t *TUI) InputURL() (string, error) {
	prompt := NewTextPrompt("URL", "", func(value string) string {
		if !urlutil.IsValid(value) {
			return "not a valid URL"
		}
		return ""
	})
	return t.runPrompt(prompt)
}

func (t *TUI) runPrompt(prompt TextPrompt) (string, error) {
	final, err := tea.NewProgram(prompt).Run()
	if err != nil {
		return "", err
	}

	result := final.(TextPrompt)
	if result.Cancelled() {
		return "", ErrCancelled
	}
	return result.Value(), nil
}
