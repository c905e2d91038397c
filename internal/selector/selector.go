// Package selector holds the interactive prompt flows. Commands depend on
// the Provider interface only, so their logic can be tested with a scripted
// provider instead of a terminal.
package selector

import (
	"errors"

	"github.com/nikbrunner/marq/internal/model"
)

// ErrCancelled indicates the user aborted a prompt (esc, q or ctrl+c).
var ErrCancelled = errors.New("cancelled")

// Provider supplies the interactive choices a command needs.
type Provider interface {
	// SelectCollection presents a searchable list of collection labels.
	// When createNew is set, the user's free-text input doubles as a
	// "create new collection" choice; otherwise only an existing label
	// can be returned. Empty selections are rejected at the prompt.
	SelectCollection(collections []string, createNew bool) (string, error)

	// SelectBookmark presents the bookmarks of one collection by title and
	// returns the chosen record. Identical titles are told apart only by
	// list position.
	SelectBookmark(bookmarks []model.Bookmark) (*model.Bookmark, error)

	// InputTitle prompts for a title with the scraped title as default.
	// Empty input is rejected at the prompt.
	InputTitle(suggested string) (string, error)

	// InputURL prompts for a URL when the command argument was omitted.
	InputURL() (string, error)
}
