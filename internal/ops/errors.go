package ops

import (
	"errors"
	"fmt"
)

// ErrNoBookmarks indicates an interactive command was run against an empty
// store.
var ErrNoBookmarks = errors.New("no bookmarks stored yet")

// InvalidURLError indicates the given string is not a usable URL.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q", e.URL)
}

// DuplicateError indicates the URL is already bookmarked. It names the
// collection holding the existing bookmark.
type DuplicateError struct {
	URL        string
	Collection string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("already bookmarked in collection %q", e.Collection)
}
