package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/marq/internal/model"
)

// maxTitleWidth bounds bookmark titles in the tree.
const maxTitleWidth = 60

var (
	rootStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	collectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// TreeOptions controls tree rendering.
type TreeOptions struct {
	Hyperlinks bool // wrap titles in OSC 8 hyperlinks
	Plain      bool // skip lipgloss styling (non-terminal output, tests)
}

// RenderTree writes all bookmarks grouped by collection as a tree diagram:
// one branch per collection, one leaf per truncated title.
func RenderTree(w io.Writer, store *model.Store, opts TreeOptions) {
	style := func(s lipgloss.Style, text string) string {
		if opts.Plain {
			return text
		}
		return s.Render(text)
	}

	fmt.Fprintln(w, style(rootStyle, "bookmarks"))

	collections := store.Collections()
	for ci, collection := range collections {
		lastCollection := ci == len(collections)-1

		branch := "├── "
		childPrefix := "│   "
		if lastCollection {
			branch = "└── "
			childPrefix = "    "
		}

		fmt.Fprintf(w, "%s%s\n", style(branchStyle, branch), style(collectionStyle, collection))

		bookmarks := store.CollectionBookmarks(collection)
		for bi, bookmark := range bookmarks {
			leaf := "├── "
			if bi == len(bookmarks)-1 {
				leaf = "└── "
			}

			title := bookmark.Title
			if title == "" {
				title = bookmark.URL
			}
			title = Truncate(title, maxTitleWidth)
			if opts.Hyperlinks {
				title = Hyperlink(bookmark.URL, title)
			}

			fmt.Fprintf(w, "%s%s\n", style(branchStyle, childPrefix+leaf), title)
		}
	}
}
