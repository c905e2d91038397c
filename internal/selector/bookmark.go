package selector

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/marq/internal/model"
)

var urlStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("244")).
	Italic(true)

// BookmarkPicker is a simple list for choosing a bookmark within a
// collection. Duplicate titles are told apart by position only; the first
// positional match wins.
type BookmarkPicker struct {
	bookmarks []model.Bookmark
	cursor    int
	selected  bool
	cancelled bool
	copied    bool
}

// NewBookmarkPicker creates a BookmarkPicker over the given bookmarks.
func NewBookmarkPicker(bookmarks []model.Bookmark) BookmarkPicker {
	return BookmarkPicker{bookmarks: bookmarks}
}

// Init implements tea.Model.
func (p BookmarkPicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p BookmarkPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.bookmarks) == 0 {
				return p, nil
			}
			p.selected = true
			return p, tea.Quit

		case tea.KeyDown:
			if p.cursor < len(p.bookmarks)-1 {
				p.cursor++
			}
			return p, nil

		case tea.KeyUp:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}

		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				if p.cursor < len(p.bookmarks)-1 {
					p.cursor++
				}
			case "k":
				if p.cursor > 0 {
					p.cursor--
				}
			case "y":
				if p.cursor < len(p.bookmarks) {
					_ = clipboard.WriteAll(p.bookmarks[p.cursor].URL)
					p.copied = true
				}
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p BookmarkPicker) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render("Bookmark"))
	b.WriteString("\n\n")

	for i, bookmark := range p.bookmarks {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title := bookmark.Title
		if title == "" {
			title = bookmark.URL
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(title))
		b.WriteString("\n   ")
		b.WriteString(urlStyle.Render(bookmark.URL))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := "j/k: move  Enter: select  y: copy URL  q/Esc: cancel"
	if p.copied {
		footer = "copied URL  " + footer
	}
	b.WriteString(footerStyle.Render(footer))

	return b.String()
}

// Selected returns the chosen bookmark, or nil if cancelled.
func (p BookmarkPicker) Selected() *model.Bookmark {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.bookmarks) {
		return &p.bookmarks[p.cursor]
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p BookmarkPicker) Cancelled() bool {
	return p.cancelled
}
