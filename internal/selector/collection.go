package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/marq/internal/search"
)

// createPrefix marks the synthetic "create new collection" choice. It is
// stripped before the name is returned.
const createPrefix = "+ create "

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	createStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// collectionChoice is one row in the collection picker.
type collectionChoice struct {
	name   string
	create bool
}

// CollectionPicker is a searchable list of collection labels with an
// optional synthetic "create new" row built from the current input.
type CollectionPicker struct {
	input     textinput.Model
	all       []string
	choices   []collectionChoice
	createNew bool
	cursor    int
	selected  *collectionChoice
	cancelled bool
}

// NewCollectionPicker creates a CollectionPicker over the given labels.
func NewCollectionPicker(collections []string, createNew bool) CollectionPicker {
	input := textinput.New()
	input.Placeholder = "type to search"
	input.Prompt = "> "
	input.Focus()

	p := CollectionPicker{
		input:     input,
		all:       collections,
		createNew: createNew,
	}
	p.refilter()
	return p
}

// refilter rebuilds the choice list from the current input.
func (p *CollectionPicker) refilter() {
	query := p.input.Value()
	results := search.FuzzyFilterCollections(p.all, query)

	choices := make([]collectionChoice, 0, len(results)+1)
	exact := false
	for _, r := range results {
		if r.Name == query {
			exact = true
		}
		choices = append(choices, collectionChoice{name: r.Name})
	}

	// A non-empty query that names no existing collection becomes a
	// creatable choice.
	if p.createNew && query != "" && !exact {
		choices = append(choices, collectionChoice{name: query, create: true})
	}

	p.choices = choices
	if p.cursor >= len(choices) {
		p.cursor = len(choices) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Init implements tea.Model.
func (p CollectionPicker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p CollectionPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			// Empty selections are rejected: stay open
			if len(p.choices) == 0 {
				return p, nil
			}
			choice := p.choices[p.cursor]
			p.selected = &choice
			return p, tea.Quit

		case tea.KeyDown, tea.KeyCtrlN:
			if p.cursor < len(p.choices)-1 {
				p.cursor++
			}
			return p, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.refilter()
	return p, cmd
}

// View implements tea.Model.
func (p CollectionPicker) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render("Collection"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.choices) == 0 {
		b.WriteString(footerStyle.Render("no matching collections"))
		b.WriteString("\n")
	}

	for i, choice := range p.choices {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		label := choice.name
		if choice.create {
			label = createPrefix + fmt.Sprintf("%q", choice.name)
			if i != p.cursor {
				style = createStyle
			}
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓: move  Enter: select  Esc: cancel"))

	return b.String()
}

// Selection returns the chosen collection name, or "" if cancelled. The
// create prefix is never part of the returned name.
func (p CollectionPicker) Selection() string {
	if p.cancelled || p.selected == nil {
		return ""
	}
	return p.selected.name
}

// Cancelled returns true if the user cancelled the selection.
func (p CollectionPicker) Cancelled() bool {
	return p.cancelled
}
