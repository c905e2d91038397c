package selector

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var invalidStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("203"))

// TextPrompt asks for a single line of input. An optional validate func
// keeps the prompt open with a message until the answer passes.
type TextPrompt struct {
	label     string
	input     textinput.Model
	validate  func(string) string // returns a message, "" = valid
	invalid   string
	submitted bool
	cancelled bool
}

// NewTextPrompt creates a TextPrompt with an initial (default) value.
func NewTextPrompt(label, initial string, validate func(string) string) TextPrompt {
	input := textinput.New()
	input.Prompt = "> "
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()

	return TextPrompt{
		label:    label,
		input:    input,
		validate: validate,
	}
}

// Init implements tea.Model.
func (p TextPrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p TextPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			value := strings.TrimSpace(p.input.Value())
			if p.validate != nil {
				if msg := p.validate(value); msg != "" {
					p.invalid = msg
					return p, nil
				}
			}
			p.invalid = ""
			p.submitted = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p TextPrompt) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render(p.label))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")

	if p.invalid != "" {
		b.WriteString(invalidStyle.Render(p.invalid))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("Enter: confirm  Esc: cancel"))

	return b.String()
}

// Value returns the submitted value, or "" if cancelled.
func (p TextPrompt) Value() string {
	if p.cancelled || !p.submitted {
		return ""
	}
	return strings.TrimSpace(p.input.Value())
}

// Cancelled returns true if the user cancelled the prompt.
func (p TextPrompt) Cancelled() bool {
	return p.cancelled
}
