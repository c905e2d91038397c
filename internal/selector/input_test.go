package selector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typePrompt(t *testing.T, p TextPrompt, s string) TextPrompt {
	t.Helper()
	for _, r := range s {
		newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		p = newModel.(TextPrompt)
	}
	return p
}

func rejectEmpty(value string) string {
	if value == "" {
		return "cannot be empty"
	}
	return ""
}

func TestTextPrompt_DefaultAccepted(t *testing.T) {
	p := NewTextPrompt("Title", "Scraped Title", rejectEmpty)

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(TextPrompt)

	if p.Value() != "Scraped Title" {
		t.Errorf("expected the suggested default, got %q", p.Value())
	}
}

func TestTextPrompt_EmptyRejected(t *testing.T) {
	p := NewTextPrompt("Title", "", rejectEmpty)

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(TextPrompt)

	// Rejected: prompt stays open with a message, no value submitted
	if p.Value() != "" {
		t.Errorf("expected no value, got %q", p.Value())
	}
	if p.invalid == "" {
		t.Error("expected a validation message")
	}

	// Typing a value clears the way
	p = typePrompt(t, p, "My Title")
	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(TextPrompt)

	if p.Value() != "My Title" {
		t.Errorf("expected typed value, got %q", p.Value())
	}
}

func TestTextPrompt_Cancel(t *testing.T) {
	p := NewTextPrompt("URL", "", nil)

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	p = newModel.(TextPrompt)

	if !p.Cancelled() {
		t.Error("expected cancellation on ctrl+c")
	}
	if p.Value() != "" {
		t.Errorf("expected empty value after cancel, got %q", p.Value())
	}
}

func TestTextPrompt_TrimsWhitespace(t *testing.T) {
	p := NewTextPrompt("Title", "  padded  ", nil)

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(TextPrompt)

	if p.Value() != "padded" {
		t.Errorf("expected trimmed value, got %q", p.Value())
	}
}
