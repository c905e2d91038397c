package selector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(t *testing.T, p CollectionPicker, s string) CollectionPicker {
	t.Helper()
	for _, r := range s {
		newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		p = newModel.(CollectionPicker)
	}
	return p
}

func TestCollectionPicker_AllChoicesForEmptyInput(t *testing.T) {
	p := NewCollectionPicker([]string{"work", "fun", "reading"}, false)

	if len(p.choices) != 3 {
		t.Errorf("expected all 3 collections with empty input, got %d", len(p.choices))
	}
}

func TestCollectionPicker_FiltersAsTyped(t *testing.T) {
	p := NewCollectionPicker([]string{"work", "fun"}, false)
	p = typeString(t, p, "wo")

	if len(p.choices) != 1 {
		t.Fatalf("expected 1 choice for 'wo', got %d", len(p.choices))
	}
	if p.choices[0].name != "work" {
		t.Errorf("expected 'work', got %q", p.choices[0].name)
	}
}

func TestCollectionPicker_SelectExisting(t *testing.T) {
	p := NewCollectionPicker([]string{"work", "fun"}, false)

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = newModel.(CollectionPicker)
	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(CollectionPicker)

	if p.Cancelled() {
		t.Fatal("unexpected cancellation")
	}
	if p.Selection() != "fun" {
		t.Errorf("expected 'fun', got %q", p.Selection())
	}
}

func TestCollectionPicker_CreateNewChoice(t *testing.T) {
	p := NewCollectionPicker([]string{"work"}, true)
	p = typeString(t, p, "hobby")

	// No existing match, so the only choice is the synthetic create row
	if len(p.choices) != 1 {
		t.Fatalf("expected 1 choice, got %d", len(p.choices))
	}
	if !p.choices[0].create {
		t.Fatal("expected a create choice")
	}

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(CollectionPicker)

	// The returned name is the raw input, prefix stripped
	if p.Selection() != "hobby" {
		t.Errorf("expected new collection 'hobby', got %q", p.Selection())
	}
}

func TestCollectionPicker_NoCreateChoiceForExactMatch(t *testing.T) {
	p := NewCollectionPicker([]string{"work"}, true)
	p = typeString(t, p, "work")

	for _, c := range p.choices {
		if c.create {
			t.Error("exact match must not produce a create choice")
		}
	}
}

func TestCollectionPicker_NoCreateChoiceWhenDisabled(t *testing.T) {
	p := NewCollectionPicker([]string{"work"}, false)
	p = typeString(t, p, "hobby")

	if len(p.choices) != 0 {
		t.Errorf("expected no choices for unknown name without createNew, got %d", len(p.choices))
	}

	// Enter on an empty list is rejected: the picker stays open
	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(CollectionPicker)
	if p.Selection() != "" {
		t.Errorf("expected empty selection to be rejected, got %q", p.Selection())
	}
}

func TestCollectionPicker_Cancel(t *testing.T) {
	p := NewCollectionPicker([]string{"work"}, false)

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = newModel.(CollectionPicker)

	if !p.Cancelled() {
		t.Error("expected cancellation on esc")
	}
	if p.Selection() != "" {
		t.Errorf("expected empty selection after cancel, got %q", p.Selection())
	}
}

func TestCollectionPicker_CursorClampedAfterFilter(t *testing.T) {
	p := NewCollectionPicker([]string{"alpha", "beta", "gamma"}, false)

	// Move to the last row, then filter down to one
	for i := 0; i < 2; i++ {
		newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
		p = newModel.(CollectionPicker)
	}
	p = typeString(t, p, "alpha")

	if p.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", p.cursor)
	}
}
