package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPathPromptTyping(t *testing.T) {
	var m tea.Model = newPathPrompt("Input", "")

	for _, r := range "data.csv" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	p := m.(pathPrompt)
	if !p.done {
		t.Fatal("prompt should be done after enter")
	}
	if p.value != "data.csv" {
		t.Errorf("value = %q, want data.csv", p.value)
	}
}

func TestPathPromptBackspace(t *testing.T) {
	var m tea.Model = newPathPrompt("Input", "")

	m, _ = m.Update(keyRunes("ab"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if got := m.(pathPrompt).value; got != "a" {
		t.Errorf("value = %q, want a", got)
	}
}

func TestPathPromptPlaceholderAccepted(t *testing.T) {
	var m tea.Model = newPathPrompt("Output", "labels.pdf")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	p := m.(pathPrompt)
	if !p.done {
		t.Fatal("prompt should accept the placeholder on enter")
	}
	if p.value != "labels.pdf" {
		t.Errorf("value = %q, want labels.pdf", p.value)
	}
}

func TestPathPromptEmptyRejected(t *testing.T) {
	var m tea.Model = newPathPrompt("Input", "")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.(pathPrompt).done {
		t.Error("prompt should not complete with an empty value and no placeholder")
	}
}

func TestPathPromptAbort(t *testing.T) {
	var m tea.Model = newPathPrompt("Input", "")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !m.(pathPrompt).aborted {
		t.Error("prompt should be aborted after esc")
	}
}
