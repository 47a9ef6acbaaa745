package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// pathPrompt is the bubbletea model for a single-line path input. A
// placeholder value is accepted as-is when the user presses enter without
// typing anything.
type pathPrompt struct {
	title       string
	placeholder string
	value       string
	done        bool
	aborted     bool
}

func newPathPrompt(title, placeholder string) pathPrompt {
	return pathPrompt{title: title, placeholder: placeholder}
}

func (m pathPrompt) Init() tea.Cmd {
	return nil
}

func (m pathPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.value == "" {
			m.value = m.placeholder
		}
		if m.value != "" {
			m.done = true
			return m, tea.Quit
		}
	case tea.KeyBackspace:
		if m.value != "" {
			runes := []rune(m.value)
			m.value = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.value += string(key.Runes)
	}
	return m, nil
}

func (m pathPrompt) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")

	display := m.value
	if display == "" && m.placeholder != "" {
		display = StyleDim.Render(m.placeholder)
	} else {
		display = StyleValue.Render(display)
	}
	b.WriteString(StyleHighlight.Render("> ") + display + StyleDim.Render("█"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("enter: accept  esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

// promptForPath runs an interactive prompt and returns the entered path.
// It fails when the user aborts with esc or ctrl+c.
func promptForPath(title, placeholder string) (string, error) {
	final, err := tea.NewProgram(newPathPrompt(title, placeholder)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(pathPrompt)
	if !ok || m.aborted || !m.done {
		return "", fmt.Errorf("prompt cancelled")
	}
	return m.value, nil
}
