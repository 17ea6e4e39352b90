package ui

import (
	"unicode"

	"github.com/atomicstack/burrow/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleFilterKey edits the listing filter. Navigation keys are not consumed
// so the cursor keeps moving through the filtered rows.
func (m *Model) handleFilterKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.router.Listing
	switch msg.String() {
	case "esc":
		m.filtering = false
		if current.Filter != "" {
			current.SetFilter("", 0)
			events.Filter.Cleared()
			m.syncViewport(current)
		}
		return true, nil
	case "ctrl+u":
		if current.Filter == "" {
			return true, nil
		}
		current.SetFilter("", 0)
		events.Filter.Cleared()
		m.syncViewport(current)
		return true, nil
	case "ctrl+w":
		if current.DeleteFilterWordBackward() {
			events.Filter.WordBackspace(current.Filter)
			m.syncViewport(current)
		}
		return true, nil
	case "ctrl+a":
		current.MoveFilterCursorStart()
		return true, nil
	case "ctrl+e":
		current.MoveFilterCursorEnd()
		return true, nil
	case "alt+b":
		current.MoveFilterCursorWordBackward()
		return true, nil
	case "alt+f":
		current.MoveFilterCursorWordForward()
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.removeFilterRune()
		return true, nil
	case tea.KeyLeft:
		current.MoveFilterCursorRuneBackward()
		return true, nil
	case tea.KeyRight:
		current.MoveFilterCursorRuneForward()
		return true, nil
	case tea.KeySpace:
		m.appendToFilter(" ")
		return true, nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		m.appendToFilter(string(msg.Runes))
		return true, nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	current := m.router.Listing
	if !current.InsertFilterText(text) {
		return false
	}
	events.Filter.Append(current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.router.Listing
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	events.Filter.Backspace(current.Filter)
	m.syncViewport(current)
	return true
}

// filterPrompt renders the filter line with a block caret.
func (m *Model) filterPrompt() string {
	current := m.router.Listing
	prompt := "/"
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	render := func(value string) string {
		if styles.Filter == nil || value == "" {
			return value
		}
		return styles.Filter.Render(value)
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	caretStyle := styles.Filter
	if caretStyle == nil {
		return prompt + string(runes[:pos]) + caret + after
	}
	return prompt + render(string(runes[:pos])) + caretStyle.Reverse(true).Render(caret) + render(after)
}
