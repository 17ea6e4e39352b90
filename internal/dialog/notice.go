package dialog

import (
	"strings"

	"github.com/atomicstack/burrow/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmForm asks a yes/no question.
type ConfirmForm struct {
	title    string
	question string
}

func NewConfirmForm(title, question string) *ConfirmForm {
	return &ConfirmForm{title: title, question: question}
}

func (f *ConfirmForm) Kind() Kind    { return KindConfirm }
func (f *ConfirmForm) Title() string { return f.title }
func (f *ConfirmForm) Body() string  { return f.question }
func (f *ConfirmForm) Help() string  { return "y/Enter to confirm. n/Esc to cancel." }
func (f *ConfirmForm) Error() string { return "" }

func (f *ConfirmForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, false
	}
	switch key.String() {
	case "y", "Y", "enter":
		events.Dialog.Submit(string(KindConfirm), f.title)
		return nil, true, false
	case "n", "N", "esc":
		events.Dialog.Cancel(string(KindConfirm), events.DialogReasonEscape)
		return nil, false, true
	}
	return nil, false, false
}

// Notice shows read-only text until dismissed.
type Notice struct {
	title string
	lines []string
}

func NewNotice(title string, lines ...string) *Notice {
	return &Notice{title: title, lines: lines}
}

func (n *Notice) Kind() Kind    { return KindNotice }
func (n *Notice) Title() string { return n.title }
func (n *Notice) Body() string  { return strings.Join(n.lines, "\n") }
func (n *Notice) Help() string  { return "Enter to close." }
func (n *Notice) Error() string { return "" }

func (n *Notice) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, false
	}
	switch key.String() {
	case "enter", "esc", "q", " ":
		return nil, true, false
	}
	return nil, false, false
}
