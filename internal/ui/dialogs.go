package ui

import (
	"net/url"

	"github.com/atomicstack/burrow/internal/dialog"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/atomicstack/burrow/internal/message"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	noticeNoFilename = "No filename given!"
	confirmClear     = "Do you want to delete the history?"
)

// openDialog shows f, replacing any open dialog of the same kind.
func (m *Model) openDialog(f dialog.Form, target *url.URL) {
	m.closeMenubar()
	m.filtering = false
	address := ""
	if target != nil {
		address = target.String()
	}
	if m.dialogs.Open(f) {
		events.Dialog.Replace(string(f.Kind()))
	}
	events.Dialog.Open(string(f.Kind()), address)
}

// handleActiveDialog routes key presses to the topmost dialog. Everything
// else falls through to the regular handlers so backend results keep flowing
// while a dialog is open.
func (m *Model) handleActiveDialog(msg tea.Msg) (bool, tea.Cmd) {
	top := m.dialogs.Top()
	if top == nil {
		return false, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	if key.Type == tea.KeyCtrlC {
		return true, m.quit()
	}
	cmd, done, cancel := top.Update(key)
	switch {
	case cancel:
		m.dialogs.Close(top)
		return true, cmd
	case done:
		m.dialogs.Close(top)
		return true, tea.Batch(cmd, m.submitDialog(top))
	}
	return true, cmd
}

// submitDialog turns a finished form into the follow-up message.
func (m *Model) submitDialog(f dialog.Form) tea.Cmd {
	switch form := f.(type) {
	case *dialog.URLForm:
		return m.post(message.OpenURL{Raw: form.Value()})
	case *dialog.QueryForm:
		return m.post(message.OpenQuery{URL: form.Target(), Query: form.Value()})
	case *dialog.SaveAsForm:
		if form.Value() == "" {
			events.Dialog.Cancel(string(dialog.KindSaveAs), events.DialogReasonEmpty)
			m.openDialog(dialog.NewNotice("Save page", noticeNoFilename), form.Target())
			return nil
		}
		return m.send(message.SavePageAs{Filename: form.Value()})
	case *dialog.BookmarkForm:
		return m.send(message.AddBookmark{URL: form.Target(), Title: form.Name(), Tags: form.Tags()})
	case *dialog.ConfirmForm:
		return m.send(message.ClearHistory{})
	}
	return nil
}

func (m *Model) handleShowURLDialog(message.Inbound) tea.Cmd {
	initial := ""
	if m.current != nil {
		initial = m.current.String()
	}
	m.openDialog(dialog.NewURLForm(initial), nil)
	return nil
}

func (m *Model) handleShowQueryDialog(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.ShowQueryDialog)
	if !ok || msg.URL == nil {
		return nil
	}
	m.openDialog(dialog.NewQueryForm(msg.Title, msg.URL), msg.URL)
	return nil
}

func (m *Model) handleShowSaveAsDialog(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.ShowSaveAsDialog)
	if !ok {
		return nil
	}
	m.openDialog(dialog.NewSaveAsForm(msg.URL), msg.URL)
	return nil
}

func (m *Model) handleShowAddBookmarkDialog(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.ShowAddBookmarkDialog)
	if !ok || msg.URL == nil {
		return nil
	}
	m.openDialog(dialog.NewBookmarkForm(msg.URL), msg.URL)
	return nil
}

func (m *Model) confirmClearHistory() {
	m.openDialog(dialog.NewConfirmForm("Clear history", confirmClear), nil)
}

func (m *Model) showNotice(title string, lines ...string) {
	m.openDialog(dialog.NewNotice(title, lines...), nil)
}
