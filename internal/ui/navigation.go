package ui

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/atomicstack/burrow/internal/gopher"
	"github.com/atomicstack/burrow/internal/logging"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/atomicstack/burrow/internal/message"
	uistate "github.com/atomicstack/burrow/internal/ui/state"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.menubar.open() {
		return m.handleMenubarKey(keyMsg)
	}
	if m.filtering {
		if handled, cmd := m.handleFilterKey(keyMsg); handled {
			return cmd
		}
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Menubar):
		m.openMenubar(0)
		return nil
	case key.Matches(keyMsg, m.keys.OpenURL):
		return m.post(message.ShowURLDialog{})
	case key.Matches(keyMsg, m.keys.Back):
		events.UI.Back()
		return m.send(message.NavigateBack{})
	case key.Matches(keyMsg, m.keys.SaveAs):
		return m.send(message.RequestSaveAsDialog{})
	case key.Matches(keyMsg, m.keys.Bookmark):
		return m.send(message.RequestAddBookmarkDialog{})
	case key.Matches(keyMsg, m.keys.Copy):
		m.copyAddress()
		return nil
	case key.Matches(keyMsg, m.keys.Pane):
		events.UI.Pane(m.router.Toggle().String())
		return nil
	}

	if m.router.Active() == uistate.PaneText {
		return m.router.UpdateText(keyMsg)
	}
	return m.handleListingKey(keyMsg)
}

func (m *Model) handleListingKey(msg tea.KeyMsg) tea.Cmd {
	current := m.router.Listing
	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
	case key.Matches(msg, m.keys.Up):
		current.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		current.MoveCursorDown()
	case key.Matches(msg, m.keys.PageUp):
		current.MoveCursorPageUp(m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		current.MoveCursorPageDown(m.listHeight())
	case key.Matches(msg, m.keys.Home):
		current.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		current.MoveCursorEnd()
	case key.Matches(msg, m.keys.NextLink):
		current.NextNavigable(1)
	case key.Matches(msg, m.keys.PrevLink):
		current.NextNavigable(-1)
	case key.Matches(msg, m.keys.Select):
		m.filtering = false
		return m.selectCurrent()
	default:
		return nil
	}
	m.syncViewport(current)
	return nil
}

func (m *Model) selectCurrent() tea.Cmd {
	current := m.router.Listing
	item, ok := current.Current()
	if !ok {
		return nil
	}
	return m.activateEntry(current.Cursor, item.Entry)
}

// activateEntry applies the selection rules for one listing entry.
func (m *Model) activateEntry(index int, entry gopher.Entry) tea.Cmd {
	address := ""
	if entry.URL != nil {
		address = entry.URL.String()
	}
	events.UI.Select(index, entry.Type.String(), entry.Label, address)
	if entry.URL == nil || !entry.Type.Navigable() {
		return nil
	}
	switch entry.Type {
	case gopher.IndexServer, gopher.CsoServer:
		return m.post(message.ShowQueryDialog{URL: entry.URL})
	case gopher.Telnet, gopher.Tn3270:
		return m.send(message.OpenExternal{Target: "telnet://" + gopher.HostPort(entry.URL)})
	case gopher.Html:
		if target, ok := htmlTarget(entry.Selector); ok {
			return m.send(message.OpenExternal{Target: target})
		}
		return m.post(message.OpenTyped{URL: entry.URL, Kind: gopher.KindText})
	}
	return m.post(message.OpenTyped{URL: entry.URL, Kind: gopher.KindForURL(entry.URL)})
}

// htmlTarget extracts the web address from a "URL:" selector.
func htmlTarget(selector string) (string, bool) {
	s := strings.TrimPrefix(selector, "/")
	if !strings.HasPrefix(s, "URL:") {
		return "", false
	}
	target := strings.TrimSpace(strings.TrimPrefix(s, "URL:"))
	return target, target != ""
}

func downloadPath(dir string, u *url.URL) string {
	return filepath.Join(dir, gopher.FilenameFromURL(u))
}

func (m *Model) copyAddress() {
	if m.current == nil {
		m.setStatus("Nothing to copy")
		return
	}
	address := m.current.String()
	if err := clipboard.WriteAll(address); err != nil {
		logging.Error(err)
		m.setStatus(fmt.Sprintf("Could not copy address: %v", err))
		return
	}
	m.setInfo("Copied " + address)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.listHeight())
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.dialogs.Top() != nil || m.menubar.open() {
		return nil
	}
	if m.router.Active() == uistate.PaneText {
		return m.router.UpdateText(ev)
	}
	current := m.router.Listing
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		for i := 0; i < 3; i++ {
			current.MoveCursorUp()
		}
	case tea.MouseButtonWheelDown:
		for i := 0; i < 3; i++ {
			current.MoveCursorDown()
		}
	default:
		return nil
	}
	m.syncViewport(current)
	return nil
}
