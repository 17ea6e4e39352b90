package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/burrow/internal/format/table"
	"github.com/atomicstack/burrow/internal/gopher"
	"github.com/atomicstack/burrow/internal/logging"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/atomicstack/burrow/internal/menu"
	"github.com/atomicstack/burrow/internal/message"
	tea "github.com/charmbracelet/bubbletea"
)

// menubarState tracks the open dropdown. menu is -1 while the bar is closed.
type menubarState struct {
	menu int
	item int
}

func (s menubarState) open() bool {
	return s.menu >= 0
}

// firstSelectable returns the index of the first item that is not a
// separator, or -1.
func firstSelectable(items []menu.Item) int {
	for i, item := range items {
		if item.Selectable() {
			return i
		}
	}
	return -1
}

// step moves from idx by delta, wrapping and skipping separators.
func step(items []menu.Item, idx, delta int) int {
	n := len(items)
	if n == 0 {
		return -1
	}
	for i := 1; i <= n; i++ {
		next := ((idx+delta*i)%n + n) % n
		if items[next].Selectable() {
			return next
		}
	}
	return idx
}

// clamp keeps the highlighted item valid after dynamic items change.
func (s *menubarState) clamp(r *menu.Registry) {
	if !s.open() {
		return
	}
	menus := r.Menus()
	if s.menu >= len(menus) {
		s.menu = len(menus) - 1
	}
	items := menus[s.menu].Items()
	if s.item >= len(items) || s.item < 0 || !items[s.item].Selectable() {
		s.item = firstSelectable(items)
	}
}

func (m *Model) openMenubar(idx int) {
	menus := m.registry.Menus()
	if len(menus) == 0 {
		return
	}
	idx = ((idx % len(menus)) + len(menus)) % len(menus)
	m.menubar.menu = idx
	m.menubar.item = firstSelectable(menus[idx].Items())
	m.filtering = false
	events.Menubar.Open(menus[idx].ID)
}

func (m *Model) closeMenubar() {
	if !m.menubar.open() {
		return
	}
	m.menubar = menubarState{menu: -1}
	events.Menubar.Close()
}

func (m *Model) activeMenu() *menu.Menu {
	if !m.menubar.open() {
		return nil
	}
	menus := m.registry.Menus()
	if m.menubar.menu >= len(menus) {
		return nil
	}
	return menus[m.menubar.menu]
}

func (m *Model) handleMenubarKey(msg tea.KeyMsg) tea.Cmd {
	current := m.activeMenu()
	if current == nil {
		m.closeMenubar()
		return nil
	}
	items := current.Items()
	switch msg.String() {
	case "esc", "f10":
		m.closeMenubar()
	case "left", "h":
		m.openMenubar(m.menubar.menu - 1)
	case "right", "l", "tab":
		m.openMenubar(m.menubar.menu + 1)
	case "up", "k":
		m.menubar.item = step(items, m.menubar.item, -1)
	case "down", "j":
		m.menubar.item = step(items, m.menubar.item, 1)
	case "enter", " ":
		if m.menubar.item < 0 || m.menubar.item >= len(items) {
			return nil
		}
		item := items[m.menubar.item]
		m.closeMenubar()
		return m.activateMenuItem(current.ID, item)
	case "ctrl+c", "q":
		return m.quit()
	}
	return nil
}

// activateMenuItem runs the action behind a menubar entry.
func (m *Model) activateMenuItem(menuID string, item menu.Item) tea.Cmd {
	if !item.Selectable() {
		return nil
	}
	events.Menubar.Activate(menuID, item.ID, item.Label)
	switch item.Kind {
	case menu.KindLink:
		return m.post(message.OpenURL{Raw: item.URL})
	case menu.KindSearch:
		u, err := gopher.NormalizeAddress(item.URL)
		if err != nil {
			logging.Error(err)
			m.setStatus(fmt.Sprintf(statusInvalidURLFmt, err))
			return nil
		}
		return m.post(message.ShowQueryDialog{URL: u, Title: "Enter search term:"})
	}
	switch item.ID {
	case menu.ActionOpenURL:
		return m.post(message.ShowURLDialog{})
	case menu.ActionSaveAs:
		return m.send(message.RequestSaveAsDialog{})
	case menu.ActionSettings:
		m.showNotice("Settings", m.settingsLines()...)
	case menu.ActionQuit:
		return m.quit()
	case menu.ActionShowHistory:
		m.showNotice("History", m.historyLines()...)
	case menu.ActionClearHistory:
		m.confirmClearHistory()
	case menu.ActionEditBookmarks:
		m.showNotice("Bookmarks", m.bookmarkLines()...)
	case menu.ActionAddBookmark:
		return m.send(message.RequestAddBookmarkDialog{})
	case menu.ActionHelpKeys:
		m.showNotice("Keys", m.keyHelpLines()...)
	case menu.ActionHelpAbout:
		m.showNotice("About", aboutLines...)
	}
	return nil
}

var aboutLines = []string{
	"burrow: a terminal gopher client.",
	"",
	"Browse gopher menus, read text files, search index",
	"servers and download binaries from the terminal.",
}

func (m *Model) settingsLines() []string {
	return table.Format([][]string{
		{"Download directory", orNone(m.downloadDir)},
		{"Home page", orNone(m.settings.Homepage)},
		{"Debug", strconv.FormatBool(m.settings.Debug)},
	}, nil)
}

func (m *Model) historyLines() []string {
	entries := m.history.Entries()
	if len(entries) == 0 {
		return []string{"No history yet."}
	}
	rows := make([][]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, []string{strconv.Itoa(len(entries) - i), e.Title, e.URL})
	}
	return table.FormatWithHeader([]string{"#", "Title", "Address"}, rows, []table.Alignment{table.AlignRight})
}

func (m *Model) bookmarkLines() []string {
	entries := m.bookmarks.Entries()
	lines := []string{}
	if len(entries) == 0 {
		lines = append(lines, "No bookmarks yet.")
	} else {
		rows := make([][]string, 0, len(entries))
		for _, b := range entries {
			rows = append(rows, []string{b.Title, b.URL, joinTags(b.Tags)})
		}
		lines = append(lines, table.FormatWithHeader([]string{"Title", "Address", "Tags"}, rows, nil)...)
	}
	if m.bookmarksPath != "" {
		lines = append(lines, "", "Edit "+m.bookmarksPath+" to change bookmarks.")
	}
	return lines
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func orNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}
