package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/burrow/internal/gopher"
	"github.com/atomicstack/burrow/internal/logging"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/atomicstack/burrow/internal/message"
	"github.com/atomicstack/burrow/internal/ui/command"
	uistate "github.com/atomicstack/burrow/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusLoading        = "Loading ..."
	statusNoDownloadDir  = "Could not find download dir"
	statusInvalidURLFmt  = "Invalid URL: %v"
	statusDownloadedFmt  = "File downloaded: %s (%d bytes)"
	statusPageSavedFmt   = "Page saved as '%s'."
	statusFetchFailedFmt = "Could not load %s: %v"
	statusBackendBusy    = "Backend busy, try again"
)

// send hands a request to the backend. A busy backend drops the request with
// a status; without a backend there is nothing left to do, so the UI stops
// with a diagnostic.
func (m *Model) send(req message.Outbound) tea.Cmd {
	err := m.bus.Send(req)
	if errors.Is(err, command.ErrBackendBusy) {
		m.stopLoading()
		m.setStatus(statusBackendBusy)
		return nil
	}
	if err != nil {
		m.fatal = fmt.Errorf("backend unavailable: %w", err)
		logging.Error(m.fatal)
		return m.quit()
	}
	return nil
}

func (m *Model) setStatus(text string) {
	m.status = text
	events.UI.Status(text)
}

func (m *Model) startLoading() {
	m.loading = true
	m.setStatus(statusLoading)
}

func (m *Model) stopLoading() {
	m.loading = false
}

func (m *Model) handleContentReady(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.ContentReady)
	if !ok {
		return nil
	}
	m.stopLoading()
	m.filtering = false
	m.current = msg.URL
	m.currentKind = msg.Kind
	address := ""
	if msg.URL != nil {
		address = msg.URL.String()
	}
	switch msg.Kind {
	case gopher.KindListing:
		listing := gopher.ParseListing(msg.Content)
		m.router.ShowListing(listing.Title, uistate.ItemsFromListing(listing))
		title := listing.Title
		if title == "" {
			title = address
		}
		m.router.SetTitle(title)
		m.router.ActivateListing()
	case gopher.KindText:
		m.router.ShowText(gopher.TextLines(msg.Content))
		m.router.SetTitle(address)
		m.router.ActivateText()
	}
	events.UI.Pane(m.router.Active().String())
	m.setStatus(address)
	return nil
}

func (m *Model) handleFetchFailed(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.FetchFailed)
	if !ok {
		return nil
	}
	m.stopLoading()
	address := ""
	if msg.URL != nil {
		address = msg.URL.String()
	}
	m.setStatus(fmt.Sprintf(statusFetchFailedFmt, address, msg.Err))
	return nil
}

func (m *Model) handleBinaryWritten(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.BinaryWritten)
	if !ok {
		return nil
	}
	m.stopLoading()
	m.setStatus(fmt.Sprintf(statusDownloadedFmt, msg.Filename, msg.Bytes))
	return nil
}

func (m *Model) handlePageSaved(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.PageSaved)
	if !ok {
		return nil
	}
	m.setStatus(fmt.Sprintf(statusPageSavedFmt, msg.Filename))
	return nil
}

func (m *Model) handleStatus(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.Status)
	if !ok {
		return nil
	}
	m.setStatus(msg.Text)
	return nil
}

func (m *Model) handleRegistryMsg(in message.Inbound) tea.Cmd {
	res := m.dispatcher.Handle(in)
	if !res.Handled {
		return nil
	}
	dynamic := 0
	switch msg := in.(type) {
	case message.HistoryAdded:
		dynamic = len(m.registry.History().Dynamic())
		events.Registry.History(msg.Entry.Title, msg.Entry.URL, dynamic)
	case message.HistoryCleared:
		events.Registry.ClearHistory()
	case message.BookmarkAdded:
		dynamic = len(m.registry.Bookmarks().Dynamic())
		events.Registry.Bookmark(msg.Bookmark.Title, msg.Bookmark.URL, dynamic)
	case message.BookmarksReloaded:
		events.Registry.ReloadBookmarks(len(msg.Bookmarks))
	}
	m.menubar.clamp(m.registry)
	return nil
}

func (m *Model) handleOpenURL(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.OpenURL)
	if !ok {
		return nil
	}
	u, err := gopher.NormalizeAddress(msg.Raw)
	if err != nil {
		events.UI.InvalidURL(msg.Raw, err)
		m.setStatus(fmt.Sprintf(statusInvalidURLFmt, err))
		return nil
	}
	return m.open(message.OpenTyped{URL: u, Kind: gopher.KindForURL(u)})
}

func (m *Model) handleOpenTyped(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.OpenTyped)
	if !ok {
		return nil
	}
	return m.open(msg)
}

func (m *Model) open(msg message.OpenTyped) tea.Cmd {
	if msg.URL == nil {
		return nil
	}
	events.UI.Open(msg.URL.String(), msg.Kind.String())
	if msg.Kind == gopher.KindBinary {
		if m.downloadDir == "" {
			m.setStatus(statusNoDownloadDir)
			return nil
		}
		m.startLoading()
		return m.send(message.FetchBinary{URL: msg.URL, Path: downloadPath(m.downloadDir, msg.URL)})
	}
	m.startLoading()
	return m.send(message.FetchURL{URL: msg.URL, Kind: msg.Kind})
}

func (m *Model) handleOpenQuery(in message.Inbound) tea.Cmd {
	msg, ok := in.(message.OpenQuery)
	if !ok || msg.URL == nil {
		return nil
	}
	events.UI.Open(msg.URL.String(), gopher.KindListing.String())
	m.startLoading()
	return m.send(message.FetchURL{URL: msg.URL, Kind: gopher.KindListing, Query: msg.Query})
}
