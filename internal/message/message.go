// Package message defines the two one-directional contracts between the UI
// and the fetch backend. Inbound values flow into the UI queue; Outbound
// values are requests the UI sends to the backend.
package message

import (
	"net/url"

	"github.com/atomicstack/burrow/internal/gopher"
)

// Inbound is delivered to the UI message pump.
type Inbound interface {
	inbound()
}

// Outbound is a request for the backend.
type Outbound interface {
	outbound()
}

// HistoryEntry records one successful navigation.
type HistoryEntry struct {
	Title string
	URL   string
}

// Bookmark is a user-saved address.
type Bookmark struct {
	ID    string
	Title string
	URL   string
	Tags  []string
}

// ContentReady carries a fetched page for display.
type ContentReady struct {
	URL     *url.URL
	Content string
	Kind    gopher.Kind
}

// FetchFailed reports a navigation that could not complete.
type FetchFailed struct {
	URL *url.URL
	Err error
}

// BinaryWritten reports a finished download.
type BinaryWritten struct {
	Filename string
	Bytes    int64
}

// PageSaved reports the current page written to disk.
type PageSaved struct {
	URL      *url.URL
	Kind     gopher.Kind
	Filename string
}

// BookmarkAdded appends one bookmark to the Bookmarks menu.
type BookmarkAdded struct {
	Bookmark Bookmark
}

// BookmarksReloaded replaces every dynamic bookmark item.
type BookmarksReloaded struct {
	Bookmarks []Bookmark
}

// HistoryAdded appends one item to the History menu.
type HistoryAdded struct {
	Entry HistoryEntry
}

// HistoryCleared drops every dynamic History menu item.
type HistoryCleared struct{}

// OpenURL opens an address typed by the user or stored in a menu item.
type OpenURL struct {
	Raw string
}

// OpenTyped opens an address whose presentation kind is already known.
type OpenTyped struct {
	URL  *url.URL
	Kind gopher.Kind
}

// OpenQuery submits a search to an index server.
type OpenQuery struct {
	URL   *url.URL
	Query string
}

type ShowURLDialog struct{}

// ShowQueryDialog asks for a search term. An empty Title uses the default
// prompt.
type ShowQueryDialog struct {
	URL   *url.URL
	Title string
}

type ShowSaveAsDialog struct {
	URL *url.URL
}

type ShowAddBookmarkDialog struct {
	URL *url.URL
}

// Status replaces the status line text.
type Status struct {
	Text string
}

func (ContentReady) inbound()          {}
func (FetchFailed) inbound()           {}
func (BinaryWritten) inbound()         {}
func (PageSaved) inbound()             {}
func (BookmarkAdded) inbound()         {}
func (BookmarksReloaded) inbound()     {}
func (HistoryAdded) inbound()          {}
func (HistoryCleared) inbound()        {}
func (OpenURL) inbound()               {}
func (OpenTyped) inbound()             {}
func (OpenQuery) inbound()             {}
func (ShowURLDialog) inbound()         {}
func (ShowQueryDialog) inbound()       {}
func (ShowSaveAsDialog) inbound()      {}
func (ShowAddBookmarkDialog) inbound() {}
func (Status) inbound()                {}

// FetchURL asks the backend to load an address for display.
type FetchURL struct {
	URL   *url.URL
	Kind  gopher.Kind
	Query string
}

// FetchBinary asks the backend to download an address to Path.
type FetchBinary struct {
	URL  *url.URL
	Path string
}

type NavigateBack struct{}

type AddBookmark struct {
	URL   *url.URL
	Title string
	Tags  string
}

type ClearHistory struct{}

// RequestSaveAsDialog asks the backend to answer with ShowSaveAsDialog for
// the page currently displayed.
type RequestSaveAsDialog struct{}

// RequestAddBookmarkDialog asks the backend to answer with
// ShowAddBookmarkDialog for the page currently displayed.
type RequestAddBookmarkDialog struct{}

// SavePageAs writes the current page to Filename in the download directory.
type SavePageAs struct {
	Filename string
}

// OpenExternal hands an address to the system opener.
type OpenExternal struct {
	Target string
}

func (FetchURL) outbound()                 {}
func (FetchBinary) outbound()              {}
func (NavigateBack) outbound()             {}
func (AddBookmark) outbound()              {}
func (ClearHistory) outbound()             {}
func (RequestSaveAsDialog) outbound()      {}
func (RequestAddBookmarkDialog) outbound() {}
func (SavePageAs) outbound()               {}
func (OpenExternal) outbound()             {}
