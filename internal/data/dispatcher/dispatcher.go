package dispatcher

import (
	"github.com/atomicstack/burrow/internal/menu"
	"github.com/atomicstack/burrow/internal/message"
	"github.com/atomicstack/burrow/internal/state"
)

type Result struct {
	Handled          bool
	HistoryUpdated   bool
	BookmarksUpdated bool
}

// Dispatcher applies registry messages to the menubar and the session stores.
type Dispatcher struct {
	registry  *menu.Registry
	history   state.HistoryStore
	bookmarks state.BookmarkStore
}

func New(r *menu.Registry, h state.HistoryStore, b state.BookmarkStore) *Dispatcher {
	return &Dispatcher{registry: r, history: h, bookmarks: b}
}

func (d *Dispatcher) Handle(msg message.Inbound) Result {
	var res Result
	switch m := msg.(type) {
	case message.HistoryAdded:
		d.history.Append(m.Entry)
		d.registry.AddHistory(menu.Link{Title: m.Entry.Title, URL: m.Entry.URL})
		res.HistoryUpdated = true
	case message.HistoryCleared:
		d.history.Clear()
		d.registry.ClearHistory()
		res.HistoryUpdated = true
	case message.BookmarkAdded:
		d.bookmarks.Append(m.Bookmark)
		d.registry.AddBookmark(menu.Link{Title: m.Bookmark.Title, URL: m.Bookmark.URL})
		res.BookmarksUpdated = true
	case message.BookmarksReloaded:
		d.bookmarks.SetEntries(m.Bookmarks)
		links := make([]menu.Link, 0, len(m.Bookmarks))
		for _, b := range m.Bookmarks {
			links = append(links, menu.Link{Title: b.Title, URL: b.URL})
		}
		d.registry.ReplaceBookmarks(links)
		res.BookmarksUpdated = true
	default:
		return res
	}
	res.Handled = true
	return res
}
