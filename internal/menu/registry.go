package menu

import "strings"

// HistoryLimit bounds the dynamic items of the History menu.
const HistoryLimit = 10

// Menu identifiers in menubar order.
const (
	FileMenu      = "file"
	HistoryMenu   = "history"
	BookmarksMenu = "bookmarks"
	SearchMenu    = "search"
	HelpMenu      = "help"
)

// Search endpoints offered by the Search menu.
const (
	VeronicaURL    = "gopher://gopher.floodgap.com:70/7/v2/vs"
	GopherpediaURL = "gopher://gopherpedia.com:70/7/lookup"
	MovieDBURL     = "gopher://jan.bio:70/7/cgi-bin/gmdb.py"
)

// Link is a title/address pair used to populate dynamic items.
type Link struct {
	Title string
	URL   string
}

// Registry owns the menubar and its dynamic History and Bookmarks items.
type Registry struct {
	menus []*Menu
	byID  map[string]*Menu
}

// BuildRegistry constructs the menubar with its static items.
func BuildRegistry() *Registry {
	menus := []*Menu{
		{
			ID:    FileMenu,
			Title: "File",
			static: []Item{
				{ID: ActionOpenURL, Label: "Open URL..."},
				separator("file:1"),
				{ID: ActionSaveAs, Label: "Save page as..."},
				{ID: ActionSettings, Label: "Settings..."},
				separator("file:2"),
				{ID: ActionQuit, Label: "Quit"},
			},
		},
		{
			ID:    HistoryMenu,
			Title: "History",
			Bound: HistoryLimit,
			static: []Item{
				{ID: ActionShowHistory, Label: "Show all history..."},
				{ID: ActionClearHistory, Label: "Clear history"},
				separator("history"),
			},
		},
		{
			ID:    BookmarksMenu,
			Title: "Bookmarks",
			static: []Item{
				{ID: ActionEditBookmarks, Label: "Edit..."},
				{ID: ActionAddBookmark, Label: "Add bookmark"},
				separator("bookmarks"),
			},
		},
		{
			ID:    SearchMenu,
			Title: "Search",
			static: []Item{
				{ID: "search:veronica", Label: "Veronica/2...", URL: VeronicaURL, Kind: KindSearch},
				{ID: "search:gopherpedia", Label: "Gopherpedia...", URL: GopherpediaURL, Kind: KindSearch},
				{ID: "search:gmdb", Label: "Gopher Movie Database...", URL: MovieDBURL, Kind: KindSearch},
			},
		},
		{
			ID:    HelpMenu,
			Title: "Help",
			static: []Item{
				{ID: ActionHelpKeys, Label: "Keys"},
				{ID: ActionHelpAbout, Label: "About"},
			},
		},
	}
	byID := make(map[string]*Menu, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}
	return &Registry{menus: menus, byID: byID}
}

// Menus returns the top-level menus in display order.
func (r *Registry) Menus() []*Menu {
	return r.menus
}

// Find locates a menu by ID.
func (r *Registry) Find(id string) (*Menu, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// History returns the History menu.
func (r *Registry) History() *Menu {
	return r.byID[HistoryMenu]
}

// Bookmarks returns the Bookmarks menu.
func (r *Registry) Bookmarks() *Menu {
	return r.byID[BookmarksMenu]
}

// AddHistory inserts an entry at the top of the dynamic History items,
// evicting the oldest once more than HistoryLimit are present.
func (r *Registry) AddHistory(link Link) {
	r.History().insert(historyPrefix, linkItem(link))
}

// ClearHistory drops every dynamic History item.
func (r *Registry) ClearHistory() {
	r.History().clear()
}

// AddBookmark inserts a bookmark at the top of the dynamic Bookmarks items.
func (r *Registry) AddBookmark(link Link) {
	r.Bookmarks().insert(bookmarkPrefix, linkItem(link))
}

// ReplaceBookmarks rebuilds the dynamic Bookmarks items. links are given
// oldest first, matching the order they were added.
func (r *Registry) ReplaceBookmarks(links []Link) {
	menu := r.Bookmarks()
	menu.clear()
	for _, link := range links {
		menu.insert(bookmarkPrefix, linkItem(link))
	}
}

func linkItem(link Link) Item {
	label := strings.TrimSpace(link.Title)
	if label == "" {
		label = link.URL
	}
	return Item{Label: label, URL: link.URL, Kind: KindLink}
}
