package menu

import "strconv"

// Kind classifies menubar items.
type Kind int

const (
	// KindAction items trigger a fixed application action keyed by ID.
	KindAction Kind = iota
	// KindLink items open their stored URL.
	KindLink
	// KindSearch items open the query dialog bound to their URL.
	KindSearch
	// KindSeparator items are drawn as a rule and cannot be selected.
	KindSeparator
)

// Item represents a selectable menubar entry.
type Item struct {
	ID    string
	Label string
	URL   string
	Kind  Kind
}

// Selectable reports whether the item can be activated.
func (i Item) Selectable() bool {
	return i.Kind != KindSeparator
}

// Action identifiers for the static menubar entries.
const (
	ActionOpenURL       = "file:open-url"
	ActionSaveAs        = "file:save-as"
	ActionSettings      = "file:settings"
	ActionQuit          = "file:quit"
	ActionShowHistory   = "history:show-all"
	ActionClearHistory  = "history:clear"
	ActionEditBookmarks = "bookmarks:edit"
	ActionAddBookmark   = "bookmarks:add"
	ActionHelpKeys      = "help:keys"
	ActionHelpAbout     = "help:about"
)

const (
	separatorPrefix = "separator:"
	historyPrefix   = "history:entry:"
	bookmarkPrefix  = "bookmarks:entry:"
)

// Menu is one top-level menubar entry: a fixed list of leading items
// followed by an optional dynamic list that is bounded when Bound > 0.
type Menu struct {
	ID    string
	Title string
	Bound int

	static  []Item
	dynamic []Item
	seq     int
}

// Items returns the static items followed by the dynamic ones.
func (m *Menu) Items() []Item {
	out := make([]Item, 0, len(m.static)+len(m.dynamic))
	out = append(out, m.static...)
	out = append(out, m.dynamic...)
	return out
}

// Static returns the fixed leading items.
func (m *Menu) Static() []Item {
	return append([]Item(nil), m.static...)
}

// Dynamic returns the dynamic items, newest first.
func (m *Menu) Dynamic() []Item {
	return append([]Item(nil), m.dynamic...)
}

// Len returns the total number of items.
func (m *Menu) Len() int {
	return len(m.static) + len(m.dynamic)
}

// insert places item directly after the static items and evicts the oldest
// dynamic item when the bound is exceeded.
func (m *Menu) insert(prefix string, item Item) {
	m.seq++
	item.ID = prefix + strconv.Itoa(m.seq)
	m.dynamic = append([]Item{item}, m.dynamic...)
	if m.Bound > 0 && len(m.dynamic) > m.Bound {
		m.dynamic = m.dynamic[:m.Bound]
	}
}

func (m *Menu) clear() {
	m.dynamic = nil
}

func separator(id string) Item {
	return Item{ID: separatorPrefix + id, Kind: KindSeparator}
}
