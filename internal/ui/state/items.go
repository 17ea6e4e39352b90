package state

import (
	"strconv"

	"github.com/atomicstack/burrow/internal/gopher"
)

// Item is one row of the listing pane.
type Item struct {
	ID    string
	Label string
	Entry gopher.Entry
}

// Navigable reports whether selecting the row can lead anywhere.
func (i Item) Navigable() bool {
	return i.Entry.Type.Navigable() && i.Entry.URL != nil
}

// ItemsFromListing converts parsed listing entries into rows. Row IDs are the
// entry's position in the listing so they survive filtering.
func ItemsFromListing(listing gopher.Listing) []Item {
	items := make([]Item, len(listing.Entries))
	for i, entry := range listing.Entries {
		items[i] = Item{
			ID:    strconv.Itoa(i),
			Label: entry.Display(),
			Entry: entry,
		}
	}
	return items
}

// CloneItems produces a shallow copy of the provided rows.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
