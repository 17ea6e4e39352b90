package state

import (
	"net/url"
	"testing"

	"github.com/atomicstack/burrow/internal/gopher"
)

func newTestLevel(ids ...string) *Level {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: id}
	}
	return NewLevel("Test", items)
}

func linkItem(id string) Item {
	return Item{ID: id, Label: id, Entry: gopher.Entry{
		Type:  gopher.Dir,
		Label: id,
		URL:   &url.URL{Scheme: "gopher", Host: "example.org:70", Path: "/1/" + id},
	}}
}

func TestNewLevelStartsAtFirstRow(t *testing.T) {
	l := newTestLevel("a", "b")
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	item, ok := l.Current()
	if !ok || item.ID != "a" {
		t.Fatalf("expected current row a, got %#v", item)
	}
	if _, ok := newTestLevel().Current(); ok {
		t.Fatal("expected no current row on empty level")
	}
}

func TestMoveCursorUpDownClamps(t *testing.T) {
	l := newTestLevel("a", "b")
	if l.MoveCursorUp() {
		t.Fatal("expected no movement above first row")
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatal("expected no movement past last row")
	}
}

func TestNextNavigableSkipsInfoRows(t *testing.T) {
	l := NewLevel("Test", []Item{
		{ID: "0", Label: "info"},
		linkItem("1"),
		{ID: "2", Label: "info"},
		linkItem("3"),
	})
	if !l.NextNavigable(1) || l.Cursor != 1 {
		t.Fatalf("expected cursor on first link, got %d", l.Cursor)
	}
	if !l.NextNavigable(1) || l.Cursor != 3 {
		t.Fatalf("expected cursor on second link, got %d", l.Cursor)
	}
	if l.NextNavigable(1) {
		t.Fatal("expected no further link")
	}
	if !l.NextNavigable(-1) || l.Cursor != 1 {
		t.Fatalf("expected cursor back on first link, got %d", l.Cursor)
	}
}

func TestReplaceResetsPageState(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d")
	l.SetFilter("c", 1)
	l.ViewportOffset = 2
	l.Replace("Next", []Item{{ID: "x", Label: "x"}, {ID: "y", Label: "y"}})
	if l.Title != "Next" || l.Filter != "" || l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("unexpected level after replace: %#v", l)
	}
	if len(l.Items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(l.Items))
	}
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 0
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 0
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.ViewportOffset = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}
