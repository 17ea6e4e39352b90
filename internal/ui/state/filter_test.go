package state

import (
	"testing"

	"github.com/atomicstack/burrow/internal/gopher"
)

func gopherRows() []Item {
	entries := []gopher.Entry{
		{Type: gopher.Info, Label: "Welcome to the hole"},
		{Type: gopher.Dir, Label: "Phlog", Selector: "/phlog", Host: "sdf.org"},
		{Type: gopher.File, Label: "About this server", Selector: "/about.txt", Host: "sdf.org"},
		{Type: gopher.IndexServer, Label: "Veronica-2", Selector: "/v2/vs", Host: "gopher.floodgap.com"},
	}
	return ItemsFromListing(gopher.Listing{Entries: entries})
}

func TestSetFilterRemembersAndRestoresCursor(t *testing.T) {
	level := NewLevel("hole", gopherRows())
	level.Cursor = 3

	level.SetFilter("phlog", len("phlog"))
	if len(level.Items) != 1 || level.Items[0].Entry.Selector != "/phlog" {
		t.Fatalf("expected only the phlog row, got %#v", level.Items)
	}
	if level.Cursor != 0 || level.LastCursor != 3 {
		t.Fatalf("unexpected cursor state %d/%d", level.Cursor, level.LastCursor)
	}
	if level.Items[0].ID != "1" {
		t.Fatalf("expected listing position kept as ID, got %q", level.Items[0].ID)
	}

	level.SetFilter("", 0)
	if level.Cursor != 3 || level.LastCursor != -1 {
		t.Fatalf("expected cursor restored to 3, got %d/%d", level.Cursor, level.LastCursor)
	}
	if len(level.Items) != len(level.Full) {
		t.Fatalf("expected every row back, got %d", len(level.Items))
	}
}

func TestFilterFallsBackToSelectorAndHost(t *testing.T) {
	rows := gopherRows()
	if got := FilterItems(rows, "floodgap"); len(got) != 1 || got[0].Entry.Label != "Veronica-2" {
		t.Fatalf("expected host match, got %#v", got)
	}
	if got := FilterItems(rows, "about.txt"); len(got) != 1 || got[0].Entry.Type != gopher.File {
		t.Fatalf("expected selector match, got %#v", got)
	}
	if got := FilterItems(rows, "   "); len(got) != len(rows) {
		t.Fatalf("expected blank query to keep every row, got %d", len(got))
	}
	if got := FilterItems(rows, "qqqq"); len(got) != 0 {
		t.Fatalf("expected no rows, got %#v", got)
	}
}

func TestFilterResultIsACopy(t *testing.T) {
	rows := gopherRows()
	got := FilterItems(rows, "")
	got[1].Label = "changed"
	if rows[1].Label == "changed" {
		t.Fatalf("expected filtered rows to be independent of the listing")
	}
}

func TestFilterEditing(t *testing.T) {
	level := newTestLevel("alpha")
	steps := []struct {
		name   string
		edit   func() bool
		ok     bool
		filter string
		caret  int
	}{
		{"insert", func() bool { return level.InsertFilterText("ab") }, true, "ab", 2},
		{"insert nothing", func() bool { return level.InsertFilterText("") }, false, "ab", 2},
		{"caret left", level.MoveFilterCursorRuneBackward, true, "ab", 1},
		{"insert middle", func() bool { return level.InsertFilterText("z") }, true, "azb", 2},
		{"backspace", level.DeleteFilterRuneBackward, true, "ab", 1},
		{"home", level.MoveFilterCursorStart, true, "ab", 0},
		{"backspace at start", level.DeleteFilterRuneBackward, false, "ab", 0},
		{"end", level.MoveFilterCursorEnd, true, "ab", 2},
		{"end again", level.MoveFilterCursorEnd, false, "ab", 2},
		{"caret right at end", level.MoveFilterCursorRuneForward, false, "ab", 2},
	}
	for _, step := range steps {
		if ok := step.edit(); ok != step.ok {
			t.Fatalf("%s: expected %v, got %v", step.name, step.ok, ok)
		}
		if level.Filter != step.filter || level.FilterCursorPos() != step.caret {
			t.Fatalf("%s: unexpected state %q/%d", step.name, level.Filter, level.FilterCursorPos())
		}
	}
}

func TestFilterWordMotion(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() || level.FilterCursor != 4 {
		t.Fatalf("expected caret at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() || level.FilterCursor != 7 {
		t.Fatalf("expected caret at 7, got %d", level.FilterCursor)
	}
	if !level.DeleteFilterWordBackward() || level.Filter != "one " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}
	level.SetFilter("one", 0)
	if level.DeleteFilterWordBackward() || level.MoveFilterCursorWordBackward() {
		t.Fatalf("expected no word motion at the start")
	}
}

func TestBestMatchIndexTiers(t *testing.T) {
	rows := gopherRows()
	cases := []struct {
		query string
		want  int
	}{
		{"Phlog", 1},
		{"about", 2},
		{"/v2", 3},
		{"server", 2},
		{"zzz", 0},
	}
	for _, tc := range cases {
		if got := BestMatchIndex(rows, tc.query); got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.query, tc.want, got)
		}
	}
	if got := BestMatchIndex(nil, "x"); got != -1 {
		t.Fatalf("expected -1 for no rows, got %d", got)
	}
}
