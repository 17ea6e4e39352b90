package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter text and places the filter caret at cursor.
// Entering a filter remembers the row under the cursor; clearing it returns
// there.
func (l *Level) SetFilter(query string, cursor int) {
	wasActive := strings.TrimSpace(l.Filter) != ""
	active := strings.TrimSpace(query) != ""

	l.Filter = query
	l.FilterCursor = clamp(cursor, len([]rune(query)))

	switch {
	case active && !wasActive:
		l.LastCursor = l.Cursor
	case !active && wasActive:
		l.applyFilter()
		l.Cursor = 0
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
		return
	}
	l.applyFilter()
	if active {
		l.Cursor = max(BestMatchIndex(l.Items, query), 0)
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// FilterCursorPos returns the caret position in runes.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, len([]rune(l.Filter)))
}

// editFilter applies fn to the filter runes and caret. fn reports whether it
// changed anything.
func (l *Level) editFilter(fn func(text []rune, pos int) ([]rune, int, bool)) bool {
	text, pos, ok := fn([]rune(l.Filter), l.FilterCursorPos())
	if !ok {
		return false
	}
	l.SetFilter(string(text), pos)
	return true
}

func (l *Level) moveFilterCursor(fn func(text []rune, pos int) int) bool {
	text := []rune(l.Filter)
	pos := l.FilterCursorPos()
	next := fn(text, pos)
	if next == pos {
		return false
	}
	l.FilterCursor = next
	return true
}

// wordStart finds the start of the word before pos, skipping trailing space.
func wordStart(text []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(text[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(text[pos-1]) {
		pos--
	}
	return pos
}

// wordEnd finds the start of the word after pos.
func wordEnd(text []rune, pos int) int {
	for pos < len(text) && !unicode.IsSpace(text[pos]) {
		pos++
	}
	for pos < len(text) && unicode.IsSpace(text[pos]) {
		pos++
	}
	return pos
}

// InsertFilterText inserts text at the caret.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	return l.editFilter(func(cur []rune, pos int) ([]rune, int, bool) {
		if len(insert) == 0 {
			return nil, 0, false
		}
		out := make([]rune, 0, len(cur)+len(insert))
		out = append(out, cur[:pos]...)
		out = append(out, insert...)
		out = append(out, cur[pos:]...)
		return out, pos + len(insert), true
	})
}

// DeleteFilterRuneBackward removes the rune before the caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	return l.editFilter(func(cur []rune, pos int) ([]rune, int, bool) {
		if pos == 0 {
			return nil, 0, false
		}
		return append(cur[:pos-1], cur[pos:]...), pos - 1, true
	})
}

// DeleteFilterWordBackward removes the word before the caret.
func (l *Level) DeleteFilterWordBackward() bool {
	return l.editFilter(func(cur []rune, pos int) ([]rune, int, bool) {
		start := wordStart(cur, pos)
		if start == pos {
			return nil, 0, false
		}
		return append(cur[:start], cur[pos:]...), start, true
	})
}

func (l *Level) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(func([]rune, int) int { return 0 })
}

func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(func(text []rune, _ int) int { return len(text) })
}

func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart)
}

func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd)
}

func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(func(_ []rune, pos int) int { return max(pos-1, 0) })
}

func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(func(text []rune, pos int) int { return min(pos+1, len(text)) })
}

func itemLabels(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}

// searchText is what the substring fallback looks at: the display label plus
// the entry's selector and host, so "/phlog" or "floodgap" find their rows.
func searchText(item Item) string {
	return strings.ToLower(item.Label + "\x00" + item.Entry.Selector + "\x00" + item.Entry.Host)
}

// FilterItems returns the rows matching query, in listing order. A fuzzy
// match on the label is tried first; if nothing matches, rows whose label,
// selector or host contains the query are returned.
func FilterItems(items []Item, query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneItems(items)
	}
	var out []Item
	if ranks := fuzzy.RankFindNormalizedFold(query, itemLabels(items)); len(ranks) > 0 {
		keep := make([]bool, len(items))
		for _, r := range ranks {
			keep[r.OriginalIndex] = true
		}
		for i, item := range items {
			if keep[i] {
				out = append(out, item)
			}
		}
		return out
	}
	needle := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(searchText(item), needle) {
			out = append(out, item)
		}
	}
	return CloneItems(out)
}

// BestMatchIndex picks the row the cursor should jump to for query: an exact
// label, then a label prefix, then a selector hit, then any label substring,
// and finally the closest fuzzy match. It returns -1 for no rows.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0
	}
	needle := strings.ToLower(query)
	tiers := []func(Item) bool{
		func(it Item) bool {
			return strings.EqualFold(it.Label, query) || strings.EqualFold(it.Entry.Label, query)
		},
		func(it Item) bool { return strings.HasPrefix(strings.ToLower(it.Label), needle) },
		func(it Item) bool { return strings.HasPrefix(strings.ToLower(it.Entry.Label), needle) },
		func(it Item) bool { return strings.Contains(strings.ToLower(it.Entry.Selector), needle) },
		func(it Item) bool { return strings.Contains(strings.ToLower(it.Label), needle) },
	}
	for _, match := range tiers {
		for i, item := range items {
			if match(item) {
				return i
			}
		}
	}
	best := -1
	bestDistance := 0
	for _, r := range fuzzy.RankFindNormalizedFold(query, itemLabels(items)) {
		if best < 0 || r.Distance < bestDistance || (r.Distance == bestDistance && r.OriginalIndex < best) {
			best, bestDistance = r.OriginalIndex, r.Distance
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
