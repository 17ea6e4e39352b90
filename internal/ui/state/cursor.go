package state

// moveCursorTo places the cursor on row i, clamped to the visible rows, and
// reports whether it moved.
func (l *Level) moveCursorTo(i int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(i, len(l.Items)-1)
	return l.Cursor != old
}

func (l *Level) MoveCursorHome() bool { return l.moveCursorTo(0) }

func (l *Level) MoveCursorEnd() bool { return l.moveCursorTo(len(l.Items) - 1) }

func (l *Level) MoveCursorUp() bool { return l.moveCursorTo(max(l.Cursor, 0) - 1) }

func (l *Level) MoveCursorDown() bool { return l.moveCursorTo(max(l.Cursor, 0) + 1) }

// MoveCursorPageUp moves up by one screen of rows.
func (l *Level) MoveCursorPageUp(rows int) bool {
	return l.moveCursorTo(max(l.Cursor, 0) - l.pageSize(rows))
}

// MoveCursorPageDown moves down by one screen of rows.
func (l *Level) MoveCursorPageDown(rows int) bool {
	return l.moveCursorTo(max(l.Cursor, 0) + l.pageSize(rows))
}

// NextNavigable jumps to the next row in direction step that leads
// somewhere, skipping info lines. It reports false when there is none.
func (l *Level) NextNavigable(step int) bool {
	if step == 0 {
		return false
	}
	for i := l.Cursor + step; i >= 0 && i < len(l.Items); i += step {
		if l.Items[i].Navigable() {
			l.Cursor = i
			return true
		}
	}
	return false
}

func (l *Level) pageSize(rows int) int {
	if rows <= 0 || rows > len(l.Items) {
		rows = len(l.Items)
	}
	return max(rows, 1)
}

// EnsureCursorVisible scrolls the viewport the least amount needed to show
// the cursor within rows lines.
func (l *Level) EnsureCursorVisible(rows int) {
	l.moveCursorTo(l.Cursor)
	if len(l.Items) == 0 || rows <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(len(l.Items)-rows, 0)
	offset := clamp(l.ViewportOffset, maxOffset)
	switch {
	case l.Cursor < offset:
		offset = l.Cursor
	case l.Cursor >= offset+rows:
		offset = l.Cursor - rows + 1
	}
	l.ViewportOffset = clamp(offset, maxOffset)
}
