package state

// moreMarkers is the number of lines an overflowing list spends on its
// "↑ more" and "↓ more" markers.
const moreMarkers = 2

// Capacity returns how many rows are shown when the list may use at most
// lines terminal lines. A list that does not fit gives up room for the
// markers, but always shows at least one row. Non-positive lines means no
// limit.
func (l *List) Capacity(lines int) int {
	n := l.Len()
	if lines <= 0 || n <= lines {
		return n
	}
	return max(lines-moreMarkers, 1)
}

// MoveCursor moves the cursor by delta rows, stopping at either end.
func (l *List) MoveCursor(delta int) bool {
	return l.SetCursor(l.Cursor + delta)
}

// MoveCursorHome moves the cursor to the first row.
func (l *List) MoveCursorHome() bool {
	return l.SetCursor(0)
}

// MoveCursorEnd moves the cursor to the last row.
func (l *List) MoveCursorEnd() bool {
	return l.SetCursor(l.Len() - 1)
}

// MoveCursorPageUp moves the cursor up by one screenful of rows.
func (l *List) MoveCursorPageUp(lines int) bool {
	return l.MoveCursor(-l.Capacity(lines))
}

// MoveCursorPageDown moves the cursor down by one screenful of rows.
func (l *List) MoveCursorPageDown(lines int) bool {
	return l.MoveCursor(l.Capacity(lines))
}

// ScrollToCursor shifts the viewport by the smallest amount that brings the
// cursor row into view.
func (l *List) ScrollToCursor(lines int) {
	n := l.Len()
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	size := l.Capacity(lines)
	l.ViewportOffset = clamp(l.ViewportOffset, l.Cursor-size+1, l.Cursor)
	l.ViewportOffset = clamp(l.ViewportOffset, 0, n-size)
}
