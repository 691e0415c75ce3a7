// Package state holds the scrollable list state behind the content panels.
package state

// Row is a single actionable line inside a panel.
type Row struct {
	ID     string
	Label  string
	Target string
}

// List tracks the cursor and viewport for a panel's rows. A list without rows
// has its cursor pinned to 0.
type List struct {
	ID             string
	Rows           []Row
	Cursor         int
	ViewportOffset int
}

// NewList constructs a List with the cursor on the first row.
func NewList(id string, rows []Row) *List {
	return &List{ID: id, Rows: append([]Row(nil), rows...)}
}

// Len returns the number of rows.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Rows)
}

// Current returns the row under the cursor.
func (l *List) Current() (Row, bool) {
	if l.Len() == 0 || l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return Row{}, false
	}
	return l.Rows[l.Cursor], true
}

// SetCursor moves the cursor to index, clamped to the row range.
func (l *List) SetCursor(index int) bool {
	if l.Len() == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(index, 0, len(l.Rows)-1)
	return old != l.Cursor
}

// IndexOf returns the index for a given row identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, row := range l.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Visible returns the rows inside the viewport together with the index of the
// first one. lines is the same budget given to Capacity.
func (l *List) Visible(lines int) ([]Row, int) {
	n := l.Len()
	if n == 0 {
		return nil, 0
	}
	size := l.Capacity(lines)
	start := clamp(l.ViewportOffset, 0, n-size)
	return l.Rows[start : start+size], start
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
