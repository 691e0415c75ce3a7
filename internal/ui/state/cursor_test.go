package state

import "testing"

func newTestList(ids ...string) *List {
	rows := make([]Row, len(ids))
	for i, id := range ids {
		rows[i] = Row{ID: id, Label: id}
	}
	return NewList("test", rows)
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when rows exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestList()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestMoveCursorClampsAtEdges(t *testing.T) {
	l := newTestList("a", "b")
	if l.MoveCursor(-1) {
		t.Fatalf("expected no movement above first row")
	}
	if !l.MoveCursor(1) || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if l.MoveCursor(1) {
		t.Fatalf("expected no movement past last row")
	}
}

func TestCapacityReservesMarkerLines(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	cases := []struct {
		lines int
		want  int
	}{
		{lines: 0, want: 5},
		{lines: 5, want: 5},
		{lines: 9, want: 5},
		{lines: 4, want: 2},
		{lines: 3, want: 1},
		{lines: 1, want: 1},
	}
	for _, tc := range cases {
		if got := l.Capacity(tc.lines); got != tc.want {
			t.Fatalf("lines=%d: expected capacity %d, got %d", tc.lines, tc.want, got)
		}
	}
	if newTestList().Capacity(3) != 0 {
		t.Fatal("expected zero capacity for empty list")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e", "f", "g")
	// four lines leave room for two rows plus the markers
	if !l.MoveCursorPageDown(4) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(4) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(4) || l.Cursor != 6 {
		t.Fatalf("expected cursor 6, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(4) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(20) || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestScrollToCursorAdjustsViewport(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.ScrollToCursor(4)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	rows, start := l.Visible(4)
	if start != 3 || len(rows) != 2 || rows[1].ID != "e" {
		t.Fatalf("unexpected window start=%d rows=%v", start, rows)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.ScrollToCursor(4)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}

	l.ScrollToCursor(0)
	if rows, start := l.Visible(0); start != 0 || len(rows) != 5 {
		t.Fatalf("expected whole list without a limit, got start=%d len=%d", start, len(rows))
	}
}

func TestVisibleKeepsCursorOnScreen(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e", "f", "g", "h")
	for i := 0; i < l.Len(); i++ {
		l.SetCursor(i)
		l.ScrollToCursor(5)
		rows, start := l.Visible(5)
		if l.Cursor < start || l.Cursor >= start+len(rows) {
			t.Fatalf("cursor %d outside window start=%d len=%d", l.Cursor, start, len(rows))
		}
		if len(rows)+moreMarkers > 5 {
			t.Fatalf("expected rows and markers within 5 lines, got %d rows", len(rows))
		}
	}
}

func TestCurrentAndSetCursor(t *testing.T) {
	l := newTestList("a", "b", "c")
	if !l.SetCursor(9) || l.Cursor != 2 {
		t.Fatalf("expected clamp to 2, got %d", l.Cursor)
	}
	row, ok := l.Current()
	if !ok || row.ID != "c" {
		t.Fatalf("expected row c, got %+v", row)
	}
	if l.IndexOf("b") != 1 || l.IndexOf("zz") != -1 {
		t.Fatal("unexpected IndexOf result")
	}
	if _, ok := newTestList().Current(); ok {
		t.Fatal("expected no current row on empty list")
	}
}
