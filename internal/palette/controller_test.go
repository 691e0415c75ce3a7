package palette

import (
	"testing"

	"github.com/thesn0wdev/portfolio/internal/content"
)

func TestToggleResetsOnOpen(t *testing.T) {
	c := NewController(testCommands())
	if !c.Toggle() {
		t.Fatal("expected toggle to open")
	}
	c.SetQuery("ski")
	c.Toggle()
	if c.IsOpen() {
		t.Fatal("expected toggle to close")
	}
	if !c.Toggle() {
		t.Fatal("expected toggle to reopen")
	}
	if c.Query() != "" || c.Highlight() != 0 {
		t.Fatalf("expected reset state, got query %q highlight %d", c.Query(), c.Highlight())
	}
	if len(c.Filtered()) != 4 {
		t.Fatalf("expected all commands after reset, got %d", len(c.Filtered()))
	}
}

func TestOpenWhenAlreadyOpenKeepsState(t *testing.T) {
	c := NewController(testCommands())
	c.Open()
	c.SetQuery("c")
	c.MoveHighlight(1)
	c.Open()
	if c.Query() != "c" || c.Highlight() != 1 {
		t.Fatalf("expected state kept, got %q/%d", c.Query(), c.Highlight())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewController(testCommands())
	c.Close()
	c.Close()
	if c.IsOpen() {
		t.Fatal("expected palette closed")
	}
	c.Open()
	c.Close()
	c.Close()
	if c.IsOpen() {
		t.Fatal("expected palette closed after repeated close")
	}
}

func TestSetQueryResetsHighlight(t *testing.T) {
	c := NewController(testCommands())
	c.Open()
	c.MoveHighlight(3)
	if c.Highlight() != 3 {
		t.Fatalf("expected highlight 3, got %d", c.Highlight())
	}
	c.SetQuery("s")
	if c.Highlight() != 0 {
		t.Fatalf("expected highlight reset to 0, got %d", c.Highlight())
	}
}

func TestMoveHighlightClamps(t *testing.T) {
	c := NewController(testCommands())
	c.Open()
	if c.MoveHighlight(-1) {
		t.Fatal("expected no movement above first row")
	}
	for i := 0; i < 10; i++ {
		c.MoveHighlight(1)
	}
	if c.Highlight() != 3 {
		t.Fatalf("expected highlight clamped to 3, got %d", c.Highlight())
	}

	c.SetQuery("pro")
	if c.MoveHighlight(1) {
		t.Fatal("expected no movement in single-row list")
	}
	if c.Highlight() != 0 {
		t.Fatalf("expected highlight 0, got %d", c.Highlight())
	}

	c.SetQuery("zzz")
	for _, d := range []int{1, -1, 1, 1, -1} {
		c.MoveHighlight(d)
		if c.Highlight() != 0 {
			t.Fatalf("expected highlight pinned to 0 on empty list, got %d", c.Highlight())
		}
	}
}

func TestHighlightStaysInRangeAfterListShrinks(t *testing.T) {
	c := NewController(testCommands())
	c.Open()
	c.MoveHighlight(3)
	c.SetQuery("zzz")
	if h := c.Highlight(); h != 0 {
		t.Fatalf("expected highlight 0 after list emptied, got %d", h)
	}
	c.SetQuery("")
	c.MoveHighlight(2)
	c.DeleteRuneBackward()
	c.InsertText("ab")
	if h, n := c.Highlight(), len(c.Filtered()); n > 0 && h > n-1 {
		t.Fatalf("highlight %d out of range for %d rows", h, n)
	}
}

func TestConfirmSelectsAndCloses(t *testing.T) {
	c := NewController([]content.Command{{ID: content.PanelAbout, Title: "About"}})
	c.Open()
	cmd, ok := c.Confirm()
	if !ok {
		t.Fatal("expected a selection")
	}
	if cmd.ID != content.PanelAbout {
		t.Fatalf("expected about, got %q", cmd.ID)
	}
	if c.IsOpen() {
		t.Fatal("expected palette closed after confirm")
	}
}

func TestConfirmOnEmptyListIsNoOp(t *testing.T) {
	c := NewController(testCommands())
	c.Open()
	c.SetQuery("zzz")
	before := c.Snapshot()
	if _, ok := c.Confirm(); ok {
		t.Fatal("expected no selection for empty list")
	}
	after := c.Snapshot()
	if !after.Open || after.Query != before.Query || after.Highlight != before.Highlight {
		t.Fatalf("expected unchanged state, before %+v after %+v", before, after)
	}
	if !after.Empty() {
		t.Fatal("expected empty filtered list")
	}
}

func TestSelectByPointer(t *testing.T) {
	cmds := testCommands()
	c := NewController(cmds)
	c.Open()
	got := c.SelectByPointer(cmds[2])
	if got.ID != content.PanelSkills {
		t.Fatalf("expected skills, got %q", got.ID)
	}
	if c.Highlight() != 2 {
		t.Fatalf("expected highlight moved to 2, got %d", c.Highlight())
	}
	if c.IsOpen() {
		t.Fatal("expected palette closed after pointer select")
	}
}

func TestHoverClamps(t *testing.T) {
	c := NewController(testCommands())
	c.Open()
	if !c.Hover(2) || c.Highlight() != 2 {
		t.Fatalf("expected hover to highlight 2, got %d", c.Highlight())
	}
	c.Hover(99)
	if c.Highlight() != 3 {
		t.Fatalf("expected hover clamped to 3, got %d", c.Highlight())
	}
	c.Hover(-5)
	if c.Highlight() != 0 {
		t.Fatalf("expected hover clamped to 0, got %d", c.Highlight())
	}
}
