// Package palette implements the command palette: a substring filter over the
// static command table and the controller that owns the palette's transient
// state (open flag, query text, highlighted row).
package palette

import "github.com/thesn0wdev/portfolio/internal/content"

// State is a read-only snapshot of the palette for rendering.
type State struct {
	Open      bool
	Query     string
	Cursor    int
	Highlight int
	Filtered  []content.Command
}

// Empty reports whether the filtered list has no entries.
func (s State) Empty() bool {
	return len(s.Filtered) == 0
}

// Controller owns the palette state. It is not safe for concurrent use; the
// UI mutates it from its single update loop.
type Controller struct {
	commands  []content.Command
	open      bool
	query     string
	cursor    int
	highlight int
	filtered  []content.Command
}

// NewController builds a closed palette over the given commands.
func NewController(commands []content.Command) *Controller {
	c := &Controller{commands: commands}
	c.filtered = Filter("", c.commands)
	return c
}

// Snapshot returns the current palette state.
func (c *Controller) Snapshot() State {
	return State{
		Open:      c.open,
		Query:     c.query,
		Cursor:    c.QueryCursor(),
		Highlight: c.highlight,
		Filtered:  c.filtered,
	}
}

func (c *Controller) IsOpen() bool { return c.open }

func (c *Controller) Query() string { return c.query }

func (c *Controller) Highlight() int { return c.highlight }

func (c *Controller) Filtered() []content.Command { return c.filtered }

// Toggle flips the open flag. Opening always starts from an empty query with
// the first row highlighted.
func (c *Controller) Toggle() bool {
	if c.open {
		c.open = false
		return false
	}
	c.Open()
	return true
}

// Open opens the palette, resetting it when it was closed. Opening an already
// open palette leaves its state alone.
func (c *Controller) Open() {
	if c.open {
		return
	}
	c.open = true
	c.reset()
}

// Close closes the palette. It is idempotent.
func (c *Controller) Close() {
	c.open = false
}

func (c *Controller) reset() {
	c.query = ""
	c.cursor = 0
	c.highlight = 0
	c.filtered = Filter("", c.commands)
}

// SetQuery replaces the query text, places the caret at the end and
// recomputes the filtered list. The highlight returns to the first row since
// the previous index may point at a different command now.
func (c *Controller) SetQuery(text string) {
	c.setQuery(text, len([]rune(text)))
}

func (c *Controller) setQuery(text string, cursor int) {
	c.query = text
	runes := len([]rune(text))
	if cursor < 0 {
		cursor = 0
	}
	if cursor > runes {
		cursor = runes
	}
	c.cursor = cursor
	c.filtered = Filter(text, c.commands)
	c.highlight = 0
}

// MoveHighlight shifts the highlight by delta, clamped to the filtered list.
// It reports whether the highlight changed.
func (c *Controller) MoveHighlight(delta int) bool {
	old := c.highlight
	c.highlight = clamp(c.highlight+delta, 0, maxIndex(len(c.filtered)))
	return c.highlight != old
}

// Hover moves the highlight to index, as when the pointer rests on a row.
func (c *Controller) Hover(index int) bool {
	old := c.highlight
	c.highlight = clamp(index, 0, maxIndex(len(c.filtered)))
	return c.highlight != old
}

// Selected returns the highlighted command, if any.
func (c *Controller) Selected() (content.Command, bool) {
	if c.highlight < 0 || c.highlight >= len(c.filtered) {
		return content.Command{}, false
	}
	return c.filtered[c.highlight], true
}

// Confirm closes the palette and returns the highlighted command. With an
// empty filtered list nothing happens and the palette stays open.
func (c *Controller) Confirm() (content.Command, bool) {
	cmd, ok := c.Selected()
	if !ok {
		return content.Command{}, false
	}
	c.Close()
	return cmd, true
}

// SelectByPointer highlights cmd and confirms it, bypassing keyboard
// navigation. Commands that are not currently listed are still selected.
func (c *Controller) SelectByPointer(cmd content.Command) content.Command {
	for i, candidate := range c.filtered {
		if candidate == cmd {
			c.highlight = i
			break
		}
	}
	c.Close()
	return cmd
}

func maxIndex(n int) int {
	if n <= 1 {
		return 0
	}
	return n - 1
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
