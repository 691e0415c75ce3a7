package palette

import "unicode"

// QueryCursor returns the rune offset of the caret within the query.
func (c *Controller) QueryCursor() int {
	runes := []rune(c.query)
	if c.cursor < 0 {
		return 0
	}
	if c.cursor > len(runes) {
		return len(runes)
	}
	return c.cursor
}

// InsertText inserts text at the caret.
func (c *Controller) InsertText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(c.query)
	pos := c.QueryCursor()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	c.setQuery(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward removes the rune before the caret.
func (c *Controller) DeleteRuneBackward() bool {
	runes := []rune(c.query)
	pos := c.QueryCursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	c.setQuery(string(updated), pos-1)
	return true
}

// DeleteWordBackward removes the word preceding the caret.
func (c *Controller) DeleteWordBackward() bool {
	runes := []rune(c.query)
	pos := c.QueryCursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	c.setQuery(string(updated), i)
	return true
}

// ClearQuery empties the query.
func (c *Controller) ClearQuery() bool {
	if c.query == "" {
		return false
	}
	c.setQuery("", 0)
	return true
}

// MoveCursorStart moves the caret to the start of the query.
func (c *Controller) MoveCursorStart() bool {
	if c.QueryCursor() == 0 {
		return false
	}
	c.cursor = 0
	return true
}

// MoveCursorEnd moves the caret past the last rune.
func (c *Controller) MoveCursorEnd() bool {
	end := len([]rune(c.query))
	if c.QueryCursor() == end {
		return false
	}
	c.cursor = end
	return true
}

// MoveCursorRune moves the caret one rune left (delta < 0) or right.
func (c *Controller) MoveCursorRune(delta int) bool {
	pos := c.QueryCursor()
	next := clamp(pos+delta, 0, len([]rune(c.query)))
	if next == pos {
		return false
	}
	c.cursor = next
	return true
}

// MoveCursorWordBackward moves the caret to the start of the previous word.
func (c *Controller) MoveCursorWordBackward() bool {
	runes := []rune(c.query)
	pos := c.QueryCursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	c.cursor = i
	return true
}

// MoveCursorWordForward moves the caret past the next word.
func (c *Controller) MoveCursorWordForward() bool {
	runes := []rune(c.query)
	pos := c.QueryCursor()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	c.cursor = i
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
