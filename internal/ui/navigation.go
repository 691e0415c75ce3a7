package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesn0wdev/portfolio/internal/content"
	"github.com/thesn0wdev/portfolio/internal/logging/events"
	"github.com/thesn0wdev/portfolio/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	// the toggle chord is consumed here and never reaches the query field
	if key.Matches(keyMsg, m.keys.Toggle) {
		m.togglePalette("keyboard")
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.palette.IsOpen() {
		return m.handlePaletteKey(keyMsg)
	}
	return m.handlePanelKey(keyMsg)
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closePalette("keyboard")
	case key.Matches(msg, m.keys.Down):
		if m.palette.MoveHighlight(1) {
			events.Palette.Highlight(m.palette.Highlight())
		}
	case key.Matches(msg, m.keys.Up):
		if m.palette.MoveHighlight(-1) {
			events.Palette.Highlight(m.palette.Highlight())
		}
	case key.Matches(msg, m.keys.Confirm):
		cmd, ok := m.palette.Confirm()
		if !ok {
			events.Palette.NoResults(m.palette.Query())
			return nil
		}
		m.activate(cmd, "keyboard")
	default:
		m.handleTextInput(msg)
	}
	return nil
}

func (m *Model) handlePanelKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveListCursor(func() bool { return m.activeList().MoveCursor(-1) })
	case key.Matches(msg, m.keys.Down):
		m.moveListCursor(func() bool { return m.activeList().MoveCursor(1) })
	case key.Matches(msg, m.keys.PageUp):
		m.moveListCursor(func() bool { return m.activeList().MoveCursorPageUp(m.maxVisibleRows()) })
	case key.Matches(msg, m.keys.PageDown):
		m.moveListCursor(func() bool { return m.activeList().MoveCursorPageDown(m.maxVisibleRows()) })
	case key.Matches(msg, m.keys.Home):
		m.moveListCursor(func() bool { return m.activeList().MoveCursorHome() })
	case key.Matches(msg, m.keys.End):
		m.moveListCursor(func() bool { return m.activeList().MoveCursorEnd() })
	case key.Matches(msg, m.keys.Copy):
		return m.copyCurrentRow()
	}
	return nil
}

func (m *Model) togglePalette(source string) {
	opened := m.palette.Toggle()
	if opened {
		m.filterCursorDirty = true
	}
	events.Palette.Toggle(opened, source)
}

func (m *Model) openPalette(source string) {
	if m.palette.IsOpen() {
		return
	}
	m.palette.Open()
	m.filterCursorDirty = true
	events.Palette.Toggle(true, source)
}

func (m *Model) closePalette(source string) {
	if !m.palette.IsOpen() {
		return
	}
	m.palette.Close()
	events.Palette.Close(source)
}

// activate makes the confirmed command's panel the visible one.
func (m *Model) activate(cmd content.Command, source string) {
	events.Palette.Confirm(string(cmd.ID), cmd.Title, source)
	m.active = cmd.ID
	m.errMsg = ""
	m.forceClearInfo()
	if l := m.activeList(); l != nil {
		l.ScrollToCursor(m.maxVisibleRows())
	}
	events.Panel.Select(string(cmd.ID))
}

func (m *Model) moveListCursor(move func() bool) {
	l := m.activeList()
	if l == nil {
		return
	}
	if move() {
		l.ScrollToCursor(m.maxVisibleRows())
		events.Panel.Cursor(l.ID, l.Cursor)
	}
}

func (m *Model) copyCurrentRow() tea.Cmd {
	l := m.activeList()
	if l == nil {
		return nil
	}
	row, ok := l.Current()
	if !ok {
		return nil
	}
	m.errMsg = ""
	return m.bus.Execute(command.Request{
		ID:     l.ID,
		Label:  row.Label,
		Target: row.Target,
		Action: command.CopyLink,
	})
}
