package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesn0wdev/portfolio/internal/logging/events"
)

const wheelStep = 1

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.palette.IsOpen() {
		m.handlePaletteMouse(ev)
		return nil
	}
	return m.handlePanelMouse(ev)
}

func (m *Model) paletteRowAt(ev tea.MouseMsg) int {
	for i := range m.palette.Filtered() {
		if m.zones.Hit(paletteRowID(i), ev) {
			return i
		}
	}
	return -1
}

func (m *Model) handlePaletteMouse(ev tea.MouseMsg) {
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if m.palette.MoveHighlight(-wheelStep) {
			events.Palette.Highlight(m.palette.Highlight())
		}
		return
	case tea.MouseButtonWheelDown:
		if m.palette.MoveHighlight(wheelStep) {
			events.Palette.Highlight(m.palette.Highlight())
		}
		return
	}
	row := m.paletteRowAt(ev)
	switch ev.Action {
	case tea.MouseActionMotion:
		if row >= 0 && m.palette.Hover(row) {
			events.Palette.Highlight(row)
		}
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return
		}
		if row >= 0 {
			cmd := m.palette.Filtered()[row]
			m.activate(m.palette.SelectByPointer(cmd), "pointer")
			return
		}
		if !m.zones.Hit(zonePalette, ev) {
			m.closePalette("pointer")
		}
	}
}

func (m *Model) handlePanelMouse(ev tea.MouseMsg) tea.Cmd {
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveListCursor(func() bool { return m.activeList().MoveCursor(-wheelStep) })
		return nil
	case tea.MouseButtonWheelDown:
		m.moveListCursor(func() bool { return m.activeList().MoveCursor(wheelStep) })
		return nil
	}
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.zones.Hit(zoneHeroButton, ev) || m.zones.Hit(zoneCardButton, ev) {
		m.openPalette("pointer")
		return nil
	}
	l := m.activeList()
	if l == nil {
		return nil
	}
	for i := range l.Rows {
		if !m.zones.Hit(panelRowID(i), ev) {
			continue
		}
		if l.SetCursor(i) {
			events.Panel.Cursor(l.ID, l.Cursor)
		}
		return m.copyCurrentRow()
	}
	return nil
}
