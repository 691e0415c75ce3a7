package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thesn0wdev/portfolio/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// editQuery applies a query edit and records caret movement and filter
// changes. It reports whether anything changed.
func (m *Model) editQuery(edit func() bool) bool {
	beforeQuery := m.palette.Query()
	beforeCaret := m.palette.QueryCursor()
	if !edit() {
		return false
	}
	if beforeCaret != m.palette.QueryCursor() {
		m.filterCursorDirty = true
	}
	if beforeQuery != m.palette.Query() {
		m.errMsg = ""
		events.Palette.Query(m.palette.Query(), len(m.palette.Filtered()))
		if len(m.palette.Filtered()) == 0 {
			events.Palette.NoResults(m.palette.Query())
		}
	}
	return true
}

// handleTextInput routes editing keys to the palette's text field.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	p := m.palette
	switch msg.String() {
	case "ctrl+u":
		return m.editQuery(p.ClearQuery)
	case "ctrl+w", "alt+backspace":
		return m.editQuery(p.DeleteWordBackward)
	case "ctrl+a":
		return m.editQuery(p.MoveCursorStart)
	case "ctrl+e":
		return m.editQuery(p.MoveCursorEnd)
	case "alt+b":
		return m.editQuery(p.MoveCursorWordBackward)
	case "alt+f":
		return m.editQuery(p.MoveCursorWordForward)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editQuery(p.DeleteRuneBackward)
	case tea.KeyLeft:
		return m.editQuery(func() bool { return p.MoveCursorRune(-1) })
	case tea.KeyRight:
		return m.editQuery(func() bool { return p.MoveCursorRune(1) })
	case tea.KeySpace:
		return m.editQuery(func() bool { return p.InsertText(" ") })
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		text := string(msg.Runes)
		return m.editQuery(func() bool { return p.InsertText(text) })
	}
	return false
}

func (m *Model) filterPrompt() string {
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.palette.Query()
	if text == "" {
		runes := []rune("Type a command or search…")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.palette.QueryCursor()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
