package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/thesn0wdev/portfolio/internal/ui/command"
)

var (
	testGlyphs = []rune{'.', ':', '*', '#'}
	fixedNow   = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	prev := renderMarkdown
	renderMarkdown = func(md string, width int, ascii bool) (string, error) {
		return "rendered about", nil
	}
	t.Cleanup(func() { renderMarkdown = prev })
	m := NewModel(Options{Width: 80, Height: 40, ShowFooter: true, Glyphs: testGlyphs})
	m.now = func() time.Time { return fixedNow }
	return m
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

// fakeZones hit-tests against fixed rectangles instead of rendered output.
type fakeZones struct {
	rects map[string][4]int
}

func (f *fakeZones) Mark(_, v string) string { return v }

func (f *fakeZones) Scan(v string) string { return v }

func (f *fakeZones) Hit(id string, msg tea.MouseMsg) bool {
	r, ok := f.rects[id]
	return ok && msg.X >= r[0] && msg.X <= r[2] && msg.Y >= r[1] && msg.Y <= r[3]
}

func withZones(m *Model, rects map[string][4]int) {
	m.zones = &fakeZones{rects: rects}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func hover(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func stubClipboard(t *testing.T) *[]string {
	t.Helper()
	var written []string
	prev := command.WriteClipboard
	command.WriteClipboard = func(text string) error {
		written = append(written, text)
		return nil
	}
	t.Cleanup(func() { command.WriteClipboard = prev })
	return &written
}
