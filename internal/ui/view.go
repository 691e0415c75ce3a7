package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultLayoutWidth = 80
	maxPaletteWidth    = 60
	paletteTopOffset   = 2
	infoTTL            = 5 * time.Second
	heroHint           = " open the command palette"
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.layoutWidth()
	sections := []string{
		renderAurora(width, m.auroraHeight(), m.driver.Transforms(), m.glyphs, styles.Aurora),
		m.renderHero(),
		"",
		m.renderMain(),
	}
	if m.showFooter {
		sections = append(sections, "", render(styles.Footer, truncateText(m.footerText(), width)))
	}
	if status := m.statusLine(); status != "" {
		sections = append(sections, status)
	}
	base := strings.Join(sections, "\n")
	if m.palette.IsOpen() {
		base = overlay(base, m.renderPalette(), width, m.auroraHeight()+paletteTopOffset)
	}
	if m.height > 0 {
		base = clipLines(base, m.height)
	}
	return m.zones.Scan(base)
}

func (m *Model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultLayoutWidth
}

// mark registers a clickable zone. While the palette is open everything
// behind it is inert, so base content is left unmarked.
func (m *Model) mark(id, v string) string {
	if m.palette.IsOpen() && !strings.HasPrefix(id, paletteRowZone) && id != zonePalette {
		return v
	}
	return m.zones.Mark(id, v)
}

func (m *Model) renderHero() string {
	owner := m.content.Owner
	if owner == "" {
		owner = "portfolio"
	}
	width := m.layoutWidth()
	title := render(styles.Hero, truncateText("<"+owner+"/>", width))
	button := render(styles.Button, "⌘K / Ctrl+K")
	line := m.mark(zoneHeroButton, button)
	// the hint is dropped whole on narrow layouts
	if room := width - lipgloss.Width(button); room >= len(heroHint) {
		line += render(styles.ButtonHint, heroHint)
	}
	tagline := render(styles.Tagline, truncateText(m.content.Tagline, width))
	return title + "\n" + tagline + "\n\n" + line
}

func (m *Model) footerText() string {
	return fmt.Sprintf("© %d · Made with Go + Bubble Tea", m.now().Year())
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return render(styles.Error, truncateText(m.errMsg, m.layoutWidth()))
	}
	if info := m.currentInfo(); info != "" {
		return render(styles.Info, truncateText(info, m.layoutWidth()))
	}
	return ""
}

func (m *Model) paletteWidth() int {
	w := m.layoutWidth() - 4
	if w > maxPaletteWidth {
		w = maxPaletteWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m *Model) renderPalette() string {
	inner := m.paletteWidth() - 4
	lines := []string{m.filterPrompt(), ""}
	filtered := m.palette.Filtered()
	if len(filtered) == 0 {
		lines = append(lines, render(styles.NoResults, "No results"))
	}
	highlight := m.palette.Highlight()
	for i, cmd := range filtered {
		title, hint := cmd.Title, cmd.Hint
		titleStyle, hintStyle := styles.Row, styles.RowHint
		if i == highlight {
			titleStyle, hintStyle = styles.RowSelected, styles.RowSelectedHint
		}
		text := truncateText(title, inner)
		row := render(titleStyle, text)
		if room := inner - lipgloss.Width(text) - 2; hint != "" && room > 0 {
			hint = truncateText(hint, room)
			gap := strings.Repeat(" ", inner-lipgloss.Width(text)-lipgloss.Width(hint))
			row += render(hintStyle, gap+hint)
		} else if pad := inner - lipgloss.Width(text); pad > 0 {
			row += render(titleStyle, strings.Repeat(" ", pad))
		}
		lines = append(lines, m.mark(paletteRowID(i), row))
	}
	m.help.Width = inner
	lines = append(lines, "", render(styles.Tips, m.help.ShortHelpView(paletteHelp(m.keys).ShortHelp())))
	body := strings.Join(lines, "\n")
	if styles.Palette != nil {
		body = styles.Palette.Width(m.paletteWidth() - 2).Render(body)
	}
	return m.mark(zonePalette, body)
}

// overlay draws box over base, centred horizontally and starting at row top.
func overlay(base, box string, width, top int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range boxLines {
		if w := ansi.StringWidth(l); w > boxWidth {
			boxWidth = w
		}
	}
	left := (width - boxWidth) / 2
	if left < 0 {
		left = 0
	}
	for len(baseLines) < top+len(boxLines) {
		baseLines = append(baseLines, "")
	}
	for i, l := range boxLines {
		row := top + i
		under := baseLines[row]
		prefix := ansi.Truncate(under, left, "")
		if pad := left - ansi.StringWidth(prefix); pad > 0 {
			prefix += strings.Repeat(" ", pad)
		}
		suffix := ""
		if ansi.StringWidth(under) > left+boxWidth {
			suffix = ansi.TruncateLeft(under, left+boxWidth, "")
		}
		if pad := boxWidth - ansi.StringWidth(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		baseLines[row] = prefix + "\x1b[0m" + l + "\x1b[0m" + suffix
	}
	return strings.Join(baseLines, "\n")
}

func clipLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if l := m.activeList(); l != nil {
		l.ScrollToCursor(m.maxVisibleRows())
	}
	return nil
}

// maxVisibleRows is the number of lines left for a list body, "more" markers
// included, once the aurora, hero, card chrome, footer and status line are
// accounted for. It returns -1 when the height is unknown.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := m.auroraHeight()
	used += 5 // hero: title, tagline, blank, button, blank
	used += 6 // card: borders, title bar, blank, blank, footer
	if m.showFooter {
		used += 2
	}
	if m.errMsg != "" || m.currentInfo() != "" {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
