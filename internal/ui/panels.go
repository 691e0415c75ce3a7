package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thesn0wdev/portfolio/internal/content"
	"github.com/thesn0wdev/portfolio/internal/format/table"
	"github.com/thesn0wdev/portfolio/internal/logging"
)

const (
	maxCardWidth   = 84
	trafficLights  = "●"
	welcomeMessage = "Press Ctrl+K (or click the button) to open the command palette and jump to a section."
)

// renderMarkdown is swapped out in tests that need stable output.
var renderMarkdown = func(md string, width int, ascii bool) (string, error) {
	style := glamourstyles.DarkStyle
	if ascii {
		style = glamourstyles.NoTTYStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

func (m *Model) cardWidth() int {
	w := m.layoutWidth() - 2
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// cardInnerWidth subtracts the border and padding of the card style.
func (m *Model) cardInnerWidth() int {
	return m.cardWidth() - 4
}

func (m *Model) renderCard(title, body, footer string) string {
	lights := render(styles.TrafficRed, trafficLights) + " " +
		render(styles.TrafficAmb, trafficLights) + " " +
		render(styles.TrafficGrn, trafficLights)
	inner := m.cardInnerWidth()
	title = truncateText(title, inner-lipgloss.Width(lights)-2)
	parts := []string{lights + "  " + render(styles.CardTitle, title), "", body}
	if footer != "" {
		parts = append(parts, "", render(styles.PanelFooter, truncateText(footer, inner)))
	}
	joined := strings.Join(parts, "\n")
	if styles.Card == nil {
		return joined
	}
	return styles.Card.Width(m.cardWidth() - 2).Render(joined)
}

func (m *Model) renderMain() string {
	switch m.active {
	case content.PanelAbout:
		return m.renderCard(m.content.Title(m.active), m.aboutBody(), "")
	case content.PanelProjects:
		return m.renderCard(m.content.Title(m.active), m.listBody(m.projectCells), "↑/↓ move · y copy link · ctrl+k palette")
	case content.PanelSkills:
		return m.renderCard(m.content.Title(m.active), m.skillsBody(), "")
	case content.PanelContact:
		return m.renderCard(m.content.Title(m.active), m.listBody(m.contactCells), "↑/↓ move · y copy link · ctrl+k palette")
	default:
		return m.renderWelcome()
	}
}

func (m *Model) renderWelcome() string {
	text := wordwrap.String(welcomeMessage, m.cardInnerWidth())
	button := m.mark(zoneCardButton, render(styles.Button, "Open ⌘K"))
	return m.renderCard("Welcome", render(styles.Body, text)+"\n\n"+button, "")
}

func (m *Model) aboutBody() string {
	width := m.cardInnerWidth()
	if m.aboutRendered != "" && m.aboutWidth == width {
		return m.aboutRendered
	}
	md := m.content.About.Markdown
	out, err := renderMarkdown(md, width, isASCII(m.glyphs))
	if err != nil {
		logging.Error(err)
		out = render(styles.Body, wordwrap.String(strings.TrimSpace(md), width))
	}
	m.aboutWidth = width
	m.aboutRendered = out
	return out
}

func (m *Model) skillsBody() string {
	width := m.cardInnerWidth()
	var lines []string
	var line string
	for _, pill := range m.content.Skills.Pills {
		rendered := render(styles.Pill, pill)
		if line != "" && lipgloss.Width(line)+lipgloss.Width(rendered) > width {
			lines = append(lines, line)
			line = ""
		}
		line += rendered
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// projectCells returns name and tag columns. Styled cells are used for every
// row except the cursor row, which is drawn in a single highlight style.
func (m *Model) projectCells(styled bool) [][]string {
	rows := make([][]string, len(m.content.Projects))
	for i, p := range m.content.Projects {
		tags := strings.Join(p.Tags, " · ")
		if styled {
			tags = render(styles.Tag, tags)
		}
		rows[i] = []string{p.Name, tags}
	}
	return rows
}

func (m *Model) contactCells(styled bool) [][]string {
	rows := make([][]string, len(m.content.Contacts))
	for i, c := range m.content.Contacts {
		url := c.URL
		if styled {
			url = render(styles.Link, url)
		}
		rows[i] = []string{c.Icon + " " + c.Label, url}
	}
	return rows
}

// listBody aligns cells into columns and renders the rows inside the list's
// viewport with the cursor row highlighted. Every line fits the card, so the
// line budget from maxVisibleRows holds.
func (m *Model) listBody(cells func(styled bool) [][]string) string {
	l := m.activeList()
	plainCells := cells(false)
	if l == nil || len(plainCells) == 0 {
		return render(styles.NoResults, "(nothing here yet)")
	}
	const indicator = "› "
	width := m.cardInnerWidth() - lipgloss.Width(indicator)
	plain := table.Fit(plainCells, nil, width)
	styled := table.Fit(cells(true), nil, width)
	visible, start := l.Visible(m.maxVisibleRows())
	lines := make([]string, 0, len(visible)+2)
	if start > 0 {
		lines = append(lines, render(styles.PanelFooter, "  ↑ more"))
	}
	for i := range visible {
		idx := start + i
		var line string
		if idx == l.Cursor {
			line = render(styles.ListCursor, indicator) + render(styles.ListRowSel, plain[idx])
		} else {
			line = "  " + render(styles.Body, styled[idx])
		}
		lines = append(lines, m.mark(panelRowID(idx), line))
	}
	if start+len(visible) < l.Len() {
		lines = append(lines, render(styles.PanelFooter, "  ↓ more"))
	}
	return strings.Join(lines, "\n")
}

func isASCII(glyphs []rune) bool {
	return len(glyphs) > 0 && glyphs[0] == '.'
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
