package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/thesn0wdev/portfolio/internal/content"
)

func newNarrowModel(t *testing.T, width, height int) *Model {
	t.Helper()
	m := newTestModel(t)
	m.width, m.height = width, height
	return m
}

func assertLinesFit(t *testing.T, view string, width int) {
	t.Helper()
	for i, line := range strings.Split(view, "\n") {
		if w := ansi.StringWidth(line); w > width {
			t.Fatalf("line %d is %d cells wide, expected at most %d: %q", i, w, width, ansi.Strip(line))
		}
	}
}

func TestNarrowProjectsListKeepsCursorVisible(t *testing.T) {
	h := NewHarness(newNarrowModel(t, 30, 30))
	h.Press("ctrl+k")
	h.Type("pro")
	h.Press("enter")
	if h.Model().ActivePanel() != content.PanelProjects {
		t.Fatalf("expected projects panel, got %q", h.Model().ActivePanel())
	}
	last := len(h.Model().content.Projects) - 1
	for i := 0; i < last; i++ {
		h.Press("down")
		view := h.View()
		assertLinesFit(t, view, 30)
		if lines := strings.Count(view, "\n") + 1; lines > 30 {
			t.Fatalf("expected at most 30 lines, got %d", lines)
		}
		row, _ := h.Model().activeList().Current()
		// long names are clipped, so match on a prefix
		prefix := row.Label[:min(8, len(row.Label))]
		if !strings.Contains(ansi.Strip(view), "› "+prefix) {
			t.Fatalf("cursor %d (%s) not on screen:\n%s", h.Model().activeList().Cursor, row.Label, ansi.Strip(view))
		}
	}
	if got := h.Model().activeList().Cursor; got != last {
		t.Fatalf("expected cursor %d, got %d", last, got)
	}
	view := ansi.Strip(h.View())
	if !strings.Contains(view, "› pass-gen") || !strings.Contains(view, "↑ more") {
		t.Fatalf("expected last project selected below a more marker:\n%s", view)
	}
}

func TestNarrowProjectRowsDoNotWrap(t *testing.T) {
	h := NewHarness(newNarrowModel(t, 30, 0))
	h.Press("ctrl+k")
	h.Type("pro")
	h.Press("enter")
	view := ansi.Strip(h.View())
	assertLinesFit(t, view, 30)
	for _, line := range strings.Split(view, "\n") {
		if strings.TrimSpace(strings.Trim(line, "│ ")) == "…" {
			t.Fatalf("found a wrapped tail line in:\n%s", view)
		}
	}
	if strings.Contains(view, "more") {
		t.Fatalf("expected every row without a height limit:\n%s", view)
	}
}

func TestHeroDropsHintOnNarrowLayouts(t *testing.T) {
	for _, width := range []int{24, 30} {
		m := newNarrowModel(t, width, 40)
		hero := ansi.Strip(m.renderHero())
		if strings.Contains(hero, "open the command palette") {
			t.Fatalf("width %d: expected hint dropped, got %q", width, hero)
		}
		if !strings.Contains(hero, "Ctrl+K") {
			t.Fatalf("width %d: expected shortcut button, got %q", width, hero)
		}
		assertLinesFit(t, m.renderHero(), width)
	}
	wide := ansi.Strip(newNarrowModel(t, 80, 40).renderHero())
	if !strings.Contains(wide, "open the command palette") {
		t.Fatalf("expected hint at full width, got %q", wide)
	}
}

func TestListsUseTagAndLinkStyles(t *testing.T) {
	m := newTestModel(t)
	plain := m.projectCells(false)
	if plain[0][1] != strings.Join(m.content.Projects[0].Tags, " · ") {
		t.Fatalf("unexpected plain tag cell %q", plain[0][1])
	}
	styled := m.projectCells(true)
	if want := render(styles.Tag, plain[0][1]); styled[0][1] != want {
		t.Fatalf("expected tag style on %q, got %q", plain[0][1], styled[0][1])
	}
	links := m.contactCells(true)
	if want := render(styles.Link, m.content.Contacts[0].URL); links[0][1] != want {
		t.Fatalf("expected link style, got %q", links[0][1])
	}
	if m.contactCells(false)[0][1] != m.content.Contacts[0].URL {
		t.Fatal("expected plain url for the cursor row")
	}
}
