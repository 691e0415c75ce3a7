package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestWelcomeViewShowsHeroAndFooter(t *testing.T) {
	h := NewHarness(newTestModel(t))
	view := plainView(h)
	for _, want := range []string{"<TheSn0wDev/>", "Ctrl+K", "Welcome", "Open ⌘K", "© 2025 · Made with Go + Bubble Tea"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestFooterCanBeDisabled(t *testing.T) {
	m := NewModel(Options{Width: 80, Height: 40, Glyphs: testGlyphs})
	if strings.Contains(ansi.Strip(m.View()), "Made with Go") {
		t.Fatal("expected footer hidden")
	}
}

func TestPaletteOverlayListsCommands(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Press("ctrl+k")
	view := plainView(h)
	for _, want := range []string{"About", "Who I am", "GitHub highlights", "Email & socials", "esc close"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in palette view:\n%s", want, view)
		}
	}
}

func TestViewFitsHeight(t *testing.T) {
	m := NewModel(Options{Width: 60, Height: 12, ShowFooter: true, Glyphs: testGlyphs})
	if lines := strings.Count(m.View(), "\n") + 1; lines > 12 {
		t.Fatalf("expected at most 12 lines, got %d", lines)
	}
}

func TestInfoMessageExpires(t *testing.T) {
	m := newTestModel(t)
	m.setInfo("Copied")
	if m.currentInfo() != "Copied" {
		t.Fatal("expected info message")
	}
	m.now = func() time.Time { return fixedNow.Add(infoTTL + time.Second) }
	if m.currentInfo() != "" {
		t.Fatal("expected info message to expire")
	}
}

func TestOverlayKeepsSurroundings(t *testing.T) {
	base := "0123456789\nabcdefghij\nKLMNOPQRST"
	got := overlay(base, "XX\nYY", 10, 1)
	lines := strings.Split(ansi.Strip(got), "\n")
	if lines[0] != "0123456789" {
		t.Fatalf("expected first line untouched, got %q", lines[0])
	}
	if lines[1] != "abcdXXghij" || lines[2] != "KLMNYYQRST" {
		t.Fatalf("unexpected overlay %q", lines)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("portfolio", 5); ansi.StringWidth(got) > 5 || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("ok", 5); got != "ok" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
