package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/thesn0wdev/portfolio/internal/motion"
)

func identities(n int) []motion.Transform {
	out := make([]motion.Transform, n)
	for i := range out {
		out[i] = motion.Identity()
	}
	return out
}

func TestAuroraUsesOnlyRampGlyphs(t *testing.T) {
	out := ansi.Strip(renderAurora(60, 4, identities(AuroraBlobs), testGlyphs, nil))
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w != 60 {
			t.Fatalf("expected 60 cells, got %d in %q", w, line)
		}
		for _, r := range line {
			if !strings.ContainsRune(" .:*#", r) {
				t.Fatalf("unexpected glyph %q in %q", r, line)
			}
		}
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("expected some blob to be visible")
	}
}

func TestAuroraIsDeterministicAtRest(t *testing.T) {
	a := renderAurora(40, 3, identities(AuroraBlobs), testGlyphs, nil)
	b := renderAurora(40, 3, nil, testGlyphs, nil)
	if a != b {
		t.Fatalf("expected missing transforms to render as identity:\n%s\nvs\n%s", a, b)
	}
}

func TestAuroraMovesWithTransform(t *testing.T) {
	rest := identities(AuroraBlobs)
	moved := identities(AuroraBlobs)
	moved[0].X = 16
	moved[0].Scale = 1.08
	if renderAurora(60, 4, rest, testGlyphs, nil) == renderAurora(60, 4, moved, testGlyphs, nil) {
		t.Fatal("expected a translated blob to change the strip")
	}
}

func TestAuroraEmptySizes(t *testing.T) {
	if renderAurora(0, 3, nil, testGlyphs, nil) != "" || renderAurora(10, 0, nil, testGlyphs, nil) != "" {
		t.Fatal("expected empty strip for zero sizes")
	}
}

func TestReducedMotionAuroraStaysStill(t *testing.T) {
	driver := motion.NewDriver(motion.DefaultRanges(AuroraBlobs), motion.WithReducedMotion(true))
	if driver.Start(time.Now()) {
		t.Fatal("expected reduced motion to refuse to start")
	}
	m := NewModel(Options{Width: 60, Height: 30, Driver: driver, Glyphs: testGlyphs})
	before := m.View()
	m.Update(frameMsg{at: time.Now().Add(3 * time.Second)})
	if after := m.View(); after != before {
		t.Fatal("expected static aurora under reduced motion")
	}
}
