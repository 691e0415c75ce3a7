package ui

import (
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesn0wdev/portfolio/internal/content"
	"github.com/thesn0wdev/portfolio/internal/motion"
)

func TestNewModelStartsClosedWithoutPanel(t *testing.T) {
	m := newTestModel(t)
	if m.ActivePanel() != content.PanelNone {
		t.Fatalf("expected no active panel, got %q", m.ActivePanel())
	}
	state := m.Palette()
	if state.Open || state.Query != "" || state.Highlight != 0 || len(state.Filtered) != 4 {
		t.Fatalf("unexpected initial palette %+v", state)
	}
}

func TestHandlerRegistryCoversInputs(t *testing.T) {
	m := newTestModel(t)
	for _, msg := range []tea.Msg{tea.KeyMsg{}, tea.MouseMsg{}, tea.WindowSizeMsg{}, frameMsg{}, framesDoneMsg{}} {
		if m.handlerFor(msg) == nil {
			t.Fatalf("expected handler for %T", msg)
		}
	}
	if m.handlerFor(struct{}{}) != nil {
		t.Fatal("expected no handler for unknown message")
	}
}

func TestFrameAdvancesDriver(t *testing.T) {
	epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ranges := []motion.Range{{DX: 12, DY: 8, ScaleMin: 0.98, ScaleMax: 1.08, Rotation: 4, MinDuration: time.Second, MaxDuration: time.Second}}
	driver := motion.NewDriver(ranges, motion.WithRand(rand.New(rand.NewPCG(3, 4))), motion.WithStartJitter(0))
	driver.Start(epoch)
	tw, _ := driver.Tween(0)

	m := NewModel(Options{Width: 60, Height: 30, Driver: driver, Glyphs: testGlyphs})
	_, cmd := m.Update(frameMsg{at: epoch.Add(time.Second)})
	if cmd != nil {
		t.Fatal("expected no follow-up without a loop")
	}
	if got := m.Transforms()[0]; got != tw.To {
		t.Fatalf("expected element at target %+v, got %+v", tw.To, got)
	}
}

func TestWaitForFrameEndsWhenLoopStops(t *testing.T) {
	loop := motion.NewLoop(time.Millisecond)
	if _, ok := waitForFrame(loop)().(frameMsg); !ok {
		t.Fatal("expected a frame from the running loop")
	}
	loop.Stop()
	deadline := time.After(2 * time.Second)
	for {
		done := make(chan tea.Msg, 1)
		go func() { done <- waitForFrame(loop)() }()
		select {
		case msg := <-done:
			if _, ok := msg.(framesDoneMsg); ok {
				return
			}
		case <-deadline:
			t.Fatal("expected framesDoneMsg after stop")
		}
	}
}

func TestFramesDoneDetachesLoop(t *testing.T) {
	loop := motion.NewLoop(time.Hour)
	t.Cleanup(func() { loop.Stop() })
	m := NewModel(Options{Loop: loop, Glyphs: testGlyphs})
	m.Update(framesDoneMsg{})
	if m.loop != nil {
		t.Fatal("expected loop detached")
	}
	if _, cmd := m.Update(frameMsg{at: time.Now()}); cmd != nil {
		t.Fatal("expected no wait without a loop")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(Options{Width: 50, Glyphs: testGlyphs})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 33})
	if m.width != 50 || m.height != 33 {
		t.Fatalf("expected 50x33, got %dx%d", m.width, m.height)
	}
}
