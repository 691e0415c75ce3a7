package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/thesn0wdev/portfolio/internal/content"
	"github.com/thesn0wdev/portfolio/internal/logging/events"
	"github.com/thesn0wdev/portfolio/internal/motion"
	"github.com/thesn0wdev/portfolio/internal/theme"
	"github.com/thesn0wdev/portfolio/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	FPS        int
	// ReducedMotion is queried once at startup.
	ReducedMotion motion.Signal `json:"-"`
}

// Motion holds the animation pieces for one program run.
type Motion struct {
	Driver *motion.Driver
	Loop   *motion.Loop
}

// Stop cancels the frame loop. It reports whether this call stopped it.
func (m Motion) Stop() bool {
	return m.Loop.Stop()
}

// StartMotion builds the aurora driver and, unless reduced motion is
// preferred, starts it together with a frame loop.
func StartMotion(cfg Config, now time.Time) Motion {
	driver := motion.NewDriver(
		motion.DefaultRanges(ui.AuroraBlobs),
		motion.WithReducedMotion(motion.PrefersReduced(cfg.ReducedMotion)),
	)
	if !driver.Start(now) {
		reason := "no elements"
		if driver.Reduced() {
			reason = "reduced motion preferred"
		}
		events.Motion.Disabled(reason)
		return Motion{Driver: driver}
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = motion.DefaultFPS
	}
	events.Motion.Start(driver.Len(), fps)
	return Motion{Driver: driver, Loop: motion.NewLoop(motion.IntervalForFPS(fps))}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	mo := StartMotion(cfg, time.Now())
	defer func() {
		if mo.Loop != nil {
			events.Motion.Stop(mo.Stop())
		}
	}()

	zones := zone.New()
	defer zones.Close()

	model := ui.NewModel(ui.Options{
		Content:    content.MustDefault(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Driver:     mo.Driver,
		Loop:       mo.Loop,
		Zones:      zones,
		Glyphs:     theme.DetectGlyphs(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
