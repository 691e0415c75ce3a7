package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesn0wdev/portfolio/internal/motion"
)

type frameMsg struct {
	at time.Time
}

type framesDoneMsg struct{}

func waitForFrame(l *motion.Loop) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-l.Frames()
		if !ok {
			return framesDoneMsg{}
		}
		return frameMsg{at: frame.Time}
	}
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(frameMsg)
	if !ok {
		return nil
	}
	m.driver.Advance(frame.at)
	if m.loop == nil {
		return nil
	}
	return waitForFrame(m.loop)
}

func (m *Model) handleFramesDoneMsg(tea.Msg) tea.Cmd {
	m.loop = nil
	return nil
}
