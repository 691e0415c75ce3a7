package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesn0wdev/portfolio/internal/logging"
	"github.com/thesn0wdev/portfolio/internal/logging/events"
	"github.com/thesn0wdev/portfolio/internal/ui/command"
)

func (m *Model) handleCommandResult(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	events.Action.Success(result.Info)
	return nil
}
