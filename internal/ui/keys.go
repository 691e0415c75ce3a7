package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings shown in the palette tips line and matched by the
// key handler. Line editing keys are handled separately in input.go.
type keyMap struct {
	Toggle  key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Close   key.Binding

	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

// alt+k stands in for Cmd+K, which terminals report as Meta.
func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+k", "alt+k"),
			key.WithHelp("ctrl+k", "toggle"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "copy link"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// paletteHelp satisfies help.KeyMap for the palette tips line.
type paletteHelp keyMap

func (k paletteHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Close, k.Toggle}
}

func (k paletteHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// panelHelp covers the keys available while the palette is closed.
type panelHelp keyMap

func (k panelHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Up, k.Down, k.Copy, k.Quit}
}

func (k panelHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Quit},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Copy},
	}
}

var (
	_ help.KeyMap = paletteHelp{}
	_ help.KeyMap = panelHelp{}
)
