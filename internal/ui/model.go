package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/thesn0wdev/portfolio/internal/content"
	"github.com/thesn0wdev/portfolio/internal/motion"
	"github.com/thesn0wdev/portfolio/internal/palette"
	"github.com/thesn0wdev/portfolio/internal/theme"
	"github.com/thesn0wdev/portfolio/internal/ui/command"
	uistate "github.com/thesn0wdev/portfolio/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Content    *content.Portfolio
	Width      int
	Height     int
	ShowFooter bool

	// Driver animates the aurora. A nil driver renders it static.
	Driver *motion.Driver
	// Loop supplies frames to Driver. It may be nil when motion is disabled.
	Loop   *motion.Loop
	Zones  *zone.Manager
	Glyphs []rune
}

// Model implements the Bubble Tea model for the portfolio.
type Model struct {
	content *content.Portfolio
	palette *palette.Controller
	active  content.Panel
	lists   map[content.Panel]*uistate.List

	driver *motion.Driver
	loop   *motion.Loop
	glyphs []rune

	zones hitZones
	keys  keyMap
	help  help.Model
	bus   *command.Bus

	filterCursor      cursor.Model
	filterCursorDirty bool
	filterFocused     bool

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	now         func() time.Time

	aboutWidth    int
	aboutRendered string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with no active panel and the palette closed.
func NewModel(opts Options) *Model {
	data := opts.Content
	if data == nil {
		data = content.MustDefault()
	}
	driver := opts.Driver
	if driver == nil {
		driver = motion.NewDriver(motion.DefaultRanges(AuroraBlobs), motion.WithReducedMotion(true))
	}
	glyphs := opts.Glyphs
	if len(glyphs) == 0 {
		glyphs = theme.DetectGlyphs()
	}
	m := &Model{
		content:    data,
		palette:    palette.NewController(data.Commands),
		lists:      buildLists(data),
		driver:     driver,
		loop:       opts.Loop,
		glyphs:     glyphs,
		zones:      newManagedZones(opts.Zones),
		keys:       defaultKeyMap(),
		help:       help.New(),
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		now:        time.Now,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

func buildLists(data *content.Portfolio) map[content.Panel]*uistate.List {
	projects := make([]uistate.Row, len(data.Projects))
	for i, p := range data.Projects {
		row := uistate.Row{ID: p.Name, Label: p.Name}
		if p.HasLink() {
			row.Target = p.Link
		}
		projects[i] = row
	}
	contacts := make([]uistate.Row, len(data.Contacts))
	for i, c := range data.Contacts {
		contacts[i] = uistate.Row{ID: c.Label, Label: c.Label, Target: c.URL}
	}
	return map[content.Panel]*uistate.List{
		content.PanelProjects: uistate.NewList(string(content.PanelProjects), projects),
		content.PanelContact:  uistate.NewList(string(content.PanelContact), contacts),
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loop != nil {
		cmds = append(cmds, waitForFrame(m.loop))
	}
	m.filterFocused = true
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return batch(cmds)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// registerHandlers installs the message routing table. It runs once per model,
// so the keyboard handler is attached exactly once for the program's lifetime.
func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(framesDoneMsg{}):     m.handleFramesDoneMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResult,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		// an unfocused caret never blinks, so there is no timer to restart
		if m.filterFocused {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return batch(cmds)
}

func batch(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// ActivePanel returns the panel currently shown, or content.PanelNone.
func (m *Model) ActivePanel() content.Panel {
	return m.active
}

// Palette returns a snapshot of the command palette.
func (m *Model) Palette() palette.State {
	return m.palette.Snapshot()
}

// Transforms returns the aurora transforms of the latest frame.
func (m *Model) Transforms() []motion.Transform {
	return m.driver.Transforms()
}

func (m *Model) activeList() *uistate.List {
	return m.lists[m.active]
}
