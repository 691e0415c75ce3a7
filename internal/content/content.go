// Package content holds the static portfolio data: navigation commands,
// projects, the about text, skills and contact links. The data ships inside
// the binary as TOML and is decoded once at startup; nothing mutates it
// afterwards.
package content

import (
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Panel identifies which content panel is visible. The zero value means no
// panel is active and the welcome card is shown.
type Panel string

const (
	PanelNone     Panel = ""
	PanelAbout    Panel = "about"
	PanelProjects Panel = "projects"
	PanelSkills   Panel = "skills"
	PanelContact  Panel = "contact"
)

// Panels lists every selectable panel in display order.
func Panels() []Panel {
	return []Panel{PanelAbout, PanelProjects, PanelSkills, PanelContact}
}

// Valid reports whether p is part of the closed panel set (including none).
func (p Panel) Valid() bool {
	return p == PanelNone || slices.Contains(Panels(), p)
}

// Command is a navigation target offered by the palette.
type Command struct {
	ID    Panel  `toml:"id"`
	Title string `toml:"title"`
	Hint  string `toml:"hint"`
}

// Project is a single entry of the projects panel.
type Project struct {
	Name string   `toml:"name"`
	Link string   `toml:"link"`
	Tags []string `toml:"tags"`
}

// HasLink reports whether the project points somewhere real.
func (p Project) HasLink() bool {
	link := strings.TrimSpace(p.Link)
	return link != "" && link != "#"
}

// Contact is a link shown on the contact panel.
type Contact struct {
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
	URL   string `toml:"url"`
}

type About struct {
	Markdown string `toml:"markdown"`
}

type Skills struct {
	Pills []string `toml:"pills"`
}

// Portfolio is the full static data table.
type Portfolio struct {
	Owner    string    `toml:"owner"`
	Tagline  string    `toml:"tagline"`
	Commands []Command `toml:"commands"`
	About    About     `toml:"about"`
	Projects []Project `toml:"projects"`
	Skills   Skills    `toml:"skills"`
	Contacts []Contact `toml:"contacts"`
}

//go:embed portfolio.toml
var embedded string

var (
	defaultOnce sync.Once
	defaultData *Portfolio
	defaultErr  error
)

// Load decodes a portfolio table and checks that every panel is reachable
// through exactly one command.
func Load(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	seen := make(map[Panel]struct{}, len(p.Commands))
	for _, cmd := range p.Commands {
		if !cmd.ID.Valid() {
			return nil, fmt.Errorf("command %q: unknown panel %q", cmd.Title, cmd.ID)
		}
		if _, dup := seen[cmd.ID]; dup && cmd.ID != PanelNone {
			return nil, fmt.Errorf("command %q: duplicate panel %q", cmd.Title, cmd.ID)
		}
		seen[cmd.ID] = struct{}{}
		if strings.TrimSpace(cmd.Title) == "" {
			return nil, fmt.Errorf("command for panel %q has no title", cmd.ID)
		}
	}
	for _, panel := range Panels() {
		if _, ok := seen[panel]; !ok {
			return nil, fmt.Errorf("no command opens panel %q", panel)
		}
	}
	return &p, nil
}

// Default returns the embedded portfolio, decoding it on first use.
func Default() (*Portfolio, error) {
	defaultOnce.Do(func() {
		defaultData, defaultErr = Load(strings.NewReader(embedded))
	})
	return defaultData, defaultErr
}

// MustDefault is Default for callers that treat a broken embedded table as a
// build defect.
func MustDefault() *Portfolio {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

// CommandFor returns the command that activates panel p.
func (p *Portfolio) CommandFor(panel Panel) (Command, bool) {
	for _, cmd := range p.Commands {
		if cmd.ID == panel {
			return cmd, true
		}
	}
	return Command{}, false
}

// Title returns a display title for the panel, falling back to the id.
func (p *Portfolio) Title(panel Panel) string {
	if cmd, ok := p.CommandFor(panel); ok {
		return cmd.Title
	}
	return string(panel)
}
