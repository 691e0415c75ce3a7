package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const (
	zonePalette    = "palette"
	zoneHeroButton = "open-hero"
	zoneCardButton = "open-card"
	paletteRowZone = "palette-row:"
	panelRowZone   = "panel-row:"
)

func paletteRowID(index int) string { return paletteRowZone + strconv.Itoa(index) }

func panelRowID(index int) string { return panelRowZone + strconv.Itoa(index) }

// hitZones marks rendered regions and answers pointer hit tests against them.
type hitZones interface {
	Mark(id, v string) string
	Scan(v string) string
	Hit(id string, msg tea.MouseMsg) bool
}

// managedZones adapts a bubblezone manager.
type managedZones struct {
	manager *zone.Manager
}

func newManagedZones(manager *zone.Manager) hitZones {
	if manager == nil {
		return inertZones{}
	}
	return managedZones{manager: manager}
}

func (z managedZones) Mark(id, v string) string { return z.manager.Mark(id, v) }

func (z managedZones) Scan(v string) string { return z.manager.Scan(v) }

func (z managedZones) Hit(id string, msg tea.MouseMsg) bool {
	zi := z.manager.Get(id)
	return zi != nil && zi.InBounds(msg)
}

// inertZones is used when no manager is supplied, e.g. when rendering once
// outside a running program. Nothing is ever hit.
type inertZones struct{}

func (inertZones) Mark(_, v string) string { return v }

func (inertZones) Scan(v string) string { return v }

func (inertZones) Hit(string, tea.MouseMsg) bool { return false }
