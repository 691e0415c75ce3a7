package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Hero       *lipgloss.Style
	Tagline    *lipgloss.Style
	Button     *lipgloss.Style
	ButtonHint *lipgloss.Style

	Card        *lipgloss.Style
	CardTitle   *lipgloss.Style
	TrafficRed  *lipgloss.Style
	TrafficAmb  *lipgloss.Style
	TrafficGrn  *lipgloss.Style
	Body        *lipgloss.Style
	Link        *lipgloss.Style
	Tag         *lipgloss.Style
	Pill        *lipgloss.Style
	ListCursor  *lipgloss.Style
	ListRowSel  *lipgloss.Style
	PanelFooter *lipgloss.Style

	Palette           *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	Row               *lipgloss.Style
	RowHint           *lipgloss.Style
	RowSelected       *lipgloss.Style
	RowSelectedHint   *lipgloss.Style
	NoResults         *lipgloss.Style
	Tips              *lipgloss.Style

	Error  *lipgloss.Style
	Info   *lipgloss.Style
	Footer *lipgloss.Style

	// Aurora holds one colour per ambient blob.
	Aurora []lipgloss.Color
}

var defaultStyles = Styles{
	Hero: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Tagline: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Padding(0, 2),
	),
	ButtonHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Card: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	),
	CardTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	TrafficRed: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	),
	TrafficAmb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	),
	TrafficGrn: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Underline(true),
	),
	Tag: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Pill: ptr(
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			MarginRight(1),
	),
	ListCursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	ListRowSel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	PanelFooter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Palette: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("63")).Blink(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	RowHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	RowSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	RowSelectedHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")),
	),
	NoResults: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
	),
	Tips: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Aurora: []lipgloss.Color{
		lipgloss.Color("99"),
		lipgloss.Color("39"),
		lipgloss.Color("170"),
		lipgloss.Color("43"),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// Shade glyphs ordered from faint to dense.
var (
	blockGlyphs = []rune{'░', '▒', '▓', '█'}
	asciiGlyphs = []rune{'.', ':', '*', '#'}
)

// Glyphs returns the aurora density ramp for the given colour profile. Plain
// ASCII terminals get characters that survive without Unicode block support.
func Glyphs(profile termenv.Profile) []rune {
	if profile == termenv.Ascii {
		return asciiGlyphs
	}
	return blockGlyphs
}

// DetectGlyphs inspects the environment's colour profile.
func DetectGlyphs() []rune {
	return Glyphs(termenv.EnvColorProfile())
}
