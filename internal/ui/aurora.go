package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thesn0wdev/portfolio/internal/motion"
)

// AuroraBlobs is the number of animated background shapes.
const AuroraBlobs = 4

// blob is the resting geometry of one aurora shape, in fractions of the strip.
type blob struct {
	cx, cy float64
	rx, ry float64
}

var auroraBlobs = [AuroraBlobs]blob{
	{cx: 0.12, cy: 0.30, rx: 0.22, ry: 0.90},
	{cx: 0.42, cy: 0.75, rx: 0.18, ry: 0.80},
	{cx: 0.68, cy: 0.20, rx: 0.24, ry: 0.95},
	{cx: 0.90, cy: 0.70, rx: 0.16, ry: 0.85},
}

// intensity below this renders as blank space
const auroraFloor = 0.08

type auroraCell struct {
	glyph rune
	blob  int
}

// auroraCells rasterises the blobs into a width x height grid. Each blob is
// shifted by its transform's translation (percent of its radii), scaled, and
// rotated; every cell keeps the strongest blob covering it.
func auroraCells(width, height int, transforms []motion.Transform, glyphs []rune) [][]auroraCell {
	if width <= 0 || height <= 0 || len(glyphs) == 0 {
		return nil
	}
	grid := make([][]auroraCell, height)
	for y := range grid {
		grid[y] = make([]auroraCell, width)
		for x := range grid[y] {
			grid[y][x] = auroraCell{glyph: ' ', blob: -1}
		}
	}
	w, h := float64(width), float64(height)
	for i, b := range auroraBlobs {
		tr := motion.Identity()
		if i < len(transforms) {
			tr = transforms[i]
		}
		rx := b.rx * w * tr.Scale
		ry := b.ry * h * tr.Scale
		if rx <= 0 || ry <= 0 {
			continue
		}
		cx := b.cx*w + tr.X/100*rx
		cy := b.cy*h + tr.Y/100*ry
		sin, cos := math.Sincos(tr.Rotation * math.Pi / 180)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dx := float64(x) + 0.5 - cx
				dy := float64(y) + 0.5 - cy
				u := dx*cos + dy*sin
				v := -dx*sin + dy*cos
				d := math.Sqrt((u/rx)*(u/rx) + (v/ry)*(v/ry))
				level := 1 - d
				if level <= auroraFloor {
					continue
				}
				idx := int(level * float64(len(glyphs)))
				if idx >= len(glyphs) {
					idx = len(glyphs) - 1
				}
				cell := &grid[y][x]
				if cell.blob < 0 || glyphRank(glyphs, cell.glyph) < idx {
					*cell = auroraCell{glyph: glyphs[idx], blob: i}
				}
			}
		}
	}
	return grid
}

func glyphRank(glyphs []rune, g rune) int {
	for i, candidate := range glyphs {
		if candidate == g {
			return i
		}
	}
	return -1
}

// renderAurora draws the strip, colouring runs of cells by their blob.
func renderAurora(width, height int, transforms []motion.Transform, glyphs []rune, colors []lipgloss.Color) string {
	grid := auroraCells(width, height, transforms, glyphs)
	if grid == nil {
		return ""
	}
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].blob == row[start].blob {
				continue
			}
			b.WriteString(paintRun(row[start:x], colors))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func paintRun(run []auroraCell, colors []lipgloss.Color) string {
	text := make([]rune, len(run))
	for i, c := range run {
		text[i] = c.glyph
	}
	idx := run[0].blob
	if idx < 0 || idx >= len(colors) {
		return string(text)
	}
	return lipgloss.NewStyle().Foreground(colors[idx]).Render(string(text))
}

func (m *Model) auroraHeight() int {
	if m.height <= 0 {
		return 3
	}
	h := m.height / 6
	if h < 1 {
		return 1
	}
	if h > 5 {
		return 5
	}
	return h
}
