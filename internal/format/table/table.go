// Package table lays out rows of cells in padded columns. Widths are measured
// in terminal cells, so styled cells line up with plain ones.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const (
	gap = "  "
	// softFloor is the width every column keeps before any column goes lower.
	softFloor = 8
)

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	return render(rows, alignments, columnWidths(rows))
}

// Fit behaves like Format but keeps every line within total cells. Columns
// give up width from the last one backwards, first down to softFloor and then
// down to a single cell; shrunk cells end with an ellipsis. Lines are cut
// hard only when even that is too wide.
func Fit(rows [][]string, alignments []Alignment, total int) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	excess := lineWidth(widths) - total
	if total <= 0 || excess <= 0 {
		return render(rows, alignments, widths)
	}
	clipped := make([][]string, len(rows))
	for i, row := range rows {
		clipped[i] = append([]string(nil), row...)
	}
	for _, floor := range []int{softFloor, 1} {
		for c := len(widths) - 1; c >= 0 && excess > 0; c-- {
			cut := min(excess, widths[c]-floor)
			if cut <= 0 {
				continue
			}
			widths[c] -= cut
			excess -= cut
			for _, row := range clipped {
				if c < len(row) && cellWidth(row[c]) > widths[c] {
					row[c] = clip(row[c], widths[c])
				}
			}
		}
	}
	lines := render(clipped, alignments, widths)
	if excess > 0 {
		for i, line := range lines {
			lines[i] = truncate.String(line, uint(total))
		}
	}
	return lines
}

func lineWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	w := len(gap) * (len(widths) - 1)
	for _, cw := range widths {
		w += cw
	}
	return w
}

func clip(cell string, width int) string {
	if width <= 1 {
		return truncate.String(cell, uint(width))
	}
	return truncate.StringWithTail(cell, uint(width), "…")
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func render(rows [][]string, alignments []Alignment, widths []int) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(gap)
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			// trailing padding on the final column only adds noise
			if c < len(row)-1 {
				writeSpaces(&b, pad)
			}
		}
		out[i] = b.String()
	}
	return out
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
