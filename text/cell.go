package text

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CellMeasurer measures text on a fixed character grid, the way a terminal
// renders it. Each grapheme cluster occupies one or two cells according to
// its East Asian width.
//
// A zero CellWidth means size/2 and a zero CellHeight means size.
type CellMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// Measure implements Measurer. The font is ignored.
func (m CellMeasurer) Measure(s string, _ FontID, size float64) Dimensions {
	cw, ch := m.CellWidth, m.CellHeight
	if cw == 0 {
		cw = size / 2
	}
	if ch == 0 {
		ch = size
	}
	return Dimensions{
		Width:  float64(Cells(s)) * cw,
		Height: ch,
	}
}

// Cells returns the number of terminal cells s occupies.
func Cells(s string) int {
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		// Emoji sequences report the sum of their parts.
		n += min(w, 2)
	}
	return n
}
