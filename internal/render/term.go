package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"leaffall/internal/particle"
)

// Terminal cells are roughly twice as tall as they are wide. Scene units map
// onto cells at this ratio so pixel-sized sway amplitudes still read well.
const (
	CellWidth  = 8
	CellHeight = 16
)

// TermPainter draws leaf transforms onto a tcell screen, one glyph per cell.
// Rotation has no terminal equivalent and is ignored.
type TermPainter struct {
	leaf       color.RGBA
	background tcell.Color
}

// NewTermPainter returns a painter using leaf as the glyph colour.
func NewTermPainter(leaf color.RGBA) *TermPainter {
	return &TermPainter{leaf: leaf, background: tcell.ColorBlack}
}

// Cell maps scene coordinates to a terminal cell.
func Cell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// Draw clears the screen and paints every visible leaf.
func (p *TermPainter) Draw(screen tcell.Screen, leaves []particle.Transform) {
	screen.Clear()
	w, h := screen.Size()
	for _, t := range leaves {
		col, row := Cell(t.X, t.Y)
		if col < 0 || row < 0 || col >= w || row >= h {
			continue
		}
		screen.SetContent(col, row, t.Glyph.Rune(), nil, p.style(t.Opacity))
	}
}

// style fades the glyph towards the background by its opacity.
func (p *TermPainter) style(opacity float64) tcell.Style {
	c := shade(p.leaf, opacity)
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(p.background)
}
