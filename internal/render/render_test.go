package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"leaffall/internal/particle"
)

func TestLeafMasksAreSquare(t *testing.T) {
	for _, g := range particle.Glyphs() {
		mask, ok := leafMasks[g]
		if !ok {
			t.Fatalf("no mask for %v", g)
		}
		for y, row := range mask {
			if len(row) != SpriteSize {
				t.Fatalf("%v row %d has width %d, want %d", g, y, len(row), SpriteSize)
			}
		}
	}
}

func TestNewSpriteUsesPalette(t *testing.T) {
	body := color.RGBA{R: 200, G: 100, B: 40, A: 255}
	s := NewSprite(particle.GlyphMapleLeaf, body)
	if s.W != SpriteSize || s.H != SpriteSize || len(s.Pix) != 4*SpriteSize*SpriteSize {
		t.Fatalf("sprite %dx%d with %d bytes", s.W, s.H, len(s.Pix))
	}
	at := func(x, y int) color.RGBA {
		i := 4 * (y*s.W + x)
		return color.RGBA{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
	}
	if got := at(0, 0); got != (color.RGBA{}) {
		t.Fatalf("corner = %+v, want transparent", got)
	}
	if got := at(7, 0); got != body {
		t.Fatalf("tip = %+v, want body", got)
	}
	if got := at(7, 11); got != shade(body, 0.65) {
		t.Fatalf("stem = %+v, want vein colour", got)
	}
}

func TestFillPaletteRGBAClampsAndClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{0, 5}, []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}})
	if buf[4+1] != 2 {
		t.Fatalf("out of range index should use last entry, got %v", buf)
	}
	fillPaletteRGBA(buf, []uint8{0, 1}, nil)
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette must clear, got %v", buf)
		}
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{15.9, 31.9, 1, 1},
		{16, 32, 2, 2},
		{-0.5, -50, -1, -4},
	}
	for _, tt := range tests {
		col, row := Cell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("Cell(%v,%v) = %d,%d want %d,%d", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestTermPainterDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 10)

	p := NewTermPainter(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	p.Draw(screen, []particle.Transform{
		{X: 3 * CellWidth, Y: 2 * CellHeight, Glyph: particle.GlyphMapleLeaf, Opacity: 1},
		{X: 10 * CellWidth, Y: -40, Glyph: particle.GlyphFallenLeaf, Opacity: 1},
		{X: 500 * CellWidth, Y: 0, Glyph: particle.GlyphFallenLeaf, Opacity: 1},
	})
	screen.Show()

	r, _, style, _ := screen.GetContent(3, 2)
	if r != '🍁' {
		t.Fatalf("cell (3,2) = %q, want maple leaf", r)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Fatalf("foreground = %v, want white", fg)
	}
	if r, _, _, _ := screen.GetContent(10, 0); r == '🍂' {
		t.Fatal("leaf above the screen must not be drawn")
	}
}

func TestTermPainterFadesByOpacity(t *testing.T) {
	p := NewTermPainter(color.RGBA{R: 200, G: 100, B: 50, A: 255})
	fg, _, _ := p.style(0.5).Decompose()
	if fg != tcell.NewRGBColor(100, 50, 25) {
		t.Fatalf("foreground = %v, want half intensity", fg)
	}
}
