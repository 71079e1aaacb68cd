//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"leaffall/internal/particle"
)

// LeafPainter draws leaf transforms with one cached image per glyph.
type LeafPainter struct {
	images map[particle.Glyph]*ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewLeafPainter rasterizes every glyph in the given colour.
func NewLeafPainter(leaf color.RGBA) *LeafPainter {
	p := &LeafPainter{images: make(map[particle.Glyph]*ebiten.Image)}
	for _, g := range particle.Glyphs() {
		s := NewSprite(g, leaf)
		img := ebiten.NewImage(s.W, s.H)
		img.WritePixels(s.Pix)
		p.images[g] = img
	}
	return p
}

// Draw paints leaves onto dst. Each sprite is scaled to the leaf's size,
// rotated about its centre and faded by its opacity.
func (p *LeafPainter) Draw(dst *ebiten.Image, leaves []particle.Transform, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	for _, t := range leaves {
		img, ok := p.images[t.Glyph]
		if !ok {
			continue
		}
		half := float64(SpriteSize) / 2
		size := float64(t.Size) / SpriteSize

		p.op.GeoM.Reset()
		p.op.ColorScale.Reset()
		p.op.GeoM.Translate(-half, -half)
		p.op.GeoM.Rotate(t.Rotation * math.Pi / 180)
		p.op.GeoM.Scale(size, size)
		p.op.GeoM.Translate(t.X+float64(t.Size)/2, t.Y+float64(t.Size)/2)
		p.op.GeoM.Scale(scale, scale)
		p.op.ColorScale.ScaleAlpha(float32(t.Opacity))
		p.op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, &p.op)
	}
}
