//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"leaffall/internal/core"
	"leaffall/internal/particle"

	"github.com/hajimehoshi/ebiten/v2"
)

type leafProvider interface {
	Leaves() []*particle.Animator
}

// Overlay draws debugging visuals on top of the leaves: each leaf's anchor
// and the span its sway covers.
type Overlay struct {
	sim     core.Sim
	scale   float64
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay(sim core.Sim, scale float64) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	provider, ok := o.sim.(leafProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	for _, leaf := range provider.Leaves() {
		if !leaf.Falling() {
			continue
		}
		cfg := leaf.Config()
		y, _, _ := leaf.Phases()
		anchor := float64(cfg.X)
		left := anchor + particle.SwayOffset(1, cfg.SwayAmplitude)
		right := anchor + particle.SwayOffset(-1, cfg.SwayAmplitude)
		col := color.RGBA{R: 90, G: 130, B: 170, A: 140}
		o.drawLine(screen, left*scale, y*scale, right*scale, y*scale, 1, col)
		o.drawPoint(screen, anchor*scale, y*scale, 3, color.RGBA{R: 255, G: 120, B: 40, A: 200})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
