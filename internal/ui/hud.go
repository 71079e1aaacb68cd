//go:build ebiten

package ui

import (
	"image/color"

	"leaffall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders a translucent parameter panel in the top-left corner.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	visible  bool
}

// NewHUD constructs a HUD for the provided sim and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached parameter snapshot from the sim.
func (h *HUD) Update() {
	if h == nil || !h.visible {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	lines := 1
	for _, g := range h.snapshot.Groups {
		lines += 1 + len(g.Params)
	}
	height := lines*lineHeight + panelPadding*2
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})
	h.drawSnapshot()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawSnapshot() {
	face := basicfont.Face7x13
	y := panelPadding + 12
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, g := range h.snapshot.Groups {
		y += lineHeight
		header := g.Name
		if g.Summary != "" {
			header += "  " + g.Summary
		}
		text.Draw(h.panel, header, face, panelPadding, y, color.RGBA{R: 150, G: 180, B: 150, A: 255})
		for _, p := range g.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding+8, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 255, G: 220, B: 120, A: 255})
		}
	}
}
