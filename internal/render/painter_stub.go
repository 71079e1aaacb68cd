//go:build !ebiten

package render

import (
	"image/color"

	"leaffall/internal/particle"
)

// LeafPainter is a no-op placeholder for headless builds.
type LeafPainter struct{}

// NewLeafPainter returns a stub painter in the headless build.
func NewLeafPainter(color.RGBA) *LeafPainter { return &LeafPainter{} }

// Draw is a no-op in the headless build.
func (p *LeafPainter) Draw(any, []particle.Transform, float64) {}
