//go:build ebiten

package app

import (
	"image/color"
	"time"

	"leaffall/internal/field"
	"leaffall/internal/particle"
	"leaffall/internal/render"
	"leaffall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a leaf field to the ebiten.Game interface.
type Game struct {
	field   *field.Field
	painter *render.LeafPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	background color.Color
	leaves     []particle.Transform

	scale    float64
	tick     time.Duration
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided field. tps must match the rate set
// with ebiten.SetTPS since every Update advances the field by one tick.
func New(f *field.Field, leaf color.RGBA, scale float64, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		field:      f,
		painter:    render.NewLeafPainter(leaf),
		hud:        ui.NewHUD(f, hudWidth),
		overlay:    ui.NewOverlay(f, scale),
		background: color.RGBA{R: 24, G: 30, B: 38, A: 255},
		scale:      scale,
		tick:       time.Second / time.Duration(tps),
		seed:       f.Seed(),
	}
}

// Reset rebuilds the field with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.field.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the leaves by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.overlay.Toggle()
	}
	for key, speed := range map[ebiten.Key]particle.FallSpeed{
		ebiten.KeyDigit1: particle.Slow,
		ebiten.KeyDigit2: particle.Medium,
		ebiten.KeyDigit3: particle.Fast,
	} {
		if inpututil.IsKeyJustPressed(key) {
			g.field.SetSpeed(speed)
		}
	}

	if !g.paused || g.tickOnce {
		g.field.Step(g.tick)
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the leaves, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.leaves = g.field.Transforms(g.leaves)
	g.painter.Draw(screen, g.leaves, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.field.Scene()
	return int(float64(s.Width) * g.scale), int(float64(s.Height) * g.scale)
}
