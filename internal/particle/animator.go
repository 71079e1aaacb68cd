package particle

import (
	"time"

	"leaffall/internal/anim"
	"leaffall/internal/core"
)

// StartY is where every fall begins, just above the top edge of the scene.
const StartY = -50

// Animator drives one leaf. It owns three animated values (vertical
// position, spin phase and sway phase) and restarts all of them with a fresh
// configuration each time the fall completes.
type Animator struct {
	gen   *Generator
	scene core.Scene
	speed FallSpeed

	// Scene and speed changes apply from the next cycle.
	nextScene core.Scene
	nextSpeed FallSpeed

	cfg    Config
	cycles int

	y    *anim.Value
	spin *anim.Value
	sway *anim.Value

	fall     anim.Animation
	spinLoop anim.Animation
	swayLoop anim.Animation
}

// NewAnimator generates the initial configuration and launches the first
// cycle.
func NewAnimator(gen *Generator, scene core.Scene, speed FallSpeed) *Animator {
	speed = speed.Normalize()
	a := &Animator{
		gen:       gen,
		scene:     scene,
		speed:     speed,
		nextScene: scene,
		nextSpeed: speed,
		y:         anim.NewValue(StartY),
		spin:      anim.NewValue(0),
		sway:      anim.NewValue(0),
	}
	a.cfg = gen.Generate(scene, speed, true)
	a.launch()
	return a
}

// launch resets the three values and starts fresh animations for the current
// configuration.
func (a *Animator) launch() {
	a.y.Set(StartY)
	a.spin.Set(0)
	a.sway.Set(0)

	a.spinLoop = anim.NewLoop(anim.NewTiming(a.spin, 1, a.cfg.RotationDuration, anim.Linear))
	a.swayLoop = anim.NewLoop(anim.NewSequence(
		anim.NewTiming(a.sway, -1, a.cfg.SwayDuration, anim.Linear),
		anim.NewTiming(a.sway, 1, a.cfg.SwayDuration, anim.Linear),
	))
	a.fall = anim.NewSequence(
		anim.NewDelay(a.cfg.FallDelay),
		anim.NewTiming(a.y, float64(a.scene.Height), a.cfg.FallDuration, anim.Linear),
	)

	a.spinLoop.Start()
	a.swayLoop.Start()
	a.fall.Start()
}

// Step advances all three animations by dt. When the fall completes the
// configuration is regenerated and the leftover time runs in the new cycle.
func (a *Animator) Step(dt time.Duration) {
	for dt > 0 {
		a.spinLoop.Advance(dt)
		a.swayLoop.Advance(dt)
		rest, done := a.fall.Advance(dt)
		if !done {
			return
		}
		a.cycles++
		a.scene = a.nextScene
		a.speed = a.nextSpeed
		a.cfg = a.gen.Generate(a.scene, a.speed, false)
		a.launch()
		if rest == dt {
			// A zero-length cycle; wait for the next frame.
			return
		}
		dt = rest
	}
}

// SetScene changes the scene used from the next cycle on.
func (a *Animator) SetScene(scene core.Scene) { a.nextScene = scene }

// SetSpeed changes the fall speed used from the next cycle on.
func (a *Animator) SetSpeed(speed FallSpeed) { a.nextSpeed = speed.Normalize() }

// Config returns the configuration of the current cycle.
func (a *Animator) Config() Config { return a.cfg }

// Cycles reports how many falls have completed.
func (a *Animator) Cycles() int { return a.cycles }

// Falling reports whether the initial delay of the current cycle has passed.
func (a *Animator) Falling() bool { return a.y.Get() > StartY }

// Phases returns the raw animated values: vertical position, spin phase and
// sway phase.
func (a *Animator) Phases() (y, spin, sway float64) {
	return a.y.Get(), a.spin.Get(), a.sway.Get()
}

// Transform composes the current animated values with the configuration.
func (a *Animator) Transform() Transform {
	return Transform{
		X:        float64(a.cfg.X) + SwayOffset(a.sway.Get(), a.cfg.SwayAmplitude),
		Y:        a.y.Get(),
		Rotation: RotationDegrees(a.spin.Get(), a.cfg.RotationClockwise),
		Size:     a.cfg.Size,
		Opacity:  a.cfg.Opacity,
		Glyph:    a.cfg.Glyph,
	}
}
