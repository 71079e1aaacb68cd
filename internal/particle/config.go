// Package particle generates falling-leaf configurations and drives a single
// leaf through its fall, spin and sway animations.
package particle

import (
	"time"

	"leaffall/internal/core"
)

// Rand is the random source a Generator draws from. IntRange returns a
// uniform integer with both bounds inclusive.
type Rand interface {
	IntRange(min, max int) int
}

// Params holds the ranges configurations are drawn from. All durations are
// whole milliseconds.
type Params struct {
	SizeMin int `yaml:"sizeMin"`
	SizeMax int `yaml:"sizeMax"`

	// Opacity is drawn in tenths.
	OpacityTenthsMin int `yaml:"opacityTenthsMin"`
	OpacityTenthsMax int `yaml:"opacityTenthsMax"`

	FallDurations map[FallSpeed]Range `yaml:"fallDurations"`

	FallDelayMin        int `yaml:"fallDelayMin"`
	FallDelayMax        int `yaml:"fallDelayMax"`
	InitialFallDelayMax int `yaml:"initialFallDelayMax"`

	RotationDuration Range `yaml:"rotationDuration"`

	SwayDuration  Range `yaml:"swayDuration"`
	SwayAmplitude Range `yaml:"swayAmplitude"`
}

// DefaultParams returns the standard ranges.
func DefaultParams() Params {
	return Params{
		SizeMin:          10,
		SizeMax:          18,
		OpacityTenthsMin: 4,
		OpacityTenthsMax: 10,
		FallDurations: map[FallSpeed]Range{
			Fast:   {Min: 8000, Max: 15000},
			Medium: {Min: 15000, Max: 30000},
			Slow:   {Min: 30000, Max: 60000},
		},
		FallDelayMin:        500,
		FallDelayMax:        10000,
		InitialFallDelayMax: 20000,
		RotationDuration:    Range{Min: 200, Max: 300},
		SwayDuration:        Range{Min: 2000, Max: 4000},
		SwayAmplitude:       Range{Min: -300, Max: -150},
	}
}

// Repair fixes inverted ranges by raising each maximum to its minimum and
// fills in any missing fall speed from the defaults.
func (p Params) Repair() Params {
	if p.SizeMax < p.SizeMin {
		p.SizeMax = p.SizeMin
	}
	if p.OpacityTenthsMax < p.OpacityTenthsMin {
		p.OpacityTenthsMax = p.OpacityTenthsMin
	}
	if p.FallDelayMax < p.FallDelayMin {
		p.FallDelayMax = p.FallDelayMin
	}
	if p.InitialFallDelayMax < p.FallDelayMin {
		p.InitialFallDelayMax = p.FallDelayMin
	}
	defaults := DefaultParams().FallDurations
	fall := make(map[FallSpeed]Range, len(FallSpeeds))
	for _, s := range FallSpeeds {
		r, ok := p.FallDurations[s]
		if !ok {
			r = defaults[s]
		}
		fall[s] = r.repair()
	}
	p.FallDurations = fall
	p.RotationDuration = p.RotationDuration.repair()
	p.SwayDuration = p.SwayDuration.repair()
	p.SwayAmplitude = p.SwayAmplitude.repair()
	return p
}

// Config is the full set of randomized parameters for one fall cycle. It is
// replaced wholesale when the cycle ends.
type Config struct {
	Size              int           `yaml:"size"`
	Opacity           float64       `yaml:"opacity"`
	Glyph             Glyph         `yaml:"glyph"`
	X                 int           `yaml:"x"`
	FallDuration      time.Duration `yaml:"fallDuration"`
	FallDelay         time.Duration `yaml:"fallDelay"`
	RotationDuration  time.Duration `yaml:"rotationDuration"`
	RotationClockwise bool          `yaml:"rotationClockwise"`
	SwayDuration      time.Duration `yaml:"swayDuration"`
	SwayAmplitude     int           `yaml:"swayAmplitude"`
}

// Generator produces configurations from a random source.
type Generator struct {
	rng    Rand
	params Params
}

// NewGenerator returns a Generator drawing from rng with the given params.
func NewGenerator(rng Rand, params Params) *Generator {
	return &Generator{rng: rng, params: params.Repair()}
}

// Params returns the ranges the generator draws from.
func (g *Generator) Params() Params { return g.params }

// Generate draws a fresh configuration. initial widens the delay range and is
// meant for the first cycle only. Unknown speeds fall back to Medium.
func (g *Generator) Generate(scene core.Scene, speed FallSpeed, initial bool) Config {
	p := g.params
	fall := p.FallDurations[speed.Normalize()]
	width := scene.Width
	if width < 0 {
		width = 0
	}
	delayMax := p.FallDelayMax
	if initial {
		delayMax = p.InitialFallDelayMax
	}

	var c Config
	c.Size = g.rng.IntRange(p.SizeMin, p.SizeMax)
	c.Opacity = float64(g.rng.IntRange(p.OpacityTenthsMin, p.OpacityTenthsMax)) / 10
	c.Glyph = Glyph(g.rng.IntRange(0, int(glyphCount)-1))
	c.X = g.rng.IntRange(0, width)
	c.FallDuration = ms(g.rng.IntRange(fall.Min, fall.Max))
	c.FallDelay = ms(g.rng.IntRange(p.FallDelayMin, delayMax))
	c.RotationDuration = ms(g.rng.IntRange(p.RotationDuration.Min, p.RotationDuration.Max))
	// The direction draw collapses to a single value, so every leaf turns
	// counter-clockwise.
	c.RotationClockwise = g.rng.IntRange(0, 0) != 0
	c.SwayDuration = ms(g.rng.IntRange(p.SwayDuration.Min, p.SwayDuration.Max))
	c.SwayAmplitude = g.rng.IntRange(p.SwayAmplitude.Min, p.SwayAmplitude.Max)
	return c
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
