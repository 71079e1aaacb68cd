// Package field hosts a set of independent leaf animators over one scene.
package field

import (
	"fmt"
	"strconv"
	"time"

	"leaffall/internal/core"
	"leaffall/internal/particle"
)

// Config controls the leaf field.
type Config struct {
	Scene core.Scene
	Count int
	Speed particle.FallSpeed
	Seed  int64

	Params particle.Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Scene:  core.Scene{Width: 360, Height: 640},
		Count:  24,
		Speed:  particle.Medium,
		Seed:   42,
		Params: particle.DefaultParams(),
	}
}

// Field owns Count leaves. The leaves share a random source but never read
// each other's state.
type Field struct {
	cfg     Config
	seed    int64
	gen     *particle.Generator
	leaves  []*particle.Animator
	elapsed time.Duration
}

// New returns a Field seeded from cfg.Seed.
func New(cfg Config) *Field {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	cfg.Speed = cfg.Speed.Normalize()
	f := &Field{cfg: cfg}
	f.Reset(0)
	return f
}

// Name returns the sim identifier.
func (f *Field) Name() string { return "leaves" }

// Scene returns the scene the leaves fall through.
func (f *Field) Scene() core.Scene { return f.cfg.Scene }

// Reset rebuilds every leaf. A zero seed reuses the configured one.
func (f *Field) Reset(seed int64) {
	if seed == 0 {
		seed = f.cfg.Seed
	}
	f.seed = seed
	f.elapsed = 0
	f.gen = particle.NewGenerator(core.NewRNG(seed), f.cfg.Params)
	f.leaves = make([]*particle.Animator, f.cfg.Count)
	for i := range f.leaves {
		f.leaves[i] = particle.NewAnimator(f.gen, f.cfg.Scene, f.cfg.Speed)
	}
}

// Step advances every leaf by dt.
func (f *Field) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	f.elapsed += dt
	for _, l := range f.leaves {
		l.Step(dt)
	}
}

// Resize changes the scene. Leaves already falling finish in the old scene.
func (f *Field) Resize(scene core.Scene) {
	f.cfg.Scene = scene
	for _, l := range f.leaves {
		l.SetScene(scene)
	}
}

// SetSpeed changes the fall speed from each leaf's next cycle on.
func (f *Field) SetSpeed(speed particle.FallSpeed) {
	f.cfg.Speed = speed.Normalize()
	for _, l := range f.leaves {
		l.SetSpeed(f.cfg.Speed)
	}
}

// Speed returns the configured fall speed.
func (f *Field) Speed() particle.FallSpeed { return f.cfg.Speed }

// Seed returns the seed of the last reset.
func (f *Field) Seed() int64 { return f.seed }

// Leaves exposes the animators in draw order.
func (f *Field) Leaves() []*particle.Animator { return f.leaves }

// Transforms appends the current transform of every leaf to dst.
func (f *Field) Transforms(dst []particle.Transform) []particle.Transform {
	dst = dst[:0]
	for _, l := range f.leaves {
		dst = append(dst, l.Transform())
	}
	return dst
}

// Cycles sums the completed falls of all leaves.
func (f *Field) Cycles() int {
	total := 0
	for _, l := range f.leaves {
		total += l.Cycles()
	}
	return total
}

// Falling counts the leaves past their initial delay.
func (f *Field) Falling() int {
	n := 0
	for _, l := range f.leaves {
		if l.Falling() {
			n++
		}
	}
	return n
}

// Parameters implements core.ParameterProvider.
func (f *Field) Parameters() core.ParameterSnapshot {
	p := f.gen.Params()
	fall := p.FallDurations[f.cfg.Speed]
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Scene",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", f.cfg.Scene.Width, f.cfg.Scene.Height)},
				{Key: "seed", Label: "Seed", Value: strconv.FormatInt(f.seed, 10)},
				{Key: "elapsed", Label: "Elapsed", Value: f.elapsed.Truncate(time.Second).String()},
			},
		},
		{
			Name: "Leaves",
			Params: []core.Parameter{
				{Key: "count", Label: "Count", Value: strconv.Itoa(len(f.leaves))},
				{Key: "falling", Label: "Falling", Value: strconv.Itoa(f.Falling())},
				{Key: "cycles", Label: "Cycles", Value: strconv.Itoa(f.Cycles())},
			},
		},
		{
			Name:    "Fall",
			Summary: fmt.Sprintf("%s: %d-%dms", f.cfg.Speed, fall.Min, fall.Max),
			Params: []core.Parameter{
				{Key: "speed", Label: "Speed", Value: string(f.cfg.Speed)},
				{Key: "delay", Label: "Delay", Value: fmt.Sprintf("%d-%dms", p.FallDelayMin, p.FallDelayMax)},
			},
		},
	}}
}
