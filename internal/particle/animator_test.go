package particle

import (
	"math"
	"testing"
	"time"

	"leaffall/internal/core"
)

// scriptRand replays fixed values and falls back to the lower bound.
type scriptRand struct {
	values []int
	i      int
}

func (s *scriptRand) IntRange(min, max int) int {
	if s.i >= len(s.values) {
		return min
	}
	v := s.values[s.i]
	s.i++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestInterpolate(t *testing.T) {
	in := [2]float64{0, 1}
	out := [2]float64{360, 0}
	tests := []struct {
		x    float64
		mode Extrapolate
		want float64
	}{
		{0, Clamp, 360},
		{1, Clamp, 0},
		{0.25, Clamp, 270},
		{-1, Clamp, 360},
		{2, Clamp, 0},
		{2, Extend, -360},
	}
	for _, tt := range tests {
		if got := Interpolate(tt.x, in, out, tt.mode); !approx(got, tt.want) {
			t.Errorf("Interpolate(%v, mode %d) = %v, want %v", tt.x, tt.mode, got, tt.want)
		}
	}
	if got := Interpolate(5, [2]float64{1, 1}, out, Extend); got != 360 {
		t.Errorf("degenerate input range = %v, want 360", got)
	}
}

func TestRotationDegrees(t *testing.T) {
	if RotationDegrees(0, false) != 360 || RotationDegrees(1, false) != 0 {
		t.Fatal("counter-clockwise sweep must run 360 to 0")
	}
	if RotationDegrees(0, true) != 0 || RotationDegrees(1, true) != 360 {
		t.Fatal("clockwise sweep must run 0 to 360")
	}
	if RotationDegrees(1.5, false) != 0 || RotationDegrees(-0.5, true) != 0 {
		t.Fatal("rotation must clamp outside [0,1]")
	}
}

func TestSwayOffset(t *testing.T) {
	const amp = -200
	if got := SwayOffset(0, amp); got != 200 {
		t.Fatalf("phase 0 = %v, want -amplitude", got)
	}
	if got := SwayOffset(-1, amp); got != 400 {
		t.Fatalf("phase -1 = %v, want -2*amplitude", got)
	}
	if got := SwayOffset(1, amp); got != 0 {
		t.Fatalf("phase 1 = %v, want 0", got)
	}
}

// scripted values in draw order: size, opacity, glyph, x, fall duration, fall
// delay, rotation duration, direction, sway duration, sway amplitude.
func newScriptedAnimator(t *testing.T, values ...int) *Animator {
	t.Helper()
	gen := NewGenerator(&scriptRand{values: values}, DefaultParams())
	return NewAnimator(gen, core.Scene{Width: 320, Height: 640}, Fast)
}

func TestAnimatorInitialState(t *testing.T) {
	a := newScriptedAnimator(t, 12, 7, 1, 100, 10000, 1000, 250, 0, 2000, -200)

	y, spin, sway := a.Phases()
	if y != StartY || spin != 0 || sway != 0 {
		t.Fatalf("initial phases = %v %v %v", y, spin, sway)
	}
	tr := a.Transform()
	if tr.X != 300 {
		t.Fatalf("x at rest = %v, want anchor 100 + 200 sway", tr.X)
	}
	if tr.Rotation != 360 {
		t.Fatalf("rotation at rest = %v, want 360", tr.Rotation)
	}
	if tr.Size != 12 || tr.Opacity != 0.7 || tr.Glyph != GlyphMapleLeaf {
		t.Fatalf("style = %+v", tr)
	}
	if a.Falling() {
		t.Fatal("leaf must wait out its delay")
	}
}

func TestAnimatorFallsAfterDelay(t *testing.T) {
	a := newScriptedAnimator(t, 12, 7, 1, 100, 10000, 1000, 250, 0, 2000, -200)

	a.Step(999 * time.Millisecond)
	if y, _, _ := a.Phases(); y != StartY {
		t.Fatalf("y moved during delay: %v", y)
	}
	a.Step(time.Millisecond + 5*time.Second)
	y, _, _ := a.Phases()
	if want := StartY + (640.0-StartY)/2; !approx(y, want) {
		t.Fatalf("y half way = %v, want %v", y, want)
	}
	if !a.Falling() {
		t.Fatal("leaf should be falling")
	}
}

func TestAnimatorSpinAndSwayRunDuringDelay(t *testing.T) {
	a := newScriptedAnimator(t, 12, 7, 1, 100, 10000, 1000, 250, 0, 2000, -200)

	a.Step(125 * time.Millisecond)
	_, spin, sway := a.Phases()
	if !approx(spin, 0.5) {
		t.Fatalf("spin = %v, want 0.5", spin)
	}
	if !approx(sway, -0.0625) {
		t.Fatalf("sway = %v, want -0.0625", sway)
	}
	if r := a.Transform().Rotation; !approx(r, 180) {
		t.Fatalf("rotation = %v, want 180", r)
	}

	// One full sway iteration is 4s; the loop resets to neutral.
	a.Step(4*time.Second - 125*time.Millisecond)
	if _, _, sway := a.Phases(); !approx(sway, 0) {
		t.Fatalf("sway after full iteration = %v, want 0", sway)
	}
}

func TestAnimatorRegeneratesOnCompletion(t *testing.T) {
	a := newScriptedAnimator(t,
		12, 7, 1, 100, 10000, 1000, 250, 0, 2000, -200,
		15, 4, 2, 50, 8000, 600, 200, 0, 3000, -150,
	)
	first := a.Config()

	a.Step(11 * time.Second)
	if a.Cycles() != 1 {
		t.Fatalf("cycles = %d, want 1", a.Cycles())
	}
	next := a.Config()
	if next == first {
		t.Fatal("config must be replaced after a fall")
	}
	if next.Size != 15 || next.X != 50 || next.FallDelay != 600*time.Millisecond {
		t.Fatalf("unexpected next config %+v", next)
	}
	y, spin, sway := a.Phases()
	if y != StartY || spin != 0 || sway != 0 {
		t.Fatalf("phases not reset: %v %v %v", y, spin, sway)
	}
}

func TestAnimatorCarriesLeftoverIntoNextCycle(t *testing.T) {
	a := newScriptedAnimator(t,
		12, 7, 1, 100, 10000, 1000, 250, 0, 2000, -200,
		15, 4, 2, 50, 8000, 600, 200, 0, 3000, -150,
	)
	// 11s completes the first cycle; 100ms more runs inside the second
	// cycle's 600ms delay, where the 200ms spin is half way round.
	a.Step(11*time.Second + 100*time.Millisecond)
	_, spin, _ := a.Phases()
	if !approx(spin, 0.5) {
		t.Fatalf("spin = %v, want 0.5", spin)
	}
}

func TestAnimatorLaterDelaysUseShortRange(t *testing.T) {
	gen := NewGenerator(core.NewRNG(99), DefaultParams())
	a := NewAnimator(gen, core.Scene{Width: 200, Height: 400}, Fast)
	for a.Cycles() < 25 {
		a.Step(time.Second)
		if a.Cycles() > 0 && a.Config().FallDelay > 10*time.Second {
			t.Fatalf("cycle %d delay %v exceeds 10s", a.Cycles(), a.Config().FallDelay)
		}
	}
}

func TestAnimatorSceneChangeAppliesNextCycle(t *testing.T) {
	a := newScriptedAnimator(t,
		12, 7, 1, 100, 10000, 1000, 250, 0, 2000, -200,
		15, 4, 2, 900, 8000, 600, 200, 0, 3000, -150,
	)
	a.SetScene(core.Scene{Width: 1000, Height: 100})
	a.SetSpeed(Slow)

	a.Step(6 * time.Second)
	y, _, _ := a.Phases()
	if want := StartY + (640.0-StartY)/2; !approx(y, want) {
		t.Fatalf("current fall must keep the old scene: y=%v want %v", y, want)
	}

	a.Step(5 * time.Second)
	if a.Config().X != 900 {
		t.Fatalf("x = %d, want 900 inside the wider scene", a.Config().X)
	}
	if a.Config().FallDuration != 30*time.Second {
		t.Fatalf("fall duration = %v, want slow lower bound", a.Config().FallDuration)
	}
}

func TestAnimatorRotationDirectionStableWithinCycle(t *testing.T) {
	gen := NewGenerator(core.NewRNG(1), DefaultParams())
	a := NewAnimator(gen, core.Scene{Width: 100, Height: 100}, Fast)
	dir := a.Config().RotationClockwise
	for i := 0; i < 100; i++ {
		a.Step(37 * time.Millisecond)
		if a.Config().RotationClockwise != dir {
			t.Fatal("rotation direction changed")
		}
	}
}
