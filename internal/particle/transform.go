package particle

// Extrapolate controls what Interpolate does outside the input range.
type Extrapolate int

const (
	// Extend keeps following the line through the two mapped points.
	Extend Extrapolate = iota
	// Clamp pins the output to the nearest end of the output range.
	Clamp
)

// Interpolate maps x linearly from in to out.
func Interpolate(x float64, in, out [2]float64, mode Extrapolate) float64 {
	if in[0] == in[1] {
		return out[0]
	}
	if mode == Clamp {
		lo, hi := in[0], in[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if x < lo {
			x = lo
		}
		if x > hi {
			x = hi
		}
	}
	t := (x - in[0]) / (in[1] - in[0])
	return out[0] + t*(out[1]-out[0])
}

// RotationDegrees maps a spin phase in [0,1] to a full turn. Clockwise leaves
// sweep 0°→360°, the others 360°→0°. Phases outside [0,1] are clamped.
func RotationDegrees(phase float64, clockwise bool) float64 {
	out := [2]float64{360, 0}
	if clockwise {
		out = [2]float64{0, 360}
	}
	return Interpolate(phase, [2]float64{0, 1}, out, Clamp)
}

// SwayOffset maps a sway phase in [-1,1] to a horizontal offset in
// [-2*amplitude, 0]. With the negative amplitudes leaves use this pushes the
// leaf to the right of its anchor.
func SwayOffset(phase float64, amplitude int) float64 {
	a := float64(amplitude)
	return Interpolate(phase, [2]float64{-1, 1}, [2]float64{-a * 2, 0}, Extend)
}

// Transform is everything a renderer needs to draw one leaf for a frame.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64 // degrees
	Size     int
	Opacity  float64
	Glyph    Glyph
}
