package field

import "time"

// Stats summarises a headless run of a field.
type Stats struct {
	Seed     int64
	Duration time.Duration
	Cycles   int
	// MeanFalling and MeanVisible are averaged over one sample per simulated
	// second. Visible leaves have their anchor point inside the scene.
	MeanFalling float64
	MeanVisible float64
}

// Measure runs a fresh field built from cfg for d, advancing by tick.
func Measure(cfg Config, d, tick time.Duration) Stats {
	if tick <= 0 {
		tick = time.Second / 60
	}
	f := New(cfg)
	st := Stats{Seed: f.Seed(), Duration: d}

	var (
		samples   int
		sinceLast time.Duration
		falling   int
		visible   int
	)
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		f.Step(tick)
		sinceLast += tick
		if sinceLast < time.Second {
			continue
		}
		sinceLast -= time.Second
		samples++
		falling += f.Falling()
		visible += f.visible()
	}
	st.Cycles = f.Cycles()
	if samples > 0 {
		st.MeanFalling = float64(falling) / float64(samples)
		st.MeanVisible = float64(visible) / float64(samples)
	}
	return st
}

func (f *Field) visible() int {
	n := 0
	w, h := float64(f.cfg.Scene.Width), float64(f.cfg.Scene.Height)
	for _, l := range f.leaves {
		t := l.Transform()
		if t.X >= 0 && t.X < w && t.Y >= 0 && t.Y < h {
			n++
		}
	}
	return n
}
