package anim

import "time"

// Timing interpolates a Value from wherever it is at Start to a target.
type Timing struct {
	value    *Value
	to       float64
	duration time.Duration
	easing   Easing

	from    float64
	elapsed time.Duration
	started bool
	done    bool
}

// NewTiming animates v to the target over d. A nil easing means Linear.
func NewTiming(v *Value, to float64, d time.Duration, easing Easing) *Timing {
	if easing == nil {
		easing = Linear
	}
	if d < 0 {
		d = 0
	}
	return &Timing{value: v, to: to, duration: d, easing: easing}
}

// Start captures the current value as the interpolation origin.
func (t *Timing) Start() {
	t.from = t.value.Get()
	t.elapsed = 0
	t.started = true
	t.done = false
}

// Advance implements Animation.
func (t *Timing) Advance(dt time.Duration) (time.Duration, bool) {
	if !t.started {
		t.Start()
	}
	if t.done {
		return dt, true
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		rest := t.elapsed - t.duration
		t.elapsed = t.duration
		t.value.Set(t.to)
		t.done = true
		return rest, true
	}
	progress := float64(t.elapsed) / float64(t.duration)
	t.value.Set(t.from + (t.to-t.from)*t.easing(progress))
	return 0, false
}

// Reset implements Animation.
func (t *Timing) Reset() {
	if !t.started {
		return
	}
	t.value.Set(t.from)
	t.elapsed = 0
	t.done = false
}

// Delay completes after a fixed wait without touching any value.
type Delay struct {
	duration time.Duration
	elapsed  time.Duration
	done     bool
}

// NewDelay returns a Delay lasting d.
func NewDelay(d time.Duration) *Delay {
	if d < 0 {
		d = 0
	}
	return &Delay{duration: d}
}

// Start implements Animation.
func (d *Delay) Start() {
	d.elapsed = 0
	d.done = false
}

// Advance implements Animation.
func (d *Delay) Advance(dt time.Duration) (time.Duration, bool) {
	if d.done {
		return dt, true
	}
	d.elapsed += dt
	if d.elapsed >= d.duration {
		rest := d.elapsed - d.duration
		d.elapsed = d.duration
		d.done = true
		return rest, true
	}
	return 0, false
}

// Reset implements Animation.
func (d *Delay) Reset() { d.Start() }
