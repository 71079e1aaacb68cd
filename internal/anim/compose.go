package anim

import "time"

// Sequence runs animations one after another. Each step is started only when
// the previous one completes, so timings pick up where their predecessor left
// the value.
type Sequence struct {
	steps []Animation
	idx   int
}

// NewSequence returns a Sequence over steps.
func NewSequence(steps ...Animation) *Sequence {
	return &Sequence{steps: steps}
}

// Start implements Animation.
func (s *Sequence) Start() {
	s.idx = 0
	if len(s.steps) > 0 {
		s.steps[0].Start()
	}
}

// Advance implements Animation.
func (s *Sequence) Advance(dt time.Duration) (time.Duration, bool) {
	for s.idx < len(s.steps) {
		rest, done := s.steps[s.idx].Advance(dt)
		if !done {
			return 0, false
		}
		s.idx++
		if s.idx < len(s.steps) {
			s.steps[s.idx].Start()
		}
		dt = rest
	}
	return dt, true
}

// Reset rewinds the steps that have run, last first.
func (s *Sequence) Reset() {
	last := s.idx
	if last >= len(s.steps) {
		last = len(s.steps) - 1
	}
	for i := last; i >= 0; i-- {
		s.steps[i].Reset()
	}
	s.idx = 0
}

// Loop repeats an animation forever, resetting its values before each new
// iteration.
type Loop struct {
	inner      Animation
	iterations int
}

// NewLoop returns a Loop around inner.
func NewLoop(inner Animation) *Loop {
	return &Loop{inner: inner}
}

// Start implements Animation.
func (l *Loop) Start() {
	l.iterations = 0
	l.inner.Start()
}

// Advance implements Animation. A Loop never completes.
func (l *Loop) Advance(dt time.Duration) (time.Duration, bool) {
	for {
		rest, done := l.inner.Advance(dt)
		if !done {
			return 0, false
		}
		l.iterations++
		l.inner.Reset()
		l.inner.Start()
		// An iteration that consumed no time would spin forever.
		if rest <= 0 || rest == dt {
			return 0, false
		}
		dt = rest
	}
}

// Reset implements Animation.
func (l *Loop) Reset() {
	l.inner.Reset()
	l.iterations = 0
}

// Iterations reports how many full iterations have completed since Start.
func (l *Loop) Iterations() int { return l.iterations }
