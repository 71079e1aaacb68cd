// Package anim provides the small set of time-driven animation primitives the
// particle animators are built from: animated values, timed interpolations,
// delays, sequences and loops.
//
// Nothing here owns a clock. The host loop advances animations by the elapsed
// time of each frame, and an animation that finishes mid-frame hands back the
// time it did not use so the next step can consume it.
package anim

import "time"

// Value is a scalar driven by one or more animations.
type Value struct {
	v float64
}

// NewValue returns a Value holding v.
func NewValue(v float64) *Value { return &Value{v: v} }

// Get returns the current value.
func (v *Value) Get() float64 { return v.v }

// Set replaces the current value.
func (v *Value) Set(x float64) { v.v = x }

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Animation is advanced by elapsed time until it reports completion.
type Animation interface {
	// Start arms the animation. Timings capture their start value here.
	Start()
	// Advance moves the animation forward by dt. When the animation completes
	// it returns done and the part of dt it did not consume.
	Advance(dt time.Duration) (rest time.Duration, done bool)
	// Reset restores driven values to what they were when Start was called.
	Reset()
}
