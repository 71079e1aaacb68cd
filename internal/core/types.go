package core

import "time"

// Scene describes the box particles fall through. It is owned by the caller
// and never mutated by the animators.
type Scene struct {
	Width  int
	Height int
}

// Sim defines the minimal contract the window and terminal shells drive.
type Sim interface {
	Name() string
	Scene() Scene
	Reset(seed int64)
	Step(dt time.Duration)
}
