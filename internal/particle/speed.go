package particle

import "strings"

// FallSpeed selects the range a particle's fall duration is drawn from.
type FallSpeed string

const (
	Slow   FallSpeed = "slow"
	Medium FallSpeed = "medium"
	Fast   FallSpeed = "fast"
)

// FallSpeeds lists the valid speeds from slowest to fastest.
var FallSpeeds = []FallSpeed{Slow, Medium, Fast}

// ParseFallSpeed maps s onto a FallSpeed. Anything unrecognised, including
// the empty string, becomes Medium.
func ParseFallSpeed(s string) FallSpeed {
	return FallSpeed(strings.ToLower(strings.TrimSpace(s))).Normalize()
}

// Valid reports whether s is one of the three known speeds.
func (s FallSpeed) Valid() bool {
	switch s {
	case Slow, Medium, Fast:
		return true
	}
	return false
}

// Normalize returns s, or Medium when s is not a known speed.
func (s FallSpeed) Normalize() FallSpeed {
	if s.Valid() {
		return s
	}
	return Medium
}

// Range is an inclusive range of whole milliseconds.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// repair raises Max to Min when the range is inverted.
func (r Range) repair() Range {
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}
