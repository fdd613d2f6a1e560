package dynamo

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(factor float64) Vec2 { return Vec2{v.X * factor, v.Y * factor} }

func (v Vec2) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// ClampNorm scales v down so its length does not exceed max. Direction is
// preserved; a negative max is treated as zero.
func (v Vec2) ClampNorm(max float64) Vec2 {
	if max <= 0 {
		return Vec2{}
	}
	n := v.Norm()
	if n <= max {
		return v
	}
	return v.Scale(max / n)
}

func (v Vec2) String() string { return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y) }

// Bounds is the viewport rectangle [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

func (b Bounds) Valid() bool { return b.Width > 0 && b.Height > 0 }

func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

type StepStats struct {
	Step      int
	Particles int
	Sources   int
	Removed   int
	Skipped   bool
}

func (s StepStats) String() string {
	if s.Skipped {
		return fmt.Sprintf("step %d: skipped (no sources)", s.Step)
	}
	return fmt.Sprintf("step %d: %d particles, %d sources, %d removed", s.Step, s.Particles, s.Sources, s.Removed)
}

// Observer receives the outcome of every executed step together with the
// post-step particle velocities.
type Observer interface {
	OnStep(stats StepStats, velocities []Vec2)
}

type Metric interface {
	Observer
	Name() string
	Value() float64
	Reset()
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
