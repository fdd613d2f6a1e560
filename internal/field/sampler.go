// Package field samples the gravity field on a coarse grid for display.
package field

import (
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

const (
	DefaultSpacing = 120.0
	MinMagnitude   = 0.1
	LengthFactor   = 8.0
	MaxLengthRatio = 0.75
	HeadSize       = 12.0
	HeadAngle      = math.Pi / 6
)

// Arrow describes one field sample ready to be drawn.
type Arrow struct {
	Origin    dynamo.Vec2
	Dir       dynamo.Vec2 // unit direction of the pull
	Magnitude float64
	Length    float64
	Tip       dynamo.Vec2
	HeadLeft  dynamo.Vec2
	HeadRight dynamo.Vec2
	Alpha     uint8
	Intensity uint8
}

type Sampler struct {
	Spacing float64
}

func NewSampler() *Sampler {
	return &Sampler{Spacing: DefaultSpacing}
}

// At returns the raw gravity pull at p. It never includes repulsion and is
// never clamped.
func At(p dynamo.Vec2, sources []physics.Source, strength float64) dynamo.Vec2 {
	return physics.GravityPull(p, sources, strength)
}

// Points returns the grid cell centers inside b, row by row.
func (s *Sampler) Points(b dynamo.Bounds) []dynamo.Vec2 {
	spacing := s.spacing()
	if !b.Valid() {
		return nil
	}
	var pts []dynamo.Vec2
	for x := spacing / 2; x < b.Width; x += spacing {
		for y := spacing / 2; y < b.Height; y += spacing {
			pts = append(pts, dynamo.Vec2{X: x, Y: y})
		}
	}
	return pts
}

// Sample evaluates the field at every grid point and returns an arrow for
// each point whose magnitude exceeds MinMagnitude.
func (s *Sampler) Sample(b dynamo.Bounds, sources []physics.Source, strength float64) []Arrow {
	if len(sources) == 0 {
		return nil
	}
	var arrows []Arrow
	for _, p := range s.Points(b) {
		f := At(p, sources, strength)
		if a, ok := s.arrow(p, f); ok {
			arrows = append(arrows, a)
		}
	}
	return arrows
}

func (s *Sampler) arrow(origin, f dynamo.Vec2) (Arrow, bool) {
	mag := f.Norm()
	if !(mag > MinMagnitude) || math.IsInf(mag, 0) {
		return Arrow{}, false
	}
	dir := f.Scale(1 / mag)
	length := math.Min(s.spacing()*MaxLengthRatio, mag*LengthFactor)
	tip := origin.Add(dir.Scale(length))

	angle := math.Atan2(dir.Y, dir.X)
	left := dynamo.Vec2{
		X: tip.X - HeadSize*math.Cos(angle-HeadAngle),
		Y: tip.Y - HeadSize*math.Sin(angle-HeadAngle),
	}
	right := dynamo.Vec2{
		X: tip.X - HeadSize*math.Cos(angle+HeadAngle),
		Y: tip.Y - HeadSize*math.Sin(angle+HeadAngle),
	}

	return Arrow{
		Origin:    origin,
		Dir:       dir,
		Magnitude: mag,
		Length:    length,
		Tip:       tip,
		HeadLeft:  left,
		HeadRight: right,
		Alpha:     channel(mag*40 + 150),
		Intensity: channel(mag*60 + 180),
	}, true
}

func (s *Sampler) spacing() float64 {
	if s == nil || s.Spacing <= 0 {
		return DefaultSpacing
	}
	return s.Spacing
}

func channel(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}
