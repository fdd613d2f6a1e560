package physics

import (
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
)

// MinPullDistance is the distance floor of the gravity law. Sources closer
// than this contribute nothing.
const MinPullDistance = 1.0

// GravityPull returns the net inverse-linear pull of all sources on point p.
// Each source within reach adds strength/d along the direction to its center.
func GravityPull(p dynamo.Vec2, sources []Source, strength float64) dynamo.Vec2 {
	var f dynamo.Vec2
	for _, s := range sources {
		c := s.Center()
		dx, dy := c.X-p.X, c.Y-p.Y
		d := math.Sqrt(dx*dx + dy*dy)
		if d <= MinPullDistance {
			continue
		}
		mag := strength / d
		f.X += dx / d * mag
		f.Y += dy / d * mag
	}
	return f
}

// RepulsionLaw shapes the soft push between particles:
//
//	F(d) = strength * (1/d^Exponent - 1/Cutoff^Exponent)   for d < Cutoff
//
// with d clamped below at MinDistance. F is continuous, vanishes at Cutoff
// and stays finite as d -> 0.
type RepulsionLaw struct {
	Cutoff      float64
	Exponent    float64
	MinDistance float64
}

func DefaultRepulsionLaw() RepulsionLaw {
	return RepulsionLaw{Cutoff: 100, Exponent: 1, MinDistance: 1}
}

// Magnitude returns the push strength at distance d.
func (l RepulsionLaw) Magnitude(d, strength float64) float64 {
	if d >= l.Cutoff || l.Cutoff <= 0 {
		return 0
	}
	minD := l.MinDistance
	if minD <= 0 {
		minD = 1
	}
	if d < minD {
		d = minD
	}
	exp := l.Exponent
	if exp <= 0 {
		exp = 1
	}
	return strength * (math.Pow(d, -exp) - math.Pow(l.Cutoff, -exp))
}

// RepulsionPush returns the net push on point p from every position in
// others except index self. Coincident points have no direction and are
// skipped.
func RepulsionPush(self int, p dynamo.Vec2, others []dynamo.Vec2, strength float64, law RepulsionLaw) dynamo.Vec2 {
	var f dynamo.Vec2
	for j, o := range others {
		if j == self {
			continue
		}
		dx, dy := p.X-o.X, p.Y-o.Y
		d := math.Sqrt(dx*dx + dy*dy)
		if d == 0 || d >= law.Cutoff {
			continue
		}
		mag := law.Magnitude(d, strength)
		f.X += dx / d * mag
		f.Y += dy / d * mag
	}
	return f
}
