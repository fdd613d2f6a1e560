package physics

import (
	"image/color"
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
)

// Particle is a moving point mass. X, Y locate the top-left corner of its
// square footprint; forces act on the footprint center.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   int
	Color  color.RGBA
	Trail  Trail
}

func NewParticle(x, y float64, size int, vx, vy float64, c color.RGBA) *Particle {
	if size <= 0 {
		size = 1
	}
	return &Particle{X: x, Y: y, VX: vx, VY: vy, Size: size, Color: c}
}

func (p *Particle) Pos() dynamo.Vec2 { return dynamo.Vec2{X: p.X, Y: p.Y} }

func (p *Particle) Vel() dynamo.Vec2 { return dynamo.Vec2{X: p.VX, Y: p.VY} }

func (p *Particle) Speed() float64 { return math.Hypot(p.VX, p.VY) }

func (p *Particle) Center() dynamo.Vec2 {
	half := float64(p.Size) / 2.0
	return dynamo.Vec2{X: p.X + half, Y: p.Y + half}
}

// Accelerate adds dv to the velocity.
func (p *Particle) Accelerate(dv dynamo.Vec2) {
	p.VX += dv.X
	p.VY += dv.Y
}

// ClampVelocity caps the speed at maxVelocity, scaling both components
// together. Non-finite components are zeroed first.
func (p *Particle) ClampVelocity(maxVelocity float64) {
	v := p.Vel()
	if !v.IsValid() {
		v = dynamo.Vec2{}
	}
	v = v.ClampNorm(maxVelocity)
	p.VX, p.VY = v.X, v.Y
}

// Integrate advances the position by velocity*timeScale and records the new
// position in the trail.
func (p *Particle) Integrate(timeScale float64) {
	p.X += p.VX * timeScale
	p.Y += p.VY * timeScale
	p.Trail.Push(p.Pos())
}

// OutOfBounds reports whether the particle has left the viewport by more
// than its own size on any side.
func (p *Particle) OutOfBounds(b dynamo.Bounds) bool {
	s := float64(p.Size)
	return p.X < -s || p.X > b.Width+s || p.Y < -s || p.Y > b.Height+s
}
