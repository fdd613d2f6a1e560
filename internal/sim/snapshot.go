package sim

import (
	"image/color"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

// ParticleView is a read-only copy of a particle for renderers.
type ParticleView struct {
	Pos   dynamo.Vec2
	Vel   dynamo.Vec2
	Size  int
	Color color.RGBA
	Trail []dynamo.Vec2 // oldest first
}

func (p ParticleView) Center() dynamo.Vec2 {
	half := float64(p.Size) / 2
	return p.Pos.Add(dynamo.Vec2{X: half, Y: half})
}

type Snapshot struct {
	Step      int
	Params    Params
	Particles []ParticleView
	Sources   []physics.Source
}

// Snapshot copies the current world state. The result shares nothing with
// the world and may be read while further steps run.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		Step:      w.steps,
		Params:    w.params,
		Particles: make([]ParticleView, len(w.particles)),
		Sources:   append([]physics.Source(nil), w.sources...),
	}
	for i, p := range w.particles {
		snap.Particles[i] = ParticleView{
			Pos:   p.Pos(),
			Vel:   p.Vel(),
			Size:  p.Size,
			Color: p.Color,
			Trail: p.Trail.Points(),
		}
	}
	return snap
}
