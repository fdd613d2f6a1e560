package metrics

import (
	"github.com/san-kum/gravsim/internal/dynamo"
)

// KineticEnergy reports 0.5*|v|^2 summed over all particles after the last
// observed step. Particles have unit mass.
type KineticEnergy struct {
	name  string
	value float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) OnStep(_ dynamo.StepStats, vels []dynamo.Vec2) {
	total := 0.0
	for _, v := range vels {
		total += 0.5 * (v.X*v.X + v.Y*v.Y)
	}
	e.value = total
}

func (e *KineticEnergy) Value() float64 { return e.value }

func (e *KineticEnergy) Reset() { e.value = 0 }

// MeanSpeed reports the average particle speed after the last observed step.
type MeanSpeed struct {
	name  string
	value float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) OnStep(_ dynamo.StepStats, vels []dynamo.Vec2) {
	if len(vels) == 0 {
		m.value = 0
		return
	}
	sum := 0.0
	for _, v := range vels {
		sum += v.Norm()
	}
	m.value = sum / float64(len(vels))
}

func (m *MeanSpeed) Value() float64 { return m.value }

func (m *MeanSpeed) Reset() { m.value = 0 }

// ParticleCount reports the population after the last observed step.
type ParticleCount struct {
	name  string
	value int
}

func NewParticleCount() *ParticleCount {
	return &ParticleCount{name: "particles"}
}

func (c *ParticleCount) Name() string { return c.name }

func (c *ParticleCount) OnStep(stats dynamo.StepStats, _ []dynamo.Vec2) { c.value = stats.Particles }

func (c *ParticleCount) Value() float64 { return float64(c.value) }

func (c *ParticleCount) Reset() { c.value = 0 }

// Removals accumulates the particles culled since the last Reset.
type Removals struct {
	name  string
	total int
}

func NewRemovals() *Removals {
	return &Removals{name: "removed"}
}

func (r *Removals) Name() string { return r.name }

func (r *Removals) OnStep(stats dynamo.StepStats, _ []dynamo.Vec2) { r.total += stats.Removed }

func (r *Removals) Value() float64 { return float64(r.total) }

func (r *Removals) Reset() { r.total = 0 }

// All returns one of each metric in a stable order.
func All(maxVelocity float64) []dynamo.Metric {
	return []dynamo.Metric{
		NewParticleCount(),
		NewMeanSpeed(),
		NewKineticEnergy(),
		NewRemovals(),
		NewSpeedCap(maxVelocity),
	}
}
