package sim

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/field"
	"github.com/san-kum/gravsim/internal/physics"
)

// World owns the particles and sources and advances them one frame per Step.
//
// All methods are safe to call from multiple goroutines. A single mutex
// guards the collections and params, so a spawn or clear issued while a
// step is running is applied once that step has finished.
type World struct {
	mu        sync.Mutex
	particles []*physics.Particle
	sources   []physics.Source
	params    Params
	law       physics.RepulsionLaw
	rng       *rand.Rand
	sampler   *field.Sampler
	observers []dynamo.Observer
	steps     int

	// scratch reused across steps
	centers []dynamo.Vec2
	gone    []bool
}

type Option func(*World)

func WithParams(p Params) Option {
	return func(w *World) { w.params = p }
}

func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand hands the world its colour generator. The world becomes the only
// user of r.
func WithRand(r *rand.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

func WithRepulsionLaw(l physics.RepulsionLaw) Option {
	return func(w *World) { w.law = l }
}

func WithSampler(s *field.Sampler) Option {
	return func(w *World) {
		if s != nil {
			w.sampler = s
		}
	}
}

func New(opts ...Option) *World {
	w := &World{
		particles: make([]*physics.Particle, 0),
		sources:   make([]physics.Source, 0),
		params:    DefaultParams(),
		law:       physics.DefaultRepulsionLaw(),
		sampler:   field.NewSampler(),
		observers: make([]dynamo.Observer, 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return w
}

func (w *World) AddObserver(o dynamo.Observer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, o)
}

// removeObserver drops f. Only the other operand's dynamic type could make
// the comparison panic, and f is always a pointer.
func (w *World) removeObserver(f *fanout) {
	w.mu.Lock()
	defer w.mu.Unlock()
	kept := w.observers[:0:0]
	for _, o := range w.observers {
		if o != dynamo.Observer(f) {
			kept = append(kept, o)
		}
	}
	w.observers = kept
}

// SpawnParticle appends a particle. It never fails.
func (w *World) SpawnParticle(x, y float64, size int, vx, vy float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.particles = append(w.particles, physics.NewParticle(x, y, size, vx, vy, w.randomColor()))
}

// SpawnSource appends a gravity source. It never fails.
func (w *World) SpawnSource(x, y float64, size int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sources = append(w.sources, physics.NewSource(x, y, size))
}

// ToggleSourcePolarity flips the display polarity of source i.
func (w *World) ToggleSourcePolarity(i int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.sources) {
		return false
	}
	w.sources[i].TogglePolarity()
	return true
}

func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	clear(w.particles)
	w.particles = w.particles[:0]
	w.sources = w.sources[:0]
}

func (w *World) ParticleCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.particles)
}

func (w *World) SourceCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.sources)
}

// Steps returns how many times Step has been called, gated calls included.
func (w *World) Steps() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.steps
}

// Step advances the world by one frame inside a width x height viewport.
//
// Nothing moves while the world has no sources, repulsion included.
// Otherwise every particle is pushed, clamped and integrated against the
// positions at the start of the step, and particles that left the viewport
// are removed once all of them have moved.
func (w *World) Step(width, height float64) dynamo.StepStats {
	w.mu.Lock()
	stats, vels := w.step(dynamo.Bounds{Width: width, Height: height})
	observers := w.observers
	w.mu.Unlock()

	if !stats.Skipped {
		for _, o := range observers {
			o.OnStep(stats, vels)
		}
	}
	return stats
}

func (w *World) step(b dynamo.Bounds) (dynamo.StepStats, []dynamo.Vec2) {
	w.steps++
	stats := dynamo.StepStats{
		Step:      w.steps,
		Particles: len(w.particles),
		Sources:   len(w.sources),
	}
	if len(w.sources) == 0 {
		stats.Skipped = true
		return stats, nil
	}

	p := w.params
	gravity := p.GravityStrength * p.TimeScale
	repulsion := p.RepulsionStrength * p.TimeScale

	n := len(w.particles)
	w.centers = w.centers[:0]
	for _, pt := range w.particles {
		w.centers = append(w.centers, pt.Center())
	}
	if cap(w.gone) < n {
		w.gone = make([]bool, n)
	}
	w.gone = w.gone[:n]

	for i, pt := range w.particles {
		c := w.centers[i]
		pt.Accelerate(physics.GravityPull(c, w.sources, gravity))
		if p.EnableRepulsion {
			pt.Accelerate(physics.RepulsionPush(i, c, w.centers, repulsion, w.law))
		}
		pt.ClampVelocity(p.MaxVelocity)
		pt.Integrate(p.TimeScale)
		w.gone[i] = pt.OutOfBounds(b)
	}

	kept := w.particles[:0]
	for i, pt := range w.particles {
		if !w.gone[i] {
			kept = append(kept, pt)
		}
	}
	for i := len(kept); i < n; i++ {
		w.particles[i] = nil
	}
	w.particles = kept

	stats.Removed = n - len(kept)
	stats.Particles = len(kept)

	vels := make([]dynamo.Vec2, len(kept))
	for i, pt := range kept {
		vels[i] = pt.Vel()
	}
	return stats, vels
}

func (w *World) Params() Params {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.params
}

func (w *World) SetParams(p Params) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.params = p
}

func (w *World) update(fn func(*Params)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.params)
}

func (w *World) SetGravityStrength(v float64) { w.update(func(p *Params) { p.GravityStrength = v }) }
func (w *World) SetMaxVelocity(v float64)     { w.update(func(p *Params) { p.MaxVelocity = v }) }
func (w *World) SetTimeScale(v float64)       { w.update(func(p *Params) { p.TimeScale = v }) }
func (w *World) SetRepulsionStrength(v float64) {
	w.update(func(p *Params) { p.RepulsionStrength = v })
}
func (w *World) SetEnableRepulsion(on bool)  { w.update(func(p *Params) { p.EnableRepulsion = on }) }
func (w *World) SetShowGravityField(on bool) { w.update(func(p *Params) { p.ShowGravityField = on }) }

// GetParams implements dynamo.Configurable. Booleans are reported as 0 or 1.
func (w *World) GetParams() map[string]float64 {
	return w.Params().asMap()
}

func (w *World) SetParam(name string, value float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.params.set(name, value)
}

func (w *World) RepulsionLaw() physics.RepulsionLaw {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.law
}

// Field returns the gravity-field arrows for b, or nil when the overlay is
// off or there is nothing to pull.
func (w *World) Field(b dynamo.Bounds) []field.Arrow {
	w.mu.Lock()
	if !w.params.ShowGravityField || len(w.sources) == 0 {
		w.mu.Unlock()
		return nil
	}
	sources := append([]physics.Source(nil), w.sources...)
	strength := w.params.GravityStrength
	sampler := w.sampler
	w.mu.Unlock()

	return sampler.Sample(b, sources, strength)
}

func (w *World) randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(100 + w.rng.Intn(156)),
		G: uint8(100 + w.rng.Intn(156)),
		B: uint8(100 + w.rng.Intn(156)),
		A: 255,
	}
}
