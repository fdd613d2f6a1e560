package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

var _ = Describe("World", func() {
	var w *sim.World

	BeforeEach(func() {
		w = sim.New(sim.WithSeed(99))
	})

	Describe("spawning", func() {
		It("always accepts particles and sources", func() {
			for i := 0; i < 50; i++ {
				w.SpawnParticle(float64(i), float64(i), 35, 0, 0)
			}
			w.SpawnSource(10, 10, 40)

			Expect(w.ParticleCount()).To(Equal(50))
			Expect(w.SourceCount()).To(Equal(1))
		})

		It("starts every source as attractive", func() {
			w.SpawnSource(1, 2, 3)
			Expect(w.Snapshot().Sources).To(ConsistOf(physics.Source{X: 1, Y: 2, Size: 3, Polarity: physics.Attractive}))
		})
	})

	Describe("stepping without sources", func() {
		It("leaves particles untouched even with repulsion on", func() {
			w.SetEnableRepulsion(true)
			w.SetRepulsionStrength(20)
			w.SpawnParticle(100, 100, 10, 1, 1)
			w.SpawnParticle(101, 100, 10, 0, 0)
			before := w.Snapshot().Particles

			for i := 0; i < 10; i++ {
				Expect(w.Step(800, 600).Skipped).To(BeTrue())
			}

			after := w.Snapshot().Particles
			for i := range before {
				Expect(after[i].Pos).To(Equal(before[i].Pos))
				Expect(after[i].Vel).To(Equal(before[i].Vel))
			}
		})
	})

	Describe("stepping with a source", func() {
		BeforeEach(func() {
			w.SpawnSource(960, 540, 40)
		})

		It("pulls a resting particle toward the source", func() {
			w.SpawnParticle(960, 340, 35, 0, 0)
			w.Step(1920, 1080)

			p := w.Snapshot().Particles[0]
			Expect(p.Vel.Y).To(BeNumerically(">", 0))
			Expect(p.Vel.Norm()).To(BeNumerically("~", 0.15, 0.01))
			Expect(p.Pos.Y).To(BeNumerically("~", 340+p.Vel.Y, 1e-12))
		})

		It("keeps every particle under the velocity cap", func() {
			w.SetGravityStrength(1e5)
			w.SetMaxVelocity(40)
			for i := 0; i < 30; i++ {
				w.SpawnParticle(900+float64(i%6)*4, 400+float64(i/6)*4, 10, 0, 0)
			}

			for i := 0; i < 25; i++ {
				w.Step(1920, 1080)
				for _, p := range w.Snapshot().Particles {
					Expect(p.Vel.Norm()).To(BeNumerically("<=", 40+1e-9))
				}
			}
		})

		It("culls particles that are fully off screen", func() {
			w.SpawnParticle(-300, 500, 35, 0, 0)
			w.SpawnParticle(500, 500, 35, 0, 0)

			stats := w.Step(1920, 1080)

			Expect(stats.Removed).To(Equal(1))
			Expect(w.ParticleCount()).To(Equal(1))
		})

		It("never produces non-finite motion at the source center", func() {
			w.SpawnParticle(962.5, 542.5, 35, 0, 0)
			w.Step(1920, 1080)

			p := w.Snapshot().Particles[0]
			Expect(p.Vel.IsValid()).To(BeTrue())
			Expect(p.Vel).To(Equal(dynamo.Vec2{}))
		})

		It("bounds the trail and ends it at the current position", func() {
			w.SetMaxVelocity(0.5)
			w.SpawnParticle(200, 200, 10, 0, 0)

			for i := 0; i < 100; i++ {
				w.Step(1920, 1080)
			}

			p := w.Snapshot().Particles[0]
			Expect(p.Trail).To(HaveLen(physics.TrailCapacity))
			Expect(p.Trail[len(p.Trail)-1]).To(Equal(p.Pos))
		})
	})

	Describe("clearing", func() {
		It("empties both collections", func() {
			w.SpawnParticle(1, 1, 5, 0, 0)
			w.SpawnSource(2, 2, 5)
			w.Clear()

			Expect(w.ParticleCount()).To(BeZero())
			Expect(w.SourceCount()).To(BeZero())
		})
	})

	Describe("the field overlay", func() {
		It("cancels between symmetric sources", func() {
			w.SpawnSource(70, 170, 20)
			w.SpawnSource(270, 170, 20)

			for _, a := range w.Field(dynamo.Bounds{Width: 360, Height: 360}) {
				Expect(a.Origin).NotTo(Equal(dynamo.Vec2{X: 180, Y: 180}))
				Expect(math.IsNaN(a.Magnitude)).To(BeFalse())
			}
		})
	})
})
