package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	DefaultWidth        = 1920.0
	DefaultHeight       = 1080.0
	DefaultSteps        = 600
	DefaultParticleSize = 35
)

// Ranges of the control panel sliders.
const (
	MinGravity      = 0.0
	MaxGravity      = 100.0
	MinMaxVelocity  = 10.0
	MaxMaxVelocity  = 300.0
	MinTimeScale    = 0.1
	MaxTimeScale    = 5.0
	TimeScaleStep   = 0.1
	MinRepulsion    = 0.0
	MaxRepulsion    = 20.0
	MinParticleSize = 5
	MaxParticleSize = 100
)

type Config struct {
	Width        float64         `yaml:"width"`
	Height       float64         `yaml:"height"`
	Steps        int             `yaml:"steps"`
	Seed         int64           `yaml:"seed"`
	ParticleSize int             `yaml:"particle_size"`
	Params       sim.Params      `yaml:"params"`
	Repulsion    RepulsionConfig `yaml:"repulsion"`
	Particles    []ParticleSpec  `yaml:"particles"`
	Sources      []SourceSpec    `yaml:"sources"`
}

type RepulsionConfig struct {
	Cutoff      float64 `yaml:"cutoff"`
	Exponent    float64 `yaml:"exponent"`
	MinDistance float64 `yaml:"min_distance"`
}

type ParticleSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size int     `yaml:"size"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
}

type SourceSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size int     `yaml:"size"`
}

func DefaultConfig() *Config {
	law := physics.DefaultRepulsionLaw()
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Steps:        DefaultSteps,
		ParticleSize: DefaultParticleSize,
		Params:       sim.DefaultParams(),
		Repulsion: RepulsionConfig{
			Cutoff:      law.Cutoff,
			Exponent:    law.Exponent,
			MinDistance: law.MinDistance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the scenario file itself. Physics parameters are not
// range-checked; the world tolerates any value.
func (c *Config) Validate() error {
	if !c.Bounds().Valid() {
		return fmt.Errorf("%w: got %.0fx%.0f", dynamo.ErrInvalidBounds, c.Width, c.Height)
	}
	if c.ParticleSize <= 0 {
		return fmt.Errorf("particle_size: %w", dynamo.ErrInvalidSize)
	}
	for i, p := range c.Particles {
		if p.Size < 0 {
			return &dynamo.SpawnError{Kind: "particles", Index: i, Wrapped: dynamo.ErrInvalidSize}
		}
	}
	for i, s := range c.Sources {
		if s.Size <= 0 {
			return &dynamo.SpawnError{Kind: "sources", Index: i, Wrapped: dynamo.ErrInvalidSize}
		}
	}
	return nil
}

func (c *Config) Bounds() dynamo.Bounds {
	return dynamo.Bounds{Width: c.Width, Height: c.Height}
}

func (c *Config) RepulsionLaw() physics.RepulsionLaw {
	return physics.RepulsionLaw{
		Cutoff:      c.Repulsion.Cutoff,
		Exponent:    c.Repulsion.Exponent,
		MinDistance: c.Repulsion.MinDistance,
	}
}

// NewWorld builds a world from the config and spawns its initial bodies.
// A particle with size 0 takes the config's ParticleSize.
func (c *Config) NewWorld(opts ...sim.Option) *sim.World {
	base := []sim.Option{
		sim.WithParams(c.Params),
		sim.WithRepulsionLaw(c.RepulsionLaw()),
	}
	if c.Seed != 0 {
		base = append(base, sim.WithSeed(c.Seed))
	}
	w := sim.New(append(base, opts...)...)

	for _, s := range c.Sources {
		w.SpawnSource(s.X, s.Y, s.Size)
	}
	for _, p := range c.Particles {
		size := p.Size
		if size == 0 {
			size = c.ParticleSize
		}
		w.SpawnParticle(p.X, p.Y, size, p.VX, p.VY)
	}
	return w
}

func ClampGravity(v float64) float64     { return clamp(v, MinGravity, MaxGravity) }
func ClampMaxVelocity(v float64) float64 { return clamp(v, MinMaxVelocity, MaxMaxVelocity) }
func ClampRepulsion(v float64) float64   { return clamp(v, MinRepulsion, MaxRepulsion) }

// ClampTimeScale snaps v to the slider's 0.1 grid inside its range.
func ClampTimeScale(v float64) float64 {
	v = clamp(v, MinTimeScale, MaxTimeScale)
	return math.Round(v/TimeScaleStep) * TimeScaleStep
}

func ClampParticleSize(v int) int {
	if v < MinParticleSize {
		return MinParticleSize
	}
	if v > MaxParticleSize {
		return MaxParticleSize
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
