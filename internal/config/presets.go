package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/gravsim/internal/dynamo"
)

var Presets = map[string]func() *Config{
	"empty": DefaultConfig,
	"orbit": func() *Config {
		cfg := DefaultConfig()
		cfg.Sources = []SourceSpec{{X: 940, Y: 520, Size: 40}}
		cfg.Particles = []ParticleSpec{
			{X: 942.5, Y: 222.5, VX: 8},
			{X: 942.5, Y: 782.5, VX: -8},
			{X: 642.5, Y: 522.5, VY: -8},
		}
		cfg.Params.EnableRepulsion = false
		return cfg
	},
	"binary": func() *Config {
		cfg := DefaultConfig()
		cfg.Sources = []SourceSpec{
			{X: 640, Y: 520, Size: 40},
			{X: 1240, Y: 520, Size: 40},
		}
		cfg.Particles = []ParticleSpec{
			{X: 942.5, Y: 300, VX: 2},
			{X: 942.5, Y: 740, VX: -2},
		}
		return cfg
	},
	"swarm": func() *Config {
		cfg := DefaultConfig()
		cfg.Sources = []SourceSpec{{X: 940, Y: 520, Size: 40}}
		cfg.Params.RepulsionStrength = 15
		for row := 0; row < 5; row++ {
			for col := 0; col < 8; col++ {
				cfg.Particles = append(cfg.Particles, ParticleSpec{
					X:    600 + float64(col)*90,
					Y:    150 + float64(row)*40,
					Size: 20,
				})
			}
		}
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset.
func GetPreset(name string) (*Config, error) {
	build, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownPreset, name, ListPresets())
	}
	return build(), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
