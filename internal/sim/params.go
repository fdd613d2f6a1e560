package sim

import (
	"fmt"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const (
	DefaultGravityStrength   = 30.0
	DefaultMaxVelocity       = 100.0
	DefaultTimeScale         = 1.0
	DefaultRepulsionStrength = 50.0
)

// Params are the tunables read by every step. The world copies them once at
// the start of a step, so a change lands on the next step as a whole.
type Params struct {
	GravityStrength   float64 `yaml:"gravity_strength" json:"gravity_strength"`
	MaxVelocity       float64 `yaml:"max_velocity" json:"max_velocity"`
	TimeScale         float64 `yaml:"time_scale" json:"time_scale"`
	RepulsionStrength float64 `yaml:"repulsion_strength" json:"repulsion_strength"`
	EnableRepulsion   bool    `yaml:"enable_repulsion" json:"enable_repulsion"`
	ShowGravityField  bool    `yaml:"show_gravity_field" json:"show_gravity_field"`
}

func DefaultParams() Params {
	return Params{
		GravityStrength:   DefaultGravityStrength,
		MaxVelocity:       DefaultMaxVelocity,
		TimeScale:         DefaultTimeScale,
		RepulsionStrength: DefaultRepulsionStrength,
		EnableRepulsion:   true,
		ShowGravityField:  true,
	}
}

// Parameter names accepted by GetParams/SetParam.
const (
	ParamGravity         = "gravity"
	ParamMaxVelocity     = "max_velocity"
	ParamTimeScale       = "time_scale"
	ParamRepulsion       = "repulsion"
	ParamEnableRepulsion = "enable_repulsion"
	ParamShowField       = "show_field"
)

func (p Params) asMap() map[string]float64 {
	return map[string]float64{
		ParamGravity:         p.GravityStrength,
		ParamMaxVelocity:     p.MaxVelocity,
		ParamTimeScale:       p.TimeScale,
		ParamRepulsion:       p.RepulsionStrength,
		ParamEnableRepulsion: boolToFloat(p.EnableRepulsion),
		ParamShowField:       boolToFloat(p.ShowGravityField),
	}
}

func (p *Params) set(name string, v float64) error {
	switch name {
	case ParamGravity:
		p.GravityStrength = v
	case ParamMaxVelocity:
		p.MaxVelocity = v
	case ParamTimeScale:
		p.TimeScale = v
	case ParamRepulsion:
		p.RepulsionStrength = v
	case ParamEnableRepulsion:
		p.EnableRepulsion = v != 0
	case ParamShowField:
		p.ShowGravityField = v != 0
	default:
		return fmt.Errorf("%w: %q", dynamo.ErrUnknownParam, name)
	}
	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
