package metrics

import (
	"github.com/san-kum/gravsim/internal/dynamo"
)

// capEpsilon absorbs rounding in the clamp.
const capEpsilon = 1e-9

// SpeedCap reports the fraction of observed steps in which every particle
// stayed within the velocity cap. 1.0 means the cap always held.
type SpeedCap struct {
	name       string
	limit      float64
	violations int
	samples    int
	maxSeen    float64
}

func NewSpeedCap(limit float64) *SpeedCap {
	return &SpeedCap{
		name:  "speed_cap",
		limit: limit,
	}
}

func (s *SpeedCap) Name() string {
	return s.name
}

func (s *SpeedCap) SetLimit(limit float64) { s.limit = limit }

func (s *SpeedCap) OnStep(_ dynamo.StepStats, vels []dynamo.Vec2) {
	s.samples++
	violated := false
	for _, v := range vels {
		n := v.Norm()
		if n > s.maxSeen {
			s.maxSeen = n
		}
		if n > s.limit+capEpsilon {
			violated = true
		}
	}
	if violated {
		s.violations++
	}
}

func (s *SpeedCap) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

// MaxSeen returns the highest speed observed since the last Reset.
func (s *SpeedCap) MaxSeen() float64 { return s.maxSeen }

func (s *SpeedCap) Reset() {
	s.violations = 0
	s.samples = 0
	s.maxSeen = 0
}
