package physics

import "github.com/san-kum/gravsim/internal/dynamo"

type Polarity int

const (
	Attractive Polarity = iota
	Repulsive
)

func (p Polarity) String() string {
	if p == Repulsive {
		return "repulsive"
	}
	return "attractive"
}

// Source is a fixed square that pulls particles toward its center.
//
// Polarity is carried for the rendering layer only. The force law does not
// read it, so a repulsive source still attracts.
type Source struct {
	X, Y     float64
	Size     int
	Polarity Polarity
}

func NewSource(x, y float64, size int) Source {
	if size <= 0 {
		size = 1
	}
	return Source{X: x, Y: y, Size: size, Polarity: Attractive}
}

func (s Source) Pos() dynamo.Vec2 { return dynamo.Vec2{X: s.X, Y: s.Y} }

func (s Source) Center() dynamo.Vec2 {
	half := float64(s.Size) / 2.0
	return dynamo.Vec2{X: s.X + half, Y: s.Y + half}
}

func (s *Source) TogglePolarity() {
	if s.Polarity == Attractive {
		s.Polarity = Repulsive
	} else {
		s.Polarity = Attractive
	}
}
