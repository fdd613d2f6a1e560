package physics

import (
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

func TestNewParticle_CoercesSize(t *testing.T) {
	p := NewParticle(0, 0, 0, 0, 0, color.RGBA{})
	if p.Size != 1 {
		t.Errorf("expected size 1, got %d", p.Size)
	}
	s := NewSource(0, 0, -5)
	if s.Size != 1 {
		t.Errorf("expected source size 1, got %d", s.Size)
	}
}

func TestParticle_ClampVelocity(t *testing.T) {
	p := NewParticle(0, 0, 10, 300, 400, color.RGBA{})
	p.ClampVelocity(100)

	if math.Abs(p.Speed()-100) > 1e-9 {
		t.Errorf("expected speed 100, got %v", p.Speed())
	}
	if math.Abs(p.VX/p.VY-0.75) > 1e-12 {
		t.Errorf("clamp changed direction: (%v, %v)", p.VX, p.VY)
	}
}

func TestParticle_ClampVelocityNonFinite(t *testing.T) {
	p := NewParticle(0, 0, 10, math.NaN(), 1, color.RGBA{})
	p.ClampVelocity(100)
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("expected zeroed velocity, got (%v, %v)", p.VX, p.VY)
	}
}

func TestParticle_Integrate(t *testing.T) {
	p := NewParticle(10, 20, 10, 2, -4, color.RGBA{})
	p.Integrate(0.5)

	if p.X != 11 || p.Y != 18 {
		t.Errorf("expected (11, 18), got (%v, %v)", p.X, p.Y)
	}
	latest, ok := p.Trail.Latest()
	if !ok || latest != p.Pos() {
		t.Errorf("trail latest %v, want %v", latest, p.Pos())
	}
}

func TestParticle_OutOfBounds(t *testing.T) {
	b := dynamo.Bounds{Width: 100, Height: 100}
	tests := []struct {
		name string
		x, y float64
		out  bool
	}{
		{"inside", 50, 50, false},
		{"overlapping left edge", -5, 50, false},
		{"just past left margin", -10.5, 50, true},
		{"past right margin", 111, 50, true},
		{"past bottom margin", 50, 120, true},
		{"past top margin", 50, -11, true},
		{"on left margin", -10, 50, false},
		{"footprint past right edge", 105, 50, false},
		{"on right margin", 110, 50, false},
		{"just past right margin", 110.5, 50, true},
		{"footprint past bottom edge", 50, 102, false},
		{"on bottom margin", 50, 110, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParticle(tt.x, tt.y, 10, 0, 0, color.RGBA{})
			if got := p.OutOfBounds(b); got != tt.out {
				t.Errorf("OutOfBounds = %v, want %v", got, tt.out)
			}
		})
	}
}

func TestSource_Center(t *testing.T) {
	s := NewSource(960, 540, 40)
	if c := s.Center(); c != (dynamo.Vec2{X: 980, Y: 560}) {
		t.Errorf("unexpected center %v", c)
	}
	if s.Polarity != Attractive {
		t.Error("new sources should be attractive")
	}
	s.TogglePolarity()
	if s.Polarity != Repulsive || s.Polarity.String() != "repulsive" {
		t.Errorf("toggle failed: %v", s.Polarity)
	}
}
