package dynamo

import (
	"math"
	"testing"
)

func TestVec2_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		valid bool
	}{
		{"zero", Vec2{}, true},
		{"normal", Vec2{1, -2}, true},
		{"NaN x", Vec2{math.NaN(), 0}, false},
		{"+Inf y", Vec2{0, math.Inf(1)}, false},
		{"-Inf x", Vec2{math.Inf(-1), 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}

	if got := a.Add(b); got != (Vec2{5, 8}) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := b.Sub(a); got != (Vec2{3, 4}) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Scale(3); got != (Vec2{3, 6}) {
		t.Errorf("Scale failed: got %v", got)
	}
	if got := b.Sub(a).Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm failed: got %v", got)
	}
}

func TestVec2_ClampNorm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		max  float64
		want Vec2
	}{
		{"under cap", Vec2{3, 4}, 10, Vec2{3, 4}},
		{"at cap", Vec2{3, 4}, 5, Vec2{3, 4}},
		{"over cap", Vec2{30, 40}, 5, Vec2{3, 4}},
		{"zero cap", Vec2{3, 4}, 0, Vec2{}},
		{"negative cap", Vec2{3, 4}, -1, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampNorm(tt.max)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("ClampNorm(%v) = %v, want %v", tt.max, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Width: 100, Height: 50}
	if !b.Valid() {
		t.Error("expected valid bounds")
	}
	if (Bounds{Width: 0, Height: 10}).Valid() {
		t.Error("expected zero width to be invalid")
	}
	if !b.Contains(Vec2{100, 50}) {
		t.Error("corner should be contained")
	}
	if b.Contains(Vec2{-0.1, 10}) {
		t.Error("point left of origin should not be contained")
	}
}

func TestStepStats_String(t *testing.T) {
	s := StepStats{Step: 3, Particles: 2, Sources: 1, Removed: 1}
	expected := "step 3: 2 particles, 1 sources, 1 removed"
	if s.String() != expected {
		t.Errorf("String() = %q, want %q", s.String(), expected)
	}

	s = StepStats{Step: 4, Skipped: true}
	if s.String() != "step 4: skipped (no sources)" {
		t.Errorf("unexpected skipped string %q", s.String())
	}
}

func TestSpawnError(t *testing.T) {
	err := &SpawnError{Kind: "particles", Index: 2, Wrapped: ErrInvalidSize}
	expected := "particles[2]: dynamo: size must be positive"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if err.Unwrap() != ErrInvalidSize {
		t.Error("Unwrap did not return wrapped error")
	}
}
