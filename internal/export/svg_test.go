package export

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/field"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

var bounds = dynamo.Bounds{Width: 800, Height: 600}

func TestSnapshotToSVG(t *testing.T) {
	src := physics.NewSource(400, 300, 40)
	rep := physics.NewSource(100, 100, 20)
	rep.TogglePolarity()
	snap := sim.Snapshot{
		Particles: []sim.ParticleView{{
			Pos:   dynamo.Vec2{X: 10, Y: 20},
			Size:  10,
			Color: color.RGBA{R: 255, G: 128, B: 100, A: 255},
			Trail: []dynamo.Vec2{{X: 0, Y: 0}, {X: 10, Y: 20}},
		}},
		Sources: []physics.Source{src, rep},
	}

	svg := SnapshotToSVG(snap, nil, bounds)

	tests := []struct {
		name string
		want string
	}{
		{"header", `width="800" height="600"`},
		{"particle", `<circle cx="15.0" cy="25.0" r="5.0" fill="#ff8064"/>`},
		{"trail", `d="M5.0,5.0 L15.0,25.0"`},
		{"attractive source", `<rect x="400.0" y="300.0" width="40" height="40" fill="` + attractiveFill + `"/>`},
		{"repulsive source", `fill="` + repulsiveFill + `"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(svg, tt.want) {
				t.Errorf("missing %q", tt.want)
			}
		})
	}
	if strings.Contains(svg, `id="field"`) {
		t.Error("field group written without arrows")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestSnapshotToSVGArrows(t *testing.T) {
	sources := []physics.Source{physics.NewSource(380, 280, 40)}
	arrows := field.NewSampler().Sample(bounds, sources, 30)
	if len(arrows) == 0 {
		t.Fatal("expected field arrows")
	}
	svg := SnapshotToSVG(sim.Snapshot{Sources: sources}, arrows, bounds)

	if got := strings.Count(svg, `stroke="rgb(0,`); got != len(arrows) {
		t.Errorf("wrote %d arrows, want %d", got, len(arrows))
	}
}

func TestTrailPathShort(t *testing.T) {
	if d := trailPath([]dynamo.Vec2{{X: 1, Y: 1}}, 5); d != "" {
		t.Errorf("single point trail = %q, want empty", d)
	}
}

func TestWriteSVG(t *testing.T) {
	w := sim.New(sim.WithSeed(3))
	w.SpawnSource(400, 300, 40)
	w.SpawnParticle(100, 100, 20, 0, 0)
	w.Step(bounds.Width, bounds.Height)

	path := filepath.Join(t.TempDir(), "frame.svg")
	if err := WriteSVG(path, w, bounds); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<circle") {
		t.Error("particle missing from written file")
	}
}
