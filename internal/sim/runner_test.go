package sim

import (
	"context"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

type lastCount struct {
	n int
}

func (l *lastCount) OnStep(s dynamo.StepStats, _ []dynamo.Vec2) { l.n = s.Particles }
func (l *lastCount) Name() string                               { return "count" }
func (l *lastCount) Value() float64                             { return float64(l.n) }
func (l *lastCount) Reset()                                     { l.n = 0 }

func TestRunnerRun(t *testing.T) {
	w := New(WithSeed(1))
	w.SpawnSource(500, 500, 40)
	w.SpawnParticle(100, 100, 10, 0, 0)
	w.SpawnParticle(5000, 100, 10, 0, 0)

	r := NewRunner(w)
	metric := &lastCount{}
	r.AddMetric(metric)

	result, err := r.Run(context.Background(), RunConfig{Bounds: dynamo.Bounds{Width: 1000, Height: 1000}, Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Stats) != 10 {
		t.Errorf("expected 10 stats, got %d", len(result.Stats))
	}
	if result.Removed != 1 {
		t.Errorf("expected 1 removal, got %d", result.Removed)
	}
	if result.Metrics["count"] != 1 {
		t.Errorf("expected final count 1, got %v", result.Metrics["count"])
	}
	if len(result.Series["count"]) != 10 {
		t.Errorf("expected 10 samples, got %d", len(result.Series["count"]))
	}

	// metrics are detached once the run is over
	w.Step(1000, 1000)
	w.SpawnParticle(10, 10, 10, 0, 0)
	w.Step(1000, 1000)
	if metric.n != 1 {
		t.Errorf("metric still attached after run, saw %d", metric.n)
	}
}

// tally is a value-type metric. The slice field makes it incomparable.
type tally struct {
	tags []string
	seen *int
}

func (c tally) OnStep(dynamo.StepStats, []dynamo.Vec2) { *c.seen++ }
func (c tally) Name() string                          { return "tally" }
func (c tally) Value() float64                        { return float64(*c.seen) }
func (c tally) Reset()                                { *c.seen = 0 }

func TestRunnerValueTypeMetric(t *testing.T) {
	w := New(WithSeed(1))
	w.SpawnSource(500, 500, 40)
	w.SpawnParticle(100, 100, 10, 0, 0)

	var direct int
	w.AddObserver(tally{tags: []string{"direct"}, seen: &direct})

	var runs int
	r := NewRunner(w)
	r.AddMetric(tally{tags: []string{"run"}, seen: &runs})

	cfg := RunConfig{Bounds: dynamo.Bounds{Width: 1000, Height: 1000}, Steps: 3}
	for i := 0; i < 2; i++ {
		result, err := r.Run(context.Background(), cfg)
		if err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		if result.Metrics["tally"] != 3 {
			t.Errorf("run %d: tally = %v, want 3", i, result.Metrics["tally"])
		}
	}

	w.Step(1000, 1000)
	if runs != 3 {
		t.Errorf("metric still attached after run, saw %d", runs)
	}
	if direct != 7 {
		t.Errorf("directly added observer saw %d steps, want 7", direct)
	}
}

func TestRunnerGatedRun(t *testing.T) {
	w := New(WithSeed(1))
	w.SpawnParticle(100, 100, 10, 0, 0)

	result, err := NewRunner(w).Run(context.Background(), RunConfig{Bounds: dynamo.Bounds{Width: 1000, Height: 1000}, Steps: 5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Skipped != 5 {
		t.Errorf("expected 5 skipped steps, got %d", result.Skipped)
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := NewRunner(New(WithSeed(1)))

	tests := []struct {
		name string
		cfg  RunConfig
	}{
		{"zero width", RunConfig{Bounds: dynamo.Bounds{Width: 0, Height: 10}, Steps: 1}},
		{"negative height", RunConfig{Bounds: dynamo.Bounds{Width: 10, Height: -1}, Steps: 1}},
		{"zero steps", RunConfig{Bounds: dynamo.Bounds{Width: 10, Height: 10}, Steps: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerCanceled(t *testing.T) {
	w := New(WithSeed(1))
	w.SpawnSource(500, 500, 40)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewRunner(w).Run(ctx, RunConfig{Bounds: dynamo.Bounds{Width: 1000, Height: 1000}, Steps: 100})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || len(result.Stats) != 0 {
		t.Error("expected empty partial result")
	}
}
