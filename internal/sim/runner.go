package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/gravsim/internal/dynamo"
)

// RunConfig drives a headless run of a world.
type RunConfig struct {
	Bounds dynamo.Bounds
	Steps  int
}

type Result struct {
	Stats   []dynamo.StepStats
	Metrics map[string]float64
	Series  map[string][]float64
	Removed int
	Skipped int
}

// Runner advances a world for a fixed number of frames and samples its
// metrics after every frame.
type Runner struct {
	world   *World
	metrics []dynamo.Metric
}

func NewRunner(w *World) *Runner {
	return &Runner{world: w, metrics: make([]dynamo.Metric, 0)}
}

func (r *Runner) AddMetric(m dynamo.Metric) { r.metrics = append(r.metrics, m) }

func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := validateRunConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Stats:   make([]dynamo.StepStats, 0, cfg.Steps),
		Metrics: make(map[string]float64),
		Series:  make(map[string][]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	fan := &fanout{metrics: r.metrics}
	r.world.AddObserver(fan)
	defer r.world.removeObserver(fan)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		stats := r.world.Step(cfg.Bounds.Width, cfg.Bounds.Height)
		result.Stats = append(result.Stats, stats)
		result.Removed += stats.Removed
		if stats.Skipped {
			result.Skipped++
		}
		for _, m := range r.metrics {
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
	}

	r.collect(result)
	return result, nil
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

// fanout attaches a runner's metrics to the world as a single observer, so
// detaching never compares the metrics themselves.
type fanout struct {
	metrics []dynamo.Metric
}

func (f *fanout) OnStep(stats dynamo.StepStats, vels []dynamo.Vec2) {
	for _, m := range f.metrics {
		m.OnStep(stats, vels)
	}
}

func validateRunConfig(cfg RunConfig) error {
	if !cfg.Bounds.Valid() {
		return fmt.Errorf("%w: got %.0fx%.0f", dynamo.ErrInvalidBounds, cfg.Bounds.Width, cfg.Bounds.Height)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	return nil
}
