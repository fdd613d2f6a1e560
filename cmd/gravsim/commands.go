package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/viz"
)

// removalLogger reports particles leaving the field at debug level.
type removalLogger struct{}

func (removalLogger) OnStep(stats dynamo.StepStats, _ []dynamo.Vec2) {
	if stats.Removed > 0 {
		log.Debug("particles removed", "step", stats.Step, "removed", stats.Removed, "left", stats.Particles)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	w := cfg.NewWorld()
	log.Info("starting live view", "width", cfg.Width, "height", cfg.Height, "particles", w.ParticleCount(), "sources", w.SourceCount())
	return viz.Run(viz.NewModel(w, cfg.Bounds(), cfg.ParticleSize, theme))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := cfg.NewWorld()
	w.AddObserver(removalLogger{})
	runner := sim.NewRunner(w)
	for _, m := range metrics.All(cfg.Params.MaxVelocity) {
		runner.AddMetric(m)
	}

	log.Info("running simulation", "steps", cfg.Steps, "particles", w.ParticleCount(), "sources", w.SourceCount())
	start := time.Now()

	result, err := runner.Run(ctx, sim.RunConfig{Bounds: cfg.Bounds(), Steps: cfg.Steps})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)
	log.Info("simulation finished", "elapsed", elapsed, "steps", len(result.Stats))

	if jsonOut {
		return export.WriteJSON(os.Stdout, export.NewReport(w.Params(), result, withSeries))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "steps:\t%d\n", len(result.Stats))
	fmt.Fprintf(tw, "skipped:\t%d\n", result.Skipped)
	fmt.Fprintf(tw, "removed:\t%d\n", result.Removed)
	fmt.Fprintf(tw, "particles:\t%d\n", w.ParticleCount())
	fmt.Fprintf(tw, "elapsed:\t%v\n", elapsed)
	tw.Flush()

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	for _, series := range []string{"particles", "mean_speed"} {
		data := result.Series[series]
		if len(data) < 2 {
			continue
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption(series)))
	}
	return nil
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	w := cfg.NewWorld()
	w.SetShowGravityField(true)
	for i := 0; i < fieldSteps; i++ {
		w.Step(cfg.Width, cfg.Height)
	}

	arrows := w.Field(cfg.Bounds())
	if len(arrows) == 0 {
		fmt.Println("no field: add a source")
		return nil
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "X\tY\tMAGNITUDE\tLENGTH\tDIR\tALPHA")
	for _, a := range arrows {
		fmt.Fprintf(tw, "%.0f\t%.0f\t%.3f\t%.1f\t%s\t%d\n", a.Origin.X, a.Origin.Y, a.Magnitude, a.Length, a.Dir, a.Alpha)
	}
	return tw.Flush()
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	w := cfg.NewWorld()
	w.AddObserver(removalLogger{})
	for i := 0; i < cfg.Steps; i++ {
		w.Step(cfg.Width, cfg.Height)
	}
	if err := export.WriteSVG(outFile, w, cfg.Bounds()); err != nil {
		return err
	}
	log.Info("wrote svg", "path", outFile, "steps", cfg.Steps, "particles", w.ParticleCount())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tSOURCES\tPARTICLES")
	for _, name := range config.ListPresets() {
		p, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", name, len(p.Sources), len(p.Particles))
	}
	return tw.Flush()
}

func configInit(cmd *cobra.Command, args []string) error {
	path := "gravsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force)", path)
	}
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
