package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/logging"
)

var (
	logLevel  string
	logFormat string

	configFile string
	preset     string
	seed       int64
	runSteps   int
	fieldSteps int
	width      float64
	height     float64
	size       int

	gravity         float64
	maxVelocity     float64
	timeScale       float64
	repulsion       float64
	enableRepulsion bool
	showField       bool

	theme      string
	outFile    string
	force      bool
	jsonOut    bool
	withSeries bool

	stderr io.Writer = os.Stderr
	// replaced once flags are parsed; parse errors go through this one
	log = newLogger("", logging.FormatText)
)

func newLogger(level string, format logging.Format) *logging.Logger {
	return logging.New(stderr, level, format)
}

// main registers the gravsim command tree; with no subcommand it opens the
// live view.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("command failed", err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gravsim",
		Short:         "2d gravity field particle simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = newLogger(logLevel, logging.Format(logFormat))
		},
		RunE: runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $"+logging.EnvLevel)
	pf.StringVar(&logFormat, "log-format", string(logging.FormatText), "log format (text, json)")
	pf.StringVar(&configFile, "config", "", "scenario file (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.Int64Var(&seed, "seed", 0, "particle colour seed (0 = random)")
	pf.Float64Var(&width, "width", config.DefaultWidth, "field width")
	pf.Float64Var(&height, "height", config.DefaultHeight, "field height")
	pf.IntVar(&size, "size", config.DefaultParticleSize, "particle size for spawns")
	pf.Float64Var(&gravity, "gravity", 30, "gravity strength")
	pf.Float64Var(&maxVelocity, "max-velocity", 100, "speed cap")
	pf.Float64Var(&timeScale, "time-scale", 1, "integration time scale")
	pf.Float64Var(&repulsion, "repulsion", 50, "particle repulsion strength")
	pf.BoolVar(&enableRepulsion, "enable-repulsion", true, "particles push each other apart")
	pf.BoolVar(&showField, "show-field", true, "compute gravity field arrows")

	rootCmd.Flags().StringVar(&theme, "theme", "night", "colour theme")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view (mouse spawns bodies)",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", "night", "colour theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&runSteps, "steps", config.DefaultSteps, "frames to simulate")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as json")
	runCmd.Flags().BoolVar(&withSeries, "series", false, "include per-step metric series in json")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "print the gravity field arrows",
		RunE:  runField,
	}
	fieldCmd.Flags().IntVar(&fieldSteps, "steps", 0, "frames to simulate first")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the world to an svg file",
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&runSteps, "steps", config.DefaultSteps, "frames to simulate first")
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "gravsim.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "scenario file helpers",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a scenario file from the defaults or --preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  configInit,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(liveCmd, runCmd, fieldCmd, svgCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadScenario builds the config: preset first, then the config file, then
// any flag the user set explicitly.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("steps") {
		cfg.Steps = runSteps
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("size") {
		cfg.ParticleSize = size
	}
	if flags.Changed("gravity") {
		cfg.Params.GravityStrength = gravity
	}
	if flags.Changed("max-velocity") {
		cfg.Params.MaxVelocity = maxVelocity
	}
	if flags.Changed("time-scale") {
		cfg.Params.TimeScale = timeScale
	}
	if flags.Changed("repulsion") {
		cfg.Params.RepulsionStrength = repulsion
	}
	if flags.Changed("enable-repulsion") {
		cfg.Params.EnableRepulsion = enableRepulsion
	}
	if flags.Changed("show-field") {
		cfg.Params.ShowGravityField = showField
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
