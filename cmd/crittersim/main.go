package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/crittersim/internal/config"
	"github.com/san-kum/crittersim/internal/export"
	"github.com/san-kum/crittersim/internal/metrics"
	"github.com/san-kum/crittersim/internal/sim"
	"github.com/san-kum/crittersim/internal/sprite"
	"github.com/san-kum/crittersim/internal/storage"
	"github.com/san-kum/crittersim/internal/tui"
	"github.com/san-kum/crittersim/internal/world"
)

var (
	dataDir    string
	configFile string
	preset     string

	gravity        float64
	friction       float64
	bounceFriction float64
	drag           float64
	spinFactor     float64
	maxObjects     int
	objectCount    int
	viewW          float64
	viewH          float64
	images         []string

	ticks     int
	seed      int64
	frameRate int
	svgPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crittersim",
		Short: "bounded-population 2d body simulation",
		Run: func(cmd *cobra.Command, args []string) {
			if err := watchSimulation(cmd); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".crittersim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&gravity, "gravity", config.DefaultGravity, "downward acceleration per tick")
	rootCmd.PersistentFlags().Float64Var(&friction, "friction", config.DefaultFriction, "legacy friction (not applied)")
	rootCmd.PersistentFlags().Float64Var(&bounceFriction, "bounce", config.DefaultBounceFriction, "wall bounce energy retention")
	rootCmd.PersistentFlags().Float64Var(&drag, "drag", config.DefaultDrag, "velocity damping per tick")
	rootCmd.PersistentFlags().Float64Var(&spinFactor, "spin", config.DefaultAngularVelocityFactor, "angular velocity bound")
	rootCmd.PersistentFlags().IntVar(&maxObjects, "max-objects", config.DefaultMaxObjects, "population cap")
	rootCmd.PersistentFlags().IntVar(&objectCount, "objects", config.DefaultObjectCount, "initial population")
	rootCmd.PersistentFlags().Float64Var(&viewW, "width", config.DefaultViewportWidth, "viewport width")
	rootCmd.PersistentFlags().Float64Var(&viewH, "height", config.DefaultViewportHeight, "viewport height")
	rootCmd.PersistentFlags().StringSliceVar(&images, "image", nil, "sprite image path (repeatable)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless simulation and save the result",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "ticks to simulate")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final snapshot as SVG")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "watch the simulation live in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchSimulation(cmd)
		},
	}
	watchCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frames per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's population and energy",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, watchCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges preset, config file, and flags, in that order of
// increasing precedence, and validates the result.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := map[string]func(){
		"gravity":     func() { cfg.Gravity = gravity },
		"friction":    func() { cfg.Friction = friction },
		"bounce":      func() { cfg.BounceFriction = bounceFriction },
		"drag":        func() { cfg.Drag = drag },
		"spin":        func() { cfg.AngularVelocityFactor = spinFactor },
		"max-objects": func() { cfg.MaxObjects = maxObjects },
		"objects":     func() { cfg.ObjectCount = objectCount },
		"width":       func() { cfg.ViewportWidth = viewW },
		"height":      func() { cfg.ViewportHeight = viewH },
		"image":       func() { cfg.UserImages = images },
		"ticks":       func() { cfg.Ticks = ticks },
		"fps":         func() { cfg.FrameRate = frameRate },
	}
	for name, apply := range flags {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	cfg.Seed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSession builds an engine from the config, resolves sprites (with
// per-slot placeholder fallback), and returns a running session.
func newSession(ctx context.Context, cfg *config.Config) (*sim.Session, *sim.Engine, error) {
	engine, err := sim.New(sim.Params{
		Gravity:               cfg.Gravity,
		Drag:                  cfg.Drag,
		BounceFriction:        cfg.BounceFriction,
		AngularVelocityFactor: cfg.AngularVelocityFactor,
		MaxObjects:            cfg.MaxObjects,
		ViewW:                 cfg.ViewportWidth,
		ViewH:                 cfg.ViewportHeight,
	}, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}

	handles := sprite.ResolveAll(ctx, sprite.FileProvider{}, cfg.UserImages)
	bodies := world.NewPopulation(engine.Rand(), cfg.ObjectCount, handles,
		cfg.ViewportWidth, cfg.ViewportHeight, cfg.AngularVelocityFactor)

	session := sim.NewSession(engine)
	session.Begin(bodies)
	return session, engine, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, engine, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}

	engine.AddMetric(metrics.NewPopulation())
	engine.AddMetric(metrics.NewPeakPopulation())
	engine.AddMetric(metrics.NewKineticEnergy())

	result, err := engine.Run(ctx, session.State(), cfg.Ticks)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(cfg.Seed, cfg.ObjectCount, cfg.MaxObjects, result)
	if err != nil {
		return err
	}

	if svgPath != "" {
		if err := export.WriteSnapshot(svgPath, result.Final.Bodies, cfg.ViewportWidth, cfg.ViewportHeight); err != nil {
			return err
		}
	}

	fmt.Printf("run %s: %d ticks, final population %d\n", runID, result.TicksRun, len(result.Final.Bodies))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for name, value := range result.Metrics {
		fmt.Fprintf(w, "  %s\t%.4f\n", name, value)
	}
	w.Flush()
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}
	return nil
}

func watchSimulation(cmd *cobra.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	session, _, err := newSession(context.Background(), cfg)
	if err != nil {
		return err
	}

	model := tui.NewModel(session, cfg.FrameRate)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tTICKS\tSTART\tCAP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Seed, r.Ticks, r.ObjectCount, r.MaxObjects)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	population, energy, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(population) == 0 {
		return fmt.Errorf("run %s has no series data", args[0])
	}

	fmt.Println("population")
	fmt.Println(asciigraph.Plot(population, asciigraph.Height(10), asciigraph.Width(70)))
	fmt.Println()
	fmt.Println("kinetic energy")
	fmt.Println(asciigraph.Plot(energy, asciigraph.Height(10), asciigraph.Width(70)))
	return nil
}
