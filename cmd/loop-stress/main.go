// Command loop-stress runs the frame loop headless against a software surface
// and prints a timing report.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/stagecraft/backend/gg"
	"github.com/plus3/stagecraft/game"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML game config. Defaults are used when empty.")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 1000, "The number of bouncing entities to create.")
	emitterEvery := flag.Int("emitter-every", 10, "Attach a particle emitter to every Nth entity; 0 disables emitters.")
	snapshot := flag.String("snapshot", "", "Write the last frame to this PNG file.")
	logLevel := flag.String("log-level", "", "Override the config log level (debug, info, warn, error).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	seed := flag.Uint64("seed", 1, "Random seed for entity placement.")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = game.LoadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := game.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, cfg, options{
		duration:       *duration,
		entities:       *entityCount,
		emitterEvery:   *emitterEvery,
		snapshot:       *snapshot,
		gcPauseMetrics: *gcPauseMetrics,
		seed:           *seed,
	}); err != nil {
		logger.Fatal("stress test failed", zap.Error(err))
	}
}

type options struct {
	duration       time.Duration
	entities       int
	emitterEvery   int
	snapshot       string
	gcPauseMetrics bool
	seed           uint64
}

func run(logger *zap.Logger, cfg game.Config, opts options) error {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run", runID))

	logger.Info("starting loop stress test",
		zap.Duration("duration", opts.duration),
		zap.Int("entities", opts.entities),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	g, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	sim := populate(g, opts.entities, opts.emitterEvery, opts.seed)
	logger.Info("population complete",
		zap.Int("entities", g.Scene().Len()),
		zap.Int("colliders", len(sim.colliders)),
	)

	surface := gg.NewSurface(cfg.Width, cfg.Height)
	defer surface.Close()

	report := &Report{
		RunID:          runID,
		Seed:           opts.seed,
		Duration:       opts.duration,
		Entities:       opts.entities,
		Width:          cfg.Width,
		Height:         cfg.Height,
		GCPauseMetrics: opts.gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	loop := game.NewLoop(g, nil)
	deadline := time.Now().Add(opts.duration)
	startTime := time.Now()

	for time.Now().Before(deadline) {
		updateStart := time.Now()
		loop.Step(surface)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Loop = loop.Stats()
	report.Respawns = sim.respawns
	report.FinalEntities = g.Scene().Len()
	report.FrameHash = frameHash(surface.Image())
	runtime.ReadMemStats(&report.MemStatsEnd)

	if surface.Err != nil {
		logger.Warn("rasterization error in last frame", zap.Error(surface.Err))
	}

	logger.Info("simulation finished", zap.Int64("ticks", report.Loop.Ticks))

	if opts.snapshot != "" {
		if err := surface.SavePNG(opts.snapshot); err != nil {
			return err
		}
		logger.Info("snapshot written", zap.String("path", opts.snapshot))
	}

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}
