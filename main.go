package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/physix/config"
	"github.com/pthm-cable/physix/game"
	"github.com/pthm-cable/physix/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to set up output directory", "error", err)
		os.Exit(1)
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
		os.Exit(1)
	}

	opts := game.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		Output:         output,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g := game.NewGame(opts)
		defer g.Close()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	}

	// Graphical mode: the logical 128x64 playfield is scaled up per config.
	rl.InitWindow(
		int32(cfg.Screen.Width*cfg.Screen.Scale),
		int32(cfg.Screen.Height*cfg.Screen.Scale),
		"Physix",
	)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(opts)
	defer g.Close()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}
