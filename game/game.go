// Package game owns the tick loop: input handling, the physics step over
// the body population, rendering and telemetry.
package game

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/config"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/systems"
	"github.com/pthm-cable/physix/telemetry"
	"github.com/pthm-cable/physix/ui"
)

// Population constants. The body count is fixed for the process lifetime;
// the entity at PlayerIndex is the steerable body.
const (
	NumBodies   = 8
	PlayerIndex = 0
	BodySize    = 8 // square footprint in logical pixels
)

// Options configures a new game instance.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	Output         *telemetry.OutputManager
}

// Game holds the complete sandbox state.
type Game struct {
	world   *ecs.World
	bodyMap *ecs.Map1[components.RigidBody]

	// bodies is the fixed, ordered population; index PlayerIndex is the
	// player. The entities are the storage - there is no second handle.
	bodies [NumBodies]ecs.Entity

	params     systems.Params
	inputForce fixed.Number
	rng        *rand.Rand

	tick         int32
	statsEnabled bool
	logStats     bool

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	panel *ui.Panel
	scale int
}

// NewGame creates a game instance from the loaded configuration.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:      world,
		bodyMap:    ecs.NewMap1[components.RigidBody](world),
		rng:        rand.New(rand.NewSource(opts.Seed)),
		logStats:   opts.LogStats,
		output:     opts.Output,
		scale:      cfg.Screen.Scale,
		inputForce: cfg.Derived.InputForce,
		params: systems.Params{
			Mode:          systems.ModeTopDown,
			Gravity:       cfg.Derived.Gravity,
			Friction:      cfg.Derived.Friction,
			Restitution:   cfg.Derived.Restitution,
			RestThreshold: cfg.Derived.RestThreshold,
			MinX:          0,
			MaxX:          fixed.FromInt(cfg.Screen.Width - BodySize),
			MinY:          0,
			MaxY:          fixed.FromInt(cfg.Screen.Height - BodySize),
		},
	}

	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(windowSec, cfg.Screen.TargetFPS)

	g.spawnBodies()

	if !opts.Headless {
		g.panel = ui.NewPanel(10, 10, 260, ui.Tuning{
			Gravity:     float32(cfg.Physics.Gravity),
			Friction:    float32(cfg.Physics.Friction),
			Restitution: float32(cfg.Physics.Restitution),
			InputForce:  float32(cfg.Physics.InputForce),
			GravityOn:   g.params.Mode.GravityEnabled(),
		})
		g.panel.OnChange = g.applyTuning
	}

	return g
}

// UpdateHeadless advances one tick with no input, for headless runs.
func (g *Game) UpdateHeadless() {
	g.stepTick(InputState{})
}

// stepTick runs one complete tick: controller, then the physics step for
// every body in index order, then telemetry. It always runs to completion;
// external readers only ever observe tick-boundary state.
func (g *Game) stepTick(in InputState) {
	g.applyInput(in)

	for i := 0; i < NumBodies; i++ {
		b := g.bodyMap.Get(g.bodies[i])
		ev := systems.Step(b, &g.params)

		g.collector.RecordStep(ev)
		speed := math.Hypot(b.Velocity.X.Float64(), b.Velocity.Y.Float64())
		g.collector.Sample(speed)
		if i == PlayerIndex {
			g.collector.SamplePlayer(speed)
		}
	}

	g.tick++
	if stats, ok := g.collector.Flush(g.tick, g.params.Mode.GravityEnabled()); ok {
		if g.logStats {
			stats.Log()
		}
		if err := g.output.WriteWindow(stats); err != nil {
			slog.Error("writing telemetry window", "error", err)
		}
	}
}

// applyTuning reapplies panel values onto the fixed-point parameters. The
// gravity slider sets magnitude; an inverted direction is preserved.
func (g *Game) applyTuning(tn ui.Tuning) {
	grav := fixed.FromFloat(float64(tn.Gravity))
	if g.params.Gravity.Y < 0 {
		grav = -grav
	}
	g.params.Gravity.Y = grav
	g.params.Friction = fixed.FromFloat(float64(tn.Friction))
	g.params.Restitution = fixed.FromFloat(float64(tn.Restitution))
	g.inputForce = fixed.FromFloat(float64(tn.InputForce))
	if tn.GravityOn {
		g.params.Mode = systems.ModeGravity
	} else {
		g.params.Mode = systems.ModeTopDown
	}
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int32 {
	return g.tick
}

// Player returns the player body. It is the same storage as the entity at
// PlayerIndex; mutations through either path observe each other.
func (g *Game) Player() *components.RigidBody {
	return g.bodyMap.Get(g.bodies[PlayerIndex])
}

// Close releases the telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
