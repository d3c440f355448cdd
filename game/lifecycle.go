package game

import (
	"log/slog"

	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/config"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

// spawnBodies creates the fixed population with randomized kinematics.
// Bodies are never destroyed or reallocated afterwards.
func (g *Game) spawnBodies() {
	for i := range g.bodies {
		b := components.NewRigidBody(g.randomPosition())
		b.Velocity = g.randomVelocity()
		g.bodies[i] = g.bodyMap.NewEntity(&b)
	}
	slog.Debug("bodies spawned", "count", NumBodies)
}

// Shake re-randomizes every body's position and perturbs its velocity.
func (g *Game) Shake() {
	for i := range g.bodies {
		b := g.bodyMap.Get(g.bodies[i])
		b.Position = g.randomPosition()
		b.Velocity = b.Velocity.Add(g.randomVelocity())
	}
	g.collector.RecordShake()
	slog.Debug("population shaken", "tick", g.tick)
}

// randomPosition draws uniformly over the playfield, on the full grid.
func (g *Game) randomPosition() geom.Point2 {
	return geom.Point2{
		X: fixed.FromRaw(int16(g.rng.Intn(int(g.params.MaxX.Raw()) + 1))),
		Y: fixed.FromRaw(int16(g.rng.Intn(int(g.params.MaxY.Raw()) + 1))),
	}
}

// randomVelocity draws each component uniformly over every representable
// value in the configured speed range.
func (g *Game) randomVelocity() geom.Vector2 {
	r := config.Cfg().Derived.MaxInitialSpeedRaw
	return geom.Vector2{
		X: fixed.FromRaw(int16(g.rng.Intn(2*r+1) - r)),
		Y: fixed.FromRaw(int16(g.rng.Intn(2*r+1) - r)),
	}
}
