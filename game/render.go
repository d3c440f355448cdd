package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/physix/config"
)

// Update advances one tick in windowed mode: UI keys, input snapshot,
// simulation step.
func (g *Game) Update() {
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	g.stepTick(pollInput())
}

// Draw renders the tick-boundary state: each body as an 8x8 rectangle, the
// player outlined, everything else filled.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	scale := int32(g.scale)
	side := int32(BodySize) * scale
	for i := 0; i < NumBodies; i++ {
		b := g.bodyMap.Get(g.bodies[i])
		x := int32(b.Position.X.Float64() * float64(scale))
		y := int32(b.Position.Y.Float64() * float64(scale))
		if i == PlayerIndex {
			rl.DrawRectangleLines(x, y, side, side, rl.RayWhite)
		} else {
			rl.DrawRectangle(x, y, side, side, rl.RayWhite)
		}
	}

	if g.statsEnabled {
		g.drawStats()
	}
	g.panel.Draw()

	rl.EndDrawing()
}

// drawStats renders the diagnostic overlay. This is the only place body
// kinematics are converted to floats for display.
func (g *Game) drawStats() {
	cfg := config.Cfg()
	player := g.Player()

	lines := []string{
		fmt.Sprintf("tick %d  fps %d", g.tick, rl.GetFPS()),
		fmt.Sprintf("mode %s  gravity %+.3f", g.params.Mode, g.params.Gravity.Y.Float64()),
		fmt.Sprintf("friction %.3f  restitution %.3f (cfg %.2f/%.2f)",
			g.params.Friction.Float64(), g.params.Restitution.Float64(),
			cfg.Physics.Friction, cfg.Physics.Restitution),
		fmt.Sprintf("player pos (%.3f, %.3f)  vel (%.3f, %.3f)",
			player.Position.X.Float64(), player.Position.Y.Float64(),
			player.Velocity.X.Float64(), player.Velocity.Y.Float64()),
	}

	y := int32(10)
	if g.panel.Visible() {
		y += g.panel.Height()
	}
	for i, line := range lines {
		rl.DrawText(line, 10, y+int32(i)*18, 16, rl.Green)
	}
}
