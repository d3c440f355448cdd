package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/physix/geom"
	"github.com/pthm-cable/physix/systems"
)

// InputState is one tick's snapshot of the control set. Held means the
// control is down this tick; Pressed means it went down this tick.
type InputState struct {
	LeftHeld, RightHeld, UpHeld, DownHeld bool
	PrimaryHeld, ModifierHeld             bool

	LeftPressed, RightPressed, UpPressed, DownPressed bool
	PrimaryPressed, ModifierPressed                   bool
}

// pollInput reads the keyboard through raylib. Arrows steer, space is the
// primary action, left shift is the modifier.
func pollInput() InputState {
	return InputState{
		LeftHeld:     rl.IsKeyDown(rl.KeyLeft),
		RightHeld:    rl.IsKeyDown(rl.KeyRight),
		UpHeld:       rl.IsKeyDown(rl.KeyUp),
		DownHeld:     rl.IsKeyDown(rl.KeyDown),
		PrimaryHeld:  rl.IsKeyDown(rl.KeySpace),
		ModifierHeld: rl.IsKeyDown(rl.KeyLeftShift),

		LeftPressed:     rl.IsKeyPressed(rl.KeyLeft),
		RightPressed:    rl.IsKeyPressed(rl.KeyRight),
		UpPressed:       rl.IsKeyPressed(rl.KeyUp),
		DownPressed:     rl.IsKeyPressed(rl.KeyDown),
		PrimaryPressed:  rl.IsKeyPressed(rl.KeySpace),
		ModifierPressed: rl.IsKeyPressed(rl.KeyLeftShift),
	}
}

// applyInput runs the force/mode controller. With the modifier held,
// press edges trigger one-shot actions; otherwise the directional controls
// accumulate a steering force for the player body. Every branch is a total
// mutation - the controller cannot fail.
func (g *Game) applyInput(in InputState) {
	if in.ModifierHeld {
		if in.PrimaryPressed {
			g.Shake()
		}
		if in.UpPressed {
			g.toggleGravity()
		}
		if in.DownPressed {
			g.params.Gravity = g.params.Gravity.Neg()
		}
		if in.LeftPressed {
			g.statsEnabled = !g.statsEnabled
		}
		return
	}

	var force geom.Vector2
	if in.LeftHeld {
		force.X -= g.inputForce
	}
	if in.RightHeld {
		force.X += g.inputForce
	}
	if in.UpHeld {
		force.Y -= g.inputForce
	}
	if in.DownHeld {
		force.Y += g.inputForce
	}

	player := g.Player()
	if force != (geom.Vector2{}) {
		player.ApplyForce(force)
	}
	if in.PrimaryPressed {
		player.Velocity = geom.Vector2{}
		g.collector.RecordEmergencyStop()
	}
}

// toggleGravity flips between the two simulation regimes.
func (g *Game) toggleGravity() {
	if g.params.Mode.GravityEnabled() {
		g.params.Mode = systems.ModeTopDown
	} else {
		g.params.Mode = systems.ModeGravity
	}
}
