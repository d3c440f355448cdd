package game

import (
	"testing"

	"github.com/pthm-cable/physix/geom"
	"github.com/pthm-cable/physix/systems"
)

func TestSteeringAddsInputForce(t *testing.T) {
	g := testGame(t, 3)
	player := g.Player()
	player.Velocity = geom.Vector2{}

	g.applyInput(InputState{RightHeld: true, DownHeld: true})

	want := geom.Vector2{X: g.inputForce, Y: g.inputForce}
	if player.Velocity != want {
		t.Errorf("velocity = %+v, want %+v", player.Velocity, want)
	}
}

func TestOpposingDirectionsCancel(t *testing.T) {
	g := testGame(t, 3)
	player := g.Player()
	before := player.Velocity

	g.applyInput(InputState{LeftHeld: true, RightHeld: true, UpHeld: true, DownHeld: true})

	if player.Velocity != before {
		t.Errorf("velocity changed to %+v under cancelling input", player.Velocity)
	}
}

func TestModifierBlocksSteering(t *testing.T) {
	g := testGame(t, 3)
	player := g.Player()
	before := player.Velocity

	g.applyInput(InputState{ModifierHeld: true, RightHeld: true, RightPressed: true})

	if player.Velocity != before {
		t.Errorf("velocity changed to %+v while the modifier was held", player.Velocity)
	}
}

func TestEmergencyStopZeroesPlayer(t *testing.T) {
	g := testGame(t, 3)
	player := g.Player()
	player.Velocity = geom.Vector2{X: g.inputForce, Y: -g.inputForce}

	g.applyInput(InputState{PrimaryHeld: true, PrimaryPressed: true})

	if player.Velocity != (geom.Vector2{}) {
		t.Errorf("velocity = %+v after emergency stop", player.Velocity)
	}
}

func TestGravityToggleRoundTrips(t *testing.T) {
	g := testGame(t, 3)
	if g.params.Mode != systems.ModeTopDown {
		t.Fatalf("start mode = %s", g.params.Mode)
	}

	g.applyInput(InputState{ModifierHeld: true, UpPressed: true})
	if g.params.Mode != systems.ModeGravity {
		t.Errorf("after toggle mode = %s", g.params.Mode)
	}

	g.applyInput(InputState{ModifierHeld: true, UpPressed: true})
	if g.params.Mode != systems.ModeTopDown {
		t.Errorf("after second toggle mode = %s", g.params.Mode)
	}
}

func TestGravityInvertRoundTripsExactly(t *testing.T) {
	g := testGame(t, 3)
	before := g.params.Gravity

	g.applyInput(InputState{ModifierHeld: true, DownPressed: true})
	if g.params.Gravity != before.Neg() {
		t.Errorf("gravity = %+v after invert, want %+v", g.params.Gravity, before.Neg())
	}

	g.applyInput(InputState{ModifierHeld: true, DownPressed: true})
	if g.params.Gravity != before {
		t.Errorf("gravity = %+v after double invert, want %+v", g.params.Gravity, before)
	}
}

func TestModifierLeftTogglesStatsOverlay(t *testing.T) {
	g := testGame(t, 3)
	if g.statsEnabled {
		t.Fatal("stats overlay starts enabled")
	}

	g.applyInput(InputState{ModifierHeld: true, LeftPressed: true})
	if !g.statsEnabled {
		t.Error("overlay not enabled after toggle")
	}

	g.applyInput(InputState{ModifierHeld: true, LeftPressed: true})
	if g.statsEnabled {
		t.Error("overlay still enabled after second toggle")
	}
}
