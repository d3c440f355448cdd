// Package systems implements the per-tick physics update.
package systems

import (
	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

// Mode selects between the two boundary/friction regimes.
type Mode uint8

const (
	// ModeTopDown: no gravity, isotropic friction, all four walls are
	// perfectly elastic.
	ModeTopDown Mode = iota
	// ModeGravity: gravity accelerates bodies, friction damps only the
	// horizontal axis, vertical bounces lose energy through restitution
	// and settle to rest below the threshold.
	ModeGravity
)

// GravityEnabled reports whether the mode applies gravity.
func (m Mode) GravityEnabled() bool {
	return m == ModeGravity
}

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	if m == ModeGravity {
		return "gravity"
	}
	return "topdown"
}

// Params is the injected simulation configuration. The step function has no
// other inputs, so it is fully testable with hand-built parameters.
type Params struct {
	Mode    Mode
	Gravity geom.Vector2 // per-tick acceleration; sign flips to invert

	Friction    fixed.Number // in (0,1) on the grid
	Restitution fixed.Number // in (0,1) on the grid

	// RestThreshold is the minimum incoming vertical speed that still
	// bounces in ModeGravity. It must sit strictly above fixed.Epsilon or
	// quantization would keep the rest branch unreachable.
	RestThreshold fixed.Number

	// Playfield bounds for a body's top-left corner: the screen size minus
	// the body footprint.
	MinX, MaxX fixed.Number
	MinY, MaxY fixed.Number
}

// Events reports what the boundary sub-steps did to one body during one
// tick, for telemetry and tests.
type Events struct {
	BouncedX bool // horizontal wall reflection
	BouncedY bool // vertical wall reflection
	Rested   bool // vertical speed zeroed against a wall (ModeGravity)
}

// Step advances one body by one tick. Sub-step order is load-bearing:
// gravity, friction, horizontal bounce, vertical bounce, integration. Later
// sub-steps read velocity values written by earlier ones, and the clamps
// act on the position left by the previous tick's integration.
func Step(b *components.RigidBody, p *Params) Events {
	applyGravity(b, p)
	applyFriction(b, p)

	var ev Events
	ev.BouncedX = collideHorizontal(b, p)
	ev.BouncedY, ev.Rested = collideVertical(b, p)

	b.Position.Translate(b.Velocity)
	return ev
}

// applyGravity accelerates the body when the mode calls for it.
func applyGravity(b *components.RigidBody, p *Params) {
	if p.Mode.GravityEnabled() {
		b.Velocity = b.Velocity.Add(p.Gravity)
	}
}

// applyFriction damps velocity. Under gravity only the horizontal axis is
// damped here; vertical energy is lost through restitution instead.
func applyFriction(b *components.RigidBody, p *Params) {
	b.Velocity.X = b.Velocity.X.Mul(p.Friction)
	if !p.Mode.GravityEnabled() {
		b.Velocity.Y = b.Velocity.Y.Mul(p.Friction)
	}
}

// collideHorizontal clamps X into [MinX, MaxX] and reflects the horizontal
// velocity on contact. Elastic in both modes.
func collideHorizontal(b *components.RigidBody, p *Params) bool {
	switch {
	case b.Position.X < p.MinX:
		b.Position.X = p.MinX
	case b.Position.X > p.MaxX:
		b.Position.X = p.MaxX
	default:
		return false
	}
	b.Velocity.X = -b.Velocity.X
	return true
}

// collideVertical clamps Y into [MinY, MaxY]. In ModeTopDown the bounce is
// elastic. In ModeGravity the bounce is scaled by restitution, and an
// incoming speed at or below the threshold is zeroed instead, so a settling
// body comes to rest in finite time.
func collideVertical(b *components.RigidBody, p *Params) (bounced, rested bool) {
	switch {
	case b.Position.Y < p.MinY:
		b.Position.Y = p.MinY
	case b.Position.Y > p.MaxY:
		b.Position.Y = p.MaxY
	default:
		return false, false
	}

	if !p.Mode.GravityEnabled() {
		b.Velocity.Y = -b.Velocity.Y
		return true, false
	}
	if b.Velocity.Y.Abs() > p.RestThreshold {
		b.Velocity.Y = (-b.Velocity.Y).Mul(p.Restitution)
		return true, false
	}
	b.Velocity.Y = 0
	return false, true
}
