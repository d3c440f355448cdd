// Package components defines the ECS components for the simulation.
package components

import (
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

// RigidBody is the kinematic state of one simulated object. Mass is always
// positive: construction sets it to one and nothing in the simulation
// mutates it, so ApplyForce never divides by zero.
type RigidBody struct {
	Position geom.Point2
	Velocity geom.Vector2
	Mass     fixed.Number
}

// NewRigidBody returns a body at rest at the given position with unit mass.
func NewRigidBody(pos geom.Point2) RigidBody {
	return RigidBody{Position: pos, Mass: fixed.FromInt(1)}
}

// ApplyForce adds force/mass to the body's velocity. With unit mass the
// force acts as an impulse.
func (b *RigidBody) ApplyForce(f geom.Vector2) {
	b.Velocity = b.Velocity.Add(f.Div(b.Mass))
}
