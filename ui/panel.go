// Package ui provides the interactive tuning panel.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tuning holds the float-valued panel state. The game converts changed
// values back onto the fixed-point grid.
type Tuning struct {
	Gravity     float32
	Friction    float32
	Restitution float32
	InputForce  float32
	GravityOn   bool
}

// Panel renders sliders for the physics tuning constants.
type Panel struct {
	x, y, width int32
	visible     bool
	tuning      Tuning

	// OnChange fires with the full tuning whenever any control changes.
	OnChange func(Tuning)
}

// NewPanel creates a hidden panel at the given position.
func NewPanel(x, y, width int32, initial Tuning) *Panel {
	return &Panel{x: x, y: y, width: width, tuning: initial}
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Height returns the vertical space the panel occupies when visible.
func (p *Panel) Height() int32 {
	if !p.visible {
		return 0
	}
	return 5*38 + 30
}

// Draw renders the panel and fires OnChange on edits.
func (p *Panel) Draw() {
	if !p.visible {
		return
	}

	x := float32(p.x)
	y := float32(p.y)
	w := float32(p.width)

	rl.DrawRectangle(p.x-5, p.y-5, p.width+70, p.Height(), rl.Fade(rl.DarkGray, 0.8))
	rl.DrawText("tuning", p.x, int32(y), 16, rl.RayWhite)
	y += 24

	changed := false

	slider := func(label string, value, min, max float32) float32 {
		rl.DrawText(label, int32(x), int32(y), 12, rl.LightGray)
		y += 14
		next := gui.SliderBar(
			rl.Rectangle{X: x, Y: y, Width: w - 40, Height: 18},
			"", "", value, min, max,
		)
		rl.DrawText(fmt.Sprintf("%.2f", value), int32(x+w-32), int32(y+2), 14, rl.RayWhite)
		y += 24
		if next != value {
			changed = true
		}
		return next
	}

	p.tuning.Gravity = slider("gravity", p.tuning.Gravity, 0.125, 2.0)
	p.tuning.Friction = slider("friction", p.tuning.Friction, 0.125, 0.99)
	p.tuning.Restitution = slider("restitution", p.tuning.Restitution, 0.125, 0.99)
	p.tuning.InputForce = slider("input force", p.tuning.InputForce, 0.125, 2.0)

	on := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "gravity mode", p.tuning.GravityOn)
	if on != p.tuning.GravityOn {
		p.tuning.GravityOn = on
		changed = true
	}

	if changed && p.OnChange != nil {
		p.OnChange(p.tuning)
	}
}
