// Package telemetry aggregates per-tick observations into windowed stats.
package telemetry

import "github.com/pthm-cable/physix/systems"

// Collector accumulates boundary events and speed samples within fixed tick
// windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	windowStartTick     int32

	// Event counters for the current window
	bouncesX       int
	bouncesY       int
	restEvents     int
	shakes         int
	emergencyStops int

	// Per-tick speed samples, all bodies
	speeds       []float64
	playerSpeeds []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// targetFPS: ticks per simulated second.
func NewCollector(windowDurationSec float64, targetFPS int) *Collector {
	ticksPerWindow := int32(windowDurationSec * float64(targetFPS))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
	}
}

// RecordStep folds one body's step events into the window.
func (c *Collector) RecordStep(ev systems.Events) {
	if ev.BouncedX {
		c.bouncesX++
	}
	if ev.BouncedY {
		c.bouncesY++
	}
	if ev.Rested {
		c.restEvents++
	}
}

// RecordShake records a population re-randomization.
func (c *Collector) RecordShake() {
	c.shakes++
}

// RecordEmergencyStop records a player velocity zeroing.
func (c *Collector) RecordEmergencyStop() {
	c.emergencyStops++
}

// Sample records one body's speed for this tick.
func (c *Collector) Sample(speed float64) {
	c.speeds = append(c.speeds, speed)
}

// SamplePlayer records the player body's speed for this tick.
func (c *Collector) SamplePlayer(speed float64) {
	c.playerSpeeds = append(c.playerSpeeds, speed)
}

// Flush returns the window's stats when the window has elapsed at the given
// tick, resetting the counters for the next window. The second return is
// false while the window is still open.
func (c *Collector) Flush(tick int32, gravityOn bool) (WindowStats, bool) {
	if tick-c.windowStartTick < c.windowDurationTicks {
		return WindowStats{}, false
	}

	stats := WindowStats{
		WindowEndTick:  tick,
		SimTimeSec:     float64(tick) / float64(c.windowDurationTicks) * c.windowDurationSec,
		GravityOn:      gravityOn,
		BouncesX:       c.bouncesX,
		BouncesY:       c.bouncesY,
		RestEvents:     c.restEvents,
		Shakes:         c.shakes,
		EmergencyStops: c.emergencyStops,
	}
	stats.SpeedMean, stats.SpeedStd, stats.SpeedP10, stats.SpeedP50, stats.SpeedP90 =
		speedStats(c.speeds)
	stats.PlayerSpeedMean, _, _, _, _ = speedStats(c.playerSpeeds)

	c.windowStartTick = tick
	c.bouncesX, c.bouncesY, c.restEvents = 0, 0, 0
	c.shakes, c.emergencyStops = 0, 0
	c.speeds = c.speeds[:0]
	c.playerSpeeds = c.playerSpeeds[:0]

	return stats, true
}
