package telemetry

import (
	"testing"

	"github.com/pthm-cable/physix/systems"
)

func TestCollectorWindowing(t *testing.T) {
	c := NewCollector(1.0, 60)

	c.RecordStep(systems.Events{BouncedX: true})
	c.RecordStep(systems.Events{BouncedY: true, BouncedX: true})
	c.RecordStep(systems.Events{Rested: true})
	c.RecordShake()
	c.RecordEmergencyStop()
	c.Sample(1.0)
	c.Sample(3.0)
	c.SamplePlayer(2.0)

	if _, ok := c.Flush(59, false); ok {
		t.Fatal("window flushed before it elapsed")
	}

	stats, ok := c.Flush(60, true)
	if !ok {
		t.Fatal("window did not flush at its boundary")
	}
	if stats.BouncesX != 2 || stats.BouncesY != 1 || stats.RestEvents != 1 {
		t.Errorf("bounce counters = %d/%d/%d, want 2/1/1",
			stats.BouncesX, stats.BouncesY, stats.RestEvents)
	}
	if stats.Shakes != 1 || stats.EmergencyStops != 1 {
		t.Errorf("controller counters = %d/%d, want 1/1", stats.Shakes, stats.EmergencyStops)
	}
	if stats.SpeedMean != 2.0 {
		t.Errorf("speed mean = %v, want 2.0", stats.SpeedMean)
	}
	if stats.PlayerSpeedMean != 2.0 {
		t.Errorf("player speed mean = %v, want 2.0", stats.PlayerSpeedMean)
	}
	if !stats.GravityOn {
		t.Error("gravity flag not carried into stats")
	}
	if stats.SimTimeSec != 1.0 {
		t.Errorf("sim time = %v, want 1.0", stats.SimTimeSec)
	}
}

func TestCollectorResetsBetweenWindows(t *testing.T) {
	c := NewCollector(1.0, 60)
	c.RecordStep(systems.Events{BouncedX: true})
	c.Sample(5.0)

	if _, ok := c.Flush(60, false); !ok {
		t.Fatal("first window did not flush")
	}

	stats, ok := c.Flush(120, false)
	if !ok {
		t.Fatal("second window did not flush")
	}
	if stats.BouncesX != 0 || stats.SpeedMean != 0 {
		t.Errorf("counters leaked across windows: %+v", stats)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0.001, 60) // rounds up to one tick
	if _, ok := c.Flush(1, false); !ok {
		t.Error("one-tick window should flush every tick")
	}
}
