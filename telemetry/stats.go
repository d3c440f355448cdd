package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`
	GravityOn     bool    `csv:"gravity_on"`

	// Speed distribution across all bodies, sampled every tick
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	PlayerSpeedMean float64 `csv:"player_speed_mean"`

	// Boundary events during the window
	BouncesX   int `csv:"bounces_x"`
	BouncesY   int `csv:"bounces_y"`
	RestEvents int `csv:"rest_events"`

	// Controller events during the window
	Shakes         int `csv:"shakes"`
	EmergencyStops int `csv:"emergency_stops"`
}

// speedStats computes mean, standard deviation and empirical percentiles of
// the samples. Percentiles are zero for empty input; the deviation is zero
// below two samples.
func speedStats(samples []float64) (mean, std, p10, p50, p90 float64) {
	if len(samples) == 0 {
		return 0, 0, 0, 0, 0
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p10 = stat.Quantile(0.1, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p10, p50, p90
}

// Log emits the window through slog.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"gravity", s.GravityOn,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p50", s.SpeedP50,
		"player_speed", s.PlayerSpeedMean,
		"bounces_x", s.BouncesX,
		"bounces_y", s.BouncesY,
		"rest_events", s.RestEvents,
		"shakes", s.Shakes,
		"stops", s.EmergencyStops,
	)
}
