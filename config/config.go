// Package config provides configuration loading and access for the sandbox.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tuning parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. Width and height are logical pixels;
// Scale is the window magnification.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Scale     int `yaml:"scale"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the tuning constants as floats. They are truncated
// onto the fixed-point grid once at load time; the simulation never reads
// the float values.
type PhysicsConfig struct {
	Gravity               float64 `yaml:"gravity"`                 // downward acceleration per tick
	Friction              float64 `yaml:"friction"`                // velocity multiplier, (0,1)
	Restitution           float64 `yaml:"restitution"`             // bounce energy retention, (0,1)
	RestThresholdEpsilons int     `yaml:"rest_threshold_epsilons"` // bounce cutoff, in resolution steps
	InputForce            float64 `yaml:"input_force"`             // steering impulse per held direction
	MaxInitialSpeed       float64 `yaml:"max_initial_speed"`       // spawn/shake velocity range, per axis
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window size in seconds
}

// DerivedConfig holds the fixed-point conversions of the physics tuning,
// computed once at load.
type DerivedConfig struct {
	Gravity       geom.Vector2
	Friction      fixed.Number
	Restitution   fixed.Number
	RestThreshold fixed.Number
	InputForce    fixed.Number

	// MaxInitialSpeedRaw is the spawn velocity range as a raw grid count,
	// so randomization can draw uniformly over every representable value.
	MaxInitialSpeedRaw int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived truncates the float tuning values onto the Q12.3 grid.
func (c *Config) computeDerived() {
	c.Derived.Gravity = geom.Vector2{X: 0, Y: fixed.FromFloat(c.Physics.Gravity)}
	c.Derived.Friction = fixed.FromFloat(c.Physics.Friction)
	c.Derived.Restitution = fixed.FromFloat(c.Physics.Restitution)
	c.Derived.RestThreshold = fixed.Epsilon * fixed.Number(c.Physics.RestThresholdEpsilons)
	c.Derived.InputForce = fixed.FromFloat(c.Physics.InputForce)
	c.Derived.MaxInitialSpeedRaw = int(fixed.FromFloat(c.Physics.MaxInitialSpeed).Raw())
}

// validate checks the derived values, since grid truncation can push a
// legal-looking float out of its working range.
func (c *Config) validate() error {
	one := fixed.FromInt(1)
	if c.Derived.Friction <= 0 || c.Derived.Friction >= one {
		return fmt.Errorf("config: friction %v lands at %v on the grid, must stay in (0,1)",
			c.Physics.Friction, c.Derived.Friction.Float64())
	}
	if c.Derived.Restitution <= 0 || c.Derived.Restitution >= one {
		return fmt.Errorf("config: restitution %v lands at %v on the grid, must stay in (0,1)",
			c.Physics.Restitution, c.Derived.Restitution.Float64())
	}
	if c.Derived.RestThreshold <= fixed.Epsilon {
		return fmt.Errorf("config: rest threshold of %d epsilons must exceed the grid resolution",
			c.Physics.RestThresholdEpsilons)
	}
	if c.Derived.MaxInitialSpeedRaw <= 0 {
		return fmt.Errorf("config: max_initial_speed %v is below the grid resolution",
			c.Physics.MaxInitialSpeed)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 || c.Screen.Scale <= 0 {
		return fmt.Errorf("config: screen dimensions %dx%d@%d must be positive",
			c.Screen.Width, c.Screen.Height, c.Screen.Scale)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("config: target_fps %d must be positive", c.Screen.TargetFPS)
	}
	return nil
}

// WriteYAML saves the configuration to a file, for experiment snapshots.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}
	return nil
}
