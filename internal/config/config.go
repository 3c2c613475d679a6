// Package config provides YAML-based game configuration loading and
// difficulty management for Super N-gon.
package config

import (
	"math"
	"time"
)

// Track size limits. The lane count is clamped into this range, never rejected.
const (
	MinSides = 3
	MaxSides = 100
)

// NgonConfig contains all configuration for the game core.
type NgonConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Walls      WallsConfig      `yaml:"walls"`
	Motion     MotionConfig     `yaml:"motion"`
	Cursor     CursorConfig     `yaml:"cursor"`
	Loop       LoopConfig       `yaml:"loop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrackConfig defines the polygon track.
type TrackConfig struct {
	Sides int `yaml:"sides"` // Initial lane count
}

// WallsConfig defines obstacle generation and scrolling.
type WallsConfig struct {
	ScrollStep      float64 `yaml:"scroll_step"`      // Distance walls move inward per tick
	MinLength       float64 `yaml:"min_length"`       // Shortest generated batch
	MaxLength       float64 `yaml:"max_length"`       // Longest generated batch
	Backlog         int     `yaml:"backlog"`          // Batches kept queued ahead of the player
	OpeningLength   float64 `yaml:"opening_length"`   // All-open batch at run start (0 disables)
	Relax           bool    `yaml:"relax"`            // Every other batch fully open
	CollisionRadius float64 `yaml:"collision_radius"` // Radial distance of the cursor from the centre
	Horizon         float64 `yaml:"horizon"`          // Farthest distance published to renderers
}

// MotionConfig defines the beat-driven rotation, pulse and hue.
type MotionConfig struct {
	MinSpeed     float64 `yaml:"min_speed"`     // Rotation speed magnitude lower bound (deg/s)
	MaxSpeed     float64 `yaml:"max_speed"`     // Rotation speed magnitude upper bound (deg/s)
	PulseSpread  float64 `yaml:"pulse_spread"`  // Pulse interval is 1 - rand*spread seconds
	BeatMinSecs  int     `yaml:"beat_min_secs"` // Shortest beat (whole seconds)
	BeatMaxSecs  int     `yaml:"beat_max_secs"` // Longest beat, inclusive
	HueFadeSecs  float64 `yaml:"hue_fade_secs"` // Hue interpolation window
	InitialHue   float64 `yaml:"initial_hue"`   // Hue in [0,1) shown before the first beat
	AlignedStart bool    `yaml:"aligned_start"` // Start rotation at 180/sides instead of 0
}

// CursorConfig defines the player cursor.
type CursorConfig struct {
	StepDegrees float64 `yaml:"step_degrees"` // Rotation per tick while a direction is held
}

// LoopConfig defines the fixed tick cadence.
type LoopConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// TickInterval returns the loop cadence as a duration.
func (l LoopConfig) TickInterval() time.Duration {
	return time.Duration(l.TickMillis) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to scroll speed at max difficulty
	LengthReduction float64 `yaml:"length_reduction"` // Max wall length reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate brings every field into its usable range. Out-of-range values are
// clamped or replaced by defaults; configuration is never rejected outright.
func (c *NgonConfig) Validate() {
	def := DefaultNgonConfig()

	c.Track.Sides = clampI(c.Track.Sides, MinSides, MaxSides)

	w := &c.Walls
	if w.ScrollStep <= 0 {
		w.ScrollStep = def.Walls.ScrollStep
	}
	if w.MinLength <= 0 {
		w.MinLength = def.Walls.MinLength
	}
	if w.MaxLength < w.MinLength {
		w.MaxLength = w.MinLength
	}
	if w.Backlog < 2 {
		w.Backlog = def.Walls.Backlog
	}
	if w.OpeningLength < 0 {
		w.OpeningLength = 0
	}
	if w.CollisionRadius <= 0 {
		w.CollisionRadius = def.Walls.CollisionRadius
	}
	if w.Horizon <= w.CollisionRadius {
		w.Horizon = def.Walls.Horizon
	}

	m := &c.Motion
	if m.MinSpeed < 0 {
		m.MinSpeed = 0
	}
	if m.MaxSpeed < m.MinSpeed {
		m.MaxSpeed = m.MinSpeed
	}
	// interval must stay > 0
	m.PulseSpread = clampF(m.PulseSpread, 0, 0.9)
	if m.BeatMinSecs < 1 {
		m.BeatMinSecs = def.Motion.BeatMinSecs
	}
	if m.BeatMaxSecs < m.BeatMinSecs {
		m.BeatMaxSecs = m.BeatMinSecs
	}
	if m.HueFadeSecs <= 0 {
		m.HueFadeSecs = def.Motion.HueFadeSecs
	}
	m.InitialHue = math.Mod(math.Abs(m.InitialHue), 1)

	if c.Cursor.StepDegrees <= 0 || c.Cursor.StepDegrees >= 360 {
		c.Cursor.StepDegrees = def.Cursor.StepDegrees
	}
	if c.Loop.TickMillis <= 0 {
		c.Loop.TickMillis = def.Loop.TickMillis
	}

	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0, 1)
	if c.Difficulty.Scaling.LengthReduction < 0 {
		c.Difficulty.Scaling.LengthReduction = 0
	}
}

func clampI(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
