package config

import "math"

// DifficultyManager calculates dynamic game parameters based on elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on ticks.
// With progression disabled the level is 0 and nothing scales.
func (d *DifficultyManager) Level(ticks uint64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type != "time" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(ticks)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scroll step for the current difficulty level.
func (d *DifficultyManager) Speed(baseStep float64, ticks uint64) float64 {
	level := d.Level(ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseStep * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// MaxLength returns the longest wall batch for the current difficulty level.
// It never drops below minLength.
func (d *DifficultyManager) MaxLength(baseMax, minLength float64, ticks uint64) float64 {
	level := d.Level(ticks)
	return math.Max(minLength, baseMax-level*d.cfg.Scaling.LengthReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
