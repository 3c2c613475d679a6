package config

import (
	_ "embed"
)

//go:embed defaults/ngon.yaml
var defaultNgonYAML []byte

// DefaultNgonConfig returns the default (classic) configuration.
// Classic pace: 10 units of scroll and 10 degrees
// of cursor travel per 16 ms tick, 100-200 unit walls, a 900 unit opening.
func DefaultNgonConfig() NgonConfig {
	return NgonConfig{
		Track: TrackConfig{
			Sides: 6,
		},
		Walls: WallsConfig{
			ScrollStep:      10,
			MinLength:       100,
			MaxLength:       200,
			Backlog:         16,
			OpeningLength:   900,
			Relax:           true,
			CollisionRadius: 120,
			Horizon:         1500,
		},
		Motion: MotionConfig{
			MinSpeed:     90,
			MaxSpeed:     180,
			PulseSpread:  0.6,
			BeatMinSecs:  5,
			BeatMaxSecs:  9,
			HueFadeSecs:  1.5,
			InitialHue:   1.0 / 3.0,
			AlignedStart: true,
		},
		Cursor: CursorConfig{
			StepDegrees: 10,
		},
		Loop: LoopConfig{
			TickMillis: 16,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3750, // ~60 seconds at 16 ms
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				LengthReduction: 50,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultNgonYAML
}
