package ngon

import "time"

// Snapshot is an immutable view of the session for renderers. It shares no
// memory with live state.
type Snapshot struct {
	State       State
	Mode        string
	Sides       int
	Lanes       []Lane // Exactly Sides entries
	CursorAngle float64
	CursorLane  int
	Rotation    float64
	Expansion   float64
	Hue         float64
	Motion      Motion // For sampling rotation, pulse and hue between ticks
	Elapsed     time.Duration
	LastElapsed time.Duration
	Record      time.Duration
	NewRecord   bool
	Tick        uint64
	Difficulty  float64
	Horizon     float64
	Taken       time.Time
}

// At resamples the motion-derived fields at now. Renderers running faster
// than the simulation use it for smooth rotation.
func (s Snapshot) At(now time.Time) Snapshot {
	s.Rotation = s.Motion.Rotation(now)
	s.Expansion = s.Motion.Expansion(now)
	s.Hue = s.Motion.Hue(now)
	return s
}

// Running reports whether a run is in progress.
func (s Snapshot) Running() bool {
	return s.State == StateRunning
}
