package ngon

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/superngon/internal/config"
)

// State is the session's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Session is the game state machine. It exclusively owns the track, the
// generator, the cursor and the motion parameters. It is not safe for
// concurrent use; Engine serialises access to it.
type Session struct {
	cfg        config.NgonConfig
	mode       string
	rng        *rand.Rand
	track      *Track
	gen        *Generator
	cursor     Cursor
	motion     Motion
	difficulty *config.DifficultyManager

	state       State
	startTime   time.Time
	elapsed     time.Duration
	lastElapsed time.Duration
	record      time.Duration
	newRecord   bool // The last finished run set the record
	ticks       uint64
	last        RunResult
}

// NewSession creates an idle session. cfg is validated; seed drives all
// wall and motion randomness.
func NewSession(cfg config.NgonConfig, mode string, seed int64) *Session {
	cfg.Validate()
	rng := rand.New(rand.NewSource(seed))
	// One spare slot so a full backlog never blocks the opening batch.
	track := NewTrack(cfg.Track.Sides, cfg.Walls.Backlog+1)
	s := &Session{
		cfg:        cfg,
		mode:       mode,
		rng:        rng,
		track:      track,
		gen:        NewGenerator(track, rng, cfg.Walls),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	s.resetIdle(time.Time{})
	return s
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Mode returns the session's game mode ID.
func (s *Session) Mode() string {
	return s.mode
}

// Sides returns the current lane count.
func (s *Session) Sides() int {
	return s.track.Sides()
}

// Record returns the best elapsed time seen by this session.
func (s *Session) Record() time.Duration {
	return s.record
}

// LastElapsed returns the length of the last finished run.
func (s *Session) LastElapsed() time.Duration {
	return s.lastElapsed
}

// LastResult returns the result of the last finished run.
func (s *Session) LastResult() RunResult {
	return s.last
}

// Track exposes the track for inspection. Callers must not mutate it.
func (s *Session) Track() *Track {
	return s.track
}

// SeedRecord raises the record to at least d, e.g. from persisted history.
func (s *Session) SeedRecord(d time.Duration) {
	if d > s.record {
		s.record = d
	}
}

// startRotation is the still rotation shown in Idle and at run start.
func (s *Session) startRotation() float64 {
	if !s.cfg.Motion.AlignedStart {
		return 0
	}
	return 180 / float64(s.track.Sides())
}

// resetIdle clears per-run state.
func (s *Session) resetIdle(now time.Time) {
	s.state = StateIdle
	s.track.Clear()
	s.cursor.Reset(s.track.Sides())
	s.motion = IdentityMotion(s.startRotation(), s.cfg.Motion.InitialHue, now)
	s.elapsed = 0
}

// Start begins a run. It is a no-op unless the session is Idle.
func (s *Session) Start(now time.Time) bool {
	if s.state != StateIdle {
		return false
	}
	s.resetIdle(now)
	s.gen.Reset(s.cursor.Lane(s.track.Sides()))
	s.gen.Refill()
	s.state = StateRunning
	s.startTime = now
	s.ticks = 0
	s.newRecord = false
	return true
}

// Tick advances a running session by one step: walls age and retire, the
// backlog refills, motion re-anchors when a beat is due, the cursor moves,
// and a collision ends the run. It reports whether the run continues.
func (s *Session) Tick(now time.Time, in Intent) bool {
	if s.state != StateRunning {
		return false
	}
	if in.Stop {
		s.Finish(now, EndStopped)
		return false
	}

	s.ticks++
	s.elapsed = now.Sub(s.startTime)

	step := s.cfg.Walls.ScrollStep
	if s.difficulty.IsEnabled() {
		step = s.difficulty.Speed(step, s.ticks)
		s.gen.SetMaxLength(s.difficulty.MaxLength(s.cfg.Walls.MaxLength, s.cfg.Walls.MinLength, s.ticks))
	}
	s.track.Advance(step)
	s.gen.Refill()

	if s.motion.Due(now) {
		s.motion = s.motion.Reanchor(now, s.rng, s.cfg.Motion)
	}

	s.cursor.Apply(in.Left, in.Right, s.cfg.Cursor.StepDegrees)

	if IsColliding(s.cursor.Lane(s.track.Sides()), s.track, s.cfg.Walls.CollisionRadius) {
		s.Finish(now, EndCollision)
		return false
	}
	return true
}

// Finish ends the running run: the rotation freezes, the elapsed time is
// recorded and the record raised if beaten. ok is false when no run was in
// progress.
func (s *Session) Finish(now time.Time, reason EndReason) (result RunResult, ok bool) {
	if s.state != StateRunning {
		return RunResult{}, false
	}
	s.motion = s.motion.Freeze(now)
	s.lastElapsed = now.Sub(s.startTime)
	s.elapsed = s.lastElapsed
	s.newRecord = s.lastElapsed > s.record
	if s.newRecord {
		s.record = s.lastElapsed
	}
	s.state = StateGameOver

	s.last = RunResult{
		Mode:       s.mode,
		Sides:      s.track.Sides(),
		Elapsed:    s.lastElapsed,
		Record:     s.record,
		NewRecord:  s.newRecord,
		Ticks:      s.ticks,
		Reason:     reason,
		FinishedAt: now,
	}
	return s.last, true
}

// Acknowledge returns from GameOver to Idle.
func (s *Session) Acknowledge(now time.Time) bool {
	if s.state != StateGameOver {
		return false
	}
	s.resetIdle(now)
	return true
}

// SetSides changes the lane count, clamped to [MinSides, MaxSides]. It is
// accepted only while Idle and reports whether the count changed.
func (s *Session) SetSides(n int, now time.Time) bool {
	if s.state != StateIdle {
		return false
	}
	n = ClampSides(n)
	if n == s.track.Sides() {
		return false
	}
	s.track.Resize(n)
	s.resetIdle(now)
	return true
}

// IncreaseSides adds one lane while Idle.
func (s *Session) IncreaseSides(now time.Time) bool {
	return s.SetSides(s.track.Sides()+1, now)
}

// DecreaseSides removes one lane while Idle.
func (s *Session) DecreaseSides(now time.Time) bool {
	return s.SetSides(s.track.Sides()-1, now)
}

// Snapshot returns an immutable view of the session at now.
func (s *Session) Snapshot(now time.Time) Snapshot {
	sides := s.track.Sides()
	snap := Snapshot{
		State:       s.state,
		Mode:        s.mode,
		Sides:       sides,
		Lanes:       s.track.Lanes(s.cfg.Walls.Horizon),
		CursorAngle: s.cursor.Angle(),
		CursorLane:  s.cursor.Lane(sides),
		Motion:      s.motion,
		Elapsed:     s.elapsed,
		LastElapsed: s.lastElapsed,
		Record:      s.record,
		Tick:        s.ticks,
		Difficulty:  s.difficulty.Level(s.ticks),
		Horizon:     s.cfg.Walls.Horizon,
		Taken:       now,
	}
	switch s.state {
	case StateRunning:
		snap.NewRecord = s.record > 0 && s.elapsed > s.record
	default:
		snap.NewRecord = s.newRecord
	}
	return snap.At(now)
}
