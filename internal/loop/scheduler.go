package loop

import (
	"context"
	"time"
)

// DefaultInterval is the tick cadence used when none is configured (~60 Hz).
const DefaultInterval = 16 * time.Millisecond

// TickFunc performs one unit of work. Returning false ends the loop.
type TickFunc func(now time.Time) bool

// Reason tells why a loop ended.
type Reason int

const (
	// Stopped means the tick function asked to stop.
	Stopped Reason = iota
	// Cancelled means the context was cancelled between ticks.
	Cancelled
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case Stopped:
		return "stopped"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome summarises a finished loop.
type Outcome struct {
	Reason Reason
	Ticks  uint64 // Ticks that ran to completion
}

// Scheduler runs a TickFunc at a fixed interval.
type Scheduler struct {
	clock    Clock
	interval time.Duration
}

// NewScheduler creates a scheduler. A nil clock means RealClock and a
// non-positive interval means DefaultInterval.
func NewScheduler(clock Clock, interval time.Duration) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{clock: clock, interval: interval}
}

// Interval returns the delay between ticks.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Clock returns the scheduler's clock.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Run calls tick until it returns false or ctx is cancelled. Cancellation is
// observed only at the top of a tick and during the delay that follows it;
// a tick that has begun always runs to completion.
func (s *Scheduler) Run(ctx context.Context, tick TickFunc) Outcome {
	var ticks uint64
	for {
		if ctx.Err() != nil {
			return Outcome{Reason: Cancelled, Ticks: ticks}
		}

		cont := tick(s.clock.Now())
		ticks++
		if !cont {
			return Outcome{Reason: Stopped, Ticks: ticks}
		}

		if err := s.clock.Delay(ctx, s.interval); err != nil {
			return Outcome{Reason: Cancelled, Ticks: ticks}
		}
	}
}
