// Package loop drives a simulation at a fixed cadence. It owns nothing but
// time: the tick function decides what a tick does and when the loop ends.
package loop

import (
	"context"
	"sync"
	"time"
)

// Clock supplies monotonic time and a cancellable suspension primitive.
type Clock interface {
	Now() time.Time
	// Delay suspends for d or until ctx is done, whichever comes first.
	Delay(ctx context.Context, d time.Duration) error
}

// RealClock is the wall clock. time.Now carries a monotonic reading, so
// durations computed from it are immune to wall-clock adjustments.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Delay waits for d using a timer that is released on cancellation.
func (RealClock) Delay(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ManualClock is a deterministic clock for tests and headless simulation.
// Delay returns immediately after moving the clock forward by d.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current reading.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Delay advances the clock by d unless ctx is already done.
func (c *ManualClock) Delay(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Advance(d)
	return nil
}
