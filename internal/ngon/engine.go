package ngon

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/superngon/internal/loop"
)

// saveTimeout bounds a single best-effort result save.
const saveTimeout = 5 * time.Second

// EngineOptions configures an Engine. Zero values select sensible defaults.
type EngineOptions struct {
	// Clock drives the tick loop. Defaults to loop.RealClock.
	Clock loop.Clock

	// Interval is the tick cadence. Defaults to loop.DefaultInterval.
	Interval time.Duration

	// Input is polled once per running tick. Defaults to NoInput.
	Input Input

	// Saver receives every finished run. Optional.
	Saver ResultSaver

	// Logger receives lifecycle events. Defaults to a discarding logger.
	Logger *log.Logger
}

// runHandle is the token of the one active run.
type runHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Engine runs a Session in real time. All session access happens under one
// mutex and every tick publishes a fresh Snapshot, so readers never observe a
// partially applied tick. At most one run is active at a time.
type Engine struct {
	mu      sync.Mutex
	session *Session
	sched   *loop.Scheduler
	input   Input
	saver   ResultSaver
	logger  *log.Logger
	run     *runHandle // Active run, nil when none
	last    *runHandle // Most recently started run

	latest atomic.Pointer[Snapshot]
}

// NewEngine wraps session. The session must be Idle and must not be used
// directly afterwards.
func NewEngine(session *Session, opts EngineOptions) *Engine {
	if opts.Input == nil {
		opts.Input = NoInput
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Interval <= 0 {
		opts.Interval = session.cfg.Loop.TickInterval()
	}
	e := &Engine{
		session: session,
		sched:   loop.NewScheduler(opts.Clock, opts.Interval),
		input:   opts.Input,
		saver:   opts.Saver,
		logger:  opts.Logger,
	}
	e.mu.Lock()
	e.publishLocked()
	e.mu.Unlock()
	return e
}

func (e *Engine) now() time.Time {
	return e.sched.Clock().Now()
}

// publishLocked swaps in a new snapshot. Callers hold e.mu.
func (e *Engine) publishLocked() {
	snap := e.session.Snapshot(e.now())
	e.latest.Store(&snap)
}

// Latest returns the most recently published snapshot.
func (e *Engine) Latest() Snapshot {
	return *e.latest.Load()
}

// Running reports whether a run is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.run != nil
}

// SeedRecord raises the in-memory record, typically from persisted history.
func (e *Engine) SeedRecord(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.SeedRecord(d)
	e.publishLocked()
}

// Dispatch applies a discrete command. Commands that are invalid in the
// current state are ignored; the return value tells whether it had an effect.
// Any command issued on the result screen first returns the session to Idle.
func (e *Engine) Dispatch(cmd Command) bool {
	switch cmd {
	case CommandStart:
		return e.Start()
	case CommandStop:
		return e.Stop()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	acked := e.session.Acknowledge(now)
	var ok bool
	switch cmd {
	case CommandIncreaseSides:
		ok = e.session.IncreaseSides(now)
	case CommandDecreaseSides:
		ok = e.session.DecreaseSides(now)
	case CommandAcknowledge:
		ok = acked
	}
	if !ok && !acked {
		e.logger.Debug("command ignored", "command", cmd, "state", e.session.State())
		return false
	}
	e.publishLocked()
	return true
}

// Start begins a run on its own goroutine. It is a no-op while a run is
// active. A pending result screen is acknowledged first.
func (e *Engine) Start() bool {
	e.mu.Lock()
	if e.run != nil {
		e.mu.Unlock()
		e.logger.Debug("start ignored: run in progress")
		return false
	}
	now := e.now()
	e.session.Acknowledge(now)
	if !e.session.Start(now) {
		e.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	h := &runHandle{cancel: cancel, done: make(chan struct{})}
	e.run = h
	e.last = h
	e.publishLocked()
	e.logger.Info("run started", "mode", e.session.Mode(), "sides", e.session.Sides())
	e.mu.Unlock()

	go e.loop(ctx, h)
	return true
}

// Stop requests the active run to end. The run finishes at the next tick
// boundary; use Wait to block until it has.
func (e *Engine) Stop() bool {
	e.mu.Lock()
	h := e.run
	e.mu.Unlock()
	if h == nil {
		return false
	}
	h.cancel()
	return true
}

// Wait blocks until the most recent run has fully finished, including
// handing its result to the saver.
func (e *Engine) Wait() {
	e.mu.Lock()
	h := e.last
	e.mu.Unlock()
	if h != nil {
		<-h.done
	}
}

// Close stops any active run and waits for it.
func (e *Engine) Close() {
	e.Stop()
	e.Wait()
}

// loop drives the run until a collision or cancellation, then performs the
// single finishing transition and hands the result to the saver.
func (e *Engine) loop(ctx context.Context, h *runHandle) {
	defer close(h.done)
	defer h.cancel()

	out := e.sched.Run(ctx, func(now time.Time) bool {
		in := e.input.Poll()

		e.mu.Lock()
		defer e.mu.Unlock()
		running := e.session.Tick(now, in)
		e.publishLocked()
		return running
	})

	e.mu.Lock()
	result, ok := e.session.Finish(e.now(), EndStopped)
	if !ok {
		result = e.session.LastResult()
	}
	e.run = nil
	e.publishLocked()
	e.mu.Unlock()

	result.ID = uuid.NewString()
	e.logger.Info("run finished",
		"mode", result.Mode,
		"sides", result.Sides,
		"elapsed", result.Elapsed.Round(time.Millisecond),
		"record", result.Record.Round(time.Millisecond),
		"new_record", result.NewRecord,
		"reason", result.Reason,
		"ticks", out.Ticks,
	)

	if e.saver == nil {
		return
	}
	saveCtx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := e.saver.SaveRun(saveCtx, result); err != nil {
		e.logger.Warn("could not save run", "error", err)
	}
}
