package ngon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/superngon/internal/loop"
)

// memorySaver records saved runs.
type memorySaver struct {
	mu   sync.Mutex
	runs []RunResult
	err  error
}

func (s *memorySaver) SaveRun(_ context.Context, r RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, r)
	return s.err
}

func (s *memorySaver) saved() []RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RunResult(nil), s.runs...)
}

// gateInput blocks the first poll until released, holding the run open.
type gateInput struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func newGateInput() *gateInput {
	return &gateInput{started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gateInput) Poll() Intent {
	g.once.Do(func() { close(g.started) })
	<-g.release
	return Intent{}
}

func newTestEngine(in Input, saver ResultSaver) *Engine {
	return NewEngine(newTestSession(1), EngineOptions{
		Clock: loop.NewManualClock(t0),
		Input: in,
		Saver: saver,
	})
}

func TestEngineStartIsNoOpWhileRunning(t *testing.T) {
	gate := newGateInput()
	saver := &memorySaver{}
	e := newTestEngine(gate, saver)

	if !e.Start() {
		t.Fatal("Start from idle failed")
	}
	<-gate.started

	if e.Start() {
		t.Error("second Start while running was accepted")
	}
	if !e.Running() || e.Latest().State != StateRunning {
		t.Errorf("Running = %v, State = %v, want a running run", e.Running(), e.Latest().State)
	}
	if e.Dispatch(CommandIncreaseSides) {
		t.Error("IncreaseSides accepted while running")
	}

	if !e.Stop() {
		t.Fatal("Stop with an active run failed")
	}
	close(gate.release)
	e.Wait()

	if e.Running() {
		t.Error("engine still running after Wait")
	}
	if got := e.Latest().State; got != StateGameOver {
		t.Errorf("State = %v, want game over", got)
	}
	runs := saver.saved()
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want exactly 1", len(runs))
	}
	if runs[0].Reason != EndStopped || runs[0].ID == "" || runs[0].Mode != ModeClassic {
		t.Errorf("saved run = %+v", runs[0])
	}
	if e.Stop() {
		t.Error("Stop without a run reported success")
	}
}

func TestEngineRunEndsOnItsOwn(t *testing.T) {
	saver := &memorySaver{}
	e := newTestEngine(LimitInput(NoInput, 300), saver)

	if !e.Start() {
		t.Fatal("Start failed")
	}
	e.Wait()

	snap := e.Latest()
	if snap.State != StateGameOver {
		t.Fatalf("State = %v, want game over", snap.State)
	}
	runs := saver.saved()
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Ticks > 300 {
		t.Errorf("run lasted %d ticks past the input limit", r.Ticks)
	}
	// The first tick runs at the start instant.
	if r.Reason == EndCollision && r.Elapsed != time.Duration(r.Ticks-1)*loop.DefaultInterval {
		t.Errorf("collision after %d ticks reported %v elapsed", r.Ticks, r.Elapsed)
	}
	if snap.Record != r.Elapsed || snap.LastElapsed != r.Elapsed {
		t.Errorf("snapshot record %v / last %v, want %v", snap.Record, snap.LastElapsed, r.Elapsed)
	}
}

func TestEngineDispatch(t *testing.T) {
	e := newTestEngine(nil, nil)

	if !e.Dispatch(CommandIncreaseSides) || e.Latest().Sides != 7 {
		t.Errorf("IncreaseSides: Sides = %d, want 7", e.Latest().Sides)
	}
	if !e.Dispatch(CommandDecreaseSides) || e.Latest().Sides != 6 {
		t.Errorf("DecreaseSides: Sides = %d, want 6", e.Latest().Sides)
	}
	if e.Dispatch(CommandAcknowledge) {
		t.Error("Acknowledge accepted in idle")
	}
	if e.Dispatch(CommandNone) {
		t.Error("CommandNone accepted")
	}
	if e.Dispatch(CommandStop) {
		t.Error("Stop accepted without a run")
	}
}

func TestEngineAcknowledgeAndRestart(t *testing.T) {
	e := newTestEngine(LimitInput(NoInput, 5), nil)
	e.Start()
	e.Wait()
	if e.Latest().State != StateGameOver {
		t.Fatalf("State = %v, want game over", e.Latest().State)
	}

	// Side changes on the result screen acknowledge it first.
	if !e.Dispatch(CommandIncreaseSides) {
		t.Fatal("IncreaseSides on the result screen was ignored")
	}
	if snap := e.Latest(); snap.State != StateIdle || snap.Sides != 7 {
		t.Errorf("State = %v with %d sides, want idle with 7", snap.State, snap.Sides)
	}

	e.Dispatch(CommandStart)
	e.Wait()
	if e.Latest().State != StateGameOver {
		t.Fatal("second run did not finish")
	}
	// Start from the result screen begins a new run right away.
	if !e.Start() {
		t.Error("Start from the result screen was rejected")
	}
	e.Close()
}

func TestEngineSeedRecord(t *testing.T) {
	e := newTestEngine(nil, nil)
	e.SeedRecord(42 * time.Second)
	if got := e.Latest().Record; got != 42*time.Second {
		t.Errorf("Record = %v, want 42s", got)
	}
}

func TestEngineSaverErrorIsNotFatal(t *testing.T) {
	saver := &memorySaver{err: errors.New("disk full")}
	e := newTestEngine(LimitInput(NoInput, 3), saver)
	e.Start()
	e.Wait()
	if len(saver.saved()) != 1 {
		t.Fatal("saver was not called")
	}
	if e.Running() {
		t.Error("engine still running after a failed save")
	}
	if !e.Start() {
		t.Error("Start after a failed save was rejected")
	}
	e.Close()
}

func TestEngineConcurrentReaders(t *testing.T) {
	e := newTestEngine(LimitInput(NoInput, 500), nil)
	e.Start()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				snap := e.Latest()
				if len(snap.Lanes) != snap.Sides {
					t.Errorf("snapshot has %d lanes for %d sides", len(snap.Lanes), snap.Sides)
					return
				}
			}
		}()
	}
	wg.Wait()
	e.Wait()
}
