package ngon

import (
	"context"
	"time"
)

// EndReason tells how a run ended.
type EndReason string

const (
	EndCollision EndReason = "collision"
	EndStopped   EndReason = "stopped"
)

// RunResult describes a finished run.
type RunResult struct {
	ID         string
	Mode       string
	Sides      int
	Elapsed    time.Duration
	Record     time.Duration // Record after this run
	NewRecord  bool
	Ticks      uint64
	Reason     EndReason
	FinishedAt time.Time
}

// ResultSaver persists finished runs. Saving is best effort: failures are
// logged by the engine and never affect the session.
type ResultSaver interface {
	SaveRun(ctx context.Context, r RunResult) error
}

// RecordSource supplies the best time ever recorded for a mode.
type RecordSource interface {
	BestTime(ctx context.Context, mode string) (time.Duration, error)
}
