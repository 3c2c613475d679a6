package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/superngon/internal/config"
	"github.com/vovakirdan/superngon/internal/ngon"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(mode string, elapsed time.Duration) ngon.RunResult {
	return ngon.RunResult{
		Mode:       mode,
		Sides:      6,
		Elapsed:    elapsed,
		Ticks:      uint64(elapsed / (16 * time.Millisecond)),
		Reason:     ngon.EndCollision,
		FinishedAt: time.Now(),
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, r := range []ngon.RunResult{
		run(ngon.ModeClassic, 10*time.Second),
		run(ngon.ModeClassic, 5*time.Second),
		run(ngon.ModeClassic, 20*time.Second),
		run(ngon.ModeHyper, 50*time.Second),
	} {
		if err := store.SaveRun(ctx, r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(ngon.ModeClassic, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted longest first
	want := []time.Duration{20 * time.Second, 10 * time.Second, 5 * time.Second}
	for i, w := range want {
		if runs[i].Elapsed != w {
			t.Errorf("runs[%d].Elapsed = %v, want %v", i, runs[i].Elapsed, w)
		}
		if runs[i].RunID == "" {
			t.Errorf("runs[%d] has no run ID", i)
		}
		if runs[i].Reason != string(ngon.EndCollision) || runs[i].Sides != 6 {
			t.Errorf("runs[%d] = %+v", i, runs[i])
		}
	}

	hyper, err := store.TopRuns(ngon.ModeHyper, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(hyper) != 1 || hyper[0].Elapsed != 50*time.Second {
		t.Errorf("hyper runs = %+v", hyper)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 15; i++ {
		if err := store.SaveRun(context.Background(), run("classic", time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("classic", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
	if runs[0].Elapsed != 15*time.Second {
		t.Errorf("Expected best run 15s, got %v", runs[0].Elapsed)
	}

	// Non-positive limit falls back to 10
	runs, err = store.TopRuns("classic", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected 10 runs, got %d", len(runs))
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	best, err := store.BestTime(ctx, "classic")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %v", best)
	}

	store.SaveRun(ctx, run("classic", 1500*time.Millisecond))
	store.SaveRun(ctx, run("classic", 12345*time.Millisecond))
	store.SaveRun(ctx, run("hyper", time.Minute))

	best, err = store.BestTime(ctx, "classic")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 12345*time.Millisecond {
		t.Errorf("Expected 12.345s, got %v", best)
	}
}

func TestStoreKeepsRunID(t *testing.T) {
	store := openTestStore(t)
	r := run("classic", time.Second)
	r.ID = "fixed-id"
	if err := store.SaveRun(context.Background(), r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.SaveRun(context.Background(), r); err == nil {
		t.Error("Saving the same run ID twice succeeded")
	}

	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != "fixed-id" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		r := run("classic", time.Duration(i+1)*time.Second)
		r.FinishedAt = base.Add(time.Duration(i) * time.Minute)
		store.SaveRun(context.Background(), r)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if !runs[0].FinishedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("most recent run finished at %v", runs[0].FinishedAt)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	store.SaveRun(ctx, run("classic", time.Second))
	store.SaveRun(ctx, run("hyper", time.Second))

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	best, _ := store.BestTime(ctx, "classic")
	if best != 0 {
		t.Errorf("Expected no classic runs after clear, best = %v", best)
	}
	best, _ = store.BestTime(ctx, "hyper")
	if best != time.Second {
		t.Errorf("hyper runs were affected by clear, best = %v", best)
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	empty, err := store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.BestTime != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(ctx, run("classic", 2*time.Second))
	store.SaveRun(ctx, run("classic", 4*time.Second))
	store.SaveRun(ctx, run("hyper", 9*time.Second))

	stats, err := store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.BestTime != 4*time.Second ||
		stats.AvgTime != 3*time.Second || stats.TotalTime != 6*time.Second {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats() failed: %v", err)
	}
	if len(all) != 2 || all["hyper"].BestTime != 9*time.Second {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreAsEngineSaver(t *testing.T) {
	store := openTestStore(t)

	sess := ngon.NewSession(config.DefaultNgonConfig(), ngon.ModeClassic, 1)
	e := ngon.NewEngine(sess, ngon.EngineOptions{
		Input: ngon.LimitInput(ngon.NoInput, 2),
		Saver: store,
	})
	e.Start()
	e.Wait()

	runs, err := store.TopRuns(ngon.ModeClassic, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Reason != string(ngon.EndStopped) {
		t.Errorf("runs = %+v", runs)
	}
}
