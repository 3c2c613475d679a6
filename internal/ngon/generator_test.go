package ngon

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/superngon/internal/config"
)

func testWalls(relax bool) config.WallsConfig {
	cfg := config.DefaultNgonConfig().Walls
	cfg.Relax = relax
	cfg.OpeningLength = 0
	return cfg
}

// checkPassable fails if any queued batch is fully solid or if two adjacent
// batches share no open lane.
func checkPassable(t *testing.T, tr *Track) {
	t.Helper()
	sides := tr.Sides()
	for i := 0; i < tr.Len(); i++ {
		b := tr.Batch(i)
		if b.Open(sides) == 0 {
			t.Fatalf("sides %d: batch %d is fully solid", sides, i)
		}
		if i == 0 {
			continue
		}
		prev := tr.Batch(i - 1)
		shared := false
		for l := 0; l < sides; l++ {
			if !prev.Solid(l) && !b.Solid(l) {
				shared = true
				break
			}
		}
		if !shared {
			t.Fatalf("sides %d: batches %d and %d share no open lane", sides, i-1, i)
		}
	}
}

func TestGeneratorKeepsPassablePath(t *testing.T) {
	sideCounts := []int{3, 4, 5, 6, 7, 12, 31, 64, 100}
	for _, relax := range []bool{false, true} {
		for _, sides := range sideCounts {
			for seed := int64(1); seed <= 20; seed++ {
				cfg := testWalls(relax)
				tr := NewTrack(sides, cfg.Backlog+1)
				rng := rand.New(rand.NewSource(seed))
				gen := NewGenerator(tr, rng, cfg)
				gen.Reset(0)

				for step := 0; step < 60; step++ {
					gen.Refill()
					checkPassable(t, tr)
					// The next hole must be open in the farthest batch.
					if last := tr.Batch(tr.Len() - 1); last.Solid(gen.Hole()) {
						t.Fatalf("sides %d seed %d: next hole %d is solid in the last batch", sides, seed, gen.Hole())
					}
					tr.Advance(float64(50 + rng.Intn(200)))
				}
			}
		}
	}
}

func TestGeneratorFillsBacklog(t *testing.T) {
	cfg := testWalls(true)
	tr := NewTrack(6, cfg.Backlog+1)
	gen := NewGenerator(tr, rand.New(rand.NewSource(1)), cfg)
	gen.Reset(2)

	if added := gen.Refill(); added != cfg.Backlog {
		t.Errorf("Refill added %d, want %d", added, cfg.Backlog)
	}
	if tr.Len() != cfg.Backlog {
		t.Errorf("Len = %d, want %d", tr.Len(), cfg.Backlog)
	}
	if added := gen.Refill(); added != 0 {
		t.Errorf("second Refill added %d, want 0", added)
	}

	for i := 0; i < tr.Len(); i++ {
		l := tr.Batch(i).Length
		if l < cfg.MinLength || l > cfg.MaxLength {
			t.Errorf("batch %d length %v outside [%v, %v]", i, l, cfg.MinLength, cfg.MaxLength)
		}
	}
}

func TestGeneratorRelaxAlternates(t *testing.T) {
	cfg := testWalls(true)
	tr := NewTrack(8, cfg.Backlog+1)
	gen := NewGenerator(tr, rand.New(rand.NewSource(3)), cfg)
	gen.Reset(0)
	gen.Refill()

	for i := 0; i < tr.Len(); i += 2 {
		if open := tr.Batch(i).Open(8); open != 8 {
			t.Errorf("batch %d: %d open lanes, want all 8 (relax)", i, open)
		}
	}
}

func TestGeneratorOpeningBatch(t *testing.T) {
	cfg := config.DefaultNgonConfig().Walls
	tr := NewTrack(6, cfg.Backlog+1)
	gen := NewGenerator(tr, rand.New(rand.NewSource(1)), cfg)
	gen.Reset(0)

	if tr.Len() != 1 {
		t.Fatalf("Len after Reset = %d, want 1", tr.Len())
	}
	b := tr.Batch(0)
	if b.Length != cfg.OpeningLength || b.Open(6) != 6 {
		t.Errorf("opening batch = length %v with %d open lanes, want %v all open", b.Length, b.Open(6), cfg.OpeningLength)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	build := func() *Track {
		cfg := testWalls(false)
		tr := NewTrack(9, cfg.Backlog+1)
		gen := NewGenerator(tr, rand.New(rand.NewSource(99)), cfg)
		gen.Reset(4)
		gen.Refill()
		return tr
	}
	a, b := build(), build()
	for i := 0; i < a.Len(); i++ {
		if *a.Batch(i) != *b.Batch(i) {
			t.Fatalf("batch %d differs between identical seeds", i)
		}
	}
}

func TestNextHole(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("single open lane keeps the hole", func(t *testing.T) {
		var b WallBatch
		for l := 0; l < 6; l++ {
			b.solid[l] = l != 2
		}
		for i := 0; i < 20; i++ {
			if got := nextHole(&b, 2, 6, rng); got != 2 {
				t.Fatalf("nextHole = %d, want 2", got)
			}
		}
	})

	t.Run("span between boundaries", func(t *testing.T) {
		// Solid at 0 and 4; open 1..3 around hole 2.
		var b WallBatch
		b.solid[0] = true
		b.solid[4] = true
		for i := 0; i < 100; i++ {
			got := nextHole(&b, 2, 6, rng)
			if got < 1 || got > 3 {
				t.Fatalf("nextHole = %d, want in [1,3]", got)
			}
		}
	})

	t.Run("span wraps around", func(t *testing.T) {
		// Only lane 3 solid; hole 0 may move anywhere except 3.
		var b WallBatch
		b.solid[3] = true
		for i := 0; i < 100; i++ {
			got := nextHole(&b, 0, 6, rng)
			if got < 0 || got >= 6 || got == 3 {
				t.Fatalf("nextHole = %d, want an open lane", got)
			}
		}
	})

	t.Run("all open terminates", func(t *testing.T) {
		var b WallBatch
		for _, sides := range []int{3, 6, 100} {
			for i := 0; i < 50; i++ {
				got := nextHole(&b, sides-1, sides, rng)
				if got < 0 || got >= sides {
					t.Fatalf("sides %d: nextHole = %d out of range", sides, got)
				}
			}
		}
	})
}

func TestWrap(t *testing.T) {
	tests := []struct {
		lane, sides, want int
	}{
		{0, 6, 0},
		{6, 6, 0},
		{-1, 6, 5},
		{-6, 6, 0},
		{13, 6, 1},
		{-7, 3, 2},
	}
	for _, tt := range tests {
		if got := wrap(tt.lane, tt.sides); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.lane, tt.sides, got, tt.want)
		}
	}
}
