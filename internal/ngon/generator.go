package ngon

import (
	"math/rand"

	"github.com/vovakirdan/superngon/internal/config"
)

// Generator appends wall batches to a track while keeping a passable path.
//
// It tracks a hole: a lane that is forced open in the next batch. After a
// batch is laid down the next hole is drawn from the open span around the
// current one, so consecutive batches always share at least one open lane.
type Generator struct {
	track     *Track
	rng       *rand.Rand
	cfg       config.WallsConfig
	maxLength float64 // Current upper bound for batch length (difficulty-scaled)
	hole      int
	relax     bool // Whether the last generated batch was a relax batch
}

// NewGenerator creates a generator feeding track.
func NewGenerator(track *Track, rng *rand.Rand, cfg config.WallsConfig) *Generator {
	return &Generator{
		track:     track,
		rng:       rng,
		cfg:       cfg,
		maxLength: cfg.MaxLength,
	}
}

// Hole returns the lane guaranteed open in the next generated batch.
func (g *Generator) Hole() int {
	return g.hole
}

// SetMaxLength overrides the longest batch length, clamped to at least the
// configured minimum.
func (g *Generator) SetMaxLength(l float64) {
	g.maxLength = max(l, g.cfg.MinLength)
}

// Reset clears the track and lays the opening batch: an all-open band that
// gives the player time to settle. hole becomes the first forced-open lane.
func (g *Generator) Reset(hole int) {
	g.track.Clear()
	g.hole = wrap(hole, g.track.Sides())
	g.relax = false
	g.maxLength = g.cfg.MaxLength
	if g.cfg.OpeningLength > 0 {
		g.track.push(g.cfg.OpeningLength)
	}
}

// Refill generates batches until the backlog is full or the ring has no room.
// It returns the number of batches added.
func (g *Generator) Refill() int {
	added := 0
	for g.track.Len() < g.cfg.Backlog {
		if !g.next() {
			break
		}
		added++
	}
	return added
}

// next lays down one batch and moves the hole.
func (g *Generator) next() bool {
	length := g.cfg.MinLength
	if g.maxLength > g.cfg.MinLength {
		length += g.rng.Float64() * (g.maxLength - g.cfg.MinLength)
	}
	b := g.track.push(length)
	if b == nil {
		return false
	}

	sides := g.track.Sides()
	if g.cfg.Relax {
		g.relax = !g.relax
	}
	if !g.relax {
		for i := 0; i < sides; i++ {
			b.solid[i] = g.rng.Intn(2) == 1
		}
	}
	b.solid[g.hole] = false

	g.hole = nextHole(b, g.hole, sides, g.rng)
	return true
}

// nextHole scans left and right from hole until it meets a solid lane in b,
// at most sides steps each way, then picks uniformly strictly between the
// two boundaries. hole itself lies in that span, so the result is never
// worse than keeping the current hole.
func nextHole(b *WallBatch, hole, sides int, rng *rand.Rand) int {
	lmost := hole - 1
	for lmost > hole-sides && !b.solid[wrap(lmost, sides)] {
		lmost--
	}
	rmost := hole + 1
	for rmost < hole+sides && !b.solid[wrap(rmost, sides)] {
		rmost++
	}

	span := rmost - lmost - 1
	if span < 1 {
		return hole
	}
	return wrap(lmost+1+rng.Intn(span), sides)
}

// wrap maps any integer lane into [0, sides).
func wrap(lane, sides int) int {
	lane %= sides
	if lane < 0 {
		lane += sides
	}
	return lane
}
