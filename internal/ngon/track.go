// Package ngon implements the Super N-gon simulation core: the polygon track
// and its obstacle generator, beat-driven motion, the cursor, collision and
// the session state machine. It performs no drawing and no I/O; renderers
// consume immutable Snapshot values.
package ngon

import "github.com/vovakirdan/superngon/internal/config"

// Lane count limits.
const (
	MinSides = config.MinSides
	MaxSides = config.MaxSides
)

// ClampSides restricts a lane count to [MinSides, MaxSides].
func ClampSides(n int) int {
	return max(MinSides, min(MaxSides, n))
}

// WallBatch is one ring of walls: a radial band of Length units in which each
// lane is either solid or open.
type WallBatch struct {
	Length float64
	solid  [MaxSides]bool
}

// Solid reports whether lane is blocked in this batch.
func (b *WallBatch) Solid(lane int) bool {
	if lane < 0 || lane >= MaxSides {
		return false
	}
	return b.solid[lane]
}

// Open counts the open lanes among the first sides lanes.
func (b *WallBatch) Open(sides int) int {
	n := 0
	for i := 0; i < sides && i < MaxSides; i++ {
		if !b.solid[i] {
			n++
		}
	}
	return n
}

// WallSegment is a solid radial interval on a single lane.
type WallSegment struct {
	Start float64 // Distance from the centre to the near edge
	End   float64 // Distance from the centre to the far edge, always > Start
}

// Lane is one angular sector of the track with its walls, nearest first.
type Lane struct {
	Index int
	Walls []WallSegment
}

// Track is the N-sided playfield. Wall batches live in a fixed-capacity ring
// so scrolling never allocates: retiring a batch only advances the head.
type Track struct {
	sides  int
	ring   []WallBatch
	head   int     // Index of the batch nearest the centre
	count  int     // Queued batches
	offset float64 // Distance the front batch has already scrolled past the centre
}

// NewTrack creates an empty track. capacity bounds the queued batches.
func NewTrack(sides, capacity int) *Track {
	if capacity < 1 {
		capacity = 1
	}
	return &Track{
		sides: ClampSides(sides),
		ring:  make([]WallBatch, capacity),
	}
}

// Sides returns the lane count.
func (t *Track) Sides() int {
	return t.sides
}

// Len returns the number of queued batches.
func (t *Track) Len() int {
	return t.count
}

// Cap returns the ring capacity.
func (t *Track) Cap() int {
	return len(t.ring)
}

// Offset returns how far the front batch has scrolled past the centre.
func (t *Track) Offset() float64 {
	return t.offset
}

// Resize changes the lane count (clamped) and clears all walls.
func (t *Track) Resize(sides int) {
	t.sides = ClampSides(sides)
	t.Clear()
}

// Clear removes every wall batch.
func (t *Track) Clear() {
	t.head = 0
	t.count = 0
	t.offset = 0
}

// Batch returns the i-th queued batch, 0 being nearest the centre.
func (t *Track) Batch(i int) *WallBatch {
	if i < 0 || i >= t.count {
		return nil
	}
	return &t.ring[(t.head+i)%len(t.ring)]
}

// push claims the next free slot at the far end of the queue, or returns nil
// when the ring is full. The slot is reset to an all-open batch.
func (t *Track) push(length float64) *WallBatch {
	if t.count == len(t.ring) {
		return nil
	}
	b := &t.ring[(t.head+t.count)%len(t.ring)]
	*b = WallBatch{Length: length}
	t.count++
	return b
}

// Advance scrolls every wall step units towards the centre and retires the
// batches that have fully passed it. Excess scroll carries into the next batch.
func (t *Track) Advance(step float64) {
	if step <= 0 {
		return
	}
	t.offset += step
	for t.count > 0 {
		front := &t.ring[t.head]
		if t.offset < front.Length {
			break
		}
		t.offset -= front.Length
		t.head = (t.head + 1) % len(t.ring)
		t.count--
	}
	if t.count == 0 {
		t.offset = 0
	}
}

// Walk visits batches nearest first with their radial extents until fn
// returns false.
func (t *Track) Walk(fn func(inner, outer float64, b *WallBatch) bool) {
	inner := 0.0
	for i := 0; i < t.count; i++ {
		b := &t.ring[(t.head+i)%len(t.ring)]
		outer := inner + b.Length
		if i == 0 {
			outer -= t.offset
		}
		if !fn(inner, outer, b) {
			return
		}
		inner = outer
	}
}

// Extent returns the distance from the centre to the far edge of the last batch.
func (t *Track) Extent() float64 {
	extent := 0.0
	t.Walk(func(_, outer float64, _ *WallBatch) bool {
		extent = outer
		return true
	})
	return extent
}

// Lanes returns exactly Sides() lanes with their solid segments up to
// horizon. Consecutive solid batches merge into one segment.
func (t *Track) Lanes(horizon float64) []Lane {
	lanes := make([]Lane, t.sides)
	for i := range lanes {
		lanes[i].Index = i
	}
	t.Walk(func(inner, outer float64, b *WallBatch) bool {
		if inner >= horizon {
			return false
		}
		outer = min(outer, horizon)
		if outer <= inner {
			return true
		}
		for i := range lanes {
			if !b.solid[i] {
				continue
			}
			walls := lanes[i].Walls
			if n := len(walls); n > 0 && walls[n-1].End == inner {
				walls[n-1].End = outer
				continue
			}
			lanes[i].Walls = append(walls, WallSegment{Start: inner, End: outer})
		}
		return true
	})
	return lanes
}
