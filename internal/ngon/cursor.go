package ngon

import (
	"math"

	"github.com/vovakirdan/superngon/internal/core"
)

// Cursor is the player's position on the track perimeter, in degrees
// [0,360) measured clockwise in track space.
type Cursor struct {
	angle float64
}

// NewCursor creates a cursor at angle.
func NewCursor(angle float64) Cursor {
	return Cursor{angle: core.NormalizeDegrees(angle)}
}

// Angle returns the cursor angle in degrees [0,360).
func (c Cursor) Angle() float64 {
	return c.angle
}

// Apply moves the cursor by step degrees for each held direction. Holding
// both applies both moves, which cancel.
func (c *Cursor) Apply(left, right bool, step float64) {
	if left {
		c.angle = core.NormalizeDegrees(c.angle - step)
	}
	if right {
		c.angle = core.NormalizeDegrees(c.angle + step)
	}
}

// Reset places the cursor at the canonical start angle for sides.
func (c *Cursor) Reset(sides int) {
	c.angle = CanonicalAngle(sides)
}

// Lane returns the lane under the cursor, always in [0, sides).
func (c Cursor) Lane(sides int) int {
	return LaneAt(c.angle, sides)
}

// LaneAt returns the lane containing angle on a track with sides lanes.
func LaneAt(angle float64, sides int) int {
	if sides < 1 {
		return 0
	}
	lane := int(math.Floor(core.NormalizeDegrees(angle) / (360 / float64(sides))))
	return core.Clamp(lane, 0, sides-1)
}

// CanonicalAngle is the start position: the centre of the lane whose far
// edge is the first lane boundary at or past 60 degrees.
func CanonicalAngle(sides int) float64 {
	n := float64(ClampSides(sides))
	return core.NormalizeDegrees(math.Ceil(n*60/360)*360/n - 180/n)
}
