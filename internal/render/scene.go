// Package render rasterises simulation snapshots into character screens.
// It knows nothing about terminals: cells carry colour roles that the
// platform layer resolves against the current track hue.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/superngon/internal/core"
	"github.com/vovakirdan/superngon/internal/ngon"
)

// Scene geometry in track units.
const (
	DefaultViewRadius = 300.0 // Distance from the centre to the nearest screen edge
	CenterRadius      = 83.0  // Centre polygon at expansion 1
	CursorRadius      = 110.0 // Midpoint of the cursor triangle (100..120)
	cellAspect        = 2.0   // Terminal cells are about twice as tall as wide
)

// Glyphs.
const (
	glyphWall   = '█'
	glyphCursor = '▲'
	glyphFill   = ' '
)

// Scene draws snapshots. The zero value is not usable; use NewScene.
type Scene struct {
	ViewRadius float64
}

// NewScene creates a scene with the default view radius.
func NewScene() *Scene {
	return &Scene{ViewRadius: DefaultViewRadius}
}

// viewport maps between screen cells and track-space points.
type viewport struct {
	w, h int
	unit float64 // Track units per cell column
}

func (s *Scene) viewport(w, h int) viewport {
	half := math.Min(float64(w)/2, float64(h)/2*cellAspect)
	if half < 1 {
		half = 1
	}
	return viewport{w: w, h: h, unit: s.ViewRadius / half}
}

// point returns the scene point at the centre of cell (x, y).
func (v viewport) point(x, y int) core.Point {
	return core.Pt(
		(float64(x)+0.5-float64(v.w)/2)*v.unit,
		(float64(y)+0.5-float64(v.h)/2)*v.unit*cellAspect,
	)
}

// cell returns the cell containing scene point p.
func (v viewport) cell(p core.Point) (x, y int) {
	x = int(math.Floor(p.X/v.unit + float64(v.w)/2))
	y = int(math.Floor(p.Y/(v.unit*cellAspect) + float64(v.h)/2))
	return x, y
}

// Draw renders snap into dst, replacing its contents.
func (s *Scene) Draw(dst *core.Screen, snap ngon.Snapshot) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 || snap.Sides < ngon.MinSides {
		return
	}
	v := s.viewport(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, c := s.classify(snap, v.point(x, y), v.unit)
			dst.Set(x, y, r, c)
		}
	}

	// The cursor sits on the track, so it turns with the rotation.
	cursor := core.RotateDeg(core.Pt(0, -CursorRadius), snap.CursorAngle+snap.Rotation)
	cx, cy := v.cell(cursor)
	dst.Set(cx, cy, glyphCursor, core.ColorCursor)

	s.drawHUD(dst, snap)
}

// classify decides what the track looks like at scene point p.
func (s *Scene) classify(snap ngon.Snapshot, p core.Point, unit float64) (rune, core.Color) {
	// Undo the rotation to get back into track space.
	q := core.RotateDeg(p, -snap.Rotation)
	angle := core.Bearing(q)
	lane := ngon.LaneAt(angle, snap.Sides)
	dist := PolygonDistance(q.Len(), angle, snap.Sides)

	center := CenterRadius * snap.Expansion
	switch {
	case dist < center-unit:
		return glyphFill, core.ColorCenter
	case dist < center:
		return glyphFill, core.ColorCenterEdge
	}

	if lane < len(snap.Lanes) {
		// Wall segments are measured from the track centre.
		for _, wall := range snap.Lanes[lane].Walls {
			if dist >= wall.Start && dist < wall.End {
				return glyphWall, core.ColorWall
			}
		}
	}
	return glyphFill, LaneColor(lane, snap.Sides)
}

// PolygonDistance converts a polar position into the circumradius of the
// regular polygon through it, so that lane bands render as straight-edged
// polygon rings rather than circles.
func PolygonDistance(r, angle float64, sides int) float64 {
	width := 360 / float64(sides)
	lane := math.Floor(angle / width)
	delta := (angle - (lane+0.5)*width) * math.Pi / 180
	half := width / 2 * math.Pi / 180
	return r * math.Cos(delta) / math.Cos(half)
}

// LaneColor returns the fan colour of a lane. Fans alternate between bright
// and dark; with an odd lane count the last lane gets a middle tone so two
// equal fans never touch.
func LaneColor(lane, sides int) core.Color {
	if sides%2 == 1 && lane == sides-1 {
		return core.ColorLaneMid
	}
	if lane%2 == 0 {
		return core.ColorLaneBright
	}
	return core.ColorLaneDark
}

// FormatTime renders a run time the way the HUD shows it.
func FormatTime(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}

func (s *Scene) drawHUD(dst *core.Screen, snap ngon.Snapshot) {
	w, h := dst.Width(), dst.Height()

	switch snap.State {
	case ngon.StateIdle:
		mid := h / 2
		dst.DrawTextCentered(mid-3, "SUPER", core.ColorTitle)
		dst.DrawTextCentered(mid-2, fmt.Sprintf("%d-GON", snap.Sides), core.ColorTitle)
		dst.DrawTextCentered(mid+2, "PRESS SPACE TO START", core.ColorText)
		if snap.Record > 0 {
			label := "RECORD: " + FormatTime(snap.Record)
			c := core.ColorText
			if snap.NewRecord {
				label = "NEW RECORD: " + FormatTime(snap.Record)
				c = core.ColorRecord
			}
			dst.DrawTextCentered(mid+3, label, c)
		}

	case ngon.StateRunning:
		dst.DrawText(1, 0, "TIME "+FormatTime(snap.Elapsed), core.ColorText)
		label := "RECORD " + FormatTime(snap.Record)
		c := core.ColorText
		if snap.NewRecord {
			label = "NEW RECORD"
			c = core.ColorRecord
		}
		dst.DrawText(w-len(label)-1, 0, label, c)

	case ngon.StateGameOver:
		lines := []string{
			"GAME OVER",
			"",
			"TIME   " + FormatTime(snap.LastElapsed),
			"RECORD " + FormatTime(snap.Record),
		}
		if snap.NewRecord {
			lines[1] = "NEW RECORD!"
		}
		boxW, boxH := 24, len(lines)+2
		box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)
		dst.DrawRect(box, ' ', core.ColorText)
		dst.DrawBox(box, core.ColorText)
		for i, line := range lines {
			c := core.ColorText
			if i == 1 {
				c = core.ColorRecord
			}
			dst.DrawTextCentered(box.Y+1+i, line, c)
		}
	}

	footer := fmt.Sprintf("%s · %d sides", snap.Mode, snap.Sides)
	dst.DrawText(1, h-1, footer, core.ColorText)
}
