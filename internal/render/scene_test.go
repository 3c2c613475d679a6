package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/superngon/internal/config"
	"github.com/vovakirdan/superngon/internal/core"
	"github.com/vovakirdan/superngon/internal/ngon"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func openLanes(sides int) []ngon.Lane {
	lanes := make([]ngon.Lane, sides)
	for i := range lanes {
		lanes[i].Index = i
	}
	return lanes
}

func hexSnapshot() ngon.Snapshot {
	return ngon.Snapshot{
		State:     ngon.StateRunning,
		Mode:      ngon.ModeClassic,
		Sides:     6,
		Lanes:     openLanes(6),
		Expansion: 1,
	}
}

func TestPolygonDistance(t *testing.T) {
	tests := []struct {
		name  string
		r     float64
		angle float64
		sides int
		want  float64
	}{
		{"lane edge", 100, 0, 6, 100},
		{"lane centre", 100, 30, 6, 100 / math.Cos(math.Pi/6)},
		{"square edge", 50, 90, 4, 50},
		{"square centre", 50, 45, 4, 50 * math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolygonDistance(tt.r, tt.angle, tt.sides)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PolygonDistance(%v, %v, %d) = %v, want %v", tt.r, tt.angle, tt.sides, got, tt.want)
			}
		})
	}
}

func TestLaneColor(t *testing.T) {
	tests := []struct {
		lane, sides int
		want        core.Color
	}{
		{0, 6, core.ColorLaneBright},
		{1, 6, core.ColorLaneDark},
		{5, 6, core.ColorLaneDark},
		{0, 5, core.ColorLaneBright},
		{3, 5, core.ColorLaneDark},
		{4, 5, core.ColorLaneMid},
	}

	for _, tt := range tests {
		if got := LaneColor(tt.lane, tt.sides); got != tt.want {
			t.Errorf("LaneColor(%d, %d) = %v, want %v", tt.lane, tt.sides, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	scene := NewScene()
	snap := hexSnapshot()
	snap.Lanes[0].Walls = []ngon.WallSegment{{Start: 150, End: 250}}

	tests := []struct {
		name     string
		rotation float64
		p        core.Point
		want     core.Color
	}{
		{"centre", 0, core.Pt(0, -50), core.ColorCenter},
		{"centre edge", 0, core.Pt(0, -82.5), core.ColorCenterEdge},
		{"open lane", 0, core.RotateDeg(core.Pt(0, -100), 30), core.ColorLaneBright},
		{"wall", 0, core.RotateDeg(core.Pt(0, -200), 30), core.ColorWall},
		{"past the wall", 0, core.RotateDeg(core.Pt(0, -260), 30), core.ColorLaneBright},
		{"rotated track", 60, core.RotateDeg(core.Pt(0, -120), 30), core.ColorLaneDark},
		{"rotated wall", 60, core.RotateDeg(core.Pt(0, -200), 90), core.ColorWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snap
			s.Rotation = tt.rotation
			_, got := scene.classify(s, tt.p, 1)
			if got != tt.want {
				t.Errorf("classify(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifyFollowsExpansion(t *testing.T) {
	scene := NewScene()
	snap := hexSnapshot()
	p := core.Pt(0, -90)

	if _, c := scene.classify(snap, p, 1); c != core.ColorLaneBright {
		t.Errorf("at expansion 1, classify = %v, want open lane", c)
	}
	snap.Expansion = ngon.PulseMax
	if _, c := scene.classify(snap, p, 1); c != core.ColorCenter {
		t.Errorf("at full pulse, classify = %v, want centre", c)
	}
}

func TestDrawIdle(t *testing.T) {
	sess := ngon.NewSession(config.DefaultNgonConfig(), ngon.ModeClassic, 1)
	screen := core.NewScreen(80, 24)

	NewScene().Draw(screen, sess.Snapshot(t0))
	out := screen.String()

	for _, want := range []string{"SUPER", "6-GON", "PRESS SPACE TO START", "classic"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle screen is missing %q", want)
		}
	}
	if strings.Contains(out, "RECORD") {
		t.Error("idle screen shows a record before any run")
	}
	if got := strings.Count(out, string(glyphCursor)); got != 1 {
		t.Errorf("cursor drawn %d times, want 1", got)
	}
	if c := screen.GetCell(40, 12).Color; c != core.ColorCenter {
		t.Errorf("screen centre colour = %v, want centre", c)
	}
}

func TestDrawRunningHUD(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := hexSnapshot()
	snap.Elapsed = 12500 * time.Millisecond
	snap.Record = 30 * time.Second

	NewScene().Draw(screen, snap)
	if row := screen.Row(0); !strings.Contains(row, "TIME 12.50") || !strings.Contains(row, "RECORD 30.00") {
		t.Errorf("HUD row = %q", row)
	}

	snap.Record = 10 * time.Second
	snap.NewRecord = true
	NewScene().Draw(screen, snap)
	if row := screen.Row(0); !strings.Contains(row, "NEW RECORD") {
		t.Errorf("HUD row = %q, want NEW RECORD", row)
	}
}

func TestDrawWalls(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := hexSnapshot()

	countWalls := func() int {
		n := 0
		for y := 0; y < screen.Height(); y++ {
			for x := 0; x < screen.Width(); x++ {
				if screen.GetCell(x, y).Color == core.ColorWall {
					n++
				}
			}
		}
		return n
	}

	NewScene().Draw(screen, snap)
	if n := countWalls(); n != 0 {
		t.Errorf("open track drew %d wall cells", n)
	}

	for i := range snap.Lanes {
		snap.Lanes[i].Walls = []ngon.WallSegment{{Start: 150, End: 250}}
	}
	NewScene().Draw(screen, snap)
	if n := countWalls(); n == 0 {
		t.Error("solid ring drew no wall cells")
	}
}

func TestDrawGameOver(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := hexSnapshot()
	snap.State = ngon.StateGameOver
	snap.LastElapsed = 7 * time.Second
	snap.Record = 7 * time.Second
	snap.NewRecord = true

	NewScene().Draw(screen, snap)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "NEW RECORD!", "TIME   7.00", "RECORD 7.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen is missing %q", want)
		}
	}
}

func TestDrawEmptyScreen(t *testing.T) {
	screen := core.NewScreen(0, 0)
	NewScene().Draw(screen, hexSnapshot())
}
