package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/superngon/internal/core"
)

// Brightness of each part of the track at full saturation.
const (
	shineBrightness  = 0.9 // Walls, centre edge, cursor
	brightBrightness = 0.5
	midBrightness    = 0.4
	darkBrightness   = 0.3
)

// hueSteps is the number of distinct hues the theme rebuilds its styles for.
const hueSteps = 360

// HueColor converts a hue in [0,1) with saturation and brightness in [0,1]
// into a terminal colour.
func HueColor(hue, sat, bri float64) lipgloss.Color {
	return lipgloss.Color(colorful.Hsv(hue*360, sat, bri).Hex())
}

// Theme maps colour roles to styles for the current track hue.
type Theme struct {
	step   int // Quantised hue the styles were built for; -1 before the first build
	styles map[core.Color]lipgloss.Style
}

// NewTheme creates a theme for hue 0.
func NewTheme() *Theme {
	t := &Theme{step: -1}
	t.SetHue(0)
	return t
}

// SetHue rebuilds the styles when the hue moved to a different step.
func (t *Theme) SetHue(hue float64) {
	hue -= math.Floor(hue)
	step := int(hue*hueSteps) % hueSteps
	if step == t.step {
		return
	}
	t.step = step
	h := float64(step) / hueSteps

	shine := HueColor(h, 1, shineBrightness)
	bright := HueColor(h, 1, brightBrightness)
	mid := HueColor(h, 1, midBrightness)
	dark := HueColor(h, 1, darkBrightness)

	t.styles = map[core.Color]lipgloss.Style{
		core.ColorDefault:    lipgloss.NewStyle(),
		core.ColorLaneBright: lipgloss.NewStyle().Background(bright),
		core.ColorLaneDark:   lipgloss.NewStyle().Background(dark),
		core.ColorLaneMid:    lipgloss.NewStyle().Background(mid),
		core.ColorWall:       lipgloss.NewStyle().Foreground(shine),
		core.ColorCenter:     lipgloss.NewStyle().Background(dark),
		core.ColorCenterEdge: lipgloss.NewStyle().Background(shine),
		core.ColorCursor:     lipgloss.NewStyle().Foreground(shine).Bold(true),
		core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		core.ColorTitle:      lipgloss.NewStyle().Foreground(shine).Bold(true),
		core.ColorRecord:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// Style returns the style for a colour role.
func (t *Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[core.ColorDefault]
}
