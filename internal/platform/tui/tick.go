// Package tui provides the Bubble Tea front end for Super N-gon.
// The simulation runs on its own goroutine inside ngon.Engine; this package
// only forwards keys to it and redraws the latest snapshot at a fixed rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the redraw rate when none is configured.
const DefaultFPS = 60

// TickMsg is sent to trigger a redraw.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
