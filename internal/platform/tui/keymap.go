package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superngon/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// Keeping them in one place makes them testable and lets the help bar
// describe exactly what is bound.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Stop       key.Binding
	MoreSides  key.Binding
	FewerSides key.Binding
	Scores     key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Stop, k.MoreSides, k.FewerSides, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Stop},
		{k.MoreSides, k.FewerSides},
		{k.Scores, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop"),
		),
		MoreSides: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "more sides"),
		),
		FewerSides: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "fewer sides"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a game action.
// Unbound keys map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	case key.Matches(msg, k.MoreSides):
		return core.ActionIncreaseSides
	case key.Matches(msg, k.FewerSides):
		return core.ActionDecreaseSides
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	}
	return core.ActionNone
}
