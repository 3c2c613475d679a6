package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superngon/internal/core"
	"github.com/vovakirdan/superngon/internal/ngon"
	"github.com/vovakirdan/superngon/internal/render"
)

// openScoresMsg asks the app to show the scoreboard.
type openScoresMsg struct{}

// Model is the Bubble Tea model of the game screen. The engine simulates on
// its own goroutine; the model forwards keys and redraws the latest snapshot.
type Model struct {
	engine *ngon.Engine
	input  *HeldInput
	keys   KeyMap
	help   help.Model
	scene  *render.Scene
	theme  *Theme
	screen *core.Screen
	fps    int
	now    func() time.Time
}

// NewModel creates the game screen for engine. Key presses for held
// directions go to input, which must be the engine's Input.
func NewModel(engine *ngon.Engine, input *HeldInput, cfg core.RuntimeConfig) Model {
	return Model{
		engine: engine,
		input:  input,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		scene:  render.NewScene(),
		theme:  NewTheme(),
		screen: core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		fps:    cfg.TickRate,
		now:    time.Now,
	}
}

// screenRows leaves one row for the help bar.
func screenRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Engine returns the engine behind the screen.
func (m Model) Engine() *ngon.Engine {
	return m.engine
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone, core.ActionQuit:
		return m, nil

	case core.ActionLeft, core.ActionRight:
		m.input.Press(action)
		return m, nil

	case core.ActionScores:
		if m.engine.Running() {
			return m, nil
		}
		return m, func() tea.Msg { return openScoresMsg{} }
	}

	if action == core.ActionStop {
		m.input.Release()
	}
	m.engine.Dispatch(ngon.CommandFor(action))
	return m, nil
}

// snapshot returns what should be on screen now. Running motion is
// resampled so rotation stays smooth between simulation ticks.
func (m Model) snapshot() ngon.Snapshot {
	snap := m.engine.Latest()
	if snap.Running() {
		snap = snap.At(m.now())
	}
	return snap
}

// View renders the current state to a string for display.
func (m Model) View() string {
	snap := m.snapshot()
	m.scene.Draw(m.screen, snap)
	m.theme.SetHue(snap.Hue)
	return RenderScreen(m.screen, m.theme) + "\n" + m.help.View(m.keys)
}
