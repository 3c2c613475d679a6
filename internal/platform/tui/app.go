package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superngon/internal/core"
	"github.com/vovakirdan/superngon/internal/ngon"
	"github.com/vovakirdan/superngon/internal/storage"
)

// App is the top-level model: the game screen with the scoreboard on top of
// it when open. The game keeps redrawing underneath so the engine state is
// current when the player returns.
type App struct {
	game     Model
	scores   *ScoreboardModel
	store    *storage.Store
	quit     key.Binding
	width    int
	height   int
	quitting bool
}

// NewApp creates the app for one player.
func NewApp(engine *ngon.Engine, input *HeldInput, store *storage.Store, cfg core.RuntimeConfig) App {
	return App{
		game:   NewModel(engine, input, cfg),
		store:  store,
		quit:   DefaultKeyMap().Quit,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game screen.
func (a App) Init() tea.Cmd {
	return a.game.Init()
}

// ShowingScores reports whether the scoreboard is open.
func (a App) ShowingScores() bool {
	return a.scores != nil
}

// Update routes messages to the visible screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.quit) {
			a.game.Engine().Close()
			a.quitting = true
			return a, tea.Quit
		}
		if a.scores != nil {
			return a.updateScores(msg)
		}

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.scores != nil {
			a.updateScores(msg)
		}

	case openScoresMsg:
		sb := NewScoreboardModel(a.store, a.game.Engine().Latest().Mode, a.width, a.height)
		a.scores = &sb
		return a, nil

	case closeScoresMsg:
		a.scores = nil
		return a, nil
	}

	game, cmd := a.game.Update(msg)
	if gm, ok := game.(Model); ok {
		a.game = gm
	}
	return a, cmd
}

func (a *App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		a.scores = &sb
	}
	return *a, cmd
}

// View renders the visible screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.scores != nil {
		return a.scores.View()
	}
	return a.game.View()
}

// Run plays in the local terminal until the player quits.
func Run(engine *ngon.Engine, input *HeldInput, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewApp(engine, input, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	engine.Close()
	return err
}
