package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/superngon/internal/config"
	"github.com/vovakirdan/superngon/internal/ngon"
	"github.com/vovakirdan/superngon/internal/registry"
	"github.com/vovakirdan/superngon/internal/storage"
)

// GameOptions describes one player's game.
type GameOptions struct {
	Config config.NgonConfig
	Mode   string
	Seed   int64          // 0 picks a time-based seed
	Store  *storage.Store // Optional: persists runs and seeds the record
	Logger *log.Logger    // Optional
	Hold   time.Duration  // Held-key window; 0 selects DefaultHoldWindow
}

// NewGame builds an engine for the given mode, driven by held key input.
func NewGame(opts GameOptions) (*ngon.Engine, *HeldInput, error) {
	mode, err := registry.Get(opts.Mode)
	if err != nil {
		return nil, nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	cfg := mode.Apply(opts.Config)
	input := NewHeldInput(opts.Hold)
	engineOpts := ngon.EngineOptions{
		Input:  input,
		Logger: opts.Logger,
	}
	// A nil *Store must not become a non-nil saver interface.
	if opts.Store != nil {
		engineOpts.Saver = opts.Store
	}

	engine := ngon.NewEngine(ngon.NewSession(cfg, mode.ID, opts.Seed), engineOpts)

	if opts.Store != nil {
		best, err := opts.Store.BestTime(context.Background(), mode.ID)
		if err != nil {
			opts.Logger.Warn("could not load best time", "mode", mode.ID, "error", err)
		} else {
			engine.SeedRecord(best)
		}
	}

	return engine, input, nil
}
