package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/superngon/internal/core"
	"github.com/vovakirdan/superngon/internal/platform/tui"
	"github.com/vovakirdan/superngon/internal/registry"
	"github.com/vovakirdan/superngon/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in this terminal",
	Long: `Start the game in the given mode (default: classic).

Controls:
  Left/A, Right/D  - Turn the cursor (hold)
  Space/Enter      - Start a run
  Esc              - Abandon the run
  Up/W, Down/S     - More or fewer sides (before a run)
  Tab              - Longest runs
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Progression from the slowest pace, wider turning
  normal - Progression starting at 30%
  hard   - Progression starting at 70%, no relax bands
  fixed  - No progression

Examples:
  superngon play
  superngon play hyper
  superngon play --difficulty hard
  superngon play --config ./my-ngon.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	mode := modeArg(args)
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'superngon list' to see available modes.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logFile, err := openLogFile()
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()
	logger, err := newLogger(logFile, "superngon")
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}

	engine, input, err := tui.NewGame(tui.GameOptions{
		Config: gameCfg,
		Mode:   mode,
		Seed:   cfg.Seed,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		fail("%v", err)
	}

	runErr := tui.Run(engine, input, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
