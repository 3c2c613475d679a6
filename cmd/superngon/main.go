// superngon is a terminal rendition of Super Hexagon-style N-gon survival.
//
// Usage:
//
//	superngon list             - List available modes
//	superngon play [mode]      - Play in the terminal
//	superngon serve            - Start SSH server for remote play
//	superngon scores [mode]    - Show the longest runs
//	superngon sim [mode]       - Run a headless simulation
//	superngon config           - Print the game configuration
//
// Global flags:
//
//	--fps <rate>        - Redraw rate (default: 60)
//	--seed <value>      - RNG seed for reproducible tracks
//	--db <path>         - Runs database (default: ~/.superngon/runs.db)
//	--config <path>     - Game config YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/superngon/internal/config"
	"github.com/vovakirdan/superngon/internal/ngon"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "superngon",
	Short: "Super N-gon - survive the spinning polygon in your terminal",
	Long: `Super N-gon is a reflex game played on a spinning polygon. Walls
scroll in toward the centre; steer the cursor through the gaps for as long
as you can. The number of sides is yours to choose.

Available commands:
  list     - Show all game modes
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the longest runs
  sim      - Run a headless simulation
  config   - Print the game configuration

Examples:
  superngon play
  superngon play hyper --difficulty hard
  superngon serve --ssh :2222
  superngon scores classic
  superngon sim --ticks 5000 --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.superngon/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.superngon/superngon.log for appending. The TUI owns
// the terminal while playing, so logs go to a file.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".superngon")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "superngon.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadGameConfig loads the game config and applies the --difficulty preset.
func loadGameConfig() (config.NgonConfig, error) {
	cfg, err := config.LoadNgon(flagConfig)
	if err != nil {
		return cfg, err
	}
	switch preset := config.DifficultyPreset(flagDifficulty); preset {
	case "":
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		config.ApplyPreset(&cfg, preset)
	default:
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return cfg, nil
}

// modeArg returns the mode named by args, defaulting to classic.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ngon.ModeClassic
}

// fail prints an error and exits.
func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
	os.Exit(1)
}
