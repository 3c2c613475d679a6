package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superngon/internal/loop"
	"github.com/vovakirdan/superngon/internal/ngon"
	"github.com/vovakirdan/superngon/internal/registry"
	"github.com/vovakirdan/superngon/internal/render"
	"github.com/vovakirdan/superngon/internal/storage"
)

var (
	flagSimTicks  uint64
	flagSimSides  int
	flagAutopilot bool
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run a headless simulation",
	Long: `Run one game without a terminal UI on a simulated clock and print
the result. The run ends on collision or after --ticks ticks.

Without --autopilot the cursor never moves, which shows how long the
opening and the first walls last for a seed.

Examples:
  superngon sim --seed 42
  superngon sim hyper --autopilot --ticks 20000
  superngon sim --sides 9 --autopilot --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimSides, "sides", 0, "Number of sides (0 = from config)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer toward the lane with the most room")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the run in the runs database")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// capture keeps the finished run and forwards it to an optional saver.
type capture struct {
	next   ngon.ResultSaver
	result ngon.RunResult
}

func (c *capture) SaveRun(ctx context.Context, r ngon.RunResult) error {
	c.result = r
	if c.next == nil {
		return nil
	}
	return c.next.SaveRun(ctx, r)
}

// autopilot steers toward the lane whose nearest wall is farthest away.
type autopilot struct {
	engine *ngon.Engine
	radius float64
}

func (a *autopilot) Poll() ngon.Intent {
	if a.engine == nil {
		return ngon.Intent{}
	}
	snap := a.engine.Latest()
	sides := snap.Sides

	best, bestRoom := snap.CursorLane, -1.0
	for i := 0; i < sides; i++ {
		// Check lanes nearest the cursor first so ties keep it close.
		lane := (snap.CursorLane + (i+1)/2*sign(i)) % sides
		if lane < 0 {
			lane += sides
		}
		if room := clearance(snap.Lanes[lane], a.radius); room > bestRoom {
			best, bestRoom = lane, room
		}
	}

	diff := (best - snap.CursorLane + sides) % sides
	switch {
	case diff == 0:
		return ngon.Intent{}
	case diff <= sides/2:
		return ngon.Intent{Right: true}
	default:
		return ngon.Intent{Left: true}
	}
}

func sign(i int) int {
	if i%2 == 0 {
		return 1
	}
	return -1
}

// clearance is the distance from the cursor to the next wall in lane.
func clearance(lane ngon.Lane, radius float64) float64 {
	for _, w := range lane.Walls {
		if w.End > radius {
			return math.Max(w.Start-radius, 0)
		}
	}
	return math.Inf(1)
}

func runSim(_ *cobra.Command, args []string) {
	mode := modeArg(args)
	info, err := registry.Get(mode)
	if err != nil {
		fail("%v", err)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagSimSides > 0 {
		gameCfg.Track.Sides = flagSimSides
	}
	gameCfg = info.Apply(gameCfg)

	logger, err := newLogger(os.Stderr, "superngon-sim")
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	saver := &capture{}
	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fail("opening runs database: %v", err)
		}
		defer store.Close()
		saver.next = store
	}

	pilot := &autopilot{radius: gameCfg.Walls.CollisionRadius}
	var input ngon.Input = ngon.NoInput
	if flagAutopilot {
		input = pilot
	}

	engine := ngon.NewEngine(ngon.NewSession(gameCfg, mode, seed), ngon.EngineOptions{
		Clock:  loop.NewManualClock(time.Now()),
		Input:  ngon.LimitInput(input, flagSimTicks),
		Saver:  saver,
		Logger: logger,
	})
	pilot.engine = engine

	engine.Start()
	engine.Wait()

	r := saver.result
	fmt.Printf("Mode:      %s\n", info.Title)
	fmt.Printf("Sides:     %d\n", r.Sides)
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Survived:  %ss\n", render.FormatTime(r.Elapsed))
	fmt.Printf("Ticks:     %d\n", r.Ticks)
	fmt.Printf("Ended by:  %s\n", r.Reason)
	if flagSimSave {
		fmt.Printf("Run ID:    %s\n", r.ID)
	}
}
