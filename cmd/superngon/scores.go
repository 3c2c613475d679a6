package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/superngon/internal/registry"
	"github.com/vovakirdan/superngon/internal/render"
	"github.com/vovakirdan/superngon/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the longest runs",
	Long: `Display the longest runs for the given mode (default: classic),
followed by totals for the mode.

Examples:
  superngon scores
  superngon scores hyper --limit 20
  superngon scores --recent
  superngon scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs of every mode instead")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode := modeArg(args)
	if !flagRecent && !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'superngon list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(mode); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared all %s runs.\n", mode)
	case flagRecent:
		printRecent(store)
	default:
		printTop(store, mode)
	}
}

func printTop(store *storage.Store, mode string) {
	info, err := registry.Get(mode)
	if err != nil {
		fail("%v", err)
	}

	runs, err := store.TopRuns(mode, flagScoresLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Longest Runs - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'superngon play %s' to set the first record!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %8s  %5s  %-9s  %s\n", "Rank", "Time", "Sides", "End", "When")
	fmt.Printf("  %-4s  %8s  %5s  %-9s  %s\n", "----", "----", "-----", "---", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %8s  %5d  %-9s  %s\n",
			i+1, render.FormatTime(r.Elapsed), r.Sides, r.Reason, humanize.Time(r.FinishedAt))
	}

	stats, err := store.GetModeStats(mode)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %ss over %s runs (average %ss, %s played in total)\n",
		render.FormatTime(stats.BestTime),
		humanize.Comma(int64(stats.RunsCount)),
		render.FormatTime(stats.AvgTime),
		stats.TotalTime.Round(time.Second),
	)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played %s\n", humanize.Time(stats.LastPlayed))
	}
}

func printRecent(store *storage.Store) {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %8s  %5s  %-9s  %-6s  %s\n", "Mode", "Time", "Sides", "End", "Record", "When")
	fmt.Printf("  %-8s  %8s  %5s  %-9s  %-6s  %s\n", "----", "----", "-----", "---", "------", "----")
	for _, r := range runs {
		record := ""
		if r.NewRecord {
			record = "yes"
		}
		fmt.Printf("  %-8s  %8s  %5d  %-9s  %-6s  %s\n",
			r.Mode, render.FormatTime(r.Elapsed), r.Sides, r.Reason, record, humanize.Time(r.FinishedAt))
	}

	all, err := store.GetAllModeStats()
	if err != nil || len(all) == 0 {
		return
	}
	fmt.Println()
	for _, info := range registry.List() {
		if s, ok := all[info.ID]; ok {
			fmt.Printf("%-8s best %ss, %s runs\n", info.ID, render.FormatTime(s.BestTime), humanize.Comma(int64(s.RunsCount)))
		}
	}
}
