package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/prism-arcade/internal/platform/tui"
	"github.com/vovakirdan/prism-arcade/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "Show recorded simulation runs",
	Long: `List the most recent 'prism simulate' runs, or show one run in full.
Runs with the same seed, level and script should share a state hash.

Examples:
  prism runs
  prism runs --limit 50
  prism runs 3f2b9c1e-6a53-4c0e-9f0a-2d1b7a8e4c55
  prism runs --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to list")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs in the interactive scoreboard")
}

func runRuns(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer store.Close()

	if len(args) == 1 {
		run, err := store.RunByID(args[0])
		if err != nil {
			return err
		}
		printRun(run)
		return nil
	}

	if flagRunsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, tui.ViewRuns, width, height)
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'prism simulate' to record one.")
		return nil
	}

	fmt.Printf("  %-36s  %-12s  %6s  %6s  %6s  %5s  %-16s  %s\n",
		"ID", "Level", "Ticks", "Score", "Splits", "Refl", "Hash", "Date")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-12s  %6d  %6d  %6d  %5d  %016x  %s\n",
			r.ID, r.Level, r.Ticks, r.Score, r.Splits, r.Reflections,
			r.SnapshotHash, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRun(r storage.Run) {
	fmt.Printf("Run %s\n", r.ID)
	fmt.Println()
	fmt.Printf("  %-14s %s\n", "Level", r.Level)
	fmt.Printf("  %-14s %d\n", "Seed", r.Seed)
	fmt.Printf("  %-14s %d\n", "Ticks", r.Ticks)
	fmt.Printf("  %-14s %d\n", "Score", r.Score)
	fmt.Printf("  %-14s %d\n", "Lasers fired", r.LasersFired)
	fmt.Printf("  %-14s %d\n", "Splits", r.Splits)
	fmt.Printf("  %-14s %d\n", "Reflections", r.Reflections)
	fmt.Printf("  %-14s %016x\n", "State hash", r.SnapshotHash)
	fmt.Printf("  %-14s %s\n", "Recorded", r.CreatedAt.Format("2006-01-02 15:04:05"))
}
