package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/games/gallery"
	"github.com/vovakirdan/prism-arcade/internal/storage"
)

var (
	flagSimTicks     int
	flagSimLevel     string
	flagSimFireEvery int
	flagSimSweep     int
	flagSimMagnetAt  int
	flagSimWidth     int
	flagSimHeight    int
	flagSimNoSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted headless game",
	Long: `Play the gallery without a terminal using scripted input, then print
what happened and store the run with a fingerprint of the final state.

The same seed, screen size, level and script always give the same
fingerprint, so two runs can be compared with 'prism runs'.

Examples:
  prism simulate --seed 42
  prism simulate --seed 42 --level lattice --ticks 3000
  prism simulate --fire-every 5 --sweep 0 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 1800, "Maximum number of steps to run")
	simulateCmd.Flags().StringVar(&flagSimLevel, "level", "", "Run only this built-in level")
	simulateCmd.Flags().IntVar(&flagSimFireEvery, "fire-every", 15, "Steps between fire presses (0 = never)")
	simulateCmd.Flags().IntVar(&flagSimSweep, "sweep", 90, "Steps the paddle moves one way before turning (0 = stand still)")
	simulateCmd.Flags().IntVar(&flagSimMagnetAt, "magnet-at", 0, "Step at which to use the magnet (0 = never)")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Virtual screen width")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 30, "Virtual screen height")
	simulateCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not store the run")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger := newLogger("simulate")

	game := gallery.New().WithLogger(logger)
	levelID := "all"
	if flagSimLevel != "" {
		level, ok := gallery.GetLevelByID(flagSimLevel)
		if !ok {
			return fmt.Errorf("unknown level %q, run 'prism levels' to see them", flagSimLevel)
		}
		game.WithLevels([]*gallery.Level{level})
		levelID = level.ID
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}
	pilot := gallery.Autopilot{
		FireEvery:  flagSimFireEvery,
		SweepTicks: flagSimSweep,
		MagnetAt:   flagSimMagnetAt,
	}

	start := time.Now()
	res := gallery.RunHeadless(game, runtime, pilot, flagSimTicks)
	elapsed := time.Since(start)

	fmt.Printf("Simulation finished: %s\n", res.Reason)
	fmt.Println()
	fmt.Printf("  %-14s %d\n", "Seed", seed)
	fmt.Printf("  %-14s %d steps, %d ticks (%s)\n", "Length", res.Steps, res.Ticks, elapsed.Round(time.Millisecond))
	fmt.Printf("  %-14s %s (%s)\n", "Level", res.Level, res.Phase)
	fmt.Printf("  %-14s %d\n", "Score", res.Score)
	fmt.Printf("  %-14s %d\n", "Lives", res.Lives)
	fmt.Printf("  %-14s %d\n", "Lasers fired", res.Stats.LasersFired)
	fmt.Printf("  %-14s %d (%d children)\n", "Splits", res.Stats.Splits, res.Stats.Spawned)
	fmt.Printf("  %-14s %d\n", "Reflections", res.Stats.Reflections)
	fmt.Printf("  %-14s %d\n", "Bricks", res.Stats.BricksDestroyed)
	fmt.Printf("  %-14s %d\n", "Turrets", res.Stats.TurretsDestroyed)
	fmt.Printf("  %-14s %d absorbed, %d lives lost\n", "Turret shots", res.Stats.Absorbed, res.Stats.LivesLost)
	fmt.Printf("  %-14s %016x\n", "State hash", res.Hash)

	if flagSimNoSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Level:        levelID,
		Ticks:        res.Ticks,
		Seed:         seed,
		Score:        res.Score,
		LasersFired:  res.Stats.LasersFired,
		Splits:       res.Stats.Splits,
		Reflections:  res.Stats.Reflections,
		SnapshotHash: res.Hash,
	})
	if err != nil {
		return fmt.Errorf("cannot save run: %w", err)
	}

	fmt.Println()
	fmt.Printf("Saved run %s\n", id)
	return nil
}
