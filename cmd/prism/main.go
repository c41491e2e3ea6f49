// prism is a terminal shooting gallery where lasers bend and split on prisms.
//
// Usage:
//
//	prism play               - Play the gallery in the terminal
//	prism simulate           - Run a scripted headless game and record it
//	prism runs               - List recorded simulation runs
//	prism kinds              - Show the projectile kind table
//	prism levels             - List built-in levels
//	prism scores             - Show high scores
//	prism serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/prism-arcade/internal/games/gallery"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Prism Gallery - bend lasers through prisms in your terminal",
	Long: `Prism Gallery is a terminal shooting gallery. Paddle lasers split in two
when they hit a prism head on and bounce off its corners otherwise. Turrets
shoot back; the paddle magnet swallows their shots.

Available commands:
  play      - Play the gallery
  simulate  - Headless scripted run, stored for later comparison
  runs      - Recorded simulation runs
  kinds     - Projectile kind table
  levels    - Built-in levels
  scores    - High scores
  serve     - Start SSH server for remote play

Examples:
  prism play --difficulty hard
  prism simulate --seed 42 --ticks 1200 --level lattice
  prism runs
  prism serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)

		gallery.SetConfigPath(flagConfig)
		gallery.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

// newLogger returns a logger writing to stderr at the level from --log-level.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.GetLevel(),
	})
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
