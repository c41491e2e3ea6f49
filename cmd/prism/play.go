package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/games/gallery"
	"github.com/vovakirdan/prism-arcade/internal/platform/tui"
	"github.com/vovakirdan/prism-arcade/internal/storage"
)

var flagPlayLevel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the prism gallery",
	Long: `Start the prism gallery in the terminal.

Controls:
  Left/Right, A/D  - Move paddle
  Space/Up         - Fire laser
  M                - Magnet (bends and swallows turret shots)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot
  ?                - All keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  prism play
  prism play --level lattice
  prism play --difficulty hard --config ./my-prism.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLevel, "level", "", "Play only this built-in level (see 'prism levels')")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger("prism")

	game := gallery.New().WithLogger(logger)
	if flagPlayLevel != "" {
		level, ok := gallery.GetLevelByID(flagPlayLevel)
		if !ok {
			return fmt.Errorf("unknown level %q, run 'prism levels' to see them", flagPlayLevel)
		}
		game.WithLevels([]*gallery.Level{level})
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
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
