package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/prism-arcade/internal/platform/tui"
	"github.com/vovakirdan/prism-arcade/internal/registry"
	"github.com/vovakirdan/prism-arcade/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores. The game defaults to "prism".

Examples:
  prism scores
  prism scores --tui
  prism scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "prism"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, tui.ViewScores, width, height)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'prism play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}
