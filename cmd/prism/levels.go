package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prism-arcade/internal/games/gallery"
)

var flagLevelsFile string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels",
	Long: `Shows the built-in levels, or the levels of a YAML level pack.

Examples:
  prism levels
  prism levels --file ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsFile, "file", "", "YAML level pack to list instead of the built-ins")
}

func runLevels(_ *cobra.Command, _ []string) error {
	levels := gallery.BuiltinLevels()
	if flagLevelsFile != "" {
		loaded, err := gallery.LoadLevelFile(flagLevelsFile)
		if err != nil {
			return err
		}
		levels = loaded
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-6s  %-6s  %-7s  %s\n", maxIDLen, "ID", "Size", "Bricks", "Prisms", "Turrets", "Name")
	fmt.Printf("  %-*s  %-5s  %-6s  %-6s  %-7s  %s\n", maxIDLen, "--", "----", "------", "------", "-------", "----")
	for _, l := range levels {
		bricks := l.Count(gallery.CellBrick) + l.Count(gallery.CellHard)
		fmt.Printf("  %-*s  %-5s  %-6d  %-6d  %-7d  %s\n",
			maxIDLen, l.ID,
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			bricks, l.Count(gallery.CellPrism), l.Count(gallery.CellTurret),
			l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'prism play --level <id>' to play one level.")
	return nil
}
