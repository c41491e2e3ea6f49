package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/prism-arcade/internal/projectile"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Show the projectile kind table",
	Long: `Print every projectile kind with its size, speed, damage and
capabilities. Kinds marked "refract" are bent and split by prisms.`,
	Args: cobra.NoArgs,
	Run:  runKinds,
}

var (
	kindsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	kindsCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	kindsHostile     = kindsCellStyle.Foreground(lipgloss.Color("9"))
)

func runKinds(_ *cobra.Command, _ []string) {
	kinds := projectile.Kinds()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Kind", "Shape", "Size", "Speed", "Damage", "Magnet", "Flags").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return kindsHeaderStyle
			}
			if projectile.Info(kinds[row]).Hostile {
				return kindsHostile
			}
			return kindsCellStyle
		})

	for _, k := range kinds {
		info := projectile.Info(k)
		t.Row(
			info.Name,
			info.Shape.String(),
			fmt.Sprintf("%.2gx%.2g", info.Width, info.Height),
			fmt.Sprintf("%g", info.Speed),
			fmt.Sprintf("%g", info.Damage),
			magnetRate(info.MagnetDegreesPerSec),
			kindFlags(info),
		)
	}

	fmt.Println(t.Render())
}

func magnetRate(degPerSec float64) string {
	if degPerSec == 0 {
		return "-"
	}
	return fmt.Sprintf("%g°/s", degPerSec)
}

func kindFlags(info projectile.KindInfo) string {
	var flags []string
	if info.Hostile {
		flags = append(flags, "hostile")
	}
	if info.Refractable {
		flags = append(flags, "refract")
	}
	if info.Rocket {
		flags = append(flags, "rocket")
	}
	if info.Mine {
		flags = append(flags, "mine")
	}
	if info.Gravity != 0 {
		flags = append(flags, "gravity")
	}
	if info.DestroyedBySafetyNet {
		flags = append(flags, "net-stops")
	}
	if info.PassesThroughSafetyNet {
		flags = append(flags, "net-passes")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
