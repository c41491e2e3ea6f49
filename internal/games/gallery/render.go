package gallery

import (
	"fmt"
	"math"

	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/projectile"
)

// Rendering characters
const (
	BrickGlyph      = '█'
	HardBrickGlyph  = '▓'
	SolidGlyph      = '▒'
	PrismGlyph      = '◆'
	TurretGlyph     = '▼'
	PaddleChar      = '='
	OrbGlyph        = '●'
	BorderHoriz     = '─'
	prismLeftGlyph  = '<'
	prismRightGlyph = '>'
)

// BrickColors cycles per row so neighboring rows stand apart.
var BrickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderCells(dst)
	g.renderPaddle(dst)
	g.renderProjectiles(dst)
	g.renderOverlay(dst)
}

// toScreen maps a world position to a screen cell.
func (g *Game) toScreen(dst *core.Screen, pos core.Point2D) (x, y int) {
	x = int(math.Floor(pos.X * 2))
	y = dst.Height() - 1 - int(math.Floor(pos.Y))
	return x, y
}

// renderHUD draws the score, lives, level and magnet status.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	dst.DrawTextRight(0, 1, fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.levels)))

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
	magnet := fmt.Sprintf(" Magnet: %d ", g.paddle.MagnetCharges())
	dst.DrawText(1, 1, magnet)
	if g.paddle.MagnetActive() {
		dst.DrawTextColored(len(magnet)+2, 1, " MAGNET ", core.ColorBrightCyan)
	}
}

// renderCells draws every live cell of the grid.
func (g *Game) renderCells(dst *core.Screen) {
	for row := 0; row < g.level.Height; row++ {
		for col := 0; col < g.level.Width; col++ {
			cell := g.level.Cells[row][col]
			if !cell.Alive || cell.Type == CellEmpty {
				continue
			}

			left := int(math.Floor(float64(col) * g.cellW * 2))
			right := int(math.Floor(float64(col+1)*g.cellW*2)) - 1
			_, y := g.toScreen(dst, g.cellCenter(row, col))

			for x := left; x <= right; x++ {
				glyph, color := cellGlyph(cell, row, x == left, x == right)
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

// cellGlyph picks the character for one column of a cell.
func cellGlyph(cell Cell, row int, first, last bool) (rune, core.Color) {
	switch cell.Type {
	case CellHard:
		if cell.HP > 1 {
			return HardBrickGlyph, core.ColorGray
		}
		return BrickGlyph, BrickColors[row%len(BrickColors)]
	case CellSolid:
		return SolidGlyph, core.ColorWhite
	case CellPrism:
		if first && !last {
			return prismLeftGlyph, core.ColorBrightCyan
		}
		if last && !first {
			return prismRightGlyph, core.ColorBrightCyan
		}
		return PrismGlyph, core.ColorBrightCyan
	case CellTurret:
		return TurretGlyph, core.ColorRed
	default:
		return BrickGlyph, BrickColors[row%len(BrickColors)]
	}
}

// renderPaddle draws the player's paddle. Nothing is drawn while it is knocked out.
func (g *Game) renderPaddle(dst *core.Screen) {
	if g.paddle.Removed() {
		return
	}
	color := core.ColorBrightWhite
	if g.paddle.MagnetActive() {
		color = core.ColorBrightYellow
	}

	left, y := g.toScreen(dst, core.NewPoint2D(g.paddle.Left(), g.paddle.Y))
	right, _ := g.toScreen(dst, core.NewPoint2D(g.paddle.Right(), g.paddle.Y))
	for x := left; x < right; x++ {
		dst.SetColored(x, y, PaddleChar, color)
	}
}

// renderProjectiles draws every visible projectile.
func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, p := range g.projectiles {
		if p.IsInvisible() {
			continue
		}
		x, y := g.toScreen(dst, p.GetPosition())
		if y < hudRows {
			continue
		}
		dst.SetColored(x, y, projectileGlyph(p), projectileColor(p))
	}
}

// projectileGlyph draws lasers as a stroke along their direction of travel.
func projectileGlyph(p *projectile.Projectile) rune {
	if projectile.Info(p.GetType()).Shape == projectile.ShapeOrb {
		return OrbGlyph
	}

	dir := p.GetVelocityDirection()
	ax, ay := math.Abs(dir.X), math.Abs(dir.Y)
	switch {
	case ay >= 2*ax:
		return '|'
	case ax >= 2*ay:
		return '-'
	case (dir.X > 0) == (dir.Y > 0):
		return '/'
	default:
		return '\\'
	}
}

func projectileColor(p *projectile.Projectile) core.Color {
	switch {
	case p.IsHostile():
		return core.ColorBrightRed
	case p.CreatedByReflection():
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightGreen
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to fire")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GALLERY CLEARED", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
